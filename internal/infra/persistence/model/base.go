// Package model contains the GORM table mappings of the persistence layer.
package model

import (
	"github.com/google/uuid"
)

// assignID fills a zero primary key with a new UUID. IDs are generated in
// Go instead of a database default so every dialect behaves the same.
func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
