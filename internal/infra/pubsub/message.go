// Package pubsub publishes generation requests to the worker, either through
// Google Pub/Sub or by pushing directly to a local worker over HTTP.
package pubsub

import (
	"encoding/json"

	"adcopy/internal/domain/constants"
	"adcopy/internal/domain/service"

	"github.com/pkg/errors"
)

// PushMessage is the envelope Pub/Sub uses when pushing to an HTTP endpoint.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

func encodeGenerationRequested(event *service.GenerationRequestedEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		constants.AttrEventType: constants.EventTypeGenerationRequested,
		constants.AttrProjectID: event.ProjectID,
	}
	if event.RequestID != "" {
		attributes[constants.AttrRequestID] = event.RequestID
	}

	return data, attributes, nil
}
