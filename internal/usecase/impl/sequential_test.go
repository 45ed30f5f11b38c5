package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessSequentially_ContinuesAfterFailures(t *testing.T) {
	var order []string
	active := 0

	results := processSequentially(context.Background(), []string{"a", "b", "c", "d"}, 0,
		func(_ context.Context, item string) (string, error) {
			active++
			defer func() { active-- }()
			require.Equal(t, 1, active, "items must not overlap")

			order = append(order, item)
			switch item {
			case "b":
				return "", errors.New("b failed")
			case "c":
				panic("c exploded")
			}

			return item + "!", nil
		})

	require.Len(t, results, 4)
	assert.Equal(t, []string{"a", "b", "c", "d"}, order)

	assert.Equal(t, "a!", results[0].Value)
	assert.NoError(t, results[0].Err)
	assert.EqualError(t, results[1].Err, "b failed")
	assert.ErrorContains(t, results[2].Err, "c exploded")
	assert.Equal(t, "d!", results[3].Value)
	assert.NoError(t, results[3].Err)
}

func TestProcessSequentially_DelaysBetweenItems(t *testing.T) {
	var stamps []time.Time

	processSequentially(context.Background(), []int{1, 2, 3}, 20*time.Millisecond,
		func(_ context.Context, _ int) (struct{}, error) {
			stamps = append(stamps, time.Now())

			return struct{}{}, nil
		})

	require.Len(t, stamps, 3)
	assert.GreaterOrEqual(t, stamps[1].Sub(stamps[0]), 20*time.Millisecond)
	assert.GreaterOrEqual(t, stamps[2].Sub(stamps[1]), 20*time.Millisecond)
}

func TestProcessSequentially_Empty(t *testing.T) {
	results := processSequentially(context.Background(), []int(nil), time.Second,
		func(_ context.Context, i int) (int, error) { return i, nil })
	assert.Empty(t, results)
}
