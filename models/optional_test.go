package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalDistinguishesAbsentNullAndValue(t *testing.T) {
	type payload struct {
		Title Optional[string]   `json:"title"`
		Tags  Optional[[]string] `json:"tags"`
	}

	var absent payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.False(t, absent.Title.Set)
	assert.False(t, absent.Tags.Set)

	var null payload
	require.NoError(t, json.Unmarshal([]byte(`{"title": null}`), &null))
	assert.True(t, null.Title.Set)
	assert.Nil(t, null.Title.Value)

	var present payload
	require.NoError(t, json.Unmarshal([]byte(`{"title": "X", "tags": []}`), &present))
	require.True(t, present.Title.Set)
	require.NotNil(t, present.Title.Value)
	assert.Equal(t, "X", *present.Title.Value)
	require.True(t, present.Tags.Set)
	require.NotNil(t, present.Tags.Value)
	assert.Empty(t, *present.Tags.Value)
}

func TestOptionalMarshal(t *testing.T) {
	value := "X"

	data, err := json.Marshal(Optional[string]{Set: true, Value: &value})
	require.NoError(t, err)
	assert.JSONEq(t, `"X"`, string(data))

	data, err = json.Marshal(Optional[string]{Set: true})
	require.NoError(t, err)
	assert.JSONEq(t, `null`, string(data))
}
