package swim

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validPayload returns a complete twelve-field payload as it would arrive
// from a decoded JSON body.
func validPayload() map[string]any {
	return map[string]any{
		"windSpeed":       float64(8),
		"windGust":        float64(10),
		"windDirection":   float64(180),
		"weatherCode":     "0",
		"precipAmount":    float64(0),
		"precipLast24h":   float64(0),
		"visibility":      float64(10000),
		"airQualityIndex": float64(20),
		"uvIndex":         float64(5),
		"cloudCover":      float64(40),
		"apparentTemp":    float64(27),
		"sst":             float64(26),
	}
}

func TestValidatePayloadAccepts(t *testing.T) {
	assert.True(t, ValidatePayload(validPayload()))
}

func TestValidatePayloadRejectsEachMissingField(t *testing.T) {
	for field := range validPayload() {
		t.Run("missing "+field, func(t *testing.T) {
			payload := validPayload()
			delete(payload, field)
			assert.False(t, ValidatePayload(payload))
		})
	}
}

func TestValidatePayloadRejectsWrongKinds(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value any
	}{
		{"numeric weatherCode", "weatherCode", float64(95)},
		{"string windSpeed", "windSpeed", "8"},
		{"boolean uvIndex", "uvIndex", true},
		{"null sst", "sst", nil},
		{"object cloudCover", "cloudCover", map[string]any{"value": 40}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			payload := validPayload()
			payload[tc.field] = tc.value
			assert.False(t, ValidatePayload(payload))
		})
	}
}

func TestValidatePayloadRejectsNil(t *testing.T) {
	assert.False(t, ValidatePayload(nil))
}

func TestInputsFromPayloadNarrows(t *testing.T) {
	// Round-trip through encoding/json to mirror the real boundary.
	body, err := json.Marshal(validPayload())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))

	in, ok := InputsFromPayload(raw)
	require.True(t, ok)
	assert.Equal(t, calmInputs(), in)

	delete(raw, "visibility")
	_, ok = InputsFromPayload(raw)
	assert.False(t, ok)
}
