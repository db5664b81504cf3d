package swim

import "swimcast/internal/types"

// numericFields lists the eleven numeric payload fields, in the order they
// appear on the wire.
var numericFields = []string{
	"windSpeed",
	"windGust",
	"windDirection",
	"precipAmount",
	"precipLast24h",
	"visibility",
	"airQualityIndex",
	"uvIndex",
	"cloudCover",
	"apparentTemp",
	"sst",
}

// weatherCodeField is the single string-typed payload field.
const weatherCodeField = "weatherCode"

// ValidatePayload reports whether an arbitrary decoded JSON object narrows
// safely to SwimInputs: all twelve fields present, eleven numeric and one
// string. It is a pure predicate with no side effects; the HTTP boundary maps
// a false result to a client-input error without ever invoking the scorer.
//
// encoding/json decodes every JSON number into float64, so the numeric kind
// check is a single type assertion per field.
func ValidatePayload(raw map[string]any) bool {
	if raw == nil {
		return false
	}
	for _, f := range numericFields {
		v, ok := raw[f]
		if !ok {
			return false
		}
		if _, isNum := v.(float64); !isNum {
			return false
		}
	}
	v, ok := raw[weatherCodeField]
	if !ok {
		return false
	}
	_, isStr := v.(string)
	return isStr
}

// InputsFromPayload validates raw and, on success, narrows it into a typed
// SwimInputs. The boolean mirrors ValidatePayload.
func InputsFromPayload(raw map[string]any) (types.SwimInputs, bool) {
	if !ValidatePayload(raw) {
		return types.SwimInputs{}, false
	}

	num := func(field string) float64 {
		v, _ := raw[field].(float64)
		return v
	}
	code, _ := raw[weatherCodeField].(string)

	return types.SwimInputs{
		WindSpeed:     num("windSpeed"),
		WindGust:      num("windGust"),
		WindDirection: num("windDirection"),
		WeatherCode:   code,
		PrecipAmount:  num("precipAmount"),
		PrecipLast24h: num("precipLast24h"),
		Visibility:    num("visibility"),
		AirQuality:    num("airQualityIndex"),
		UVIndex:       num("uvIndex"),
		CloudCover:    num("cloudCover"),
		ApparentTemp:  num("apparentTemp"),
		SeaTemp:       num("sst"),
	}, true
}
