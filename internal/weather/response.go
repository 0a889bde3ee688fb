package weather

import (
	"encoding/json"
	"fmt"
)

// successCode is the provider's "cod" value for a successful body.
const successCode = 200

// ProviderResponse is the decoded upstream body. Its schema belongs to the
// provider, so every accessor returns a default on missing or mismatched nodes.
type ProviderResponse map[string]any

// Lookup walks nested objects along path.
func (r ProviderResponse) Lookup(path ...string) (any, bool) {
	var cur any = map[string]any(r)
	for _, key := range path {
		obj, ok := asObject(cur)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Object returns the object at path, or an empty one.
func (r ProviderResponse) Object(path ...string) ProviderResponse {
	v, _ := r.Lookup(path...)
	obj, ok := asObject(v)
	if !ok {
		return ProviderResponse{}
	}
	return obj
}

// Number returns the numeric value at path, or nil.
func (r ProviderResponse) Number(path ...string) *json.Number {
	v, _ := r.Lookup(path...)
	switch n := v.(type) {
	case json.Number:
		return &n
	case float64:
		num := json.Number(fmt.Sprint(n))
		return &num
	default:
		return nil
	}
}

// String returns the string at path, or def.
func (r ProviderResponse) String(def string, path ...string) string {
	v, _ := r.Lookup(path...)
	s, ok := v.(string)
	if !ok {
		return def
	}
	return s
}

// FirstObject returns the first element of the array at path when it is an
// object. An empty or missing array yields an empty object.
func (r ProviderResponse) FirstObject(path ...string) ProviderResponse {
	v, _ := r.Lookup(path...)
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return ProviderResponse{}
	}
	obj, ok := asObject(items[0])
	if !ok {
		return ProviderResponse{}
	}
	return obj
}

// ProviderErr returns a *ProviderError when "cod" is present and is not 200.
// A body without "cod" is accepted.
func (r ProviderResponse) ProviderErr() error {
	code, ok := r["cod"]
	if !ok || isSuccessCode(code) {
		return nil
	}

	msg := ""
	switch m := r["message"].(type) {
	case nil:
	case string:
		msg = m
	default:
		msg = fmt.Sprint(m)
	}
	return &ProviderError{Code: code, Message: msg}
}

// Snapshot extracts the normalized fields.
func (r ProviderResponse) Snapshot() Snapshot {
	snap := Snapshot{
		City:               r.String("", "name"),
		Temperature:        r.Number("main", "temp"),
		FeelsLike:          r.Number("main", "feels_like"),
		Humidity:           r.Number("main", "humidity"),
		WeatherDescription: r.FirstObject("weather").String("", "description"),
		WindSpeed:          r.Number("wind", "speed"),
		Cloudiness:         r.Number("clouds", "all"),
	}
	if snap.Temperature != nil {
		withUnit := snap.Temperature.String() + TemperatureUnit
		snap.TemperatureWithUnit = &withUnit
	}
	return snap
}

func asObject(v any) (ProviderResponse, bool) {
	switch obj := v.(type) {
	case ProviderResponse:
		return obj, true
	case map[string]any:
		return obj, true
	default:
		return nil, false
	}
}

// isSuccessCode compares numerically; the string "200" does not match.
func isSuccessCode(code any) bool {
	switch c := code.(type) {
	case json.Number:
		f, err := c.Float64()
		return err == nil && f == successCode
	case float64:
		return c == successCode
	case int:
		return c == successCode
	default:
		return false
	}
}
