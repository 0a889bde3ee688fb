package weather

import "encoding/json"

// Source identifies the provider in successful results.
const Source = "OpenWeatherMap"

// Units reported alongside every successful lookup. They are fixed by the
// metric unit system requested upstream, not read from the response.
var Units = map[string]string{
	"temperature": "°C",
	"pressure":    "hPa",
	"wind_speed":  "м/с",
	"visibility":  "метры",
}

// TemperatureUnit is appended to the temperature literal.
const TemperatureUnit = "°C"

// Snapshot is the normalized subset of the current weather.
// Numeric fields keep the upstream literal; nil means the field was absent.
type Snapshot struct {
	City                string       `json:"city"`
	Temperature         *json.Number `json:"temperature"`
	FeelsLike           *json.Number `json:"feels_like"`
	Humidity            *json.Number `json:"humidity"`
	WeatherDescription  string       `json:"weather_description"`
	WindSpeed           *json.Number `json:"wind_speed"`
	Cloudiness          *json.Number `json:"cloudiness"`
	TemperatureWithUnit *string      `json:"temperature_with_unit,omitempty"`
}

// Result is the uniform envelope returned by every lookup.
type Result struct {
	Success bool              `json:"success"`
	Error   *string           `json:"error"`
	Data    *Snapshot         `json:"data"`
	Source  string            `json:"source,omitempty"`
	Units   map[string]string `json:"units,omitempty"`

	kind ErrorKind
}

// Kind reports which failure produced the result. It is KindNone on success.
func (r Result) Kind() ErrorKind {
	return r.kind
}

func successResult(source string, snap Snapshot) Result {
	if source == "" {
		source = Source
	}
	units := make(map[string]string, len(Units))
	for k, v := range Units {
		units[k] = v
	}
	return Result{
		Success: true,
		Data:    &snap,
		Source:  source,
		Units:   units,
	}
}

func failureResult(kind ErrorKind, msg string) Result {
	return Result{
		Success: false,
		Error:   &msg,
		kind:    kind,
	}
}
