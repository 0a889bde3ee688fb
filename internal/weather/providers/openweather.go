package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// OpenWeatherBaseURL is the current-weather endpoint.
const OpenWeatherBaseURL = "http://api.openweathermap.org/data/2.5/weather"

// OpenWeatherProvider implements the weather.Provider interface for OpenWeatherMap.
type OpenWeatherProvider struct {
	name    string
	baseURL string
	units   string
	lang    string
	client  *http.Client
}

// NewOpenWeatherProvider returns a provider for baseURL. A nil client gets
// DefaultTimeout; an empty baseURL uses OpenWeatherBaseURL.
func NewOpenWeatherProvider(client *http.Client, baseURL string) *OpenWeatherProvider {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	if baseURL == "" {
		baseURL = OpenWeatherBaseURL
	}

	return &OpenWeatherProvider{
		name:    weather.Source,
		baseURL: baseURL,
		units:   "metric",
		lang:    "ru",
		client:  client,
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// Current fetches the current weather for req.City. It makes one attempt.
func (p *OpenWeatherProvider) Current(ctx context.Context, req weather.Request) (weather.ProviderResponse, error) {
	httpReq, err := p.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	body, err := doRequest(ctx, p.client, httpReq)
	if err != nil {
		return nil, err
	}
	return decodeObject(body)
}

func (p *OpenWeatherProvider) buildRequest(ctx context.Context, req weather.Request) (*http.Request, error) {
	values := url.Values{}
	values.Set("q", req.City)
	values.Set("appid", req.APIKey)
	values.Set("units", p.units)
	values.Set("lang", p.lang)

	u, err := url.Parse(p.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	u.RawQuery = values.Encode()
	return http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
}
