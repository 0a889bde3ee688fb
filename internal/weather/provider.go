package weather

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Request identifies one lookup. Both fields are required after trimming.
type Request struct {
	City   string `validate:"required"`
	APIKey string `validate:"required"`
}

// NewRequest builds a Request from the caller's credentials and query mappings.
func NewRequest(credentials, query map[string]string) Request {
	return Request{
		City:   strings.TrimSpace(query["city"]),
		APIKey: strings.TrimSpace(credentials["api_key"]),
	}
}

// Validate reports ErrMissingCity before ErrMissingAPIKey.
func (r Request) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	missingKey := false
	for _, fe := range fieldErrs {
		switch fe.Field() {
		case "City":
			return ErrMissingCity
		case "APIKey":
			missingKey = true
		}
	}
	if missingKey {
		return ErrMissingAPIKey
	}
	return err
}

// Provider abstracts the upstream current-weather endpoint.
// Current performs exactly one outbound call.
type Provider interface {
	Name() string
	Current(ctx context.Context, req Request) (ProviderResponse, error)
}
