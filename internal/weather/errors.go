package weather

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed lookup.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindMissingCity
	KindMissingAPIKey
	KindTimeout
	KindConnection
	KindHTTP
	KindParse
	KindProvider
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindMissingCity:
		return "missing_city"
	case KindMissingAPIKey:
		return "missing_api_key"
	case KindTimeout:
		return "timeout"
	case KindConnection:
		return "connection"
	case KindHTTP:
		return "http"
	case KindParse:
		return "parse"
	case KindProvider:
		return "provider"
	default:
		return "unknown"
	}
}

// User-facing messages.
const (
	msgMissingCity     = `Не указан город. Используйте параметр "city"`
	msgMissingAPIKey   = `Не указан ключ API. Укажите его в vars["api_key"]`
	msgTimeout         = "Таймаут при подключении к сервису погоды"
	msgConnection      = "Ошибка подключения к сервису погоды"
	msgHTTP            = "HTTP ошибка: %s"
	msgParse           = "Ошибка парсинга JSON: %s"
	msgProvider        = "Ошибка API: %s"
	msgProviderUnknown = "Неизвестная ошибка API"
	msgUnknown         = "Неизвестная ошибка: %s"
)

var (
	ErrMissingCity   = errors.New("city not specified")
	ErrMissingAPIKey = errors.New("api key not specified")

	// ErrTimeout and ErrConnection are wrapped by providers around transport failures.
	ErrTimeout    = errors.New("request timed out")
	ErrConnection = errors.New("connection failed")
)

// HTTPError is returned for a non-2xx upstream status.
type HTTPError struct {
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	if e.Status != "" {
		return e.Status
	}
	return fmt.Sprintf("%d", e.StatusCode)
}

// ParseError is returned when the upstream body is not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ProviderError carries a failure reported inside a well-formed body.
// Message is empty when the provider did not send one.
type ProviderError struct {
	Code    any
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("provider error code %v", e.Code)
	}
	return e.Message
}

// ResultFromError maps any error to a failure Result.
func ResultFromError(err error) Result {
	var (
		httpErr     *HTTPError
		parseErr    *ParseError
		providerErr *ProviderError
	)

	switch {
	case err == nil:
		return failureResult(KindUnknown, fmt.Sprintf(msgUnknown, "nil error"))
	case errors.Is(err, ErrMissingCity):
		return failureResult(KindMissingCity, msgMissingCity)
	case errors.Is(err, ErrMissingAPIKey):
		return failureResult(KindMissingAPIKey, msgMissingAPIKey)
	case errors.Is(err, ErrTimeout):
		return failureResult(KindTimeout, msgTimeout)
	case errors.Is(err, ErrConnection):
		return failureResult(KindConnection, msgConnection)
	case errors.As(err, &httpErr):
		return failureResult(KindHTTP, fmt.Sprintf(msgHTTP, httpErr.Error()))
	case errors.As(err, &parseErr):
		return failureResult(KindParse, fmt.Sprintf(msgParse, parseErr.Error()))
	case errors.As(err, &providerErr):
		msg := providerErr.Message
		if msg == "" {
			msg = msgProviderUnknown
		}
		return failureResult(KindProvider, fmt.Sprintf(msgProvider, msg))
	default:
		return failureResult(KindUnknown, fmt.Sprintf(msgUnknown, err.Error()))
	}
}
