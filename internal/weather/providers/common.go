package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"syscall"
	"time"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// DefaultTimeout bounds every outbound call when no client is supplied.
const DefaultTimeout = 10 * time.Second

var errNoHTTPClient = errors.New("http client not configured")

// doRequest executes one request and returns the body of a 2xx response.
// Transport failures wrap weather.ErrTimeout or weather.ErrConnection.
func doRequest(ctx context.Context, client *http.Client, req *http.Request) ([]byte, error) {
	if client == nil {
		return nil, errNoHTTPClient
	}

	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &weather.HTTPError{
			StatusCode: resp.StatusCode,
			Status:     statusLine(resp),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	return body, nil
}

// decodeObject parses body as a single JSON object, keeping number literals.
func decodeObject(body []byte) (weather.ProviderResponse, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &weather.ParseError{Err: err}
	}
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, &weather.ParseError{Err: err}
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected response type %T", v)
	}
	return weather.ProviderResponse(obj), nil
}

// classifyTransportError drops the request URL, which carries the API key.
func classifyTransportError(err error) error {
	var netErr net.Error
	timeout := errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout())

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = fmt.Errorf("%s request: %w", urlErr.Op, urlErr.Err)
	}

	if errors.Is(err, context.Canceled) {
		return err
	}
	if timeout {
		return fmt.Errorf("%w: %v", weather.ErrTimeout, err)
	}

	var (
		opErr  *net.OpError
		dnsErr *net.DNSError
	)
	if errors.As(err, &opErr) || errors.As(err, &dnsErr) ||
		errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", weather.ErrConnection, err)
	}
	return err
}

func statusLine(resp *http.Response) string {
	if resp.Status != "" {
		return resp.Status
	}
	return fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
