package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/i474232898/weather-lookup/internal/weather"
)

type recordingLooker struct {
	mu     sync.Mutex
	cities []string
}

func (r *recordingLooker) Lookup(ctx context.Context, credentials, query map[string]string) weather.Result {
	r.mu.Lock()
	r.cities = append(r.cities, query["city"])
	r.mu.Unlock()

	if credentials["api_key"] == "" {
		return weather.ResultFromError(weather.ErrMissingAPIKey)
	}
	if query["city"] == "Nowhere" {
		return weather.ResultFromError(errors.New("city not found"))
	}
	return weather.Result{Success: true, Data: &weather.Snapshot{City: query["city"]}}
}

func TestRunOnce(t *testing.T) {
	looker := &recordingLooker{}
	s := New([]string{"Moscow", "Nowhere", "Paris"}, time.Minute, looker, map[string]string{"api_key": "k"}, nil)

	results := s.RunOnce(context.Background())
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if !results[0].Success || results[0].Data.City != "Moscow" {
		t.Errorf("unexpected first result %+v", results[0])
	}
	if results[1].Success || results[1].Kind() != weather.KindUnknown {
		t.Errorf("expected failure for Nowhere, got %+v", results[1])
	}
	if !results[2].Success || results[2].Data.City != "Paris" {
		t.Errorf("unexpected third result %+v", results[2])
	}
	if len(looker.cities) != 3 {
		t.Errorf("expected one lookup per city, got %v", looker.cities)
	}
}

func TestStartWithoutCities(t *testing.T) {
	s := New(nil, time.Minute, &recordingLooker{}, nil, nil)
	if err := s.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Stop()
}

func TestStartAndStop(t *testing.T) {
	looker := &recordingLooker{}
	s := New([]string{"Moscow"}, time.Hour, looker, map[string]string{"api_key": "k"}, nil)
	if err := s.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Stop()
}
