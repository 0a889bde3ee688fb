package weather

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Service runs lookups against a single provider.
type Service struct {
	provider Provider
	logger   *zap.Logger
}

// NewService creates a new Service. A nil logger discards output.
func NewService(provider Provider, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		provider: provider,
		logger:   logger,
	}
}

// Lookup validates the inputs, performs one provider call and maps the
// outcome to a Result. Panics from the provider are recovered into an
// unknown-error Result.
func (s *Service) Lookup(ctx context.Context, credentials, query map[string]string) (result Result) {
	req := NewRequest(credentials, query)

	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("weather lookup panicked", zap.String("city", req.City), zap.Any("panic", rec))
			result = ResultFromError(fmt.Errorf("%v", rec))
		}
	}()

	snap, err := s.fetch(ctx, req)
	if err != nil {
		result = ResultFromError(err)
		s.logger.Debug("weather lookup failed",
			zap.String("city", req.City),
			zap.Stringer("kind", result.Kind()),
			zap.Error(err),
		)
		return result
	}
	return successResult(s.provider.Name(), snap)
}

func (s *Service) fetch(ctx context.Context, req Request) (Snapshot, error) {
	if err := req.Validate(); err != nil {
		return Snapshot{}, err
	}
	if s.provider == nil {
		return Snapshot{}, fmt.Errorf("weather provider not configured")
	}

	body, err := s.provider.Current(ctx, req)
	if err != nil {
		return Snapshot{}, err
	}
	if err := body.ProviderErr(); err != nil {
		return Snapshot{}, err
	}
	return body.Snapshot(), nil
}
