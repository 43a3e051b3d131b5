package news

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rwalabs/platform-middleware/internal/metrics"
	apperrors "github.com/rwalabs/platform-middleware/pkg/app/errors"
)

// Service serves cached news and runs the background expiry sweeper.
type Service struct {
	store           Store
	ttl             time.Duration
	cleanupInterval time.Duration
	logger          *zap.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewService creates the news cache service. ttl bounds item freshness,
// cleanupInterval paces the background sweeper.
func NewService(store Store, ttl, cleanupInterval time.Duration, logger *zap.Logger) *Service {
	return &Service{
		store:           store,
		ttl:             ttl,
		cleanupInterval: cleanupInterval,
		logger:          logger,
		stopCh:          make(chan struct{}),
	}
}

// List returns all items still within the TTL, newest published first.
func (s *Service) List(ctx context.Context) ([]*Item, error) {
	items, err := s.store.ListFresh(ctx, s.ttl)
	if err != nil {
		return nil, apperrors.PersistenceError(fmt.Errorf("failed to load news cache: %w", err))
	}
	return items, nil
}

// Put replaces the cached items of one source. Item ids and fetch
// timestamps are assigned here; callers only supply content.
func (s *Service) Put(ctx context.Context, source string, items []*Item) error {
	if source == "" {
		return apperrors.ValidationError(nil, "source is required")
	}
	now := time.Now().UTC()
	for _, item := range items {
		if item.Title == "" || item.URL == "" {
			return apperrors.ValidationError(nil, "each item needs a title and url")
		}
		item.ID = uuid.NewString()
		item.Source = source
		item.FetchedAt = now
		if item.PublishedAt.IsZero() {
			item.PublishedAt = now
		}
	}
	if err := s.store.Replace(ctx, source, items); err != nil {
		return apperrors.PersistenceError(fmt.Errorf("failed to store news items: %w", err))
	}
	return nil
}

// Purge drops the whole cache and reports how many items were removed.
func (s *Service) Purge(ctx context.Context) (int64, error) {
	removed, err := s.store.Purge(ctx)
	if err != nil {
		return 0, apperrors.PersistenceError(fmt.Errorf("failed to purge news cache: %w", err))
	}
	return removed, nil
}

// StartPeriodicCleanup starts a background goroutine that sweeps expired
// items on the configured interval.
func (s *Service) StartPeriodicCleanup() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.cleanupInterval)
		defer ticker.Stop()

		s.logger.Info("Started periodic news cache cleanup",
			zap.Duration("interval", s.cleanupInterval),
			zap.Duration("ttl", s.ttl))

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
				s.sweep(ctx)
				cancel()
			case <-s.stopCh:
				s.logger.Info("Stopping periodic news cache cleanup")
				return
			}
		}
	}()
}

// Stop terminates the background sweeper and waits for it to exit.
func (s *Service) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

func (s *Service) sweep(ctx context.Context) {
	removed, err := s.store.DeleteExpired(ctx, s.ttl)
	metrics.NewsSweeps.Inc()
	if err != nil {
		s.logger.Error("News cache sweep failed", zap.Error(err))
		return
	}
	if removed > 0 {
		metrics.NewsItemsEvicted.Add(float64(removed))
		s.logger.Info("Swept expired news items", zap.Int64("removed", removed))
	}
}
