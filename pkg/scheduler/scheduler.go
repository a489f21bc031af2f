// Package scheduler owns the catalog refresh lifecycle: initial load on
// startup, periodic reloads from the catalog file and on-demand reloads,
// replacing ambient file access inside scoring logic with an explicit
// load-once, reload-on-demand dependency.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
)

//go:generate moq -out mocks/catalog_store.go -pkg mocks -skip-ensure -fmt goimports . CatalogStore

// CatalogStore interface for scheduler operations
type CatalogStore interface {
	ImportFile(ctx context.Context, path string) (int, error)
	Count(ctx context.Context) (int, error)
}

// Scheduler reloads the catalog from the configured file on an interval and
// on demand
type Scheduler struct {
	store    CatalogStore
	file     string
	interval time.Duration
	reloadCh chan struct{}
}

// Config holds scheduler configuration
type Config struct {
	Store    CatalogStore
	File     string
	Interval time.Duration
}

// New creates a scheduler, interval defaults to one hour
func New(cfg Config) *Scheduler {
	if cfg.Interval == 0 {
		cfg.Interval = time.Hour
	}
	return &Scheduler{
		store:    cfg.Store,
		file:     cfg.File,
		interval: cfg.Interval,
		reloadCh: make(chan struct{}, 1),
	}
}

// Run loads the catalog when the store is empty, then blocks reloading on
// interval ticks and ReloadNow triggers until the context is canceled. The
// initial load failing is fatal, serving requests without a catalog makes no
// sense. Later reload failures are logged and the previous catalog stays
// active.
func (s *Scheduler) Run(ctx context.Context) error {
	if s.file == "" {
		lgr.Printf("[INFO] no catalog file configured, reloads disabled")
		<-ctx.Done()
		return nil
	}

	count, err := s.store.Count(ctx)
	if err != nil {
		return fmt.Errorf("check catalog state: %w", err)
	}
	if count == 0 {
		if err := s.reload(ctx); err != nil {
			return fmt.Errorf("initial catalog load: %w", err)
		}
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			lgr.Printf("[INFO] catalog scheduler stopped")
			return nil
		case <-ticker.C:
			if err := s.reload(ctx); err != nil {
				lgr.Printf("[WARN] scheduled catalog reload failed: %v", err)
			}
		case <-s.reloadCh:
			if err := s.reload(ctx); err != nil {
				lgr.Printf("[WARN] requested catalog reload failed: %v", err)
			}
		}
	}
}

// ReloadNow triggers an asynchronous catalog reload, non-blocking and
// coalesced when one is already pending
func (s *Scheduler) ReloadNow() {
	select {
	case s.reloadCh <- struct{}{}:
	default:
	}
}

func (s *Scheduler) reload(ctx context.Context) error {
	retrier := repeater.NewBackoff(3, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	var count int
	err := retrier.Do(ctx, func() error {
		var e error
		count, e = s.store.ImportFile(ctx, s.file)
		return e
	})
	if err != nil {
		return err
	}

	lgr.Printf("[INFO] catalog reloaded from %s, %d items", s.file, count)
	return nil
}
