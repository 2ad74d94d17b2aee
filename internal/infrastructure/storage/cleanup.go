package storage

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yourplaces/places-api/internal/core/ports"
)

const cleanupBuffer = 64

// Cleanup removes stored files on a background goroutine. Discard never
// blocks the caller and failures are only logged; document consistency is
// strong, image-artifact consistency is deliberately weak.
type Cleanup struct {
	store ports.FileStore
	queue chan string
	log   zerolog.Logger
}

func NewCleanup(store ports.FileStore, log zerolog.Logger) *Cleanup {
	return &Cleanup{
		store: store,
		queue: make(chan string, cleanupBuffer),
		log:   log,
	}
}

// Start launches the worker goroutine. It stops when ctx is cancelled.
func (c *Cleanup) Start(ctx context.Context) {
	go c.run(ctx)
}

// Discard schedules removal of path. When the queue is full the file is left
// behind rather than blocking the request that finished with it.
func (c *Cleanup) Discard(path string) {
	select {
	case c.queue <- path:
	default:
		c.log.Warn().Str("path", path).Msg("cleanup queue full, file left on disk")
	}
}

func (c *Cleanup) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-c.queue:
			if !ok {
				return
			}
			if err := c.store.Remove(path); err != nil {
				c.log.Warn().Err(err).Str("path", path).Msg("failed to remove stored image")
			}
		}
	}
}
