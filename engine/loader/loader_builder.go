package loader

import (
	"time"

	"github.com/rs/zerolog"
)

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithAssetDir sets the directory relative asset paths are resolved against.
//
// Parameters:
//   - dir: the asset root directory
//
// Returns:
//   - LoaderBuilderOption: a function that applies the asset directory option to a loader
func WithAssetDir(dir string) LoaderBuilderOption {
	return func(l *loader) {
		l.assetDir = dir
	}
}

// WithWorkers sets the maximum number of pool workers parsing assets.
// Values below 1 keep the default.
//
// Parameters:
//   - n: the worker count
//
// Returns:
//   - LoaderBuilderOption: a function that applies the worker option to a loader
func WithWorkers(n int) LoaderBuilderOption {
	return func(l *loader) {
		if n > 0 {
			l.workers = n
		}
	}
}

// WithQueueSize sets the capacity of both the task queue and the completion buffer.
// Values below 1 keep the default.
func WithQueueSize(n int) LoaderBuilderOption {
	return func(l *loader) {
		if n > 0 {
			l.queueSize = n
		}
	}
}

// WithIdleTimeout sets how long an idle pool worker is kept.
func WithIdleTimeout(d time.Duration) LoaderBuilderOption {
	return func(l *loader) {
		if d > 0 {
			l.idleTimeout = d
		}
	}
}

// WithLogger sets the logger used for parse and failure messages.
func WithLogger(logger zerolog.Logger) LoaderBuilderOption {
	return func(l *loader) {
		l.logger = logger
	}
}
