package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-diorama/engine/game_object"
	"github.com/rs/zerolog"
)

var (
	// ErrUnsupportedFormat is returned for asset paths whose extension has no backend.
	ErrUnsupportedFormat = errors.New("unsupported asset format")

	// ErrClosed is delivered to callbacks for loads requested after Close.
	ErrClosed = errors.New("loader closed")

	// ErrMalformedAsset wraps a failure that aborted parsing outright.
	ErrMalformedAsset = errors.New("malformed asset")
)

const (
	defaultWorkers     = 4
	defaultQueueSize   = 64
	defaultIdleTimeout = 30 * time.Second
)

// Result is the outcome of one load request.
type Result struct {
	// Path is the asset path as requested.
	Path string

	// Object is a freshly built node tree. Nil when Err is set.
	Object game_object.GameObject

	// Clips lists the animation clips embedded in the asset.
	Clips []game_object.Clip

	// Err reports why the load failed.
	Err error
}

// Callback receives a load Result on the goroutine that calls Drain.
type Callback func(Result)

type completion struct {
	result Result
	cb     Callback
}

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	logger zerolog.Logger

	assetDir    string
	workers     int
	queueSize   int
	idleTimeout time.Duration

	cache   map[string]*assetTemplate
	backend loaderBackend

	pool    worker.DynamicWorkerPool
	results chan completion
	pending atomic.Int64
	taskID  atomic.Int64

	// life guards closed against submissions racing Close.
	life   sync.RWMutex
	closed bool
	done   chan struct{}
}

// Loader defines the public-facing interface for loading and caching assets.
// It abstracts the file format (glTF, GLB) behind a backend, keeps parsed
// assets cached by path and hands every caller its own node tree.
//
// Asynchronous loads are parsed on a worker pool. Their callbacks never run on
// a worker: they are queued until the owner calls Drain, which keeps every scene
// mutation on the frame goroutine.
type Loader interface {
	// Load imports an asset synchronously.
	// The parsed asset is cached by path; each call returns a new node tree.
	//
	// Parameters:
	//   - path: the asset path, relative to the asset directory unless absolute
	//
	// Returns:
	//   - Result: the loaded node tree and clips, or the error
	Load(path string) Result

	// LoadBytes imports an asset held in memory and caches it under name.
	//
	// Parameters:
	//   - name: the cache key; its extension selects the format
	//   - data: the raw file contents
	//
	// Returns:
	//   - Result: the loaded node tree and clips, or the error
	LoadBytes(name string, data []byte) Result

	// LoadAsync queues a load on the worker pool. cb is called exactly once,
	// from Drain, with the result.
	//
	// Parameters:
	//   - path: the asset path, relative to the asset directory unless absolute
	//   - cb: the completion callback, may be nil
	LoadAsync(path string, cb Callback)

	// Drain runs the callbacks of every finished load without blocking.
	//
	// Returns:
	//   - int: the number of callbacks run
	Drain() int

	// Pending reports loads that were requested but whose callbacks have not run.
	Pending() int

	// Cached reports whether the asset at path has already been parsed.
	Cached(path string) bool

	// Close stops the worker pool. Later LoadAsync calls complete with ErrClosed.
	Close()
}

var _ Loader = &loader{}

// NewLoader creates a new Loader with the glTF backend and the given options applied.
//
// Parameters:
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new, started Loader
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		logger:      zerolog.Nop(),
		workers:     defaultWorkers,
		queueSize:   defaultQueueSize,
		idleTimeout: defaultIdleTimeout,
		cache:       make(map[string]*assetTemplate),
		backend:     newGLTFLoaderBackend(),
	}

	for _, option := range options {
		option(l)
	}

	l.results = make(chan completion, l.queueSize)
	l.done = make(chan struct{})
	l.pool = worker.NewDynamicWorkerPool(l.workers, l.queueSize, l.idleTimeout)
	l.pool.Start()
	return l
}

func (l *loader) Load(path string) (res Result) {
	defer recoverLoad(path, &res)

	full, err := l.resolve(path)
	if err != nil {
		return Result{Path: path, Err: err}
	}

	if t, ok := l.cached(full); ok {
		return l.result(path, t)
	}

	t, err := l.backend.Load(full)
	if err != nil {
		return Result{Path: path, Err: fmt.Errorf("failed to load %s: %w", path, err)}
	}
	l.store(full, t)

	l.logger.Debug().Str("component", "Loader").Str("path", path).
		Int("clips", len(t.clips)).Int("meshes", t.meshes).Msg("asset parsed")
	return l.result(path, t)
}

func (l *loader) LoadBytes(name string, data []byte) (res Result) {
	defer recoverLoad(name, &res)

	isGLB, err := formatOf(name)
	if err != nil {
		return Result{Path: name, Err: err}
	}

	if t, ok := l.cached(name); ok {
		return l.result(name, t)
	}

	t, err := l.backend.LoadBytes(name, data, isGLB)
	if err != nil {
		return Result{Path: name, Err: fmt.Errorf("failed to load %s: %w", name, err)}
	}
	l.store(name, t)
	return l.result(name, t)
}

func (l *loader) LoadAsync(path string, cb Callback) {
	l.pending.Add(1)

	l.life.RLock()
	defer l.life.RUnlock()

	if l.closed {
		l.post(completion{result: Result{Path: path, Err: ErrClosed}, cb: cb})
		return
	}

	l.pool.SubmitTask(worker.Task{
		ID:      int(l.taskID.Add(1)),
		Payload: path,
		Do: func() (any, error) {
			res := l.Load(path)
			l.post(completion{result: res, cb: cb})
			return nil, res.Err
		},
	})
}

func (l *loader) Drain() int {
	n := 0
	for {
		select {
		case c := <-l.results:
			l.pending.Add(-1)
			if c.result.Err != nil {
				l.logger.Warn().Str("component", "Loader").Str("path", c.result.Path).
					Err(c.result.Err).Msg("asset load failed")
			}
			if c.cb != nil {
				c.cb(c.result)
			}
			n++
		default:
			return n
		}
	}
}

func (l *loader) Pending() int {
	return int(l.pending.Load())
}

func (l *loader) Cached(path string) bool {
	full, err := l.resolve(path)
	if err != nil {
		return false
	}
	_, ok := l.cached(full)
	return ok
}

func (l *loader) Close() {
	l.life.Lock()
	defer l.life.Unlock()

	if l.closed {
		return
	}
	l.closed = true
	close(l.done)
	l.pool.Stop()
}

// post delivers a completion without blocking the caller. Results that do not
// fit the buffer are handed off to a goroutine, which gives up once the loader
// is closed.
func (l *loader) post(c completion) {
	select {
	case l.results <- c:
	default:
		go func() {
			select {
			case l.results <- c:
			case <-l.done:
				l.pending.Add(-1)
			}
		}()
	}
}

// recoverLoad turns a panic during parsing into a failed Result.
func recoverLoad(path string, res *Result) {
	if r := recover(); r != nil {
		*res = Result{Path: path, Err: fmt.Errorf("%w: %s: %v", ErrMalformedAsset, path, r)}
	}
}

func (l *loader) cached(key string) (*assetTemplate, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	t, ok := l.cache[key]
	return t, ok
}

func (l *loader) store(key string, t *assetTemplate) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.cache[key]; !ok {
		l.cache[key] = t
	}
}

func (l *loader) result(path string, t *assetTemplate) Result {
	root := t.instantiate(path)
	return Result{
		Path:   path,
		Object: root,
		Clips:  root.Clips(),
	}
}

// resolve validates the extension and joins relative paths onto the asset directory.
func (l *loader) resolve(path string) (string, error) {
	if _, err := formatOf(path); err != nil {
		return "", err
	}
	if l.assetDir != "" && !filepath.IsAbs(path) {
		return filepath.Join(l.assetDir, path), nil
	}
	return path, nil
}

// formatOf selects a backend format from the file extension.
// Currently only glTF/GLB is supported.
func formatOf(path string) (isGLB bool, err error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".glb":
		return true, nil
	case ".gltf":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
