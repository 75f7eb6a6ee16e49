package engine

import (
	"context"
	"sync"

	"github.com/dop251/goja"
	"github.com/spf13/afero"
	"github.com/tetratelabs/wazero"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-bridge/errors"
)

// WazeroEngine compiles modules and hands out stores. It is safe for
// concurrent use; the stores it creates are not.
type WazeroEngine struct {
	cfg      Config
	cache    wazero.CompilationCache
	logger   *zap.Logger
	cacheDir string
	mu       sync.Mutex
	modules  []*WazeroModule
	closed   bool
}

// NewEngine creates an engine with cfg. Unless cfg.DisableCache is set the
// compilation cache lives on disk under the resolved cache directory.
func NewEngine(ctx context.Context, cfg Config) (*WazeroEngine, error) {
	return newEngine(ctx, cfg, afero.NewOsFs())
}

func newEngine(_ context.Context, cfg Config, fs afero.Fs) (*WazeroEngine, error) {
	if cfg.Compiler == "" {
		cfg.Compiler = CompilerAuto
	}
	l := cfg.Logger
	if l == nil {
		l = Logger()
	}

	e := &WazeroEngine{cfg: cfg, logger: l}
	if cfg.DisableCache {
		e.cache = wazero.NewCompilationCache()
	} else {
		dir, err := ResolveCacheDir(fs, cfg.CacheDir)
		if err != nil {
			return nil, err
		}
		cache, err := wazero.NewCompilationCacheWithDir(dir)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "open compilation cache")
		}
		e.cache = cache
		e.cacheDir = dir
	}

	l.Debug("engine created",
		zap.String("compiler", string(cfg.Compiler)),
		zap.String("cacheDir", e.cacheDir),
		zap.Uint64("features", uint64(cfg.Features.CoreFeatures())))
	return e, nil
}

// Config returns the configuration the engine was created with.
func (e *WazeroEngine) Config() Config { return e.cfg }

// CacheDir returns the compilation cache directory, empty when the cache is
// kept in memory.
func (e *WazeroEngine) CacheDir() string { return e.cacheDir }

// Logger returns the engine's logger.
func (e *WazeroEngine) Logger() *zap.Logger { return e.logger }

// NewStore creates a store on vm with the engine's limits and logger. A nil
// vm gets a fresh goja runtime.
func (e *WazeroEngine) NewStore(vm *goja.Runtime) *Store {
	return NewStore(vm, StoreConfig{
		Logger:         e.logger,
		MaxInvocations: e.cfg.MaxInvocations,
	})
}

func (e *WazeroEngine) newRuntime(ctx context.Context) wazero.Runtime {
	return wazero.NewRuntimeWithConfig(ctx, e.cfg.runtimeConfig(e.cache))
}

// Close releases every compiled module and the compilation cache.
func (e *WazeroEngine) Close(ctx context.Context) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	modules := e.modules
	e.modules = nil
	e.mu.Unlock()

	var firstErr error
	for _, m := range modules {
		if err := m.close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if err := e.cache.Close(ctx); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
