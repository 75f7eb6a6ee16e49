package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mstoykov/envconfig"
	"github.com/spf13/afero"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/experimental"
	"go.uber.org/zap"

	wasmbridge "github.com/wippyai/wasm-bridge"
	"github.com/wippyai/wasm-bridge/errors"
)

// CompilerMode selects how wazero executes guest code.
type CompilerMode string

const (
	// CompilerAuto uses the optimizing compiler where the platform supports it.
	CompilerAuto        CompilerMode = "auto"
	CompilerOptimizing  CompilerMode = "compiler"
	CompilerInterpreter CompilerMode = "interpreter"
)

// Features toggles WebAssembly proposals. With no flag set the engine runs
// with the WebAssembly 2.0 feature set. Setting any flag switches to an
// explicit opt-in on top of WebAssembly 1.0.
type Features struct {
	SIMD           bool
	Threads        bool
	ReferenceTypes bool
	MultiValue     bool
	BulkMemory     bool
	All            bool
}

func (f Features) any() bool {
	return f.SIMD || f.Threads || f.ReferenceTypes || f.MultiValue || f.BulkMemory || f.All
}

// CoreFeatures maps the flags onto wazero's feature set.
func (f Features) CoreFeatures() api.CoreFeatures {
	if !f.any() {
		return api.CoreFeaturesV2
	}
	if f.All {
		return api.CoreFeaturesV2 | experimental.CoreFeaturesThreads
	}
	features := api.CoreFeaturesV1
	features = features.SetEnabled(api.CoreFeatureSIMD, f.SIMD)
	features = features.SetEnabled(api.CoreFeatureReferenceTypes, f.ReferenceTypes)
	features = features.SetEnabled(api.CoreFeatureMultiValue, f.MultiValue)
	features = features.SetEnabled(api.CoreFeatureBulkMemoryOperations, f.BulkMemory)
	features = features.SetEnabled(experimental.CoreFeaturesThreads, f.Threads)
	return features
}

// Config holds configuration for engine creation
type Config struct {
	// Logger receives engine diagnostics. Defaults to the package logger.
	Logger *zap.Logger

	// Compiler selects the execution mode. Empty means CompilerAuto.
	Compiler CompilerMode

	// CacheDir is the compilation cache root. The bridge version is
	// appended to it. Empty means $WASM_BRIDGE_CACHE_DIR, then the OS temp dir.
	CacheDir string

	Features Features

	// MemoryLimitPages sets the maximum memory per instance in pages (64KB each).
	// 0 means default (65536 pages = 4GB).
	MemoryLimitPages uint32

	// MaxInvocations caps how often one call may re-enter the guest through
	// on-called callbacks. 0 means unbounded.
	MaxInvocations int

	// DisableCache turns the on-disk compilation cache off.
	DisableCache bool
}

type envConfig struct {
	Compiler         string   `envconfig:"WASM_BRIDGE_COMPILER"`
	CacheDir         string   `envconfig:"WASM_BRIDGE_CACHE_DIR"`
	Features         []string `envconfig:"WASM_BRIDGE_FEATURES"`
	MemoryLimitPages uint32   `envconfig:"WASM_BRIDGE_MEMORY_LIMIT_PAGES"`
	MaxInvocations   int      `envconfig:"WASM_BRIDGE_MAX_INVOCATIONS"`
	DisableCache     bool     `envconfig:"WASM_BRIDGE_DISABLE_CACHE"`
}

// ConfigFromEnv overlays WASM_BRIDGE_* variables on base. lookup defaults
// to os.LookupEnv.
func ConfigFromEnv(base Config, lookup func(string) (string, bool)) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var env envConfig
	if err := envconfig.Process("", &env, lookup); err != nil {
		return base, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "read environment")
	}

	cfg := base
	if env.Compiler != "" {
		mode, err := ParseCompilerMode(env.Compiler)
		if err != nil {
			return base, err
		}
		cfg.Compiler = mode
	}
	if env.CacheDir != "" {
		cfg.CacheDir = env.CacheDir
	}
	if env.MemoryLimitPages > 0 {
		cfg.MemoryLimitPages = env.MemoryLimitPages
	}
	if env.MaxInvocations > 0 {
		cfg.MaxInvocations = env.MaxInvocations
	}
	if env.DisableCache {
		cfg.DisableCache = true
	}
	for _, name := range env.Features {
		if err := cfg.Features.Enable(name); err != nil {
			return base, err
		}
	}
	return cfg, nil
}

// Enable turns on a feature by its command-line name.
func (f *Features) Enable(name string) error {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "simd":
		f.SIMD = true
	case "threads":
		f.Threads = true
	case "reference-types", "reference_types":
		f.ReferenceTypes = true
	case "multi-value", "multi_value":
		f.MultiValue = true
	case "bulk-memory", "bulk_memory":
		f.BulkMemory = true
	case "all":
		f.All = true
	case "":
	default:
		return errors.InvalidInput(errors.PhaseConfig, fmt.Sprintf("unknown feature %q", name))
	}
	return nil
}

// ParseCompilerMode parses a compiler selection.
func ParseCompilerMode(s string) (CompilerMode, error) {
	switch CompilerMode(strings.ToLower(s)) {
	case "", CompilerAuto:
		return CompilerAuto, nil
	case CompilerOptimizing, "cranelift", "singlepass":
		return CompilerOptimizing, nil
	case CompilerInterpreter:
		return CompilerInterpreter, nil
	}
	return "", errors.InvalidInput(errors.PhaseConfig, fmt.Sprintf("unknown compiler %q", s))
}

// ResolveCacheDir returns the versioned cache directory for dir, creating it
// on fs.
func ResolveCacheDir(fs afero.Fs, dir string) (string, error) {
	if dir == "" {
		dir = os.Getenv("WASM_BRIDGE_CACHE_DIR")
	}
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "wasm-bridge")
	}
	path := filepath.Join(dir, wasmbridge.Version)
	if err := fs.MkdirAll(path, 0o755); err != nil {
		return "", errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "create cache directory")
	}
	return path, nil
}

func (c Config) runtimeConfig(cache wazero.CompilationCache) wazero.RuntimeConfig {
	var rc wazero.RuntimeConfig
	switch c.Compiler {
	case CompilerInterpreter:
		rc = wazero.NewRuntimeConfigInterpreter()
	case CompilerOptimizing:
		rc = wazero.NewRuntimeConfigCompiler()
	default:
		rc = wazero.NewRuntimeConfig()
	}

	rc = rc.WithCoreFeatures(c.Features.CoreFeatures()).
		WithCloseOnContextDone(true)
	if c.MemoryLimitPages > 0 {
		rc = rc.WithMemoryLimitPages(c.MemoryLimitPages)
	}
	if cache != nil {
		rc = rc.WithCompilationCache(cache)
	}
	return rc
}
