package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/wippyai/wasm-bridge/engine"
	"github.com/wippyai/wasm-bridge/errors"
	"github.com/wippyai/wasm-bridge/runtime"
	"github.com/wippyai/wasm-bridge/value"
)

type options struct {
	features    []string
	compiler    string
	cacheDir    string
	noCache     bool
	list        bool
	interactive bool
}

var (
	nameColor   = color.New(color.FgGreen)
	typeColor   = color.New(color.FgCyan)
	resultColor = color.New(color.FgHiGreen, color.Bold)
	trapColor   = color.New(color.FgRed, color.Bold)
)

func main() {
	if err := newRootCmd(afero.NewOsFs()).Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "run <file.wasm> [export] [args...]",
		Short: "Call an export of a core WebAssembly module",
		Long: `Loads a core WebAssembly module and calls one of its exports.

Arguments are parsed by the declared parameter types: integers accept
decimal, hex (0x) and unsigned forms, floats accept "nan:0x<bits>" for
NaN payloads, references accept "null".`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			if opts.interactive {
				if !term.IsTerminal(int(os.Stdout.Fd())) {
					return errors.InvalidInput(errors.PhaseConfig, "interactive mode needs a terminal")
				}
				return runInteractive(fs, cfg, args[0])
			}
			return run(cmd.Context(), fs, cmd.OutOrStdout(), cfg, opts.list, args[0], args[1:])
		},
	}

	flags := cmd.Flags()
	flags.SetNormalizeFunc(normalizeFlag)
	flags.StringSliceVar(&opts.features, "features", nil, "WebAssembly features to enable (simd, threads, reference-types, multi-value, bulk-memory, all)")
	flags.StringVar(&opts.compiler, "compiler", "", "execution mode: auto, compiler or interpreter")
	flags.StringVar(&opts.cacheDir, "cache-dir", "", "compilation cache directory")
	flags.BoolVar(&opts.noCache, "no-cache", false, "disable the compilation cache")
	flags.BoolVarP(&opts.list, "list", "l", false, "list exported functions and exit")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "pick an export in a terminal UI")
	return cmd
}

// normalizeFlag accepts cache_dir and no_cache spellings.
func normalizeFlag(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// config overlays the flags on the WASM_BRIDGE_* environment.
func (o *options) config() (engine.Config, error) {
	cfg, err := engine.ConfigFromEnv(engine.Config{}, nil)
	if err != nil {
		return cfg, err
	}
	if o.compiler != "" {
		mode, err := engine.ParseCompilerMode(o.compiler)
		if err != nil {
			return cfg, err
		}
		cfg.Compiler = mode
	}
	for _, name := range o.features {
		if err := cfg.Features.Enable(name); err != nil {
			return cfg, err
		}
	}
	if o.cacheDir != "" {
		cfg.CacheDir = o.cacheDir
	}
	if o.noCache {
		cfg.DisableCache = true
	}
	return cfg, nil
}

func loadModule(ctx context.Context, fs afero.Fs, cfg engine.Config, path string) (*runtime.Runtime, *runtime.Module, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	rt, err := runtime.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("create runtime: %w", err)
	}
	mod, err := rt.LoadWASM(ctx, moduleName(path), data)
	if err != nil {
		rt.Close(ctx)
		return nil, nil, fmt.Errorf("load module: %w", err)
	}
	return rt, mod, nil
}

func moduleName(path string) string {
	name := path
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, ".wasm")
}

func run(ctx context.Context, fs afero.Fs, out io.Writer, cfg engine.Config, listOnly bool, path string, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	rt, mod, err := loadModule(ctx, fs, cfg, path)
	if err != nil {
		return err
	}
	defer rt.Close(ctx)

	exports := mod.Exports()
	fmt.Fprintf(out, "Module: %s\n", path)
	fmt.Fprintf(out, "Imports: %d\n", len(mod.Imports()))
	fmt.Fprintf(out, "\nExported functions:\n")
	for _, e := range exports {
		fmt.Fprintf(out, "  %s%s\n", nameColor.Sprint(e.Name), typeColor.Sprint(e.Signature.String()))
	}

	if listOnly {
		return nil
	}

	var funcName string
	if len(args) > 0 {
		funcName, args = args[0], args[1:]
	} else {
		funcName = defaultExport(exports)
		if funcName == "" {
			fmt.Fprintf(out, "\nNo export named and no common entry point found.\n")
			return nil
		}
	}

	var sig value.Signature
	found := false
	for _, e := range exports {
		if e.Name == funcName {
			sig, found = e.Signature, true
			break
		}
	}
	if !found {
		return errors.NotFound(errors.PhaseCall, "export", funcName)
	}

	vals, err := parseArgs(funcName, sig, args)
	if err != nil {
		return err
	}

	inst, err := mod.Instantiate(ctx)
	if err != nil {
		return fmt.Errorf("instantiate: %w", err)
	}
	defer inst.Close(ctx)

	fmt.Fprintf(out, "\nCalling %s(%s)...\n", funcName, joinValues(vals))
	results, err := inst.CallValues(ctx, funcName, vals...)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Result: %s\n", resultColor.Sprint(formatResults(results)))
	return nil
}

// defaultExport picks a common entry point, or the only export.
func defaultExport(exports []runtime.Export) string {
	for _, name := range []string{"_start", "run", "main"} {
		for _, e := range exports {
			if e.Name == name {
				return name
			}
		}
	}
	if len(exports) == 1 {
		return exports[0].Name
	}
	return ""
}

func parseArgs(name string, sig value.Signature, args []string) ([]value.Value, error) {
	if len(args) != len(sig.Params) {
		return nil, errors.ArityMismatch(errors.PhaseParse, name, len(args), len(sig.Params))
	}
	vals := make([]value.Value, len(args))
	for i, text := range args {
		v, err := value.Parse(sig.Params[i], text)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func joinValues(vals []value.Value) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}

func formatResults(results []value.Value) string {
	switch len(results) {
	case 0:
		return "()"
	case 1:
		return results[0].String()
	}
	return "(" + joinValues(results) + ")"
}

func printError(w io.Writer, err error) {
	if trap, ok := errors.AsTrap(err); ok {
		fmt.Fprintf(w, "%s %s\n", trapColor.Sprint("trap:"), trap.Error())
		return
	}
	fmt.Fprintf(w, "%s %v\n", trapColor.Sprint("error:"), err)
}
