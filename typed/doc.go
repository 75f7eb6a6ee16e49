// Package typed calls host functions with native Go arguments and results.
//
// A Function pairs a goja callable, usually an export of an engine instance,
// with its declared signature. BindN checks a native signature against it
// once and returns a FuncN whose Call needs no per-call type checks:
//
//	f, err := typed.FromExport(inst, "add")
//	add, err := typed.Bind2[int32, int32, int32](f)
//	sum, err := add.Call(ctx, store, 40, 2)
//
// The last type parameter is the results witness: struct{} for no result, a
// native type for one, and a struct of native fields for several, filled in
// field order:
//
//	type pair struct {
//	    F float64
//	    I int64
//	}
//	swap, err := typed.Bind2[int64, float64, pair](f)
//
// Function.Call is the dynamically typed path for signatures only known at
// run time.
package typed

//go:generate go run ../internal/cmd/genarity -o arity.go
