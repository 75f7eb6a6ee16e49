// Package wasmtest builds small WebAssembly binaries for tests.
package wasmtest

import (
	"github.com/wippyai/wasm-bridge/value"
)

var (
	i32  = value.I32
	i64  = value.I64
	f32  = value.F32
	f64  = value.F64
	v128 = value.V128
	ext  = value.ExternRef
)

func types(ts ...value.ValueType) []value.ValueType { return ts }

// Identity returns a function named name that returns its only argument.
func Identity(name string, t value.ValueType) Func {
	return Func{Export: name, Params: types(t), Results: types(t), Body: LocalGet(0)}
}

// Sum returns a function adding n i64 parameters.
func Sum(name string, n int) Func {
	params := make([]value.ValueType, n)
	for i := range params {
		params[i] = i64
	}
	body := LocalGet(0)
	for i := 1; i < n; i++ {
		body = Code(body, LocalGet(uint32(i)), I64Add())
	}
	if n == 0 {
		body = I64Const(0)
	}
	return Func{Export: name, Params: params, Results: types(i64), Body: body}
}

// Basic exports:
//
//	id_i32, id_i64, id_f32, id_f64, id_ref  identity per type
//	add(i32, i32) -> i32
//	digits(i32, i32, i32) -> i32            (a*10 + b)*10 + c
//	swap(i64, f64) -> (f64, i64)
//	triple() -> (i32, i64, f32)             7, -1, 1.5
//	sum20(i64 x 20) -> i64
//	noop()
//	trap()                                  unreachable
//	id_v128(v128) -> v128
func Basic() []byte {
	m := &Module{
		Funcs: []Func{
			Identity("id_i32", i32),
			Identity("id_i64", i64),
			Identity("id_f32", f32),
			Identity("id_f64", f64),
			Identity("id_ref", ext),
			{
				Export:  "add",
				Params:  types(i32, i32),
				Results: types(i32),
				Body:    Code(LocalGet(0), LocalGet(1), I32Add()),
			},
			{
				Export:  "digits",
				Params:  types(i32, i32, i32),
				Results: types(i32),
				Body: Code(
					LocalGet(0), I32Const(10), I32Mul(),
					LocalGet(1), I32Add(),
					I32Const(10), I32Mul(),
					LocalGet(2), I32Add(),
				),
			},
			{
				Export:  "swap",
				Params:  types(i64, f64),
				Results: types(f64, i64),
				Body:    Code(LocalGet(1), LocalGet(0)),
			},
			{
				Export:  "triple",
				Results: types(i32, i64, f32),
				Body:    Code(I32Const(7), I64Const(-1), F32Const(1.5)),
			},
			Sum("sum20", 20),
			{Export: "noop"},
			{Export: "trap", Body: Unreachable()},
			Identity("id_v128", v128),
		},
	}
	return m.Encode()
}

// Imports has two imports and exports that forward to them:
//
//	env.add(i32, i32) -> i32      call_add(i32, i32) -> i32
//	env.pair() -> (i32, i64)      call_pair() -> (i32, i64)
//	env.log(i32)                  call_log(i32)
//	                              double(i32) -> i32
func Imports() []byte {
	m := &Module{
		Imports: []Import{
			{Module: "env", Name: "add", Params: types(i32, i32), Results: types(i32)},
			{Module: "env", Name: "pair", Results: types(i32, i64)},
			{Module: "env", Name: "log", Params: types(i32)},
		},
	}
	m.Funcs = []Func{
		{
			Export:  "call_add",
			Params:  types(i32, i32),
			Results: types(i32),
			Body:    Code(LocalGet(0), LocalGet(1), Call(0)),
		},
		{
			Export:  "call_pair",
			Results: types(i32, i64),
			Body:    Call(1),
		},
		{
			Export: "call_log",
			Params: types(i32),
			Body:   Code(LocalGet(0), Call(2)),
		},
		{
			Export:  "double",
			Params:  types(i32),
			Results: types(i32),
			Body:    Code(LocalGet(0), LocalGet(0), I32Add()),
		},
	}
	return m.Encode()
}

// Asyncify emulates a module processed by wasm-opt --asyncify. The state
// lives in global 0 and the control exports only flip it. run(x) calls
// env.fetch and returns fetch()+x; while unwinding it returns 0 at once,
// and a rewound run calls env.fetch again to pick up the settled value.
func Asyncify() []byte {
	m := &Module{
		Imports: []Import{
			{Module: "env", Name: "fetch", Results: types(i32)},
		},
		Memory:  &Memory{Export: "memory", Min: 1},
		Globals: []Global{{Type: i32, Mutable: true}},
	}
	setState := func(name string, state int32, params ...value.ValueType) Func {
		return Func{Export: name, Params: params, Body: Code(I32Const(state), GlobalSet(0))}
	}
	m.Funcs = []Func{
		{Export: "asyncify_get_state", Results: types(i32), Body: GlobalGet(0)},
		setState("asyncify_start_unwind", 1, i32),
		setState("asyncify_stop_unwind", 0),
		setState("asyncify_start_rewind", 2, i32),
		setState("asyncify_stop_rewind", 0),
		{
			Export:  "run",
			Params:  types(i32),
			Results: types(i32),
			Locals:  types(i32),
			Body: Code(
				Call(0), LocalSet(1),
				GlobalGet(0), I32Const(1), I32Eq(),
				If(), I32Const(0), Return(), End(),
				LocalGet(1), LocalGet(0), I32Add(),
			),
		},
	}
	return m.Encode()
}
