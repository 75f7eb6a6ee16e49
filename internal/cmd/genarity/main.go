// Command genarity writes the fixed-arity bindings of package typed.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

const header = `// Code generated by genarity. DO NOT EDIT.

package typed

import (
	"context"

	"github.com/wippyai/wasm-bridge/engine"
	"github.com/wippyai/wasm-bridge/value"
)
`

func main() {
	out := flag.String("o", "arity.go", "output file")
	maxArity := flag.Int("n", 20, "highest arity")
	flag.Parse()

	src, err := generate(*maxArity)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatal(err)
	}
}

func generate(maxArity int) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(header)
	for n := 0; n <= maxArity; n++ {
		writeArity(&b, n)
	}
	return format.Source(b.Bytes())
}

func list(n int, f func(i int) string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = f(i + 1)
	}
	return out
}

func writeArity(b *bytes.Buffer, n int) {
	names := list(n, func(i int) string { return fmt.Sprintf("A%d", i) })

	typeParams := "R any"
	typeArgs := "R"
	if n > 0 {
		typeParams = strings.Join(names, ", ") + " value.Native, R any"
		typeArgs = strings.Join(names, ", ") + ", R"
	}
	sig := "(" + strings.Join(names, ", ") + ") -> R"

	params := list(n, func(i int) string { return fmt.Sprintf(", a%d A%d", i, i) })
	types := list(n, func(i int) string { return fmt.Sprintf(", value.TypeOf[A%d]()", i) })
	raws := list(n, func(i int) string { return fmt.Sprintf(", value.ToRaw(a%d)", i) })

	fmt.Fprintf(b, "\n// Func%d is a function bound to the native signature %s.\n", n, sig)
	fmt.Fprintf(b, "type Func%d[%s] struct {\n\tbinding\n}\n", n, typeParams)

	fmt.Fprintf(b, "\n// Bind%d binds f to the native signature %s.\n", n, sig)
	fmt.Fprintf(b, "func Bind%d[%s](f *Function) (*Func%d[%s], error) {\n", n, typeParams, n, typeArgs)
	fmt.Fprintf(b, "\tb, err := bind[R](f%s)\n", strings.Join(types, ""))
	b.WriteString("\tif err != nil {\n\t\treturn nil, err\n\t}\n")
	fmt.Fprintf(b, "\treturn &Func%d[%s]{b}, nil\n}\n", n, typeArgs)

	b.WriteString("\n// Call invokes the function on s.\n")
	fmt.Fprintf(b, "func (f *Func%d[%s]) Call(ctx context.Context, s *engine.Store%s) (R, error) {\n", n, typeArgs, strings.Join(params, ""))
	fmt.Fprintf(b, "\treturn call[R](ctx, s, &f.binding%s)\n}\n", strings.Join(raws, ""))
}
