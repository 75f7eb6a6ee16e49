package value

import (
	"slices"
	"strings"
)

// Signature is the declared type of a function.
type Signature struct {
	Params  []ValueType
	Results []ValueType
}

// Equal reports whether both signatures have the same params and results.
func (s Signature) Equal(o Signature) bool {
	return slices.Equal(s.Params, o.Params) && slices.Equal(s.Results, o.Results)
}

// Has reports whether any param or result is of type t.
func (s Signature) Has(t ValueType) bool {
	return slices.Contains(s.Params, t) || slices.Contains(s.Results, t)
}

func (s Signature) String() string {
	var b strings.Builder
	writeTypes(&b, s.Params)
	b.WriteString(" -> ")
	writeTypes(&b, s.Results)
	return b.String()
}

func writeTypes(b *strings.Builder, types []ValueType) {
	b.WriteByte('(')
	for i, t := range types {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
	b.WriteByte(')')
}
