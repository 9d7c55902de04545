package ast

import "strconv"

// DataType is a SQL column/cast type name with optional parameters.
// Array-ness is a single flag per spec.md §9's open question: only one
// level of array is modeled, never multi-dimensional.
type DataType struct {
	Name        string
	Args        []int // precision/scale or length, as given
	Array       bool
	ArrayLen    int // 0 if unspecified, e.g. plain T[]
	HasArrayLen bool
	EnumLabels  []string // ENUM('a', ...) labels; the parser never sets this (CREATE TYPE ... AS ENUM uses CreateTypeStatement.EnumLabels)
}

func (t DataType) Render(b *Builder) {
	b.WriteToken(t.Name)
	if len(t.Args) > 0 {
		parts := make([]string, len(t.Args))
		for i, a := range t.Args {
			parts[i] = strconv.Itoa(a)
		}
		b.WriteRaw("(")
		for i, p := range parts {
			if i > 0 {
				b.WriteRaw(", ")
			}
			b.WriteRaw(p)
		}
		b.WriteRaw(")")
	}
	if len(t.EnumLabels) > 0 {
		b.WriteRaw("(")
		for i, l := range t.EnumLabels {
			if i > 0 {
				b.WriteRaw(", ")
			}
			b.WriteRaw("'" + escapeString(l) + "'")
		}
		b.WriteRaw(")")
	}
	if t.Array {
		if t.HasArrayLen {
			b.WriteRaw("[" + strconv.Itoa(t.ArrayLen) + "]")
		} else {
			b.WriteRaw("[]")
		}
	}
}
