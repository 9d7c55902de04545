package ast

import "github.com/k0kubun/pp/v3"

// Dump pretty-prints a node's Go struct representation for debugging.
// It is a development aid only and never participates in the canonical
// round-trip rendering; use String for that.
func Dump(n Node) string {
	return pp.Sprint(n)
}
