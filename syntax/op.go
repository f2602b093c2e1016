// Copyright 2025 The Crest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// Operator marker nodes. Each has no structural fields; its identity
// is the kind tag alone. They appear as the Op field of UnaryOp,
// BinOp, BoolOp, Compare and AugAssign nodes.

type USub struct{ nodebase }
type Invert struct{ nodebase }
type Not struct{ nodebase }

type Add struct{ nodebase }
type Sub struct{ nodebase }
type Mult struct{ nodebase }
type Div struct{ nodebase }
type FloorDiv struct{ nodebase }
type Mod struct{ nodebase }
type Pow struct{ nodebase }
type LShift struct{ nodebase }
type RShift struct{ nodebase }
type BitOr struct{ nodebase }
type BitXor struct{ nodebase }
type BitAnd struct{ nodebase }

type And struct{ nodebase }
type Or struct{ nodebase }

type Eq struct{ nodebase }
type NotEq struct{ nodebase }
type Lt struct{ nodebase }
type LtE struct{ nodebase }
type Gt struct{ nodebase }
type GtE struct{ nodebase }
type In struct{ nodebase }
type NotIn struct{ nodebase }

func (*USub) Kind() string     { return "USub" }
func (*Invert) Kind() string   { return "Invert" }
func (*Not) Kind() string      { return "Not" }
func (*Add) Kind() string      { return "Add" }
func (*Sub) Kind() string      { return "Sub" }
func (*Mult) Kind() string     { return "Mult" }
func (*Div) Kind() string      { return "Div" }
func (*FloorDiv) Kind() string { return "FloorDiv" }
func (*Mod) Kind() string      { return "Mod" }
func (*Pow) Kind() string      { return "Pow" }
func (*LShift) Kind() string   { return "LShift" }
func (*RShift) Kind() string   { return "RShift" }
func (*BitOr) Kind() string    { return "BitOr" }
func (*BitXor) Kind() string   { return "BitXor" }
func (*BitAnd) Kind() string   { return "BitAnd" }
func (*And) Kind() string      { return "And" }
func (*Or) Kind() string       { return "Or" }
func (*Eq) Kind() string       { return "Eq" }
func (*NotEq) Kind() string    { return "NotEq" }
func (*Lt) Kind() string       { return "Lt" }
func (*LtE) Kind() string      { return "LtE" }
func (*Gt) Kind() string       { return "Gt" }
func (*GtE) Kind() string      { return "GtE" }
func (*In) Kind() string       { return "In" }
func (*NotIn) Kind() string    { return "NotIn" }

// OpSymbol returns the source-level symbol for an operator marker
// node, or the empty string for non-operator nodes.
func OpSymbol(n Node) string {
	return opSymbols[n.Kind()]
}

var opSymbols = map[string]string{
	"USub":     "-",
	"Invert":   "~",
	"Not":      "not",
	"Add":      "+",
	"Sub":      "-",
	"Mult":     "*",
	"Div":      "/",
	"FloorDiv": "//",
	"Mod":      "%",
	"Pow":      "**",
	"LShift":   "<<",
	"RShift":   ">>",
	"BitOr":    "|",
	"BitXor":   "^",
	"BitAnd":   "&",
	"And":      "and",
	"Or":       "or",
	"Eq":       "==",
	"NotEq":    "!=",
	"Lt":       "<",
	"LtE":      "<=",
	"Gt":       ">",
	"GtE":      ">=",
	"In":       "in",
	"NotIn":    "not in",
}
