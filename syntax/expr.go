// Copyright 2025 The Crest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Expression nodes.

// Int is an integer literal. Values are arbitrary precision; the
// EVM word size is not this layer's concern.
type Int struct {
	nodebase
	Value *big.Int `ast:"value"`
}

// Decimal is a fixed-point decimal literal, held exactly.
type Decimal struct {
	nodebase
	Value *big.Rat `ast:"value"`
}

// Hex is a hexadecimal literal. Value keeps the original "0x..." text
// so address checksums survive construction.
type Hex struct {
	nodebase
	Value string `ast:"value"`
}

// IsAddress reports whether the literal has the shape of a 20-byte
// address.
func (h *Hex) IsAddress() bool {
	return common.IsHexAddress(h.Value)
}

// Address returns the literal as an address. ok is false when the
// literal is not address-shaped.
func (h *Hex) Address() (common.Address, bool) {
	if !common.IsHexAddress(h.Value) {
		return common.Address{}, false
	}
	return common.HexToAddress(h.Value), true
}

// ChecksumOK reports whether an address-shaped literal carries a valid
// EIP-55 mixed-case checksum.
func (h *Hex) ChecksumOK() bool {
	if !common.IsHexAddress(h.Value) {
		return false
	}
	return common.HexToAddress(h.Value).Hex() == h.Value
}

type Str struct {
	nodebase
	Value string `ast:"value"`
}

type Bytes struct {
	nodebase
	Value []byte `ast:"value"`
}

// NameConstant is one of the literal constants true, false or empty.
// Value is a bool, or nil for empty.
type NameConstant struct {
	nodebase
	Value interface{} `ast:"value,optional"`
}

type Ellipsis struct {
	nodebase
}

type List struct {
	nodebase
	Elements []Node `ast:"elements,optional"`
}

type Tuple struct {
	nodebase
	Elements []Node `ast:"elements"`
}

// Dict is a literal mapping. Keys and Values are parallel, in source
// order.
type Dict struct {
	nodebase
	Keys   []Node `ast:"keys,optional"`
	Values []Node `ast:"values,optional"`
}

type Name struct {
	nodebase
	ID string `ast:"id"`
}

type UnaryOp struct {
	nodebase
	Op      Node `ast:"op"`
	Operand Node `ast:"operand"`
}

type BinOp struct {
	nodebase
	Left  Node `ast:"left"`
	Op    Node `ast:"op"`
	Right Node `ast:"right"`
}

type BoolOp struct {
	nodebase
	Op     Node   `ast:"op"`
	Values []Node `ast:"values"`
}

// Compare has exactly one comparator; chained comparisons are not part
// of the language.
type Compare struct {
	nodebase
	Left  Node `ast:"left"`
	Op    Node `ast:"op"`
	Right Node `ast:"right"`
}

// Call is a function call. Whether it is an external, static or plain
// call is derived once, at construction time, from the ExtCall or
// StaticCall wrapper statement around it.
type Call struct {
	nodebase
	Func     Node       `ast:"func"`
	Args     []Node     `ast:"args,optional"`
	Keywords []*Keyword `ast:"keywords,optional"`

	isExtcall    bool
	isStaticcall bool
	isPlainCall  bool
	kindLabel    string
}

func (c *Call) IsExtcall() bool    { return c.isExtcall }
func (c *Call) IsStaticcall() bool { return c.isStaticcall }
func (c *Call) IsPlainCall() bool  { return c.isPlainCall }

// KindLabel is a human-readable label for diagnostics: "external
// call", "static call" or "regular call".
func (c *Call) KindLabel() string { return c.kindLabel }

func (c *Call) derive() {
	switch c.Parent().(type) {
	case *ExtCall:
		c.isExtcall = true
		c.kindLabel = "external call"
	case *StaticCall:
		c.isStaticcall = true
		c.kindLabel = "static call"
	default:
		c.isPlainCall = true
		c.kindLabel = "regular call"
	}
}

type Keyword struct {
	nodebase
	Arg   string `ast:"arg"`
	Value Node   `ast:"value"`
}

type Attribute struct {
	nodebase
	Value Node   `ast:"value"`
	Attr  string `ast:"attr"`
}

type Subscript struct {
	nodebase
	Value Node `ast:"value"`
	Slice Node `ast:"slice"`
}

type IfExp struct {
	nodebase
	Test   Node `ast:"test"`
	Body   Node `ast:"body"`
	Orelse Node `ast:"orelse"`
}

type NamedExpr struct {
	nodebase
	Target Node `ast:"target"`
	Value  Node `ast:"value"`
}

func (*Int) Kind() string          { return "Int" }
func (*Decimal) Kind() string      { return "Decimal" }
func (*Hex) Kind() string          { return "Hex" }
func (*Str) Kind() string          { return "Str" }
func (*Bytes) Kind() string        { return "Bytes" }
func (*NameConstant) Kind() string { return "NameConstant" }
func (*Ellipsis) Kind() string     { return "Ellipsis" }
func (*List) Kind() string         { return "List" }
func (*Tuple) Kind() string        { return "Tuple" }
func (*Dict) Kind() string         { return "Dict" }
func (*Name) Kind() string         { return "Name" }
func (*UnaryOp) Kind() string      { return "UnaryOp" }
func (*BinOp) Kind() string        { return "BinOp" }
func (*BoolOp) Kind() string       { return "BoolOp" }
func (*Compare) Kind() string      { return "Compare" }
func (*Call) Kind() string         { return "Call" }
func (*Keyword) Kind() string      { return "keyword" }
func (*Attribute) Kind() string    { return "Attribute" }
func (*Subscript) Kind() string    { return "Subscript" }
func (*IfExp) Kind() string        { return "IfExp" }
func (*NamedExpr) Kind() string    { return "NamedExpr" }
