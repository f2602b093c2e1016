// Copyright 2025 The Crest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package syntax defines the typed abstract syntax tree for Crest.
//
// Nodes are built from generic parser fragments by Build. Every node
// carries its source span, a non-owning link to its parent, an open
// metadata slot for facts derived by later passes, and a one-shot
// constant-folding slot. Structural fields, the exported struct fields
// carrying an "ast" tag, are immutable once a tree is built; only the
// metadata and folding slots may change afterwards.
//
// The node kinds are declared across the files of this package:
//
//	toplevel.go  declarations (Module, FunctionDef, StructDef, ...)
//	stmt.go      statements (If, For, Assign, ...)
//	expr.go      expressions (Int, Name, Call, BinOp, ...)
//	op.go        operator marker nodes (Add, Eq, USub, ...)
package syntax

import (
	"fmt"

	"crestlang.io/crest/syntax/src"
)

// A Node is one typed element of the syntax tree.
type Node interface {
	// Kind returns the node's wire tag, for example "FunctionDef".
	Kind() string

	// Span is the region of source the node covers.
	Span() src.Span

	// Source is the shared, read-only text of the compilation unit
	// this node was built from. May be nil for hand-built trees.
	Source() *src.Source

	// NodeText returns the exact substring of source the node spans.
	NodeText() string

	// Parent is the node owning the field slot this node occupies.
	// The root of a tree has no parent. The link is navigational
	// only; it is set once during construction.
	Parent() Node

	// NodeID is a small integer identifying the node within its
	// tree, assigned during construction.
	NodeID() int

	// Meta is the node's open key-value slot for derived facts. It
	// does not participate in equality, hashing or serialization.
	Meta() *Metadata

	base() *nodebase
}

// nodebase holds the bookkeeping every node carries. It is embedded in
// each node struct; its fields never participate in structural
// equality, hashing or serialization.
type nodebase struct {
	span     src.Span
	source   *src.Source
	parent   Node
	id       int
	meta     Metadata
	folded   Node // installed constant-folding replacement
	original Node // on a replacement: the node it folded from
}

func (b *nodebase) Span() src.Span      { return b.span }
func (b *nodebase) Source() *src.Source { return b.source }
func (b *nodebase) NodeText() string    { return b.source.Snippet(b.span) }
func (b *nodebase) Parent() Node        { return b.parent }
func (b *nodebase) NodeID() int         { return b.id }
func (b *nodebase) Meta() *Metadata     { return &b.meta }
func (b *nodebase) base() *nodebase     { return b }

// setParent links a freshly built node to its owner. The link is
// write-once; a second call reports a structural mutation.
func (b *nodebase) setParent(p Node) error {
	if b.parent != nil {
		return &MutationError{Field: "parent", Span: b.span}
	}
	b.parent = p
	return nil
}

// Metadata is the open key→value slot later passes use to attach
// derived facts (inferred type, resolved symbol, reachability) to a
// node without touching its structural identity.
type Metadata map[string]interface{}

func (m *Metadata) Set(key string, v interface{}) {
	if *m == nil {
		*m = make(Metadata)
	}
	(*m)[key] = v
}

func (m Metadata) Get(key string) (interface{}, bool) {
	v, ok := m[key]
	return v, ok
}

func (m Metadata) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// MustGet returns the value stored under key, panicking if no pass has
// set it. Use it only where absence is a bug in pass ordering.
func (m Metadata) MustGet(key string) interface{} {
	v, ok := m[key]
	if !ok {
		panic(fmt.Sprintf("syntax: metadata key %q not set", key))
	}
	return v
}
