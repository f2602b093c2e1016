// Copyright 2025 The Crest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"fmt"

	"crestlang.io/crest/syntax/src"
)

// Construction and query errors. Every error carries the span of the
// offending fragment or node so diagnostics never lose the source
// position. A construction error aborts the whole build; no partial
// tree is handed to later passes.

// UnknownKindError reports a fragment whose tag names no registered
// node kind.
type UnknownKindError struct {
	Kind string
	Span src.Span
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("%v: unknown node kind %q", e.Span, e.Kind)
}

// MissingFieldError reports a required field absent from a fragment.
type MissingFieldError struct {
	Kind  string
	Field string
	Span  src.Span
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%v: %s is missing required field %q", e.Span, e.Kind, e.Field)
}

// DepthError reports a fragment nested deeper than MaxDepth.
type DepthError struct {
	Depth int
	Span  src.Span
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("%v: syntax tree exceeds maximum nesting depth %d", e.Span, e.Depth)
}

// BadFieldError reports a fragment field whose value cannot populate
// the declared field: a scalar of the wrong shape, or a child node of
// a kind the field cannot hold.
type BadFieldError struct {
	Kind  string
	Field string
	Why   string
	Span  src.Span
}

func (e *BadFieldError) Error() string {
	return fmt.Sprintf("%v: %s field %q: %s", e.Span, e.Kind, e.Field, e.Why)
}

// MutationError reports an attempted post-construction edit of a
// structural field or parent link.
type MutationError struct {
	Field string
	Span  src.Span
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%v: structural field %q may not change after construction", e.Span, e.Field)
}

// FoldError reports a misuse of the constant-folding slot: reading it
// before a fold is installed, or installing a second fold.
type FoldError struct {
	Msg  string
	Span src.Span
}

func (e *FoldError) Error() string {
	return fmt.Sprintf("%v: %s", e.Span, e.Msg)
}

// InvalidAncestorError reports an ancestor query that matched nothing.
// Only RequireAncestor returns it; Ancestor reports absence with a
// false ok instead.
type InvalidAncestorError struct {
	Kinds []string
	Span  src.Span
}

func (e *InvalidAncestorError) Error() string {
	if len(e.Kinds) == 0 {
		return fmt.Sprintf("%v: node has no ancestor", e.Span)
	}
	return fmt.Sprintf("%v: node has no ancestor of kind %v", e.Span, e.Kinds)
}
