// Copyright 2025 The Crest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"reflect"
	"strings"
)

// Typed queries over a built tree. Traversal never mutates; order is
// declared-field order, then sequence-element order, pre-order for
// Descendants.

// A Filter restricts a Children or Descendants query. A nil *Filter
// matches every node.
type Filter struct {
	// Kinds restricts matches to the named kind tags. Empty means
	// any kind.
	Kinds []string

	// Fields maps a field key, or a dotted path of keys such as
	// "func.id", to a required value. A node missing the field, or
	// holding a different value, is excluded.
	Fields map[string]interface{}

	// Reverse reverses the final sequence.
	Reverse bool

	// IncludeSelf makes Descendants yield the queried node itself
	// first. Children ignores it.
	IncludeSelf bool
}

func (f *Filter) match(n Node) bool {
	if f == nil {
		return true
	}
	if len(f.Kinds) > 0 {
		ok := false
		for _, k := range f.Kinds {
			if n.Kind() == k {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	for path, want := range f.Fields {
		got, ok := FieldByPath(n, path)
		if !ok || !scalarEqual(got, want) {
			return false
		}
	}
	return true
}

// Children returns the ordered direct children of n that pass the
// filter.
func Children(n Node, f *Filter) []Node {
	var out []Node
	for _, c := range childrenOf(n) {
		if f.match(c) {
			out = append(out, c)
		}
	}
	if f != nil && f.Reverse {
		reverseNodes(out)
	}
	return out
}

// Descendants returns the nodes of the subtree rooted at n, in
// pre-order, that pass the filter.
func Descendants(n Node, f *Filter) []Node {
	includeSelf := f != nil && f.IncludeSelf
	var out []Node
	var walk func(cur Node)
	walk = func(cur Node) {
		if cur != n || includeSelf {
			if f.match(cur) {
				out = append(out, cur)
			}
		}
		for _, c := range childrenOf(cur) {
			walk(c)
		}
	}
	walk(n)
	if f != nil && f.Reverse {
		reverseNodes(out)
	}
	return out
}

// Ancestor walks the parent chain upward from the immediate parent and
// returns the first node whose kind is one of kinds; with no kinds it
// returns the immediate parent. At the root, or when nothing on the
// chain matches, ok is false. Ancestor never fails loudly; use
// RequireAncestor when absence is an error.
func Ancestor(n Node, kinds ...string) (Node, bool) {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if len(kinds) == 0 {
			return p, true
		}
		for _, k := range kinds {
			if p.Kind() == k {
				return p, true
			}
		}
	}
	return nil, false
}

// RequireAncestor is Ancestor for callers that treat a missing
// ancestor as a failure. It returns an InvalidAncestorError carrying
// n's span.
func RequireAncestor(n Node, kinds ...string) (Node, error) {
	if a, ok := Ancestor(n, kinds...); ok {
		return a, nil
	}
	return nil, &InvalidAncestorError{Kinds: kinds, Span: n.Span()}
}

// FieldByPath resolves a field key, or a dotted path of keys, against
// n's declared fields. The result is the field value: a scalar, a
// Node, or a slice of nodes. ok is false if any segment is undeclared,
// an intermediate value is not a node, or the final field is an unset
// child. A scalar holding its zero value (false, 0, "") is present,
// not missing.
func FieldByPath(n Node, path string) (interface{}, bool) {
	cur := n
	segs := strings.Split(path, ".")
	for i, seg := range segs {
		info := infoOf(cur)
		sv := reflect.ValueOf(cur).Elem()
		var fv reflect.Value
		var fk fieldKind
		found := false
		for _, f := range info.fields {
			if f.key == seg {
				fv = sv.Field(f.index)
				fk = f.kind
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
		if i == len(segs)-1 {
			if fk != fieldScalar && fv.IsZero() {
				return nil, false
			}
			return fv.Interface(), true
		}
		next, ok := nodeAt(fv)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return nil, false
}

// childrenOf yields the direct children of n in declared-field order,
// then sequence-element order.
func childrenOf(n Node) []Node {
	info := infoOf(n)
	sv := reflect.ValueOf(n).Elem()
	var out []Node
	for _, f := range info.fields {
		fv := sv.Field(f.index)
		switch f.kind {
		case fieldChild:
			if c, ok := nodeAt(fv); ok {
				out = append(out, c)
			}
		case fieldChildList:
			for i := 0; i < fv.Len(); i++ {
				if c, ok := nodeAt(fv.Index(i)); ok {
					out = append(out, c)
				}
			}
		}
	}
	return out
}

func nodeAt(v reflect.Value) (Node, bool) {
	if !v.IsValid() || v.IsZero() {
		return nil, false
	}
	n, ok := v.Interface().(Node)
	return n, ok
}

func reverseNodes(ns []Node) {
	for i, j := 0, len(ns)-1; i < j; i, j = i+1, j-1 {
		ns[i], ns[j] = ns[j], ns[i]
	}
}
