// Copyright 2025 The Crest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// The constant-folding cache. Each node owns one optional slot
// recording the alternate expression it reduces to; a BinOp over two
// integer literals folds to a single Int. The slot is excluded from
// equality, hashing and serialization.

// HasFoldedValue reports whether a folding replacement has been
// installed on n.
func HasFoldedValue(n Node) bool {
	return n.base().folded != nil
}

// FoldedValue returns the replacement installed by SetFoldedValue. It
// fails with a FoldError when no fold has been installed.
func FoldedValue(n Node) (Node, error) {
	if f := n.base().folded; f != nil {
		return f, nil
	}
	return nil, &FoldError{Msg: "no folded value has been set", Span: n.Span()}
}

// SetFoldedValue installs repl as the constant-evaluated equivalent of
// n. The slot is write-once: a second call fails with a FoldError even
// when the replacement is equal, so a cached value can never change
// under a pass that already read it. The replacement records n as its
// original, letting diagnostics raised against the simplified tree be
// mapped back to the source position of the expression it replaced.
func SetFoldedValue(n, repl Node) error {
	nb := n.base()
	if nb.folded != nil {
		return &FoldError{Msg: "folded value already set", Span: n.Span()}
	}
	repl.base().original = n
	nb.folded = repl
	return nil
}

// Original returns the node a folding replacement stands in for, or
// nil when n did not come from the folding cache.
func Original(n Node) Node {
	return n.base().original
}
