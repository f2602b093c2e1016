// Copyright 2025 The Crest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package src provides source code position tracking.
package src

import "fmt"

// Pos is a position in a source file.
type Pos struct {
	Filename string // path as provided by the user
	Line     int32  // line number, valid values start at 1
	Column   int16
}

func (p Pos) String() string {
	if p.Filename == "" && p.Line == 0 {
		return "<unknown line>"
	}
	if p.Column == 0 {
		return fmt.Sprintf("%s:%d", p.Filename, p.Line)
	} else {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
}

// A Span is the region of source text covered by one syntax node.
// Offset and Length index into the text of the Source the node was
// built from.
type Span struct {
	Start  Pos
	End    Pos
	Offset int
	Length int
}

func (s Span) String() string { return s.Start.String() }

// A Source is the complete text of one compilation unit. It is shared,
// read-only, by every node built from it.
type Source struct {
	Filename string
	Text     string
}

// Snippet returns the exact substring of the source covered by sp.
// An out-of-range span returns the empty string.
func (s *Source) Snippet(sp Span) string {
	if s == nil || sp.Offset < 0 || sp.Length <= 0 || sp.Offset+sp.Length > len(s.Text) {
		return ""
	}
	return s.Text[sp.Offset : sp.Offset+sp.Length]
}
