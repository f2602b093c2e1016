// Copyright 2025 The Crest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax_test

import (
	"strings"
	"testing"

	"crestlang.io/crest/syntax"
)

func build(t *testing.T, f syntax.Fragment) syntax.Node {
	t.Helper()
	n, err := syntax.Build(nil, f)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestEqualIgnoresBookkeeping(t *testing.T) {
	// Same structure, different spans, ids and parents.
	a := build(t, frag("BinOp",
		"lineno", 1, "col_offset", 0, "node_id", 10,
		"left", frag("Int", "value", 1),
		"op", frag("Add"),
		"right", frag("Name", "id", "x"),
	))
	b := build(t, frag("BinOp",
		"lineno", 99, "col_offset", 30, "node_id", 77,
		"left", frag("Int", "value", 1),
		"op", frag("Add"),
		"right", frag("Name", "id", "x"),
	))
	if !syntax.Equal(a, b) {
		t.Errorf("Equal = false for structurally identical trees")
	}
	if syntax.Hash(a) != syntax.Hash(b) {
		t.Errorf("Hash differs for structurally identical trees")
	}

	// Metadata and folds do not affect equality either.
	b.Meta().Set("type", "uint256")
	if err := syntax.SetFoldedValue(b, build(t, frag("Int", "value", 42))); err != nil {
		t.Fatal(err)
	}
	if !syntax.Equal(a, b) {
		t.Errorf("Equal = false after metadata and fold on one side")
	}
	if syntax.Hash(a) != syntax.Hash(b) {
		t.Errorf("Hash changed after metadata and fold")
	}
}

func TestEqualStructuralDifference(t *testing.T) {
	base := func() syntax.Fragment {
		return frag("BinOp",
			"left", frag("Int", "value", 1),
			"op", frag("Add"),
			"right", frag("Int", "value", 2),
		)
	}
	a := build(t, base())

	tests := []struct {
		name string
		frag syntax.Fragment
	}{
		{"different kind", frag("Int", "value", 1)},
		{"different operator", frag("BinOp",
			"left", frag("Int", "value", 1),
			"op", frag("Sub"),
			"right", frag("Int", "value", 2))},
		{"different leaf", frag("BinOp",
			"left", frag("Int", "value", 1),
			"op", frag("Add"),
			"right", frag("Int", "value", 3))},
	}
	for _, tt := range tests {
		b := build(t, tt.frag)
		if syntax.Equal(a, b) {
			t.Errorf("%s: Equal = true", tt.name)
		}
		if syntax.Hash(a) == syntax.Hash(b) {
			t.Errorf("%s: Hash collides", tt.name)
		}
	}

	if !syntax.Equal(nil, nil) {
		t.Errorf("Equal(nil, nil) = false")
	}
	if syntax.Equal(a, nil) || syntax.Equal(nil, a) {
		t.Errorf("Equal against nil = true")
	}
}

func TestEqualListLengths(t *testing.T) {
	list := func(vals ...int) syntax.Fragment {
		elts := make([]interface{}, len(vals))
		for i, v := range vals {
			elts[i] = frag("Int", "value", v)
		}
		return frag("List", "elements", elts)
	}
	a, b, c := build(t, list(1, 2)), build(t, list(1, 2)), build(t, list(1, 2, 3))
	if !syntax.Equal(a, b) {
		t.Errorf("equal-length lists compare unequal")
	}
	if syntax.Equal(a, c) {
		t.Errorf("lists of different length compare equal")
	}
}

func TestEqualNumericForms(t *testing.T) {
	// A fragment decoded from JSON carries json.Number; a hand-built
	// one carries int. The resulting literals must agree.
	decoded, err := syntax.DecodeFragment(strings.NewReader(`{"ast_type": "Int", "value": 5}`))
	if err != nil {
		t.Fatal(err)
	}
	a := build(t, decoded)
	b := build(t, frag("Int", "value", 5))
	if !syntax.Equal(a, b) {
		t.Errorf("Int from json.Number != Int from int")
	}
	if syntax.Hash(a) != syntax.Hash(b) {
		t.Errorf("Hash differs across numeric source forms")
	}
}

func TestEqualHexCaseSensitive(t *testing.T) {
	// Address literals carry their checksum in letter case.
	a := build(t, frag("Hex", "value", "0x5B38Da6a701c568545dCfcB03FcB875f56beddC4"))
	b := build(t, frag("Hex", "value", "0x5b38da6a701c568545dcfcb03fcb875f56beddc4"))
	if syntax.Equal(a, b) {
		t.Errorf("Hex literals differing in case compare equal")
	}
	if syntax.Hash(a) == syntax.Hash(b) {
		t.Errorf("Hash collides for case-distinct Hex literals")
	}
}

func TestEqualModule(t *testing.T) {
	a, b := loadToken(t), loadToken(t)
	if !syntax.Equal(a, b) {
		t.Errorf("two builds of the same fixture compare unequal")
	}
	if syntax.Hash(a) != syntax.Hash(b) {
		t.Errorf("two builds of the same fixture hash differently")
	}
	// Rename one function and the trees diverge.
	fn := syntax.Children(b, &syntax.Filter{Kinds: []string{"FunctionDef"}})[0].(*syntax.FunctionDef)
	fn.Name = "burn"
	if syntax.Equal(a, b) {
		t.Errorf("modules with different function names compare equal")
	}
	if syntax.Hash(a) == syntax.Hash(b) {
		t.Errorf("Hash collides across the rename")
	}
}
