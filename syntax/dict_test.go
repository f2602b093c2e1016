// Copyright 2025 The Crest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax_test

import (
	"bytes"
	"encoding/json"
	"math/big"
	"testing"

	"crestlang.io/crest/syntax"
)

// rebuild serializes n to a dict and constructs a fresh tree from it.
func rebuild(t *testing.T, n syntax.Node) syntax.Node {
	t.Helper()
	return build(t, syntax.Fragment(syntax.ToDict(n)))
}

func TestToDictRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		frag syntax.Fragment
	}{
		{"name", frag("Name", "id", "balance", "lineno", 2, "col_offset", 4)},
		{"int", frag("Int", "value", "115792089237316195423570985008687907853269984665640564039457584007913129639935")},
		{"decimal", frag("Decimal", "value", "2.75")},
		{"hex", frag("Hex", "value", "0x5B38Da6a701c568545dCfcB03FcB875f56beddC4")},
		{"bytes", frag("Bytes", "value", "0xdeadbeef")},
		{"call", frag("Call",
			"func", frag("Attribute", "value", frag("Name", "id", "self"), "attr", "mint"),
			"args", []interface{}{frag("Int", "value", 7)},
			"keywords", []interface{}{frag("keyword", "arg", "to", "value", frag("Name", "id", "owner"))})},
		{"binop", frag("BinOp",
			"left", frag("Name", "id", "x"),
			"op", frag("Pow"),
			"right", frag("Int", "value", 8))},
	}
	for _, tt := range tests {
		a := build(t, tt.frag)
		b := rebuild(t, a)
		if !syntax.Equal(a, b) {
			t.Errorf("%s: rebuilt tree differs from the original", tt.name)
		}
		if syntax.Hash(a) != syntax.Hash(b) {
			t.Errorf("%s: rebuilt tree hashes differently", tt.name)
		}
	}
}

func TestToDictSkipList(t *testing.T) {
	mod := loadToken(t)
	mod.Meta().Set("type", "module")
	fn := syntax.Children(mod, &syntax.Filter{Kinds: []string{"FunctionDef"}})[0]

	d := syntax.ToDict(fn)
	for _, key := range []string{"parent", "full_source_code", "_metadata", "folded_value", "is_public", "is_constant"} {
		if _, ok := d[key]; ok {
			t.Errorf("dict carries skip-listed key %q", key)
		}
	}
	if d["ast_type"] != "FunctionDef" {
		t.Errorf("ast_type = %v, want FunctionDef", d["ast_type"])
	}
	if d["name"] != "transfer" {
		t.Errorf("name = %v, want transfer", d["name"])
	}
	if d["lineno"] != 8 {
		t.Errorf("lineno = %v, want 8", d["lineno"])
	}
	if d["col_offset"] != 0 {
		t.Errorf("col_offset = %v, want 0", d["col_offset"])
	}
	body, ok := d["body"].([]interface{})
	if !ok || len(body) != 3 {
		t.Fatalf("body = %v, want 3 statements", d["body"])
	}
}

func TestToDictScalars(t *testing.T) {
	d := syntax.ToDict(build(t, frag("Bytes", "value", "0xdeadbeef")))
	if d["value"] != "0xdeadbeef" {
		t.Errorf("bytes serialize as %v, want 0xdeadbeef", d["value"])
	}

	d = syntax.ToDict(build(t, frag("Decimal", "value", "1.5")))
	if d["value"] != "1.5000000000" {
		t.Errorf("decimal serializes as %v, want 1.5000000000", d["value"])
	}

	d = syntax.ToDict(build(t, frag("NameConstant")))
	if v, ok := d["value"]; !ok || v != nil {
		t.Errorf("empty NameConstant value = %v, %v; want explicit nil", v, ok)
	}

	// Int values marshal as JSON numbers, not strings, at any size.
	huge := new(big.Int).Lsh(big.NewInt(1), 200)
	out, err := json.Marshal(syntax.ToDict(build(t, frag("Int", "value", huge.String()))))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(out, []byte(`"value":`+huge.String())) {
		t.Errorf("marshaled Int = %s, want a bare number value", out)
	}
}

func TestToDictJSONRoundTrip(t *testing.T) {
	mod := loadToken(t)

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(syntax.ToDict(mod)); err != nil {
		t.Fatal(err)
	}
	fr, err := syntax.DecodeFragment(&buf)
	if err != nil {
		t.Fatal(err)
	}
	again, err := syntax.Build(nil, fr)
	if err != nil {
		t.Fatal(err)
	}
	if !syntax.Equal(mod, again) {
		t.Errorf("tree changed across a JSON round trip")
	}
	if syntax.Hash(mod) != syntax.Hash(again) {
		t.Errorf("hash changed across a JSON round trip")
	}
	// node_id survives the trip.
	if mod.NodeID() != again.NodeID() {
		t.Errorf("root node_id changed: %d != %d", mod.NodeID(), again.NodeID())
	}
}

func TestDecodeFragmentErrors(t *testing.T) {
	if _, err := syntax.DecodeFragment(bytes.NewReader([]byte("{"))); err == nil {
		t.Errorf("decoding truncated JSON succeeded")
	}
	if _, err := syntax.DecodeFragment(bytes.NewReader([]byte(`[1, 2]`))); err == nil {
		t.Errorf("decoding a non-object fragment succeeded")
	}
}
