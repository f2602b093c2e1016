// Copyright 2025 The Crest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"reflect"
)

// ToDict converts a node and its subtree into a plain, acyclic nested
// mapping keyed by kind tag and declared field names, suitable for
// JSON-style output, diffing and golden-file tests. The fixed
// skip-list omits parent links, the full source text, metadata, the
// folding cache and construction-derived flags. Build accepts the
// result, so serializing and reconstructing yields a structurally
// equal tree.
func ToDict(n Node) map[string]interface{} {
	if n == nil {
		return nil
	}
	d := map[string]interface{}{
		"ast_type": n.Kind(),
		"node_id":  n.NodeID(),
	}
	sp := n.Span()
	if sp.Start.Line > 0 {
		d["lineno"] = int(sp.Start.Line)
	}
	if sp.Start.Column > 0 {
		d["col_offset"] = int(sp.Start.Column) - 1
	}
	if sp.End.Line > 0 {
		d["end_lineno"] = int(sp.End.Line)
	}
	if sp.End.Column > 0 {
		d["end_col_offset"] = int(sp.End.Column) - 1
	}
	if sp.Length > 0 {
		d["src"] = fmt.Sprintf("%d:%d", sp.Offset, sp.Length)
	}
	info := infoOf(n)
	sv := reflect.ValueOf(n).Elem()
	for _, f := range info.fields {
		fv := sv.Field(f.index)
		switch f.kind {
		case fieldChild:
			if c, ok := nodeAt(fv); ok {
				d[f.key] = ToDict(c)
			} else {
				d[f.key] = nil
			}
		case fieldChildList:
			out := make([]interface{}, 0, fv.Len())
			for i := 0; i < fv.Len(); i++ {
				if c, ok := nodeAt(fv.Index(i)); ok {
					out = append(out, ToDict(c))
				}
			}
			d[f.key] = out
		case fieldScalar:
			d[f.key] = dictScalar(fv.Interface())
		}
	}
	return d
}

func dictScalar(v interface{}) interface{} {
	switch x := v.(type) {
	case *big.Int:
		if x == nil {
			return nil
		}
		return new(big.Int).Set(x) // marshals as a JSON number
	case *big.Rat:
		if x == nil {
			return nil
		}
		return x.FloatString(10)
	case []byte:
		return "0x" + hex.EncodeToString(x)
	}
	return v
}

// DecodeFragment reads one JSON-encoded fragment, as produced by the
// external parser or by marshaling a ToDict result. Numbers decode as
// json.Number so integer literals survive at arbitrary precision.
func DecodeFragment(r io.Reader) (Fragment, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var frag Fragment
	if err := dec.Decode(&frag); err != nil {
		return nil, fmt.Errorf("syntax: decoding fragment: %v", err)
	}
	return frag, nil
}
