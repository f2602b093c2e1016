// Copyright 2025 The Crest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"bytes"
	"encoding/json"
	"math/big"
	"reflect"
)

// Equal reports deep structural equality: same concrete kind, all
// structural fields recursively equal. Bookkeeping (spans, parents,
// metadata, the folding slot) is ignored, so a deep copy under a
// different parent compares equal to its source.
func Equal(x, y Node) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	if x.Kind() != y.Kind() {
		return false
	}
	info := infoOf(x)
	xv := reflect.ValueOf(x).Elem()
	yv := reflect.ValueOf(y).Elem()
	for _, f := range info.fields {
		xf, yf := xv.Field(f.index), yv.Field(f.index)
		switch f.kind {
		case fieldChild:
			xc, _ := nodeAt(xf)
			yc, _ := nodeAt(yf)
			if !Equal(xc, yc) {
				return false
			}
		case fieldChildList:
			if xf.Len() != yf.Len() {
				return false
			}
			for i := 0; i < xf.Len(); i++ {
				xc, _ := nodeAt(xf.Index(i))
				yc, _ := nodeAt(yf.Index(i))
				if !Equal(xc, yc) {
					return false
				}
			}
		case fieldScalar:
			if !scalarEqual(xf.Interface(), yf.Interface()) {
				return false
			}
		}
	}
	return true
}

// scalarEqual compares scalar values loosely enough that the shapes
// produced by JSON decoding, fragment literals and field filters all
// agree: integers compare by value across int, int64, json.Number and
// *big.Int; decimals across float64 and *big.Rat.
func scalarEqual(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if an, ok := a.(Node); ok {
		bn, ok := b.(Node)
		return ok && Equal(an, bn)
	}
	// Strings compare byte for byte; a Hex literal differing only in
	// letter case is a different literal (checksums).
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		return ok && as == bs
	}
	if ai, ok := intishOf(a); ok {
		if bi, ok := intishOf(b); ok {
			return ai.Cmp(bi) == 0
		}
	}
	if ar, ok := ratishOf(a); ok {
		if br, ok := ratishOf(b); ok {
			return ar.Cmp(br) == 0
		}
		return false
	}
	if ab, ok := a.([]byte); ok {
		bb, ok := b.([]byte)
		return ok && bytes.Equal(ab, bb)
	}
	return reflect.DeepEqual(a, b)
}

func intishOf(v interface{}) (*big.Int, bool) {
	switch x := v.(type) {
	case *big.Int:
		return x, x != nil
	case int:
		return big.NewInt(int64(x)), true
	case int32:
		return big.NewInt(int64(x)), true
	case int64:
		return big.NewInt(x), true
	case json.Number:
		i, ok := new(big.Int).SetString(x.String(), 10)
		return i, ok
	}
	return nil, false
}

func ratishOf(v interface{}) (*big.Rat, bool) {
	switch x := v.(type) {
	case *big.Rat:
		return x, x != nil
	case float64:
		r := new(big.Rat).SetFloat64(x)
		return r, r != nil
	case json.Number:
		r, ok := new(big.Rat).SetString(x.String())
		return r, ok
	}
	if i, ok := intishOf(v); ok {
		return new(big.Rat).SetInt(i), true
	}
	return nil, false
}
