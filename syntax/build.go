// Copyright 2025 The Crest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"crestlang.io/crest/syntax/src"
)

// MaxDepth bounds AST nesting. Construction refuses deeper fragments
// with a DepthError instead of riding the goroutine stack into the
// ground.
const MaxDepth = 1024

// A Fragment is the generic, untyped parse-tree form produced by the
// parser: a tagged mapping of field name to scalar, nested fragment,
// or ordered sequence of fragments. The tag lives under "ast_type";
// positions under "lineno", "col_offset", "end_lineno",
// "end_col_offset" and "src" ("offset:length"). Keys the target kind
// does not declare are ignored.
type Fragment map[string]interface{}

// Build converts a fragment into a fully linked typed subtree. Any
// failure aborts the whole build; no partial tree is returned. The
// returned subtree has no cycles and every descendant's parent chain
// terminates at the returned node.
func Build(source *src.Source, frag Fragment) (Node, error) {
	b := &builder{source: source}
	return b.node(frag, nil, 0)
}

type builder struct {
	source *src.Source
	nextID int
}

func (b *builder) node(frag Fragment, parent Node, depth int) (Node, error) {
	sp := b.span(frag)
	if depth > MaxDepth {
		return nil, &DepthError{Depth: MaxDepth, Span: sp}
	}
	tag, _ := frag["ast_type"].(string)
	info := kinds[tag]
	if info == nil {
		return nil, &UnknownKindError{Kind: tag, Span: sp}
	}

	pv := reflect.New(info.typ)
	n := pv.Interface().(Node)
	nb := n.base()
	nb.span = sp
	nb.source = b.source
	if id, ok := intFrom(frag["node_id"]); ok {
		nb.id = id
		if id >= b.nextID {
			b.nextID = id + 1
		}
	} else {
		nb.id = b.nextID
		b.nextID++
	}
	// Parent is linked before the node's own fields are built, so
	// ancestor queries already work while children are constructed.
	if parent != nil {
		if err := nb.setParent(parent); err != nil {
			return nil, err
		}
	}

	sv := pv.Elem()
	for _, f := range info.fields {
		raw, ok := frag[f.key]
		if !ok || raw == nil {
			if f.optional {
				continue
			}
			return nil, &MissingFieldError{Kind: tag, Field: f.key, Span: sp}
		}
		fv := sv.Field(f.index)
		switch f.kind {
		case fieldChild:
			cf, ok := asFragment(raw)
			if !ok {
				return nil, &BadFieldError{Kind: tag, Field: f.key, Why: "expected a nested fragment", Span: sp}
			}
			child, err := b.node(cf, n, depth+1)
			if err != nil {
				return nil, err
			}
			cv := reflect.ValueOf(child)
			if !cv.Type().AssignableTo(fv.Type()) {
				return nil, &BadFieldError{Kind: tag, Field: f.key, Why: fmt.Sprintf("cannot hold a %s node", child.Kind()), Span: sp}
			}
			fv.Set(cv)
		case fieldChildList:
			list, ok := asList(raw)
			if !ok {
				return nil, &BadFieldError{Kind: tag, Field: f.key, Why: "expected a sequence of fragments", Span: sp}
			}
			slice := reflect.MakeSlice(f.typ, 0, len(list))
			for _, el := range list {
				cf, ok := asFragment(el)
				if !ok {
					return nil, &BadFieldError{Kind: tag, Field: f.key, Why: "expected a sequence of fragments", Span: sp}
				}
				child, err := b.node(cf, n, depth+1)
				if err != nil {
					return nil, err
				}
				cv := reflect.ValueOf(child)
				if !cv.Type().AssignableTo(f.typ.Elem()) {
					return nil, &BadFieldError{Kind: tag, Field: f.key, Why: fmt.Sprintf("cannot hold a %s node", child.Kind()), Span: sp}
				}
				slice = reflect.Append(slice, cv)
			}
			fv.Set(slice)
		case fieldScalar:
			if err := assignScalar(fv, raw); err != nil {
				return nil, &BadFieldError{Kind: tag, Field: f.key, Why: err.Error(), Span: sp}
			}
		}
	}

	// Facts derived once at construction, never re-derived downstream.
	switch t := n.(type) {
	case *Call:
		t.derive()
	case *VariableDecl:
		if err := t.derive(); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (b *builder) span(frag Fragment) src.Span {
	var filename string
	if b.source != nil {
		filename = b.source.Filename
	}
	sp := src.Span{
		Start: src.Pos{Filename: filename},
		End:   src.Pos{Filename: filename},
	}
	if v, ok := intFrom(frag["lineno"]); ok {
		sp.Start.Line = int32(v)
	}
	if v, ok := intFrom(frag["col_offset"]); ok {
		sp.Start.Column = int16(v + 1) // parser columns are 0-based
	}
	if v, ok := intFrom(frag["end_lineno"]); ok {
		sp.End.Line = int32(v)
	}
	if v, ok := intFrom(frag["end_col_offset"]); ok {
		sp.End.Column = int16(v + 1)
	}
	if s, ok := frag["src"].(string); ok {
		parts := strings.SplitN(s, ":", 3)
		if len(parts) >= 2 {
			off, err1 := strconv.Atoi(parts[0])
			length, err2 := strconv.Atoi(parts[1])
			if err1 == nil && err2 == nil {
				sp.Offset, sp.Length = off, length
			}
		}
	}
	return sp
}

func asFragment(v interface{}) (Fragment, bool) {
	switch m := v.(type) {
	case Fragment:
		return m, true
	case map[string]interface{}:
		return Fragment(m), true
	}
	return nil, false
}

func asList(v interface{}) ([]interface{}, bool) {
	switch l := v.(type) {
	case []interface{}:
		return l, true
	case []Fragment:
		out := make([]interface{}, len(l))
		for i, el := range l {
			out[i] = el
		}
		return out, true
	case []map[string]interface{}:
		out := make([]interface{}, len(l))
		for i, el := range l {
			out[i] = el
		}
		return out, true
	}
	return nil, false
}

func intFrom(v interface{}) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case float64:
		return int(x), true
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return int(i), true
		}
	}
	return 0, false
}

var (
	bigIntType = reflect.TypeOf((*big.Int)(nil))
	bigRatType = reflect.TypeOf((*big.Rat)(nil))
	bytesType  = reflect.TypeOf([]byte(nil))
)

// assignScalar copies a fragment scalar into a structural field,
// coercing the loose shapes JSON decoding produces.
func assignScalar(fv reflect.Value, raw interface{}) error {
	switch fv.Type() {
	case bigIntType:
		i, err := bigIntFrom(raw)
		if err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(i))
		return nil
	case bigRatType:
		r, err := bigRatFrom(raw)
		if err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(r))
		return nil
	case bytesType:
		bs, err := bytesFrom(raw)
		if err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(bs))
		return nil
	}
	switch fv.Kind() {
	case reflect.String:
		s, ok := raw.(string)
		if !ok {
			return fmt.Errorf("expected a string, got %T", raw)
		}
		fv.SetString(s)
	case reflect.Int:
		i, ok := intFrom(raw)
		if !ok {
			return fmt.Errorf("expected an integer, got %T", raw)
		}
		fv.SetInt(int64(i))
	case reflect.Bool:
		bv, ok := raw.(bool)
		if !ok {
			return fmt.Errorf("expected a bool, got %T", raw)
		}
		fv.SetBool(bv)
	case reflect.Interface:
		fv.Set(reflect.ValueOf(raw))
	default:
		return fmt.Errorf("unsupported scalar type %s", fv.Type())
	}
	return nil
}

func bigIntFrom(v interface{}) (*big.Int, error) {
	switch x := v.(type) {
	case *big.Int:
		return new(big.Int).Set(x), nil // scalars are copied, never shared
	case json.Number:
		if i, ok := new(big.Int).SetString(x.String(), 10); ok {
			return i, nil
		}
	case string:
		if i, ok := new(big.Int).SetString(x, 0); ok {
			return i, nil
		}
	case int:
		return big.NewInt(int64(x)), nil
	case int64:
		return big.NewInt(x), nil
	case float64:
		if x == math.Trunc(x) {
			return big.NewInt(int64(x)), nil
		}
	}
	return nil, fmt.Errorf("cannot read %T as an integer", v)
}

func bigRatFrom(v interface{}) (*big.Rat, error) {
	switch x := v.(type) {
	case *big.Rat:
		return new(big.Rat).Set(x), nil
	case json.Number:
		if r, ok := new(big.Rat).SetString(x.String()); ok {
			return r, nil
		}
	case string:
		if r, ok := new(big.Rat).SetString(x); ok {
			return r, nil
		}
	case float64:
		if r := new(big.Rat).SetFloat64(x); r != nil {
			return r, nil
		}
	case int:
		return new(big.Rat).SetInt64(int64(x)), nil
	}
	return nil, fmt.Errorf("cannot read %T as a decimal", v)
}

func bytesFrom(v interface{}) ([]byte, error) {
	switch x := v.(type) {
	case []byte:
		return append([]byte(nil), x...), nil
	case string:
		bs, err := hex.DecodeString(strings.TrimPrefix(x, "0x"))
		if err != nil {
			return nil, fmt.Errorf("bad hex string: %v", err)
		}
		return bs, nil
	}
	return nil, fmt.Errorf("cannot read %T as bytes", v)
}
