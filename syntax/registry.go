// Copyright 2025 The Crest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// The registry maps each kind tag to the declared structural fields of
// its node struct. It is built once, at process startup, so an
// unregistered kind or a malformed node struct is caught immediately
// rather than mid-tree. Construction, traversal, equality, hashing and
// serialization all iterate these field tables; declared-field order
// is the canonical order everywhere.

type fieldKind int

const (
	fieldScalar fieldKind = iota
	fieldChild
	fieldChildList
)

type fieldInfo struct {
	key      string // fragment / serialization key
	index    int    // struct field index
	optional bool
	kind     fieldKind
	typ      reflect.Type
}

type kindInfo struct {
	tag    string
	typ    reflect.Type // struct type, not pointer
	fields []fieldInfo
}

var (
	kinds      = make(map[string]*kindInfo)
	kindByType = make(map[reflect.Type]*kindInfo)

	nodeType = reflect.TypeOf((*Node)(nil)).Elem()
)

func register(n Node) {
	tag := n.Kind()
	if _, dup := kinds[tag]; dup {
		panic(fmt.Sprintf("syntax: node kind %q registered twice", tag))
	}
	t := reflect.TypeOf(n).Elem()
	info := &kindInfo{tag: tag, typ: t}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			continue // the embedded bookkeeping base
		}
		if f.PkgPath != "" {
			continue // unexported: derived facts, not structural
		}
		tagv, ok := f.Tag.Lookup("ast")
		if !ok {
			panic(fmt.Sprintf("syntax: %s.%s lacks an ast tag", tag, f.Name))
		}
		fi := fieldInfo{key: tagv, index: i, typ: f.Type}
		if c := strings.IndexByte(tagv, ','); c >= 0 {
			fi.key = tagv[:c]
			fi.optional = tagv[c+1:] == "optional"
		}
		if fi.key == "" {
			panic(fmt.Sprintf("syntax: %s.%s has an empty ast key", tag, f.Name))
		}
		switch {
		case f.Type == nodeType || (f.Type.Kind() == reflect.Ptr && f.Type.Implements(nodeType)):
			fi.kind = fieldChild
		case f.Type.Kind() == reflect.Slice &&
			(f.Type.Elem() == nodeType || f.Type.Elem().Implements(nodeType)):
			fi.kind = fieldChildList
		default:
			fi.kind = fieldScalar
		}
		info.fields = append(info.fields, fi)
	}
	kinds[tag] = info
	kindByType[t] = info
}

func infoOf(n Node) *kindInfo {
	return kindByType[reflect.TypeOf(n).Elem()]
}

// Kinds returns every registered kind tag, sorted.
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for tag := range kinds {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// IsKind reports whether tag names a registered node kind.
func IsKind(tag string) bool {
	_, ok := kinds[tag]
	return ok
}

func init() {
	for _, n := range []Node{
		// top-level declarations
		&Module{}, &FunctionDef{}, &EventDef{}, &StructDef{},
		&InterfaceDef{}, &FlagDef{},
		// declaration statements
		&VariableDecl{}, &ImplementsDecl{}, &UsesDecl{},
		&InitializesDecl{}, &ExportsDecl{},
		// signature helpers
		&Arguments{}, &Arg{},
		// statements
		&If{}, &For{}, &Break{}, &Continue{}, &Pass{}, &Return{},
		&Raise{}, &Assert{}, &Log{}, &Import{}, &ImportFrom{},
		&Assign{}, &AnnAssign{}, &AugAssign{}, &ExprStmt{},
		&ExtCall{}, &StaticCall{},
		// expressions
		&Int{}, &Decimal{}, &Hex{}, &Str{}, &Bytes{},
		&NameConstant{}, &Ellipsis{}, &List{}, &Tuple{}, &Dict{},
		&Name{}, &UnaryOp{}, &BinOp{}, &BoolOp{}, &Compare{},
		&Call{}, &Keyword{}, &Attribute{}, &Subscript{}, &IfExp{},
		&NamedExpr{},
		// operator markers
		&USub{}, &Invert{}, &Not{},
		&Add{}, &Sub{}, &Mult{}, &Div{}, &FloorDiv{}, &Mod{},
		&Pow{}, &LShift{}, &RShift{}, &BitOr{}, &BitXor{}, &BitAnd{},
		&And{}, &Or{},
		&Eq{}, &NotEq{}, &Lt{}, &LtE{}, &Gt{}, &GtE{}, &In{}, &NotIn{},
	} {
		register(n)
	}
}
