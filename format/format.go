// Copyright 2025 The Crest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format renders syntax nodes back to Crest source text.
//
// The output is for diagnostics and debug tooling: spacing is
// canonical, statement bodies are elided, and kinds with no natural
// one-line rendering fall back to their kind tag.
package format

import (
	"bytes"
	"fmt"
	"strings"

	"crestlang.io/crest/syntax"
)

// Node returns a best-effort one-line source rendering of n.
func Node(n syntax.Node) string {
	p := &printer{buf: new(bytes.Buffer)}
	p.node(n)
	return p.buf.String()
}

type printer struct {
	buf *bytes.Buffer
}

func (p *printer) node(n syntax.Node) {
	switch n := n.(type) {
	case nil:
		p.buf.WriteString("<nil>")

	case *syntax.Name:
		p.buf.WriteString(n.ID)
	case *syntax.Int:
		p.buf.WriteString(n.Value.String())
	case *syntax.Decimal:
		p.buf.WriteString(strings.TrimRight(strings.TrimRight(n.Value.FloatString(10), "0"), "."))
	case *syntax.Hex:
		p.buf.WriteString(n.Value)
	case *syntax.Str:
		fmt.Fprintf(p.buf, "%q", n.Value)
	case *syntax.Bytes:
		fmt.Fprintf(p.buf, "b\"\\x%x\"", n.Value)
	case *syntax.NameConstant:
		switch v := n.Value.(type) {
		case bool:
			if v {
				p.buf.WriteString("True")
			} else {
				p.buf.WriteString("False")
			}
		default:
			p.buf.WriteString("None")
		}
	case *syntax.Ellipsis:
		p.buf.WriteString("...")

	case *syntax.List:
		p.buf.WriteByte('[')
		p.list(n.Elements)
		p.buf.WriteByte(']')
	case *syntax.Tuple:
		p.buf.WriteByte('(')
		p.list(n.Elements)
		p.buf.WriteByte(')')
	case *syntax.Dict:
		p.buf.WriteByte('{')
		for i := range n.Keys {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.node(n.Keys[i])
			p.buf.WriteString(": ")
			p.node(n.Values[i])
		}
		p.buf.WriteByte('}')

	case *syntax.Attribute:
		p.node(n.Value)
		p.buf.WriteString("." + n.Attr)
	case *syntax.Subscript:
		p.node(n.Value)
		p.buf.WriteByte('[')
		p.node(n.Slice)
		p.buf.WriteByte(']')
	case *syntax.UnaryOp:
		op := syntax.OpSymbol(n.Op)
		p.buf.WriteString(op)
		if op == "not" {
			p.buf.WriteByte(' ')
		}
		p.node(n.Operand)
	case *syntax.BinOp:
		p.node(n.Left)
		p.buf.WriteString(" " + syntax.OpSymbol(n.Op) + " ")
		p.node(n.Right)
	case *syntax.BoolOp:
		for i, v := range n.Values {
			if i > 0 {
				p.buf.WriteString(" " + syntax.OpSymbol(n.Op) + " ")
			}
			p.node(v)
		}
	case *syntax.Compare:
		p.node(n.Left)
		p.buf.WriteString(" " + syntax.OpSymbol(n.Op) + " ")
		p.node(n.Right)
	case *syntax.IfExp:
		p.node(n.Body)
		p.buf.WriteString(" if ")
		p.node(n.Test)
		p.buf.WriteString(" else ")
		p.node(n.Orelse)
	case *syntax.NamedExpr:
		p.node(n.Target)
		p.buf.WriteString(" := ")
		p.node(n.Value)

	case *syntax.Call:
		p.node(n.Func)
		p.buf.WriteByte('(')
		for i, a := range n.Args {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.node(a)
		}
		for i, kw := range n.Keywords {
			if i > 0 || len(n.Args) > 0 {
				p.buf.WriteString(", ")
			}
			p.node(kw)
		}
		p.buf.WriteByte(')')
	case *syntax.Keyword:
		p.buf.WriteString(n.Arg + "=")
		p.node(n.Value)

	case *syntax.ExtCall:
		p.buf.WriteString("extcall ")
		p.node(n.Value)
	case *syntax.StaticCall:
		p.buf.WriteString("staticcall ")
		p.node(n.Value)
	case *syntax.ExprStmt:
		p.node(n.Value)
	case *syntax.Assign:
		p.node(n.Target)
		p.buf.WriteString(" = ")
		p.node(n.Value)
	case *syntax.AugAssign:
		p.node(n.Target)
		p.buf.WriteString(" " + syntax.OpSymbol(n.Op) + "= ")
		p.node(n.Value)
	case *syntax.AnnAssign:
		p.node(n.Target)
		p.buf.WriteString(": ")
		p.node(n.Annotation)
		if n.Value != nil {
			p.buf.WriteString(" = ")
			p.node(n.Value)
		}
	case *syntax.Return:
		p.buf.WriteString("return")
		if n.Value != nil {
			p.buf.WriteByte(' ')
			p.node(n.Value)
		}
	case *syntax.Raise:
		p.buf.WriteString("raise")
		if n.Exc != nil {
			p.buf.WriteByte(' ')
			p.node(n.Exc)
		}
	case *syntax.Assert:
		p.buf.WriteString("assert ")
		p.node(n.Test)
		if n.Msg != nil {
			p.buf.WriteString(", ")
			p.node(n.Msg)
		}
	case *syntax.Log:
		p.buf.WriteString("log ")
		p.node(n.Value)
	case *syntax.Pass:
		p.buf.WriteString("pass")
	case *syntax.Break:
		p.buf.WriteString("break")
	case *syntax.Continue:
		p.buf.WriteString("continue")

	case *syntax.VariableDecl:
		p.node(n.Target)
		p.buf.WriteString(": ")
		close := 0
		for _, mod := range declModifiers(n) {
			p.buf.WriteString(mod + "(")
			close++
		}
		p.node(n.Annotation)
		p.buf.WriteString(strings.Repeat(")", close))
		if n.Value != nil {
			p.buf.WriteString(" = ")
			p.node(n.Value)
		}
	case *syntax.FunctionDef:
		p.buf.WriteString("def " + n.Name + "(")
		if n.Args != nil {
			for i, a := range n.Args.Args {
				if i > 0 {
					p.buf.WriteString(", ")
				}
				p.buf.WriteString(a.Name + ": ")
				p.node(a.Annotation)
			}
		}
		p.buf.WriteByte(')')
		if n.Returns != nil {
			p.buf.WriteString(" -> ")
			p.node(n.Returns)
		}
		p.buf.WriteString(": ...")
	case *syntax.Arg:
		p.buf.WriteString(n.Name + ": ")
		p.node(n.Annotation)

	default:
		p.buf.WriteString(n.Kind())
	}
}

func (p *printer) list(ns []syntax.Node) {
	for i, n := range ns {
		if i > 0 {
			p.buf.WriteString(", ")
		}
		p.node(n)
	}
}

func declModifiers(d *syntax.VariableDecl) []string {
	var mods []string
	if d.IsPublic() {
		mods = append(mods, "public")
	}
	if d.IsConstant() {
		mods = append(mods, "constant")
	}
	if d.IsImmutable() {
		mods = append(mods, "immutable")
	}
	if d.IsTransient() {
		mods = append(mods, "transient")
	}
	return mods
}
