// Copyright 2025 The Crest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// Statement nodes.

type If struct {
	nodebase
	Test   Node   `ast:"test"`
	Body   []Node `ast:"body"`
	Orelse []Node `ast:"orelse,optional"`
}

type For struct {
	nodebase
	Target Node   `ast:"target"`
	Iter   Node   `ast:"iter"`
	Body   []Node `ast:"body"`
}

type Break struct {
	nodebase
}

type Continue struct {
	nodebase
}

type Pass struct {
	nodebase
}

type Return struct {
	nodebase
	Value Node `ast:"value,optional"`
}

type Raise struct {
	nodebase
	Exc Node `ast:"exc,optional"`
}

type Assert struct {
	nodebase
	Test Node `ast:"test"`
	Msg  Node `ast:"msg,optional"`
}

// Log emits an event; Value is the event constructor call.
type Log struct {
	nodebase
	Value Node `ast:"value"`
}

type Import struct {
	nodebase
	Name  string `ast:"name"`
	Alias string `ast:"alias,optional"`
}

type ImportFrom struct {
	nodebase
	Module string `ast:"module,optional"`
	Name   string `ast:"name"`
	Alias  string `ast:"alias,optional"`
	Level  int    `ast:"level,optional"`
}

type Assign struct {
	nodebase
	Target Node `ast:"target"`
	Value  Node `ast:"value"`
}

type AnnAssign struct {
	nodebase
	Target     Node `ast:"target"`
	Annotation Node `ast:"annotation"`
	Value      Node `ast:"value,optional"`
}

type AugAssign struct {
	nodebase
	Target Node `ast:"target"`
	Op     Node `ast:"op"`
	Value  Node `ast:"value"`
}

// ExprStmt is an expression evaluated for effect. Its wire tag is
// "Expr".
type ExprStmt struct {
	nodebase
	Value Node `ast:"value"`
}

// ExtCall marks the wrapped call as an external message call.
type ExtCall struct {
	nodebase
	Value Node `ast:"value"`
}

// StaticCall marks the wrapped call as a read-only external call.
type StaticCall struct {
	nodebase
	Value Node `ast:"value"`
}

func (*If) Kind() string         { return "If" }
func (*For) Kind() string        { return "For" }
func (*Break) Kind() string      { return "Break" }
func (*Continue) Kind() string   { return "Continue" }
func (*Pass) Kind() string       { return "Pass" }
func (*Return) Kind() string     { return "Return" }
func (*Raise) Kind() string      { return "Raise" }
func (*Assert) Kind() string     { return "Assert" }
func (*Log) Kind() string        { return "Log" }
func (*Import) Kind() string     { return "Import" }
func (*ImportFrom) Kind() string { return "ImportFrom" }
func (*Assign) Kind() string     { return "Assign" }
func (*AnnAssign) Kind() string  { return "AnnAssign" }
func (*AugAssign) Kind() string  { return "AugAssign" }
func (*ExprStmt) Kind() string   { return "Expr" }
func (*ExtCall) Kind() string    { return "ExtCall" }
func (*StaticCall) Kind() string { return "StaticCall" }
