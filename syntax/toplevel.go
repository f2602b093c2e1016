// Copyright 2025 The Crest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// Top-level declaration nodes.

// Module is the root of every tree: one compilation unit.
type Module struct {
	nodebase
	Body         []Node `ast:"body"`
	Name         string `ast:"name,optional"`
	Path         string `ast:"path,optional"`
	ResolvedPath string `ast:"resolved_path,optional"`
	SourceID     int    `ast:"source_id,optional"`
	IsInterface  bool   `ast:"is_interface,optional"`
}

type FunctionDef struct {
	nodebase
	Name       string     `ast:"name"`
	Args       *Arguments `ast:"args"`
	Returns    Node       `ast:"returns,optional"`
	Body       []Node     `ast:"body"`
	Decorators []Node     `ast:"decorator_list,optional"`
}

type EventDef struct {
	nodebase
	Name string `ast:"name"`
	Body []Node `ast:"body"`
}

type StructDef struct {
	nodebase
	Name string `ast:"name"`
	Body []Node `ast:"body"`
}

type InterfaceDef struct {
	nodebase
	Name string `ast:"name"`
	Body []Node `ast:"body"`
}

type FlagDef struct {
	nodebase
	Name string `ast:"name"`
	Body []Node `ast:"body"`
}

// VariableDecl declares a module-level variable. The public, constant,
// immutable and transient modifiers arrive from the parser as wrapping
// calls around the annotation; construction unwraps them once and
// records the flags.
type VariableDecl struct {
	nodebase
	Target     Node `ast:"target"`
	Annotation Node `ast:"annotation"`
	Value      Node `ast:"value,optional"`

	isPublic    bool
	isConstant  bool
	isImmutable bool
	isTransient bool
}

func (d *VariableDecl) IsPublic() bool    { return d.isPublic }
func (d *VariableDecl) IsConstant() bool  { return d.isConstant }
func (d *VariableDecl) IsImmutable() bool { return d.isImmutable }
func (d *VariableDecl) IsTransient() bool { return d.isTransient }

// derive peels modifier calls off the annotation. public(constant(x))
// and the like unwrap iteratively; the innermost expression becomes
// the annotation proper.
func (d *VariableDecl) derive() error {
	for {
		call, ok := d.Annotation.(*Call)
		if !ok {
			return nil
		}
		fn, ok := call.Func.(*Name)
		if !ok {
			return nil
		}
		switch fn.ID {
		case "public":
			d.isPublic = true
		case "constant":
			d.isConstant = true
		case "immutable":
			d.isImmutable = true
		case "transient":
			d.isTransient = true
		default:
			return nil
		}
		if len(call.Args) != 1 {
			return &MissingFieldError{Kind: d.Kind(), Field: fn.ID, Span: call.Span()}
		}
		inner := call.Args[0]
		// Still under construction: re-homing the unwrapped
		// annotation is part of building this node.
		inner.base().parent = d
		d.Annotation = inner
	}
}

type ImplementsDecl struct {
	nodebase
	Annotation Node `ast:"annotation"`
}

type UsesDecl struct {
	nodebase
	Annotation Node `ast:"annotation"`
}

type InitializesDecl struct {
	nodebase
	Annotation Node `ast:"annotation"`
}

type ExportsDecl struct {
	nodebase
	Annotation Node `ast:"annotation"`
}

// Arguments is a function signature's argument list. Defaults align
// with the tail of Args.
type Arguments struct {
	nodebase
	Args     []*Arg `ast:"args,optional"`
	Defaults []Node `ast:"defaults,optional"`
}

type Arg struct {
	nodebase
	Name       string `ast:"arg"`
	Annotation Node   `ast:"annotation"`
}

func (*Module) Kind() string          { return "Module" }
func (*FunctionDef) Kind() string     { return "FunctionDef" }
func (*EventDef) Kind() string        { return "EventDef" }
func (*StructDef) Kind() string       { return "StructDef" }
func (*InterfaceDef) Kind() string    { return "InterfaceDef" }
func (*FlagDef) Kind() string         { return "FlagDef" }
func (*VariableDecl) Kind() string    { return "VariableDecl" }
func (*ImplementsDecl) Kind() string  { return "ImplementsDecl" }
func (*UsesDecl) Kind() string        { return "UsesDecl" }
func (*InitializesDecl) Kind() string { return "InitializesDecl" }
func (*ExportsDecl) Kind() string     { return "ExportsDecl" }

func (*Arguments) Kind() string { return "arguments" }
func (*Arg) Kind() string       { return "arg" }
