// Copyright 2025 The Crest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package namespace holds module symbol tables and the scope stack
// later passes resolve unqualified names against.
//
// There is no process-global scope state. Each compilation unit owns
// one Stack, threaded explicitly through its passes; independent
// modules compiled in parallel by a host system cannot observe each
// other.
package namespace

import (
	"fmt"
	"strings"

	"crestlang.io/crest/syntax"
)

// Kind classifies what a symbol names.
type Kind int

const (
	Function Kind = iota
	Event
	Struct
	Interface
	Flag
	Variable
	Import
)

var kindNames = [...]string{"function", "event", "struct", "interface", "flag", "variable", "import"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Symbol is one named declaration.
type Symbol struct {
	Name string
	Kind Kind
	Decl syntax.Node
}

// A Namespace is one module's symbol table. Iteration order is
// declaration order.
type Namespace struct {
	names []string
	syms  map[string]*Symbol
}

func New() *Namespace {
	return &Namespace{syms: make(map[string]*Symbol)}
}

// Define records a symbol. Redeclaring a name is an error carrying the
// colliding declaration's source position.
func (ns *Namespace) Define(s *Symbol) error {
	if prev, ok := ns.syms[s.Name]; ok {
		return fmt.Errorf("%v: %q already declared as a %v at %v",
			s.Decl.Span(), s.Name, prev.Kind, prev.Decl.Span())
	}
	ns.names = append(ns.names, s.Name)
	ns.syms[s.Name] = s
	return nil
}

func (ns *Namespace) Lookup(name string) (*Symbol, bool) {
	s, ok := ns.syms[name]
	return s, ok
}

func (ns *Namespace) Len() int { return len(ns.names) }

// Names returns the declared names in declaration order.
func (ns *Namespace) Names() []string {
	return append([]string(nil), ns.names...)
}

const metaKey = "namespace"

// OfModule returns the module's symbol table, building it from the
// module's top-level declarations on first use and caching it in the
// module's metadata slot.
func OfModule(m *syntax.Module) (*Namespace, error) {
	if v, ok := m.Meta().Get(metaKey); ok {
		return v.(*Namespace), nil
	}
	ns := New()
	for _, n := range m.Body {
		var s *Symbol
		switch d := n.(type) {
		case *syntax.FunctionDef:
			s = &Symbol{Name: d.Name, Kind: Function, Decl: d}
		case *syntax.EventDef:
			s = &Symbol{Name: d.Name, Kind: Event, Decl: d}
		case *syntax.StructDef:
			s = &Symbol{Name: d.Name, Kind: Struct, Decl: d}
		case *syntax.InterfaceDef:
			s = &Symbol{Name: d.Name, Kind: Interface, Decl: d}
		case *syntax.FlagDef:
			s = &Symbol{Name: d.Name, Kind: Flag, Decl: d}
		case *syntax.VariableDecl:
			name, ok := d.Target.(*syntax.Name)
			if !ok {
				continue
			}
			s = &Symbol{Name: name.ID, Kind: Variable, Decl: d}
		case *syntax.Import:
			s = &Symbol{Name: importedName(d.Name, d.Alias), Kind: Import, Decl: d}
		case *syntax.ImportFrom:
			s = &Symbol{Name: importedName(d.Name, d.Alias), Kind: Import, Decl: d}
		}
		if s == nil {
			continue
		}
		if err := ns.Define(s); err != nil {
			return nil, err
		}
	}
	m.Meta().Set(metaKey, ns)
	return ns, nil
}

// importedName is the name an import binds: its alias, or the final
// segment of the dotted module path.
func importedName(path, alias string) string {
	if alias != "" {
		return alias
	}
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i+1:]
	}
	return path
}

// A Stack is the active-scope context of one compilation unit.
type Stack struct {
	scopes []*Namespace
}

func NewStack() *Stack { return &Stack{} }

// Push activates ns. The returned func pops ns along with anything
// pushed above it, so a single deferred call restores the stack on
// every exit path, including failure.
func (st *Stack) Push(ns *Namespace) func() {
	st.scopes = append(st.scopes, ns)
	depth := len(st.scopes) - 1
	return func() {
		if len(st.scopes) > depth {
			st.scopes = st.scopes[:depth]
		}
	}
}

// Lookup resolves name against the active scopes, innermost first.
func (st *Stack) Lookup(name string) (*Symbol, bool) {
	for i := len(st.scopes) - 1; i >= 0; i-- {
		if s, ok := st.scopes[i].Lookup(name); ok {
			return s, true
		}
	}
	return nil, false
}

// Active returns the innermost scope, or nil when none is active.
func (st *Stack) Active() *Namespace {
	if len(st.scopes) == 0 {
		return nil
	}
	return st.scopes[len(st.scopes)-1]
}

func (st *Stack) Depth() int { return len(st.scopes) }

// Enter activates m's namespace on st for the duration of a pass:
//
//	done, err := namespace.Enter(st, mod)
//	if err != nil { ... }
//	defer done()
func Enter(st *Stack, m *syntax.Module) (func(), error) {
	ns, err := OfModule(m)
	if err != nil {
		return nil, err
	}
	return st.Push(ns), nil
}
