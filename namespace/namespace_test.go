// Copyright 2025 The Crest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package namespace_test

import (
	"strings"
	"testing"

	"crestlang.io/crest/namespace"
	"crestlang.io/crest/syntax"
)

func frag(kind string, kv ...interface{}) syntax.Fragment {
	f := syntax.Fragment{"ast_type": kind}
	for i := 0; i < len(kv); i += 2 {
		f[kv[i].(string)] = kv[i+1]
	}
	return f
}

func buildModule(t *testing.T, body ...interface{}) *syntax.Module {
	t.Helper()
	n, err := syntax.Build(nil, frag("Module", "name", "m", "body", body))
	if err != nil {
		t.Fatal(err)
	}
	return n.(*syntax.Module)
}

func fnDef(name string) syntax.Fragment {
	return frag("FunctionDef",
		"name", name,
		"args", frag("arguments"),
		"body", []interface{}{frag("Pass")},
	)
}

func TestOfModule(t *testing.T) {
	mod := buildModule(t,
		frag("Import", "name", "lib.math", "alias", "m"),
		frag("ImportFrom", "module", "interfaces", "name", "ERC20"),
		frag("VariableDecl",
			"target", frag("Name", "id", "owner"),
			"annotation", frag("Name", "id", "address")),
		frag("EventDef", "name", "Paid", "body", []interface{}{frag("Pass")}),
		frag("StructDef", "name", "Point", "body", []interface{}{frag("Pass")}),
		frag("FlagDef", "name", "Role", "body", []interface{}{frag("Pass")}),
		fnDef("pay"),
	)

	ns, err := namespace.OfModule(mod)
	if err != nil {
		t.Fatal(err)
	}
	want := []struct {
		name string
		kind namespace.Kind
	}{
		{"m", namespace.Import},
		{"ERC20", namespace.Import},
		{"owner", namespace.Variable},
		{"Paid", namespace.Event},
		{"Point", namespace.Struct},
		{"Role", namespace.Flag},
		{"pay", namespace.Function},
	}
	if ns.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", ns.Len(), len(want))
	}
	names := ns.Names()
	for i, w := range want {
		if names[i] != w.name {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], w.name)
		}
		sym, ok := ns.Lookup(w.name)
		if !ok {
			t.Errorf("Lookup(%q) failed", w.name)
			continue
		}
		if sym.Kind != w.kind {
			t.Errorf("%s: kind = %v, want %v", w.name, sym.Kind, w.kind)
		}
		if sym.Decl == nil {
			t.Errorf("%s: no declaration node", w.name)
		}
	}
	if _, ok := ns.Lookup("missing"); ok {
		t.Errorf("Lookup(missing) succeeded")
	}

	// The table is cached on the module.
	again, err := namespace.OfModule(mod)
	if err != nil {
		t.Fatal(err)
	}
	if again != ns {
		t.Errorf("second OfModule built a new table")
	}
}

func TestOfModuleCollision(t *testing.T) {
	mod := buildModule(t,
		fnDef("pay"),
		frag("EventDef", "name", "pay", "body", []interface{}{frag("Pass")}),
	)
	_, err := namespace.OfModule(mod)
	if err == nil {
		t.Fatal("duplicate name accepted")
	}
	if !strings.Contains(err.Error(), `"pay" already declared as a function`) {
		t.Errorf("collision error = %q, want the earlier declaration named", err)
	}
}

func TestImportedNames(t *testing.T) {
	mod := buildModule(t,
		frag("Import", "name", "lib.token.erc20"),
		frag("ImportFrom", "module", "lib", "name", "safe_math", "alias", "sm"),
	)
	ns, err := namespace.OfModule(mod)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := ns.Lookup("erc20"); !ok {
		t.Errorf("dotted import did not bind its last segment")
	}
	if _, ok := ns.Lookup("sm"); !ok {
		t.Errorf("aliased import did not bind its alias")
	}
	if _, ok := ns.Lookup("safe_math"); ok {
		t.Errorf("aliased import bound its unaliased name too")
	}
}

func TestStack(t *testing.T) {
	st := namespace.NewStack()
	if st.Depth() != 0 || st.Active() != nil {
		t.Fatalf("fresh stack: Depth=%d Active=%v", st.Depth(), st.Active())
	}
	if _, ok := st.Lookup("x"); ok {
		t.Errorf("Lookup on an empty stack succeeded")
	}

	outer, inner := namespace.New(), namespace.New()
	a := &namespace.Symbol{Name: "x", Kind: namespace.Variable}
	b := &namespace.Symbol{Name: "x", Kind: namespace.Function}
	c := &namespace.Symbol{Name: "y", Kind: namespace.Variable}
	for ns, syms := range map[*namespace.Namespace][]*namespace.Symbol{
		outer: {a, c}, inner: {b},
	} {
		for _, s := range syms {
			if err := ns.Define(s); err != nil {
				t.Fatal(err)
			}
		}
	}

	popOuter := st.Push(outer)
	popInner := st.Push(inner)
	if st.Depth() != 2 || st.Active() != inner {
		t.Fatalf("Depth=%d Active=%v, want 2/inner", st.Depth(), st.Active())
	}
	// Inner scope shadows outer.
	if s, ok := st.Lookup("x"); !ok || s != b {
		t.Errorf("Lookup(x) = %v, want the inner symbol", s)
	}
	// Outer names stay visible through the inner scope.
	if s, ok := st.Lookup("y"); !ok || s != c {
		t.Errorf("Lookup(y) = %v, want the outer symbol", s)
	}

	popInner()
	if s, ok := st.Lookup("x"); !ok || s != a {
		t.Errorf("after pop, Lookup(x) = %v, want the outer symbol", s)
	}
	// Popping out of order unwinds everything above the mark.
	st.Push(inner)
	st.Push(namespace.New())
	popOuter()
	if st.Depth() != 0 {
		t.Errorf("popOuter left depth %d, want 0", st.Depth())
	}
	popInner() // already unwound; a no-op
	if st.Depth() != 0 {
		t.Errorf("stale pop changed depth to %d", st.Depth())
	}
}

func TestEnter(t *testing.T) {
	mod := buildModule(t, fnDef("pay"))
	st := namespace.NewStack()
	done, err := namespace.Enter(st, mod)
	if err != nil {
		t.Fatal(err)
	}
	if s, ok := st.Lookup("pay"); !ok || s.Kind != namespace.Function {
		t.Errorf("Lookup(pay) = %v, %v after Enter", s, ok)
	}
	done()
	if st.Depth() != 0 {
		t.Errorf("Depth = %d after done, want 0", st.Depth())
	}

	bad := buildModule(t, fnDef("dup"), fnDef("dup"))
	if _, err := namespace.Enter(st, bad); err == nil {
		t.Errorf("Enter accepted a module with colliding names")
	}
	if st.Depth() != 0 {
		t.Errorf("failed Enter left depth %d", st.Depth())
	}
}
