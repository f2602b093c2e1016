// Copyright 2025 The Crest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Crest-ast builds a typed syntax tree from a parser fragment file and
// dumps, exports or explores it.
//
// Usage:
//
//	crest-ast [flags] fragment.json
//
// The fragment file is the JSON form of the generic parse tree
// produced by the Crest parser ("-" reads standard input).
package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"gopkg.in/yaml.v3"

	_ "github.com/mattn/go-sqlite3"

	"crestlang.io/crest/astdb"
	"crestlang.io/crest/format"
	"crestlang.io/crest/namespace"
	"crestlang.io/crest/syntax"
	"crestlang.io/crest/syntax/src"
)

func usage() {
	fmt.Fprintf(os.Stderr, `crest-ast - inspect a Crest syntax tree

Usage:
	crest-ast [flags] fragment.json

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	flagSrc := flag.String("src", "", "source file the fragments were parsed from, for node text")
	flagFormat := flag.String("format", "json", "dump format: json or yaml")
	flagDB := flag.String("db", "", "export the tree to the named sqlite database")
	flagI := flag.Bool("i", false, "explore the tree interactively")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	if err := run(flag.Arg(0), *flagSrc, *flagFormat, *flagDB, *flagI); err != nil {
		fmt.Fprintf(os.Stderr, "crest-ast: %v\n", err)
		os.Exit(1)
	}
}

func run(path, srcPath, dumpFormat, dbPath string, interactive bool) error {
	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	frag, err := syntax.DecodeFragment(in)
	if err != nil {
		return err
	}

	var source *src.Source
	if srcPath != "" {
		text, err := os.ReadFile(srcPath)
		if err != nil {
			return err
		}
		source = &src.Source{Filename: srcPath, Text: string(text)}
	}

	root, err := syntax.Build(source, frag)
	if err != nil {
		return err
	}

	if dbPath != "" {
		db, err := sql.Open("sqlite3", dbPath)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := astdb.Write(db, root); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "exported %d nodes to %s\n",
			len(syntax.Descendants(root, &syntax.Filter{IncludeSelf: true})), dbPath)
	}

	if interactive {
		return explore(root)
	}
	return dump(os.Stdout, root, dumpFormat)
}

func dump(w io.Writer, root syntax.Node, dumpFormat string) error {
	d := syntax.ToDict(root)
	switch dumpFormat {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(d)
	}
	return fmt.Errorf("unknown dump format %q", dumpFormat)
}

const exploreHelp = `commands:
	kinds          list node kinds present in the tree
	count <kind>   count nodes of a kind
	find <kind>    list nodes of a kind
	show <id>      dump one node as JSON
	fmt <id>       render one node as source text
	ns             list the module's namespace
	quit
`

func explore(root syntax.Node) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		data, err := line.Prompt("ast> ")
		if err == liner.ErrPromptAborted || err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}
		data = strings.TrimSpace(data)
		if data == "" {
			continue
		}
		line.AppendHistory(data)
		if data == "quit" || data == "exit" {
			return nil
		}
		if err := exploreCmd(root, data); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
	}
}

func exploreCmd(root syntax.Node, data string) error {
	args := strings.Fields(data)
	switch args[0] {
	case "help":
		fmt.Print(exploreHelp)
	case "kinds":
		seen := make(map[string]int)
		for _, n := range syntax.Descendants(root, &syntax.Filter{IncludeSelf: true}) {
			seen[n.Kind()]++
		}
		kinds := make([]string, 0, len(seen))
		for k := range seen {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)
		for _, k := range kinds {
			fmt.Printf("%5d %s\n", seen[k], k)
		}
	case "count", "find":
		if len(args) != 2 {
			return fmt.Errorf("usage: %s <kind>", args[0])
		}
		if !syntax.IsKind(args[1]) {
			return fmt.Errorf("unknown node kind %q", args[1])
		}
		found := syntax.Descendants(root, &syntax.Filter{Kinds: []string{args[1]}, IncludeSelf: true})
		if args[0] == "count" {
			fmt.Println(len(found))
			break
		}
		for _, n := range found {
			fmt.Printf("%5d %v %s\n", n.NodeID(), n.Span(), format.Node(n))
		}
	case "show", "fmt":
		if len(args) != 2 {
			return fmt.Errorf("usage: %s <id>", args[0])
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("bad node id %q", args[1])
		}
		n := nodeByID(root, id)
		if n == nil {
			return fmt.Errorf("no node with id %d", id)
		}
		if args[0] == "fmt" {
			fmt.Println(format.Node(n))
			break
		}
		out, err := json.MarshalIndent(syntax.ToDict(n), "", "  ")
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", out)
	case "ns":
		mod, ok := root.(*syntax.Module)
		if !ok {
			return fmt.Errorf("tree root is a %s, not a Module", root.Kind())
		}
		ns, err := namespace.OfModule(mod)
		if err != nil {
			return err
		}
		for _, name := range ns.Names() {
			sym, _ := ns.Lookup(name)
			fmt.Printf("%-10s %-20s %s\n", sym.Kind, name, format.Node(sym.Decl))
		}
	default:
		return fmt.Errorf("unknown command %q (try help)", args[0])
	}
	return nil
}

func nodeByID(root syntax.Node, id int) syntax.Node {
	for _, n := range syntax.Descendants(root, &syntax.Filter{IncludeSelf: true}) {
		if n.NodeID() == id {
			return n
		}
	}
	return nil
}
