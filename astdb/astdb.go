// Copyright 2025 The Crest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package astdb exports a built syntax tree into a SQL database, one
// row per node, for ad hoc analysis with plain SQL. The caller opens
// the database (the crest-ast tool uses sqlite) and hands over the
// *sql.DB.
package astdb

import (
	"database/sql"
	"fmt"

	"crestlang.io/crest/syntax"
)

const createStmt = `
CREATE TABLE IF NOT EXISTS nodes (
	id             INTEGER PRIMARY KEY,
	ast_type       TEXT NOT NULL,
	parent_id      INTEGER REFERENCES nodes(id),
	lineno         INTEGER,
	col_offset     INTEGER,
	end_lineno     INTEGER,
	end_col_offset INTEGER,
	node_text      TEXT
);`

const insertStmt = `
INSERT INTO nodes (id, ast_type, parent_id, lineno, col_offset, end_lineno, end_col_offset, node_text)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

// Write stores every node of the tree rooted at root, in pre-order.
// The whole export is one transaction; on any failure the database is
// left untouched.
func Write(db *sql.DB, root syntax.Node) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("astdb: %v", err)
	}
	if _, err := tx.Exec(createStmt); err != nil {
		tx.Rollback()
		return fmt.Errorf("astdb: creating nodes table: %v", err)
	}
	ins, err := tx.Prepare(insertStmt)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("astdb: %v", err)
	}
	defer ins.Close()

	for _, n := range syntax.Descendants(root, &syntax.Filter{IncludeSelf: true}) {
		var parentID interface{}
		if p := n.Parent(); p != nil {
			parentID = p.NodeID()
		}
		sp := n.Span()
		_, err := ins.Exec(
			n.NodeID(), n.Kind(), parentID,
			sp.Start.Line, sp.Start.Column, sp.End.Line, sp.End.Column,
			n.NodeText(),
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("astdb: inserting node %d (%s): %v", n.NodeID(), n.Kind(), err)
		}
	}
	return tx.Commit()
}
