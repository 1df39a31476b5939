// Package sqlforge is a dialect-parameterized SQL tokenizer, parser,
// generator, and rule-based optimizer. Every entry point here takes
// an optional dialect name (ANSI when omitted) instead of hardcoding
// one tokenizer/formatter pair.
//
// Basic usage:
//
//	stmts, err := sqlforge.Parse("SELECT * FROM users WHERE id = 1", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := sqlforge.Generate(stmts[0], "MYSQL")
//
// Walking and rewriting the tree uses ast.Walk/ast.Transform directly
// (re-exported below as Walk/Transform) since every Node already
// satisfies the generic Args()/WithArgs() contract — no separate
// visitor package is needed.
package sqlforge

import (
	"github.com/brindlecode/sqlforge/ast"
	"github.com/brindlecode/sqlforge/dialect"
	"github.com/brindlecode/sqlforge/generator"
	"github.com/brindlecode/sqlforge/optimizer"
)

// Statement is the interface for all SQL statements.
type Statement = ast.Statement

// Expression is the interface for all expressions.
type Expression = ast.Expression

// Node is the base interface for all AST nodes.
type Node = ast.Node

// defaultDialect is used whenever a caller passes an empty dialect
// name.
const defaultDialect = "ANSI"

func resolve(name string) (*dialect.Dialect, error) {
	if name == "" {
		name = defaultDialect
	}
	return dialect.Lookup(name)
}

// Parse parses every statement in sql under the named dialect's
// lexical conventions.
func Parse(sql, dialectName string) ([]ast.Statement, error) {
	d, err := resolve(dialectName)
	if err != nil {
		return nil, err
	}
	return d.Parse(sql)
}

// ParseOne parses the first statement in sql, or returns (nil, nil)
// for empty/whitespace-only input.
func ParseOne(sql, dialectName string) (ast.Statement, error) {
	d, err := resolve(dialectName)
	if err != nil {
		return nil, err
	}
	return d.ParseOne(sql)
}

// Generate renders node as SQL text under the named dialect's
// formatting conventions.
func Generate(node ast.Node, dialectName string) (string, error) {
	d, err := resolve(dialectName)
	if err != nil {
		return "", err
	}
	return d.Generate(node), nil
}

// Format parses sql and re-emits its first statement under the named
// dialect's conventions.
func Format(sql, dialectName string) (string, error) {
	d, err := resolve(dialectName)
	if err != nil {
		return "", err
	}
	return d.Format(sql)
}

// Transpile parses sql under sourceDialect and re-emits it under
// targetDialect.
func Transpile(sql, sourceDialect, targetDialect string) (string, error) {
	src, err := resolve(sourceDialect)
	if err != nil {
		return "", err
	}
	dst, err := resolve(targetDialect)
	if err != nil {
		return "", err
	}
	return src.Transpile(sql, dst)
}

// Optimize runs cfg's enabled rules over stmt under the named
// dialect's normalization conventions.
func Optimize(stmt ast.Statement, cfg optimizer.Config, dialectName string) (ast.Statement, error) {
	d, err := resolve(dialectName)
	if err != nil {
		return nil, err
	}
	return d.Optimize(stmt, cfg), nil
}

// ParseAndOptimize parses the first statement in sql and runs it
// through Optimize in one call.
func ParseAndOptimize(sql string, cfg optimizer.Config, dialectName string) (ast.Statement, error) {
	d, err := resolve(dialectName)
	if err != nil {
		return nil, err
	}
	return d.ParseAndOptimize(sql, cfg)
}

// FormatWithOptimization parses, optimizes, then re-emits sql in one
// call.
func FormatWithOptimization(sql string, cfg optimizer.Config, dialectName string) (string, error) {
	d, err := resolve(dialectName)
	if err != nil {
		return "", err
	}
	return d.FormatWithOptimization(sql, cfg)
}

// Walk traverses node's tree in pre-order, calling fn for each node.
// If fn returns false, that node's children are not visited.
func Walk(node ast.Node, fn func(ast.Node) bool) {
	ast.Walk(node, fn)
}

// WalkBFS traverses node's tree breadth-first: every node at a given
// depth is visited before any node at the next depth. If fn returns
// false for a node, that node's own children are skipped, but nodes
// already queued at the same depth are still visited.
func WalkBFS(node ast.Node, fn func(ast.Node) bool) {
	ast.WalkOrdered(node, ast.BFS, fn)
}

// Transform rewrites node's tree bottom-up (children before parents),
// replacing each node with fn's return value.
func Transform(node ast.Node, fn func(ast.Node) ast.Node) ast.Node {
	return ast.Transform(node, fn)
}

// Dialects returns the names of every registered dialect, sorted.
func Dialects() []string {
	return dialect.Names()
}

// GeneratorOptions exposes generator.Options for callers building a
// custom Dialect without importing the generator package directly.
type GeneratorOptions = generator.Options
