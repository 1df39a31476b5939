// Package optimizer implements a fixed, semantics-preserving rule
// pipeline, built directly on ast.Transform/ast.Walk and the scope
// package.
//
// Every rule is a pure func(ast.Statement, Context) ast.Statement. A
// rule that cannot apply to a given tree returns it unchanged — the
// optimizer never fails; only the dialect registry and malformed
// input can.
package optimizer

import "github.com/brindlecode/sqlforge/ast"

// Config selects which of the 11 rules run, and in what combination.
type Config struct {
	Simplify            bool
	Canonicalize        bool
	QuoteIdentifiers    bool
	EliminateCTEs       bool
	NormalizePredicates bool
	PushdownPredicates  bool
	MergeSubqueries     bool
	JoinReordering      bool
	ProjectionPushdown  bool
	AnnotateTypes       bool
	QualifyColumns      bool
}

// Minimal runs only the simplify rule.
var Minimal = Config{Simplify: true}

// Default (= PHASE_5A) runs the four rules that need no cost model and
// no catalog: simplify, canonicalize, quote_identifiers, eliminate_ctes.
var Default = Config{
	Simplify:         true,
	Canonicalize:     true,
	QuoteIdentifiers: true,
	EliminateCTEs:    true,
}

// Aggressive (= PHASE_5B) runs all eleven rules.
var Aggressive = Config{
	Simplify:            true,
	Canonicalize:        true,
	QuoteIdentifiers:    true,
	EliminateCTEs:       true,
	NormalizePredicates: true,
	PushdownPredicates:  true,
	MergeSubqueries:     true,
	JoinReordering:      true,
	ProjectionPushdown:  true,
	AnnotateTypes:       true,
	QualifyColumns:      true,
}

// Context carries everything a rule needs beyond the tree itself:
// the target dialect's identifier-casing convention, a catalog of
// known table/column names (nil when unavailable — rules that need it
// degrade to no-ops rather than guessing), and which rules to run.
type Context struct {
	// Normalize folds an unquoted identifier to the dialect's default
	// case. No built-in rule reads it; identifiers keep their source
	// casing whether or not it is set.
	Normalize func(string) string
	// Schema maps a table name to its ordered column names. Only
	// annotate_types and qualify_columns consult it, and only when
	// non-nil.
	Schema map[string][]string
	Config Config
}

type rule struct {
	name string
	run  func(ast.Statement, Context) ast.Statement
	on   func(Config) bool
}

// pipeline is the fixed rule order. Order
// matters: eliminate_ctes must run before pushdown/merge/projection
// rules see the inlined query shape, and qualify_columns runs last so
// every earlier rewrite still sees unqualified names while applicable.
var pipeline = []rule{
	{"simplify", simplify, func(c Config) bool { return c.Simplify }},
	{"canonicalize", canonicalize, func(c Config) bool { return c.Canonicalize }},
	{"quote_identifiers", quoteIdentifiers, func(c Config) bool { return c.QuoteIdentifiers }},
	{"eliminate_ctes", eliminateCTEs, func(c Config) bool { return c.EliminateCTEs }},
	{"normalize_predicates", normalizePredicates, func(c Config) bool { return c.NormalizePredicates }},
	{"pushdown_predicates", pushdownPredicates, func(c Config) bool { return c.PushdownPredicates }},
	{"merge_subqueries", mergeSubqueries, func(c Config) bool { return c.MergeSubqueries }},
	{"join_reordering", joinReordering, func(c Config) bool { return c.JoinReordering }},
	{"projection_pushdown", projectionPushdown, func(c Config) bool { return c.ProjectionPushdown }},
	{"annotate_types", annotateTypes, func(c Config) bool { return c.AnnotateTypes }},
	{"qualify_columns", qualifyColumns, func(c Config) bool { return c.QualifyColumns }},
}

// Optimize runs every enabled rule over stmt, in the fixed pipeline
// order, and returns the rewritten tree. stmt is never mutated in
// place; each rule that fires returns a freshly rebuilt tree (the
// ast.Transform contract).
func Optimize(stmt ast.Statement, ctx Context) ast.Statement {
	for _, r := range pipeline {
		if !r.on(ctx.Config) {
			continue
		}
		stmt = r.run(stmt, ctx)
	}
	return stmt
}
