// Package dialect binds a tokenizer/parser/generator configuration
// under a name: the identifier- and string-quoting conventions, a
// normalization strategy for unquoted identifiers, and a generator
// transform table for dialect-specific surface forms. This package is
// what makes those choices pluggable, grounded on the per-dialect
// keyword/comment sections token/token.go already carries
// (MySQL/PostgreSQL/SQL Server/Oracle/SQLite) and on
// lexer.QuoteSet / generator.TransformTable, which exist to be
// parameterized exactly this way.
package dialect

import (
	"strings"

	"github.com/brindlecode/sqlforge/ast"
	"github.com/brindlecode/sqlforge/generator"
	"github.com/brindlecode/sqlforge/lexer"
	"github.com/brindlecode/sqlforge/optimizer"
	"github.com/brindlecode/sqlforge/parser"
)

// Normalization is the case-folding convention a dialect applies to an
// unquoted identifier when deciding how to compare or re-emit it.
type Normalization int

const (
	// Preserve keeps source casing (PostgreSQL's default for quoted
	// identifiers; this core applies it uniformly since it does not
	// track quoted-vs-unquoted identifier provenance beyond the
	// optimizer's Quoted flag).
	Preserve Normalization = iota
	// Uppercase folds to upper case (ANSI, Oracle).
	Uppercase
	// Lowercase folds to lower case (PostgreSQL's unquoted-identifier
	// convention, MySQL on case-insensitive filesystems).
	Lowercase
)

// Fold applies the strategy to name.
func (n Normalization) Fold(name string) string {
	switch n {
	case Uppercase:
		return strings.ToUpper(name)
	case Lowercase:
		return strings.ToLower(name)
	default:
		return name
	}
}

// Dialect bundles everything the pipeline needs to read and re-emit
// one SQL variant. The zero value is not valid; build one with New or
// use a registered builtin (ANSI, Postgres, MySQL, SQLite,
// SQLServer).
type Dialect struct {
	// Name is the registry key: upper-case by convention, looked up
	// case-insensitively.
	Name string
	// Normalize is the dialect's folding strategy for unquoted
	// identifiers. Optimize hands its Fold to optimizer.Context;
	// Generate does not apply it, so identifiers are re-emitted with
	// their source casing.
	Normalize Normalization
	// Quotes selects identifier/string quoting and the keyword set the
	// tokenizer recognizes.
	Quotes lexer.QuoteSet
	// GenOptions seeds the generator's dialect-independent knobs;
	// QuoteIdent is usually set here to the dialect's own quoting
	// convention.
	GenOptions generator.Options
	// Transforms overrides individual node kinds at generation time —
	// e.g. MySQL's IFNULL-for-COALESCE, T-SQL's TOP instead of LIMIT.
	Transforms generator.TransformTable
}

// ParserConfig returns the parser.Config that reads this dialect's SQL
// with the given error-handling policy.
func (d *Dialect) ParserConfig(level parser.ErrorLevel, maxErrors int) parser.Config {
	return parser.Config{Quotes: d.Quotes, ErrorLevel: level, MaxErrors: maxErrors}
}

// Parse parses every statement in sql under this dialect's lexical
// conventions, using the default error policy (raise, 100).
func (d *Dialect) Parse(sql string) ([]ast.Statement, error) {
	p := parser.NewWithConfig(sql, d.ParserConfig(parser.LevelRaise, 0))
	return p.ParseAll()
}

// ParseOne parses the first statement in sql, or returns (nil, nil)
// for empty/whitespace-only input.
func (d *Dialect) ParseOne(sql string) (ast.Statement, error) {
	p := parser.NewWithConfig(sql, d.ParserConfig(parser.LevelRaise, 0))
	stmt, err := p.Parse()
	if stmt == nil {
		return nil, err
	}
	return stmt, err
}

// Generate renders node as SQL text under this dialect's formatting
// conventions.
func (d *Dialect) Generate(node ast.Node) string {
	g := generator.New(d.GenOptions, d.Transforms)
	g.Format(node)
	return g.String()
}

// Format parses sql and re-emits the first statement under this
// dialect's conventions (parse + generate).
func (d *Dialect) Format(sql string) (string, error) {
	stmt, err := d.ParseOne(sql)
	if err != nil {
		return "", err
	}
	if stmt == nil {
		return "", nil
	}
	return d.Generate(stmt), nil
}

// Transpile parses sql under this dialect and re-emits it under
// target's conventions.
func (d *Dialect) Transpile(sql string, target *Dialect) (string, error) {
	stmt, err := d.ParseOne(sql)
	if err != nil {
		return "", err
	}
	if stmt == nil {
		return "", nil
	}
	return target.Generate(stmt), nil
}

// Optimize runs cfg's enabled rules over stmt, passing this dialect's
// Normalize strategy as Context.Normalize. None of the built-in rules
// reads that field, so identifier casing is left as parsed.
func (d *Dialect) Optimize(stmt ast.Statement, cfg optimizer.Config) ast.Statement {
	return optimizer.Optimize(stmt, optimizer.Context{Normalize: d.Normalize.Fold, Config: cfg})
}

// ParseAndOptimize parses the first statement in sql and runs it
// through Optimize, in one call.
func (d *Dialect) ParseAndOptimize(sql string, cfg optimizer.Config) (ast.Statement, error) {
	stmt, err := d.ParseOne(sql)
	if err != nil || stmt == nil {
		return nil, err
	}
	return d.Optimize(stmt, cfg), nil
}

// FormatWithOptimization parses, optimizes, then re-emits sql in one
// call.
func (d *Dialect) FormatWithOptimization(sql string, cfg optimizer.Config) (string, error) {
	stmt, err := d.ParseAndOptimize(sql, cfg)
	if err != nil {
		return "", err
	}
	if stmt == nil {
		return "", nil
	}
	return d.Generate(stmt), nil
}
