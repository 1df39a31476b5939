// Package generator re-emits SQL text from the ast tree built by the
// parser. The default visit method for each node produces the
// canonical ANSI surface form; a Dialect supplies a TransformTable
// keyed by ast.Kind to override individual node kinds (MySQL backtick
// quoting, T-SQL TOP instead of LIMIT, and so on) without touching the
// shared switch.
package generator

import (
	"bytes"
	"reflect"
	"strings"

	"github.com/brindlecode/sqlforge/ast"
	"github.com/brindlecode/sqlforge/token"
)

// Options controls dialect-independent formatting knobs.
type Options struct {
	// Identify, when true, quotes every identifier regardless of
	// whether it collides with a keyword or contains unusual
	// characters. When false (the default), only identifiers that
	// need it are quoted.
	Identify bool
	// Normalize uppercases keywords when true (the default); when
	// false, keywords are emitted lowercase.
	Normalize bool
	// QuoteIdent overrides identifier quoting. Nil uses the ANSI
	// double-quote-with-doubling convention; a dialect substitutes
	// backticks, brackets, or bare passthrough here.
	QuoteIdent func(name string) string
}

// DefaultOptions are the ANSI-style defaults: uppercase keywords, and
// identifiers quoted only when needed.
var DefaultOptions = Options{
	Identify:  false,
	Normalize: true,
}

// TransformFunc renders n itself (not just a fragment); the Generator
// does not recurse into n's children on its behalf; dialect code must
// do so via g.Render.
type TransformFunc func(g *Generator, n ast.Node) string

// TransformTable maps a node Kind to a dialect-specific override. A
// missing entry falls through to the default visit method.
type TransformTable map[ast.Kind]TransformFunc

// Generator renders an ast.Node tree to SQL text.
type Generator struct {
	buf        bytes.Buffer
	opts       Options
	transforms TransformTable
}

// New creates a Generator with opts and an optional dialect transform
// table (nil uses only the default rendering).
func New(opts Options, transforms TransformTable) *Generator {
	return &Generator{opts: opts, transforms: transforms}
}

// Generate renders node to SQL text using opts and transforms with no
// dialect override (the ANSI baseline).
func Generate(node ast.Node) string {
	g := New(DefaultOptions, nil)
	g.Format(node)
	return g.String()
}

// String returns the text accumulated so far.
func (g *Generator) String() string { return g.buf.String() }

// Options returns the formatting options g was built with, so a
// dialect TransformFunc can match its own casing/quoting conventions
// (e.g. Normalize) without threading them through separately.
func (g *Generator) Options() Options { return g.opts }

// KeywordText renders kw with the same casing writeKeyword would use,
// for a TransformFunc composing a full replacement string instead of
// delegating to the default visit method.
func (g *Generator) KeywordText(kw string) string {
	if g.opts.Normalize {
		return strings.ToUpper(kw)
	}
	return strings.ToLower(kw)
}

// Format renders node (and, recursively, its children) to the internal
// buffer. A dialect transform for node.Kind() takes priority over the
// default visit method.
func (g *Generator) Format(node ast.Node) {
	if node == nil || isNilNode(node) {
		return
	}
	if g.transforms != nil {
		if fn, ok := g.transforms[node.Kind()]; ok {
			g.write(fn(g, node))
			return
		}
	}

	switch n := node.(type) {
	case *ast.Select:
		g.formatSelect(n)
	case *ast.SetOp:
		g.formatSetOp(n)
	case *ast.With:
		g.formatWith(n)
	case *ast.CTE:
		g.formatCTE(n)
	case *ast.Insert:
		g.formatInsert(n)
	case *ast.Update:
		g.formatUpdate(n)
	case *ast.Delete:
		g.formatDelete(n)
	case *ast.CreateTable:
		g.formatCreateTable(n)
	case *ast.AlterTable:
		g.formatAlterTable(n)
	case *ast.DropTable:
		g.formatDropTable(n)
	case *ast.CreateIndex:
		g.formatCreateIndex(n)
	case *ast.DropIndex:
		g.formatDropIndex(n)
	case *ast.Truncate:
		g.formatTruncate(n)
	case *ast.Explain:
		g.formatExplain(n)

	case *ast.Binary:
		g.formatBinary(n)
	case *ast.Unary:
		g.formatUnary(n)
	case *ast.Paren:
		g.write("(")
		g.Format(n.Expr)
		g.write(")")
	case *ast.Collate:
		g.Format(n.Expr)
		g.write(" ")
		g.writeKeyword("COLLATE")
		g.write(" ")
		g.writeIdent(n.Collation)
	case *ast.Cast:
		g.formatCast(n)
	case *ast.Func:
		g.formatFunc(n)
	case *ast.Case:
		g.formatCase(n)
	case *ast.In:
		g.formatIn(n)
	case *ast.Between:
		g.formatBetween(n)
	case *ast.Like:
		g.formatLike(n)
	case *ast.Is:
		g.formatIs(n)
	case *ast.Exists:
		g.formatExists(n)
	case *ast.Subquery:
		g.write("(")
		g.Format(n.Select)
		g.write(")")
	case *ast.Array:
		g.formatArray(n)
	case *ast.Subscript:
		g.Format(n.Expr)
		g.write("[")
		g.Format(n.Index)
		g.write("]")
	case *ast.Interval:
		g.writeKeyword("INTERVAL")
		g.write(" ")
		g.Format(n.Value)
		if n.Unit != "" {
			g.write(" ")
			g.writeKeyword(n.Unit)
		}
	case *ast.Extract:
		g.writeKeyword("EXTRACT")
		g.write("(")
		g.writeIdent(n.Field)
		g.write(" ")
		g.writeKeyword("FROM")
		g.write(" ")
		g.Format(n.Source)
		g.write(")")
	case *ast.Trim:
		g.formatTrim(n)
	case *ast.Substring:
		g.formatSubstring(n)
	case *ast.Position:
		g.writeKeyword("POSITION")
		g.write("(")
		g.Format(n.Needle)
		g.write(" ")
		g.writeKeyword("IN")
		g.write(" ")
		g.Format(n.Haystack)
		g.write(")")

	case *ast.Literal:
		g.formatLiteral(n)
	case *ast.ColName:
		g.formatColName(n)
	case *ast.Star:
		if n.Qualifier != "" {
			g.writeIdent(n.Qualifier)
			g.write(".")
		}
		g.write("*")
	case *ast.Parameter:
		g.formatParameter(n)
	case *ast.AliasedExpr:
		g.Format(n.Expr)
		if n.Alias != "" {
			g.write(" ")
			g.writeKeyword("AS")
			g.write(" ")
			g.writeIdent(n.Alias)
		}

	case *ast.TableName:
		g.formatTableName(n)
	case *ast.AliasedTableExpr:
		g.formatAliasedTableExpr(n)
	case *ast.Join:
		g.formatJoin(n)
	case *ast.ParenTableExpr:
		g.write("(")
		g.Format(n.Expr)
		g.write(")")
	case *ast.Values:
		g.formatValues(n)

	case *ast.OrderBy:
		g.formatOrderBy(n)
	case *ast.Limit:
		g.formatLimit(n)
	case *ast.WindowSpec:
		g.formatWindowSpec(n)
	case *ast.WindowFrame:
		g.formatWindowFrame(n)
	case *ast.FrameBound:
		g.formatFrameBound(n)
	case *ast.WindowDef:
		g.writeIdent(n.Name)
		g.write(" ")
		g.writeKeyword("AS")
		g.write(" ")
		g.formatWindowSpecBody(n.Spec)
	case *ast.IndexHint:
		g.formatIndexHint(n)

	case *ast.ColumnDef:
		g.formatColumnDef(n)
	case *ast.DataType:
		g.formatDataType(n)
	case *ast.ColumnConstraint:
		g.formatColumnConstraint(n)
	case *ast.TableConstraint:
		g.formatTableConstraint(n)
	case *ast.ForeignKeyRef:
		g.formatForeignKeyRef(n)
	case *ast.TableOption:
		g.write(n.Name)
		g.write("=")
		g.write(n.Value)
	case *ast.IndexColumn:
		g.formatIndexColumn(n)

	case *ast.UpdateExpr:
		g.formatColName(n.Column)
		g.write(" = ")
		g.Format(n.Expr)
	case *ast.OnConflict:
		g.formatOnConflict(n)

	default:
		// Unknown node kind: leave a visible marker rather than
		// silently dropping content. The generator never fails on a
		// well-formed tree; a node reaching here means the caller
		// passed a malformed or foreign tree.
		g.write("/* unsupported node */")
	}
}

// Render renders n to its own isolated string, using the same options
// and dialect transform table as g but a fresh internal buffer. A
// TransformFunc composing several rendered pieces into one returned
// string (rather than delegating the whole node to the default visit
// method) calls this — g.Format itself always writes into g's own
// buffer, which would land in the wrong place relative to text the
// TransformFunc still needs to assemble around it.
func (g *Generator) Render(n ast.Node) string {
	sub := New(g.opts, g.transforms)
	sub.Format(n)
	return sub.String()
}

// DefaultText renders n via the base (non-dialect-overridden) visit
// method, ignoring any transform table entry for its Kind. A dialect
// transform function that only wants to special-case part of a node
// (e.g. LIMIT's keyword, leaving the clause order alone) calls this to
// get the ANSI baseline text for reuse rather than reimplementing it.
func (g *Generator) DefaultText(n ast.Node) string {
	sub := New(g.opts, nil)
	sub.Format(n)
	return sub.String()
}

func (g *Generator) write(s string) { g.buf.WriteString(s) }

func (g *Generator) writeKeyword(kw string) {
	if g.opts.Normalize {
		g.buf.WriteString(strings.ToUpper(kw))
	} else {
		g.buf.WriteString(strings.ToLower(kw))
	}
}

func (g *Generator) writeIdent(id string) {
	if g.opts.QuoteIdent != nil {
		if g.opts.Identify || needsQuoting(id) {
			g.buf.WriteString(g.opts.QuoteIdent(id))
			return
		}
		g.buf.WriteString(id)
		return
	}
	if g.opts.Identify || needsQuoting(id) {
		g.buf.WriteByte('"')
		g.buf.WriteString(strings.ReplaceAll(id, `"`, `""`))
		g.buf.WriteByte('"')
		return
	}
	g.buf.WriteString(id)
}

// writeQuotedIdent always quotes id, bypassing the needsQuoting
// heuristic — used for identifiers the quote_identifiers optimizer
// rule has already flagged (ast.ColName.Quoted / ast.TableName.Quoted).
func (g *Generator) writeQuotedIdent(id string) {
	if g.opts.QuoteIdent != nil {
		g.buf.WriteString(g.opts.QuoteIdent(id))
		return
	}
	g.buf.WriteByte('"')
	g.buf.WriteString(strings.ReplaceAll(id, `"`, `""`))
	g.buf.WriteByte('"')
}

// writeFuncName writes a function name. Unlike writeIdent it never
// quotes for keyword-collision reasons alone: many built-in function
// names (COUNT, ANY, LEFT, ...) are also reserved words.
func (g *Generator) writeFuncName(name string) {
	if needsQuotingNonKeyword(name) {
		g.buf.WriteByte('"')
		g.buf.WriteString(strings.ReplaceAll(name, `"`, `""`))
		g.buf.WriteByte('"')
		return
	}
	g.buf.WriteString(name)
}

func needsQuoting(id string) bool {
	return needsQuotingNonKeyword(id) || token.IsKeyword(id)
}

func needsQuotingNonKeyword(id string) bool {
	if len(id) == 0 {
		return true
	}
	ch := id[0]
	if !((ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_') {
		return true
	}
	for i := 1; i < len(id); i++ {
		ch := id[i]
		if !((ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') || ch == '_' || ch == '$') {
			return true
		}
	}
	return false
}

// isNilNode reports whether n is a typed nil pointer boxed in the Node
// interface (e.g. a missing optional clause represented as a nil
// *ast.Limit), mirroring ast.Walk/Transform's own guard.
func isNilNode(n ast.Node) bool {
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
