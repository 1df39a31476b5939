package generator

import (
	"strconv"
	"strings"

	"github.com/brindlecode/sqlforge/ast"
)

var binOpText = map[ast.BinOp]string{
	ast.OpAdd:    "+",
	ast.OpSub:    "-",
	ast.OpMul:    "*",
	ast.OpDiv:    "/",
	ast.OpMod:    "%",
	ast.OpConcat: "||",
	ast.OpAnd:    "AND",
	ast.OpOr:     "OR",
	ast.OpXor:    "XOR",
	ast.OpEq:     "=",
	ast.OpNeq:    "<>",
	ast.OpLt:     "<",
	ast.OpGt:     ">",
	ast.OpLte:    "<=",
	ast.OpGte:    ">=",
	ast.OpBitAnd: "&",
	ast.OpBitOr:  "|",
	ast.OpBitXor: "^",
	ast.OpLShift: "<<",
	ast.OpRShift: ">>",
}

// isWordOp reports whether op renders as a keyword (AND/OR/XOR) rather
// than a symbol, so writeKeyword's case-folding applies to it.
func isWordOp(op ast.BinOp) bool {
	return op == ast.OpAnd || op == ast.OpOr || op == ast.OpXor
}

func (g *Generator) formatBinary(b *ast.Binary) {
	g.Format(b.Left)
	g.write(" ")
	txt := binOpText[b.Op]
	if isWordOp(b.Op) {
		g.writeKeyword(txt)
	} else {
		g.write(txt)
	}
	g.write(" ")
	g.Format(b.Right)
}

func (g *Generator) formatUnary(u *ast.Unary) {
	switch u.Op {
	case ast.OpNot:
		g.writeKeyword("NOT")
		g.write(" ")
	case ast.OpNeg:
		g.write("-")
		if inner, ok := u.Operand.(*ast.Unary); ok && inner.Op == ast.OpNeg {
			g.write(" ")
		}
	case ast.OpBitNot:
		g.write("~")
	}
	g.Format(u.Operand)
}

func (g *Generator) formatCast(c *ast.Cast) {
	if c.IsShorthand {
		g.Format(c.Expr)
		g.write("::")
		g.Format(c.Type)
		return
	}
	g.writeKeyword("CAST")
	g.write("(")
	g.Format(c.Expr)
	g.write(" ")
	g.writeKeyword("AS")
	g.write(" ")
	g.Format(c.Type)
	g.write(")")
}

func (g *Generator) formatFunc(f *ast.Func) {
	g.writeFuncName(f.Name)
	g.write("(")
	if f.Distinct {
		g.writeKeyword("DISTINCT")
		g.write(" ")
	}
	for i, a := range f.Args_ {
		if i > 0 {
			g.write(", ")
		}
		g.Format(a)
	}
	if len(f.OrderBy) > 0 {
		g.write(" ")
		g.writeKeyword("ORDER BY")
		g.write(" ")
		for i, ob := range f.OrderBy {
			if i > 0 {
				g.write(", ")
			}
			g.Format(ob)
		}
	}
	g.write(")")
	if f.Filter != nil {
		g.write(" ")
		g.writeKeyword("FILTER")
		g.write(" (")
		g.writeKeyword("WHERE")
		g.write(" ")
		g.Format(f.Filter)
		g.write(")")
	}
	if f.Over != nil {
		g.write(" ")
		g.writeKeyword("OVER")
		g.write(" ")
		g.formatWindowSpecBody(f.Over)
	}
}

func (g *Generator) formatWindowSpec(spec *ast.WindowSpec) {
	g.writeKeyword("OVER")
	g.write(" ")
	g.formatWindowSpecBody(spec)
}

// formatWindowSpecBody renders the `(...)` (or bare name) body of an
// OVER clause or named WINDOW definition, shared by Func.Over and
// WindowDef.
func (g *Generator) formatWindowSpecBody(spec *ast.WindowSpec) {
	if spec.Name != "" && len(spec.PartitionBy) == 0 && len(spec.OrderBy) == 0 && spec.Frame == nil {
		g.writeIdent(spec.Name)
		return
	}
	g.write("(")
	wrote := false
	if spec.Name != "" {
		g.writeIdent(spec.Name)
		wrote = true
	}
	if len(spec.PartitionBy) > 0 {
		if wrote {
			g.write(" ")
		}
		g.writeKeyword("PARTITION BY")
		g.write(" ")
		for i, pb := range spec.PartitionBy {
			if i > 0 {
				g.write(", ")
			}
			g.Format(pb)
		}
		wrote = true
	}
	if len(spec.OrderBy) > 0 {
		if wrote {
			g.write(" ")
		}
		g.writeKeyword("ORDER BY")
		g.write(" ")
		for i, ob := range spec.OrderBy {
			if i > 0 {
				g.write(", ")
			}
			g.Format(ob)
		}
		wrote = true
	}
	if spec.Frame != nil {
		if wrote {
			g.write(" ")
		}
		g.Format(spec.Frame)
	}
	g.write(")")
}

func (g *Generator) formatWindowFrame(frame *ast.WindowFrame) {
	switch frame.FrameKind {
	case ast.FrameRows:
		g.writeKeyword("ROWS")
	case ast.FrameRange:
		g.writeKeyword("RANGE")
	case ast.FrameGroups:
		g.writeKeyword("GROUPS")
	}
	g.write(" ")
	if frame.End != nil {
		g.writeKeyword("BETWEEN")
		g.write(" ")
		g.Format(frame.Start)
		g.write(" ")
		g.writeKeyword("AND")
		g.write(" ")
		g.Format(frame.End)
	} else {
		g.Format(frame.Start)
	}
}

func (g *Generator) formatFrameBound(b *ast.FrameBound) {
	switch b.BoundKind {
	case ast.BoundCurrentRow:
		g.writeKeyword("CURRENT ROW")
	case ast.BoundUnboundedPreceding:
		g.writeKeyword("UNBOUNDED PRECEDING")
	case ast.BoundUnboundedFollowing:
		g.writeKeyword("UNBOUNDED FOLLOWING")
	case ast.BoundPreceding:
		g.Format(b.Offset)
		g.write(" ")
		g.writeKeyword("PRECEDING")
	case ast.BoundFollowing:
		g.Format(b.Offset)
		g.write(" ")
		g.writeKeyword("FOLLOWING")
	}
}

func (g *Generator) formatCase(c *ast.Case) {
	g.writeKeyword("CASE")
	if c.Operand != nil {
		g.write(" ")
		g.Format(c.Operand)
	}
	for _, w := range c.Whens {
		g.write(" ")
		g.writeKeyword("WHEN")
		g.write(" ")
		g.Format(w.Cond)
		g.write(" ")
		g.writeKeyword("THEN")
		g.write(" ")
		g.Format(w.Result)
	}
	if c.Else != nil {
		g.write(" ")
		g.writeKeyword("ELSE")
		g.write(" ")
		g.Format(c.Else)
	}
	g.write(" ")
	g.writeKeyword("END")
}

func (g *Generator) formatIn(in *ast.In) {
	g.Format(in.Expr)
	if in.Not {
		g.write(" ")
		g.writeKeyword("NOT")
	}
	g.write(" ")
	g.writeKeyword("IN")
	g.write(" (")
	if in.Select != nil {
		g.Format(in.Select)
	} else {
		for i, v := range in.Values {
			if i > 0 {
				g.write(", ")
			}
			g.Format(v)
		}
	}
	g.write(")")
}

func (g *Generator) formatBetween(b *ast.Between) {
	g.Format(b.Expr)
	if b.Not {
		g.write(" ")
		g.writeKeyword("NOT")
	}
	g.write(" ")
	g.writeKeyword("BETWEEN")
	g.write(" ")
	g.Format(b.Low)
	g.write(" ")
	g.writeKeyword("AND")
	g.write(" ")
	g.Format(b.High)
}

func (g *Generator) formatLike(l *ast.Like) {
	g.Format(l.Expr)
	if l.Not {
		g.write(" ")
		g.writeKeyword("NOT")
	}
	g.write(" ")
	switch l.Variant {
	case ast.LikeInsensitive:
		g.writeKeyword("ILIKE")
	case ast.LikeSimilarTo:
		g.writeKeyword("SIMILAR TO")
	default:
		g.writeKeyword("LIKE")
	}
	g.write(" ")
	g.Format(l.Pattern)
	if l.Escape != nil {
		g.write(" ")
		g.writeKeyword("ESCAPE")
		g.write(" ")
		g.Format(l.Escape)
	}
}

func (g *Generator) formatIs(is *ast.Is) {
	g.Format(is.Expr)
	g.write(" ")
	g.writeKeyword("IS")
	if is.Not {
		g.write(" ")
		g.writeKeyword("NOT")
	}
	g.write(" ")
	switch is.What {
	case ast.IsNull:
		g.writeKeyword("NULL")
	case ast.IsTrue:
		g.writeKeyword("TRUE")
	case ast.IsFalse:
		g.writeKeyword("FALSE")
	case ast.IsUnknown:
		g.writeKeyword("UNKNOWN")
	}
}

func (g *Generator) formatExists(e *ast.Exists) {
	if e.Not {
		g.writeKeyword("NOT")
		g.write(" ")
	}
	g.writeKeyword("EXISTS")
	g.write(" ")
	g.Format(e.Subquery)
}

func (g *Generator) formatArray(a *ast.Array) {
	g.writeKeyword("ARRAY")
	g.write("[")
	for i, e := range a.Elements {
		if i > 0 {
			g.write(", ")
		}
		g.Format(e)
	}
	g.write("]")
}

func (g *Generator) formatTrim(t *ast.Trim) {
	g.writeKeyword("TRIM")
	g.write("(")
	switch t.TrimKind {
	case ast.TrimLeading:
		g.writeKeyword("LEADING")
		g.write(" ")
	case ast.TrimTrailing:
		g.writeKeyword("TRAILING")
		g.write(" ")
	case ast.TrimBoth:
		g.writeKeyword("BOTH")
		g.write(" ")
	}
	if t.TrimChars != nil {
		g.Format(t.TrimChars)
		g.write(" ")
	}
	g.writeKeyword("FROM")
	g.write(" ")
	g.Format(t.Expr)
	g.write(")")
}

func (g *Generator) formatSubstring(s *ast.Substring) {
	g.writeKeyword("SUBSTRING")
	g.write("(")
	g.Format(s.Expr)
	if s.From != nil {
		g.write(" ")
		g.writeKeyword("FROM")
		g.write(" ")
		g.Format(s.From)
	}
	if s.For != nil {
		g.write(" ")
		g.writeKeyword("FOR")
		g.write(" ")
		g.Format(s.For)
	}
	g.write(")")
}

func (g *Generator) formatColName(c *ast.ColName) {
	for i, part := range c.Parts {
		if i > 0 {
			g.write(".")
		}
		if c.Quoted {
			g.writeQuotedIdent(part)
		} else {
			g.writeIdent(part)
		}
	}
}

func (g *Generator) formatTableName(t *ast.TableName) {
	for i, part := range t.Parts {
		if i > 0 {
			g.write(".")
		}
		if t.Quoted {
			g.writeQuotedIdent(part)
		} else {
			g.writeIdent(part)
		}
	}
}

func (g *Generator) formatLiteral(l *ast.Literal) {
	switch l.LitKind {
	case ast.LiteralNull:
		if l.Value == "DEFAULT" {
			g.writeKeyword("DEFAULT")
		} else {
			g.writeKeyword("NULL")
		}
	case ast.LiteralString:
		g.formatStringLiteral(l.Value)
	case ast.LiteralBool:
		g.writeKeyword(l.Value)
	default:
		g.write(l.Value)
	}
}

func (g *Generator) formatStringLiteral(s string) {
	g.write("'")
	escaped := strings.ReplaceAll(s, "'", "''")
	g.write(escaped)
	g.write("'")
}

func (g *Generator) formatParameter(p *ast.Parameter) {
	switch p.Style {
	case ast.ParamQuestion:
		g.write("?")
	case ast.ParamDollar:
		g.write("$")
		g.write(strconv.Itoa(p.Index))
	case ast.ParamColon:
		g.write(":")
		g.write(p.Name)
	case ast.ParamAt:
		g.write("@")
		g.write(p.Name)
	}
}

func (g *Generator) formatAliasedTableExpr(a *ast.AliasedTableExpr) {
	g.Format(a.Expr)
	if a.Alias != "" {
		g.write(" ")
		g.writeKeyword("AS")
		g.write(" ")
		g.writeIdent(a.Alias)
	}
	for _, h := range a.Hints {
		g.write(" ")
		g.Format(h)
	}
}

func (g *Generator) formatIndexHint(h *ast.IndexHint) {
	switch h.HintType {
	case ast.HintUse:
		g.writeKeyword("USE INDEX")
	case ast.HintForce:
		g.writeKeyword("FORCE INDEX")
	case ast.HintIgnore:
		g.writeKeyword("IGNORE INDEX")
	}
	switch h.For {
	case ast.HintForJoin:
		g.write(" ")
		g.writeKeyword("FOR JOIN")
	case ast.HintForOrderBy:
		g.write(" ")
		g.writeKeyword("FOR ORDER BY")
	case ast.HintForGroupBy:
		g.write(" ")
		g.writeKeyword("FOR GROUP BY")
	}
	g.write(" (")
	for i, idx := range h.Indexes {
		if i > 0 {
			g.write(", ")
		}
		g.writeIdent(idx)
	}
	g.write(")")
}

func (g *Generator) formatJoin(j *ast.Join) {
	g.Format(j.Left)
	g.write(" ")
	if j.Natural {
		g.writeKeyword("NATURAL")
		g.write(" ")
	}
	if j.Lateral {
		g.writeKeyword("LATERAL")
		g.write(" ")
	}
	g.writeKeyword(j.JoinKind.String())
	g.write(" ")
	g.Format(j.Right)
	if j.On != nil {
		g.write(" ")
		g.writeKeyword("ON")
		g.write(" ")
		g.Format(j.On)
	}
	if len(j.Using) > 0 {
		g.write(" ")
		g.writeKeyword("USING")
		g.write(" (")
		for i, col := range j.Using {
			if i > 0 {
				g.write(", ")
			}
			g.writeIdent(col)
		}
		g.write(")")
	}
}

func (g *Generator) formatValues(v *ast.Values) {
	g.writeKeyword("VALUES")
	g.write(" ")
	for i, row := range v.Rows {
		if i > 0 {
			g.write(", ")
		}
		g.write("(")
		for j, val := range row {
			if j > 0 {
				g.write(", ")
			}
			g.Format(val)
		}
		g.write(")")
	}
}
