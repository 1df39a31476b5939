package generator

import "github.com/brindlecode/sqlforge/ast"

func (g *Generator) formatSelect(s *ast.Select) {
	if s.With != nil {
		g.Format(s.With)
		g.write(" ")
	}

	g.writeKeyword("SELECT")
	if s.Distinct {
		g.write(" ")
		g.writeKeyword("DISTINCT")
	}
	g.write(" ")
	for i, col := range s.Columns {
		if i > 0 {
			g.write(", ")
		}
		g.Format(col)
	}

	if s.From != nil {
		g.write(" ")
		g.writeKeyword("FROM")
		g.write(" ")
		g.Format(s.From)
	}

	if s.Where != nil {
		g.write(" ")
		g.writeKeyword("WHERE")
		g.write(" ")
		g.Format(s.Where)
	}

	if len(s.GroupBy) > 0 {
		g.write(" ")
		g.writeKeyword("GROUP BY")
		g.write(" ")
		for i, e := range s.GroupBy {
			if i > 0 {
				g.write(", ")
			}
			g.Format(e)
		}
	}

	if s.Having != nil {
		g.write(" ")
		g.writeKeyword("HAVING")
		g.write(" ")
		g.Format(s.Having)
	}

	if len(s.WindowDefs) > 0 {
		g.write(" ")
		g.writeKeyword("WINDOW")
		g.write(" ")
		for i, w := range s.WindowDefs {
			if i > 0 {
				g.write(", ")
			}
			g.Format(w)
		}
	}

	if len(s.OrderBy) > 0 {
		g.write(" ")
		g.writeKeyword("ORDER BY")
		g.write(" ")
		for i, ob := range s.OrderBy {
			if i > 0 {
				g.write(", ")
			}
			g.Format(ob)
		}
	}

	if s.Limit != nil {
		g.write(" ")
		g.Format(s.Limit)
	}

	if s.Lock != "" {
		g.write(" ")
		g.writeKeyword("FOR")
		g.write(" ")
		g.writeKeyword(s.Lock)
	}
}

func (g *Generator) formatSetOp(s *ast.SetOp) {
	g.Format(s.Left)
	g.write(" ")
	switch s.Op {
	case ast.SetUnion:
		g.writeKeyword("UNION")
	case ast.SetIntersect:
		g.writeKeyword("INTERSECT")
	case ast.SetExcept:
		g.writeKeyword("EXCEPT")
	}
	if s.All {
		g.write(" ")
		g.writeKeyword("ALL")
	}
	g.write(" ")
	g.Format(s.Right)

	if len(s.OrderBy) > 0 {
		g.write(" ")
		g.writeKeyword("ORDER BY")
		g.write(" ")
		for i, ob := range s.OrderBy {
			if i > 0 {
				g.write(", ")
			}
			g.Format(ob)
		}
	}
	if s.Limit != nil {
		g.write(" ")
		g.Format(s.Limit)
	}
}

func (g *Generator) formatWith(w *ast.With) {
	g.writeKeyword("WITH")
	if w.Recursive {
		g.write(" ")
		g.writeKeyword("RECURSIVE")
	}
	g.write(" ")
	for i, cte := range w.CTEs {
		if i > 0 {
			g.write(", ")
		}
		g.Format(cte)
	}
}

func (g *Generator) formatCTE(c *ast.CTE) {
	g.writeIdent(c.Name)
	if len(c.Columns) > 0 {
		g.write(" (")
		for i, col := range c.Columns {
			if i > 0 {
				g.write(", ")
			}
			g.writeIdent(col)
		}
		g.write(")")
	}
	g.write(" ")
	g.writeKeyword("AS")
	g.write(" (")
	g.Format(c.Query)
	g.write(")")
}

func (g *Generator) formatInsert(s *ast.Insert) {
	if s.With != nil {
		g.Format(s.With)
		g.write(" ")
	}
	if s.Replace {
		g.writeKeyword("REPLACE")
	} else {
		g.writeKeyword("INSERT")
	}
	if s.Ignore {
		g.write(" ")
		g.writeKeyword("IGNORE")
	}
	g.write(" ")
	g.writeKeyword("INTO")
	g.write(" ")
	g.Format(s.Table)

	if len(s.Columns) > 0 {
		g.write(" (")
		for i, col := range s.Columns {
			if i > 0 {
				g.write(", ")
			}
			g.writeIdent(col.Name())
		}
		g.write(")")
	}

	if s.Select != nil {
		g.write(" ")
		g.Format(s.Select)
	} else if len(s.Values) > 0 {
		g.write(" ")
		g.writeKeyword("VALUES")
		g.write(" ")
		for i, row := range s.Values {
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
	} else {
		g.write(" ")
		g.writeKeyword("DEFAULT VALUES")
	}

	if len(s.OnDuplicateUpdate) > 0 {
		g.write(" ")
		g.writeKeyword("ON DUPLICATE KEY UPDATE")
		g.write(" ")
		for i, ue := range s.OnDuplicateUpdate {
			if i > 0 {
				g.write(", ")
			}
			g.Format(ue)
		}
	}

	if s.OnConflict != nil {
		g.write(" ")
		g.writeKeyword("ON CONFLICT")
		g.Format(s.OnConflict)
	}

	if len(s.Returning) > 0 {
		g.write(" ")
		g.writeKeyword("RETURNING")
		g.write(" ")
		for i, col := range s.Returning {
			if i > 0 {
				g.write(", ")
			}
			g.Format(col)
		}
	}
}

func (g *Generator) formatOnConflict(o *ast.OnConflict) {
	if len(o.Columns) > 0 {
		g.write(" (")
		for i, col := range o.Columns {
			if i > 0 {
				g.write(", ")
			}
			g.writeIdent(col)
		}
		g.write(")")
	}
	g.write(" ")
	g.writeKeyword("DO")
	g.write(" ")
	if o.DoNothing {
		g.writeKeyword("NOTHING")
		return
	}
	g.writeKeyword("UPDATE SET")
	g.write(" ")
	for i, ue := range o.Updates {
		if i > 0 {
			g.write(", ")
		}
		g.Format(ue)
	}
	if o.Where != nil {
		g.write(" ")
		g.writeKeyword("WHERE")
		g.write(" ")
		g.Format(o.Where)
	}
}

func (g *Generator) formatUpdate(s *ast.Update) {
	if s.With != nil {
		g.Format(s.With)
		g.write(" ")
	}
	g.writeKeyword("UPDATE")
	g.write(" ")
	g.Format(s.Table)
	g.write(" ")
	g.writeKeyword("SET")
	g.write(" ")
	for i, ue := range s.Set {
		if i > 0 {
			g.write(", ")
		}
		g.Format(ue)
	}
	if s.From != nil {
		g.write(" ")
		g.writeKeyword("FROM")
		g.write(" ")
		g.Format(s.From)
	}
	if s.Where != nil {
		g.write(" ")
		g.writeKeyword("WHERE")
		g.write(" ")
		g.Format(s.Where)
	}
	if len(s.OrderBy) > 0 {
		g.write(" ")
		g.writeKeyword("ORDER BY")
		g.write(" ")
		for i, ob := range s.OrderBy {
			if i > 0 {
				g.write(", ")
			}
			g.Format(ob)
		}
	}
	if s.Limit != nil {
		g.write(" ")
		g.Format(s.Limit)
	}
	if len(s.Returning) > 0 {
		g.write(" ")
		g.writeKeyword("RETURNING")
		g.write(" ")
		for i, col := range s.Returning {
			if i > 0 {
				g.write(", ")
			}
			g.Format(col)
		}
	}
}

func (g *Generator) formatDelete(s *ast.Delete) {
	if s.With != nil {
		g.Format(s.With)
		g.write(" ")
	}
	g.writeKeyword("DELETE FROM")
	g.write(" ")
	g.Format(s.Table)
	if s.Using != nil {
		g.write(" ")
		g.writeKeyword("USING")
		g.write(" ")
		g.Format(s.Using)
	}
	if s.Where != nil {
		g.write(" ")
		g.writeKeyword("WHERE")
		g.write(" ")
		g.Format(s.Where)
	}
	if len(s.OrderBy) > 0 {
		g.write(" ")
		g.writeKeyword("ORDER BY")
		g.write(" ")
		for i, ob := range s.OrderBy {
			if i > 0 {
				g.write(", ")
			}
			g.Format(ob)
		}
	}
	if s.Limit != nil {
		g.write(" ")
		g.Format(s.Limit)
	}
	if len(s.Returning) > 0 {
		g.write(" ")
		g.writeKeyword("RETURNING")
		g.write(" ")
		for i, col := range s.Returning {
			if i > 0 {
				g.write(", ")
			}
			g.Format(col)
		}
	}
}

func (g *Generator) formatOrderBy(o *ast.OrderBy) {
	g.Format(o.Expr)
	if o.Desc {
		g.write(" ")
		g.writeKeyword("DESC")
	}
	if o.NullsFirst != nil {
		g.write(" ")
		g.writeKeyword("NULLS")
		g.write(" ")
		if *o.NullsFirst {
			g.writeKeyword("FIRST")
		} else {
			g.writeKeyword("LAST")
		}
	}
}

func (g *Generator) formatLimit(l *ast.Limit) {
	if l.Count != nil {
		g.writeKeyword("LIMIT")
		g.write(" ")
		g.Format(l.Count)
	}
	if l.Offset != nil {
		if l.Count != nil {
			g.write(" ")
		}
		g.writeKeyword("OFFSET")
		g.write(" ")
		g.Format(l.Offset)
	}
}
