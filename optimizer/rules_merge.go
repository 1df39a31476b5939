package optimizer

import "github.com/brindlecode/sqlforge/ast"

// mergeSubqueries inlines a derived table `(SELECT cols FROM t WHERE p)
// AS s` directly into its parent when doing so cannot change the
// result: the inner select must carry no aggregation-shaped
// projection, no DISTINCT, no LIMIT and no HAVING. Only plain-column
// or simple-aliased projections are merged —
// anything else (a function call, a literal, `*`) means the rule
// can't prove the substitution is safe without a schema, so it
// abstains rather than guess.
func mergeSubqueries(stmt ast.Statement, _ Context) ast.Statement {
	out := ast.Transform(stmt, mergeSubqueryNode)
	s, _ := out.(ast.Statement)
	if s == nil {
		return stmt
	}
	return s
}

func mergeSubqueryNode(n ast.Node) ast.Node {
	sel, ok := n.(*ast.Select)
	if !ok {
		return n
	}
	aliased, ok := sel.From.(*ast.AliasedTableExpr)
	if !ok || aliased.Alias == "" {
		return n
	}
	sub, ok := aliased.Expr.(*ast.Subquery)
	if !ok {
		return n
	}
	inner := sub.Select
	if !mergeableInner(inner) {
		return n
	}
	if referencesStarOn(sel.Columns, aliased.Alias) {
		return n
	}
	subst, ok := buildColumnSubst(inner.Columns)
	if !ok {
		return n
	}

	newSel := *sel
	newSel.From = inner.From
	newSel.Columns = substituteColumns(sel.Columns, aliased.Alias, subst)
	newSel.Where = conjoin(append(
		splitConjuncts(substituteExpr(sel.Where, aliased.Alias, subst)),
		splitConjuncts(inner.Where)...,
	))
	newSel.GroupBy = substituteExprList(sel.GroupBy, aliased.Alias, subst)
	newSel.Having = substituteExpr(sel.Having, aliased.Alias, subst)
	newOrderBy := make([]*ast.OrderBy, len(sel.OrderBy))
	for i, ob := range sel.OrderBy {
		nob := *ob
		nob.Expr = substituteExpr(ob.Expr, aliased.Alias, subst)
		newOrderBy[i] = &nob
	}
	newSel.OrderBy = newOrderBy
	return &newSel
}

// mergeableInner reports whether s can be flattened into its parent
// without changing row identity or count: no DISTINCT/LIMIT/HAVING and
// no GROUP BY (those collapse or reorder rows in ways the parent's own
// clauses must not silently inherit).
func mergeableInner(s *ast.Select) bool {
	return !s.Distinct && s.Limit == nil && s.Having == nil && len(s.GroupBy) == 0
}

func referencesStarOn(items []ast.SelectItem, alias string) bool {
	for _, item := range items {
		if star, ok := item.(*ast.Star); ok {
			if star.Qualifier == "" || star.Qualifier == alias {
				return true
			}
		}
	}
	return false
}

// buildColumnSubst maps each inner projection's output name to the
// column that produces it. Returns ok=false when any projection is not
// a plain column reference, aliased or not (a function call, a
// literal, any other expression, or `*`).
func buildColumnSubst(items []ast.SelectItem) (map[string]ast.Expression, bool) {
	subst := map[string]ast.Expression{}
	for _, item := range items {
		switch v := item.(type) {
		case *ast.AliasedExpr:
			col, ok := v.Expr.(*ast.ColName)
			if !ok {
				return nil, false
			}
			if v.Alias != "" {
				subst[v.Alias] = col
			} else {
				subst[col.Name()] = col
			}
		case *ast.ColName:
			subst[v.Name()] = v
		default:
			return nil, false
		}
	}
	return subst, true
}

func substituteColumns(items []ast.SelectItem, alias string, subst map[string]ast.Expression) []ast.SelectItem {
	out := make([]ast.SelectItem, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case *ast.AliasedExpr:
			nv := *v
			nv.Expr = substituteExpr(v.Expr, alias, subst)
			out[i] = &nv
		case *ast.ColName:
			replaced := substituteExpr(v, alias, subst)
			if si, ok := replaced.(ast.SelectItem); ok {
				out[i] = si
			} else {
				out[i] = v
			}
		default:
			out[i] = item
		}
	}
	return out
}

func substituteExprList(exprs []ast.Expression, alias string, subst map[string]ast.Expression) []ast.Expression {
	out := make([]ast.Expression, len(exprs))
	for i, e := range exprs {
		out[i] = substituteExpr(e, alias, subst)
	}
	return out
}

// substituteExpr rewrites every column reference in e qualified by
// alias (or, for a single-source query, unqualified) to the expression
// that produces it in the merged-away subquery.
func substituteExpr(e ast.Expression, alias string, subst map[string]ast.Expression) ast.Expression {
	if e == nil {
		return nil
	}
	out := ast.Transform(e, func(n ast.Node) ast.Node {
		col, ok := n.(*ast.ColName)
		if !ok {
			return n
		}
		var name string
		switch len(col.Parts) {
		case 1:
			name = col.Parts[0]
		case 2:
			if col.Parts[0] == alias {
				name = col.Parts[1]
			}
		}
		if name == "" {
			return n
		}
		if repl, ok := subst[name]; ok {
			return repl
		}
		return n
	})
	ex, ok := out.(ast.Expression)
	if !ok {
		return e
	}
	return ex
}
