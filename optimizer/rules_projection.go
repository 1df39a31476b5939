package optimizer

import (
	"github.com/brindlecode/sqlforge/ast"
	"github.com/brindlecode/sqlforge/scope"
)

// projectionPushdown drops a derived table's or singly-referenced
// CTE's projected columns that nothing above it ever reads. It never
// removes a column used by the parent's
// own SELECT list, WHERE, GROUP BY, HAVING or ORDER BY, and it
// abstains entirely when the parent references the source via `*`
// (the full column set is then required and unknown without a
// schema) or, for a CTE, when it is referenced more than once (each
// use site might need a different subset).
func projectionPushdown(stmt ast.Statement, _ Context) ast.Statement {
	root := scope.Build(stmt)
	out := ast.Transform(stmt, func(n ast.Node) ast.Node {
		sel, ok := n.(*ast.Select)
		if !ok {
			return n
		}
		newSel := pruneDerivedTable(sel)
		if newSel != nil {
			sel = newSel
		}
		return pruneSingleUseCTEs(sel, root)
	})
	s, _ := out.(ast.Statement)
	if s == nil {
		return stmt
	}
	return s
}

// pruneDerivedTable handles `FROM (SELECT ...) AS alias`: every column
// the alias's projection produces that isn't referenced anywhere in
// sel's own clauses can be dropped, since a derived table's alias is
// scoped to this one FROM clause and can't be read from anywhere else.
func pruneDerivedTable(sel *ast.Select) *ast.Select {
	aliased, ok := sel.From.(*ast.AliasedTableExpr)
	if !ok || aliased.Alias == "" {
		return nil
	}
	sub, ok := aliased.Expr.(*ast.Subquery)
	if !ok {
		return nil
	}
	used := map[string]struct{}{}
	if !collectUsedNames(sel, aliased.Alias, used) {
		return nil
	}
	pruned, changed := pruneColumns(sub.Select.Columns, used)
	if !changed {
		return nil
	}
	newInner := *sub.Select
	newInner.Columns = pruned
	newSel := *sel
	newSel.From = &ast.AliasedTableExpr{Expr: &ast.Subquery{Select: &newInner}, Alias: aliased.Alias, Hints: aliased.Hints}
	return &newSel
}

// pruneSingleUseCTEs prunes the projection of any CTE in sel's own
// WITH clause that scope counted exactly one reference to, using that
// single use site's required-column set.
func pruneSingleUseCTEs(sel *ast.Select, root *scope.Scope) ast.Node {
	if sel.With == nil || sel.With.Recursive {
		return sel
	}
	changed := false
	newCTEs := make([]*ast.CTE, len(sel.With.CTEs))
	for i, cte := range sel.With.CTEs {
		newCTEs[i] = cte
		inner, ok := cte.Query.(*ast.Select)
		if !ok {
			continue
		}
		if root.CTERefCount(cte.Name) != 1 {
			continue
		}
		used := map[string]struct{}{}
		if !collectUsedNames(sel, cte.Name, used) {
			continue
		}
		pruned, ch := pruneColumns(inner.Columns, used)
		if !ch {
			continue
		}
		newInner := *inner
		newInner.Columns = pruned
		newCTE := *cte
		newCTE.Query = &newInner
		newCTEs[i] = &newCTE
		changed = true
	}
	if !changed {
		return sel
	}
	newSel := *sel
	newSel.With = &ast.With{Recursive: sel.With.Recursive, CTEs: newCTEs}
	return &newSel
}

// collectUsedNames gathers, into used, every unqualified output name
// referenced against alias anywhere in sel's own clauses (its SELECT
// list, WHERE, GROUP BY, HAVING, ORDER BY, and JOIN ON conditions).
// Returns false if sel references alias via `*`, meaning the full
// column set is required and pruning must not proceed.
func collectUsedNames(sel *ast.Select, alias string, used map[string]struct{}) bool {
	ok := true
	walkOne := func(n ast.Node) {
		if n == nil {
			return
		}
		ast.Walk(n, func(node ast.Node) bool {
			switch v := node.(type) {
			case *ast.ColName:
				if len(v.Parts) == 2 && v.Parts[0] == alias {
					used[v.Parts[1]] = struct{}{}
				} else if len(v.Parts) == 1 {
					// Unqualified reference: conservatively assume it
					// may belong to alias (can't disambiguate without
					// a schema), so keep the name live.
					used[v.Parts[0]] = struct{}{}
				}
			case *ast.Star:
				if v.Qualifier == "" || v.Qualifier == alias {
					ok = false
				}
			}
			return true
		})
	}
	for _, c := range sel.Columns {
		if star, isStar := c.(*ast.Star); isStar {
			if star.Qualifier == "" || star.Qualifier == alias {
				return false
			}
			continue
		}
		walkOne(c)
	}
	walkOne(sel.Where)
	for _, g := range sel.GroupBy {
		walkOne(g)
	}
	walkOne(sel.Having)
	for _, ob := range sel.OrderBy {
		walkOne(ob)
	}
	if join, isJoin := sel.From.(*ast.Join); isJoin {
		walkOne(join)
	}
	return ok
}

// pruneColumns drops every AliasedExpr/ColName projection item whose
// output name is absent from used. A `*` or otherwise-unnamed item is
// always kept (its name can't be determined, so it can't be proven
// unused). At least one column is always kept even if used is empty,
// since a SELECT with zero columns is not valid SQL.
func pruneColumns(items []ast.SelectItem, used map[string]struct{}) ([]ast.SelectItem, bool) {
	var kept []ast.SelectItem
	changed := false
	for _, item := range items {
		name, named := outputName(item)
		if named {
			if _, ok := used[name]; !ok {
				changed = true
				continue
			}
		}
		kept = append(kept, item)
	}
	if len(kept) == 0 {
		return items, false
	}
	return kept, changed
}

func outputName(item ast.SelectItem) (string, bool) {
	switch v := item.(type) {
	case *ast.AliasedExpr:
		if v.Alias != "" {
			return v.Alias, true
		}
		if col, ok := v.Expr.(*ast.ColName); ok {
			return col.Name(), true
		}
		return "", false
	case *ast.ColName:
		return v.Name(), true
	default:
		return "", false
	}
}
