package optimizer

import (
	"github.com/brindlecode/sqlforge/ast"
	"github.com/brindlecode/sqlforge/scope"
)

// annotateTypes is schema-dependent, but this core's Context carries
// only a table→column-names catalog, not a column→type catalog —
// Context deliberately keeps the schema optional and minimal. Every
// literal already carries its primitive kind from the parser
// (ast.Literal.LitKind), so
// there is nothing further to annotate without a real type catalog;
// this rule is the documented hook a host with one would extend. It
// returns the tree unchanged, with or without a schema.
func annotateTypes(stmt ast.Statement, ctx Context) ast.Statement {
	if ctx.Schema == nil {
		return stmt
	}
	return stmt
}

// qualifyColumns resolves an unqualified column reference to
// "table.column" form when exactly one source visible in its scope
// has a matching column in ctx.Schema. A column matching zero or
// more-than-one source is left alone:
// zero means it isn't in the schema (maybe a computed alias reference)
// and more-than-one means qualifying it would be a guess.
func qualifyColumns(stmt ast.Statement, ctx Context) ast.Statement {
	if ctx.Schema == nil {
		return stmt
	}
	root := scope.Build(stmt)
	out := ast.Transform(stmt, func(n ast.Node) ast.Node {
		sel, ok := n.(*ast.Select)
		if !ok {
			return n
		}
		sc := findSelectScope(root, sel)
		if sc == nil {
			return n
		}
		return qualifySelectColumns(sel, sc, ctx.Schema)
	})
	s, _ := out.(ast.Statement)
	if s == nil {
		return stmt
	}
	return s
}

// findSelectScope locates the Scope scope.Build created while visiting
// sel. Scope doesn't store a back-pointer to its originating node, so
// this walks the scope tree looking for a child scope whose Sources
// set was populated from sel's own FROM clause; since scope.Build
// creates exactly one Scope per Select encountered, matching on the
// same source-name set is unambiguous for any non-degenerate query.
func findSelectScope(sc *scope.Scope, sel *ast.Select) *scope.Scope {
	if sameSources(sc, sel) {
		return sc
	}
	for _, c := range sc.Children() {
		if found := findSelectScope(c, sel); found != nil {
			return found
		}
	}
	return nil
}

func sameSources(sc *scope.Scope, sel *ast.Select) bool {
	names := fromAliases(sel.From)
	if len(names) != len(sc.Sources) {
		return false
	}
	for _, name := range names {
		if _, ok := sc.Sources[name]; !ok {
			return false
		}
	}
	return true
}

func fromAliases(te ast.TableExpr) []string {
	switch t := te.(type) {
	case *ast.AliasedTableExpr:
		if t.Alias != "" {
			return []string{t.Alias}
		}
		if tn, ok := t.Expr.(*ast.TableName); ok {
			return []string{tn.Name()}
		}
		return nil
	case *ast.Join:
		return append(fromAliases(t.Left), fromAliases(t.Right)...)
	case *ast.ParenTableExpr:
		return fromAliases(t.Expr)
	default:
		return nil
	}
}

func qualifySelectColumns(sel *ast.Select, sc *scope.Scope, schema map[string][]string) *ast.Select {
	changed := false
	rewrite := func(n ast.Node) ast.Node {
		col, ok := n.(*ast.ColName)
		if !ok || len(col.Parts) != 1 {
			return n
		}
		table, ok := uniqueSourceFor(sc, col.Parts[0], schema)
		if !ok {
			return n
		}
		changed = true
		nc := *col
		nc.Parts = []string{table, col.Parts[0]}
		return &nc
	}
	newSel := *sel
	if sel.Where != nil {
		newSel.Where, _ = ast.Transform(sel.Where, rewrite).(ast.Expression)
	}
	if sel.Having != nil {
		newSel.Having, _ = ast.Transform(sel.Having, rewrite).(ast.Expression)
	}
	newCols := make([]ast.SelectItem, len(sel.Columns))
	for i, c := range sel.Columns {
		r := ast.Transform(c, rewrite)
		if si, ok := r.(ast.SelectItem); ok {
			newCols[i] = si
		} else {
			newCols[i] = c
		}
	}
	newSel.Columns = newCols
	newGroup := make([]ast.Expression, len(sel.GroupBy))
	for i, g := range sel.GroupBy {
		newGroup[i], _ = ast.Transform(g, rewrite).(ast.Expression)
	}
	newSel.GroupBy = newGroup
	newOrder := make([]*ast.OrderBy, len(sel.OrderBy))
	for i, ob := range sel.OrderBy {
		r := ast.Transform(ob, rewrite)
		if o, ok := r.(*ast.OrderBy); ok {
			newOrder[i] = o
		} else {
			newOrder[i] = ob
		}
	}
	newSel.OrderBy = newOrder
	if !changed {
		return sel
	}
	return &newSel
}

// uniqueSourceFor reports the single table-source alias in sc whose
// schema column list contains colName, or ok=false when zero or
// multiple sources match.
func uniqueSourceFor(sc *scope.Scope, colName string, schema map[string][]string) (string, bool) {
	match := ""
	count := 0
	for alias, src := range sc.Sources {
		if src.Kind != scope.SourceTable || src.Table == nil {
			continue
		}
		cols, ok := schema[src.Table.Name()]
		if !ok {
			continue
		}
		for _, c := range cols {
			if c == colName {
				match = alias
				count++
				break
			}
		}
	}
	if count != 1 {
		return "", false
	}
	return match, true
}
