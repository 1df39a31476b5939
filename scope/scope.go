// Package scope builds the per-query binding tree the optimizer's
// eliminate_ctes, projection_pushdown, and qualify_columns rules read
// from: which names are reachable in a query (tables, CTEs, derived
// tables), where each comes from, and how many times each CTE is
// referenced. Built directly from the ast shapes (With/From/Join) using
// ast.Walk to find the column references and nested subqueries within
// a scope's own clauses.
package scope

import "github.com/brindlecode/sqlforge/ast"

// Type classifies what introduced a Scope.
type Type int

const (
	Root Type = iota
	Subquery
	DerivedTable
	CTE
	Union
	UDTF
)

// SourceKind classifies what a name in a Scope's Sources map resolves
// to.
type SourceKind int

const (
	// SourceTable is a real base table reference.
	SourceTable SourceKind = iota
	// SourceScope is a derived table / subquery with its own Scope.
	SourceScope
	// SourceCTE is a reference to a CTE visible from an enclosing
	// scope; CTEName names the entry in that scope's CTEs map.
	SourceCTE
)

// Source is one binding introduced by a FROM/JOIN clause: the name it
// is visible under (alias, or the bare table/CTE name when unaliased)
// and what that name resolves to.
type Source struct {
	Name    string
	Kind    SourceKind
	Table   *ast.TableName // set when Kind == SourceTable
	Scope   *Scope         // set when Kind == SourceScope
	CTEName string         // set when Kind == SourceCTE
}

// Scope is one query's (or subquery's) binding environment: the
// sources its FROM/JOIN clause introduces, the CTEs its WITH clause
// registers, and the columns referenced directly within it (not
// counting columns referenced only inside a child Scope).
type Scope struct {
	Type     Type
	Parent   *Scope
	Sources  map[string]*Source
	CTEs     map[string]*ast.CTE
	Columns  map[string]struct{}
	children []*Scope

	// cteRefs is shared by every Scope descended from the same Build
	// call: a CTE can be referenced from a sibling scope several
	// levels away from where it was declared, so the count has to live
	// above any single Scope's Sources map.
	cteRefs map[string]int
}

// Children returns the Scopes nested directly inside this one (one per
// derived table, subquery, CTE body, or set-operation arm).
func (s *Scope) Children() []*Scope { return s.children }

// CTERefCount reports how many places in the whole statement tree
// reference the CTE named name, relative to where it was declared.
func (s *Scope) CTERefCount(name string) int { return s.cteRefs[name] }

func newScope(t Type, parent *Scope) *Scope {
	s := &Scope{
		Type:    t,
		Parent:  parent,
		Sources: map[string]*Source{},
		CTEs:    map[string]*ast.CTE{},
		Columns: map[string]struct{}{},
	}
	if parent != nil {
		s.cteRefs = parent.cteRefs
	} else {
		s.cteRefs = map[string]int{}
	}
	return s
}

// Build walks stmt and returns its root Scope: With registers CTEs
// before the outer scope is otherwise
// populated, Select registers its From/Join sources, and every column
// reference in the scope's own clauses is counted (with CTE uses
// bumping the shared reference-count map).
func Build(stmt ast.Statement) *Scope {
	root := newScope(Root, nil)
	buildStatement(stmt, root)
	return root
}

func buildStatement(stmt ast.Statement, sc *Scope) {
	switch s := stmt.(type) {
	case *ast.Select:
		buildSelect(s, sc)
	case *ast.SetOp:
		if s.With != nil {
			registerCTEs(s.With, sc)
		}
		left := newScope(Union, sc)
		buildStatement(s.Left, left)
		sc.children = append(sc.children, left)
		right := newScope(Union, sc)
		buildStatement(s.Right, right)
		sc.children = append(sc.children, right)
		collectColumns(sc, orderByNodes(s.OrderBy)...)
	case *ast.Insert:
		if s.With != nil {
			registerCTEs(s.With, sc)
		}
		if s.Select != nil {
			child := newScope(Subquery, sc)
			buildStatement(s.Select, child)
			sc.children = append(sc.children, child)
		}
	case *ast.Update:
		if s.With != nil {
			registerCTEs(s.With, sc)
		}
		registerSource(s.Table, sc)
		if s.From != nil {
			registerSource(s.From, sc)
		}
		nodes := []ast.Node{s.Where}
		for _, ue := range s.Set {
			nodes = append(nodes, ue.Expr)
		}
		collectColumns(sc, nodes...)
	case *ast.Delete:
		if s.With != nil {
			registerCTEs(s.With, sc)
		}
		registerSource(s.Table, sc)
		if s.Using != nil {
			registerSource(s.Using, sc)
		}
		collectColumns(sc, s.Where)
	}
}

func registerCTEs(w *ast.With, sc *Scope) {
	for _, cte := range w.CTEs {
		sc.CTEs[cte.Name] = cte
		if _, ok := sc.cteRefs[cte.Name]; !ok {
			sc.cteRefs[cte.Name] = 0
		}
		child := newScope(CTE, sc)
		buildStatement(cte.Query, child)
		sc.children = append(sc.children, child)
	}
}

func buildSelect(s *ast.Select, sc *Scope) {
	if s.With != nil {
		registerCTEs(s.With, sc)
	}
	if s.From != nil {
		registerSource(s.From, sc)
	}
	nodes := make([]ast.Node, 0, len(s.Columns)+len(s.GroupBy)+2)
	for _, col := range s.Columns {
		nodes = append(nodes, col)
	}
	nodes = append(nodes, s.Where, s.Having)
	for _, e := range s.GroupBy {
		nodes = append(nodes, e)
	}
	nodes = append(nodes, orderByNodes(s.OrderBy)...)
	collectColumns(sc, nodes...)
}

func registerSource(te ast.TableExpr, sc *Scope) {
	switch t := te.(type) {
	case *ast.AliasedTableExpr:
		registerAliased(t, sc)
	case *ast.Join:
		registerSource(t.Left, sc)
		registerSource(t.Right, sc)
		if t.On != nil {
			collectColumns(sc, t.On)
		}
	case *ast.ParenTableExpr:
		registerSource(t.Expr, sc)
	case *ast.Values:
		// Inline row constructor: no name is bound.
	}
}

func registerAliased(t *ast.AliasedTableExpr, sc *Scope) {
	name := t.Alias
	switch inner := t.Expr.(type) {
	case *ast.TableName:
		if name == "" {
			name = inner.Name()
		}
		if cteName, ok := lookupCTE(sc, inner.Name()); ok {
			sc.cteRefs[cteName]++
			sc.Sources[name] = &Source{Name: name, Kind: SourceCTE, CTEName: cteName}
			return
		}
		sc.Sources[name] = &Source{Name: name, Kind: SourceTable, Table: inner}
	case *ast.Subquery:
		child := newScope(DerivedTable, sc)
		buildStatement(inner.Select, child)
		sc.children = append(sc.children, child)
		sc.Sources[name] = &Source{Name: name, Kind: SourceScope, Scope: child}
	case *ast.ParenTableExpr:
		registerSource(inner, sc)
	default:
		if name != "" {
			sc.Sources[name] = &Source{Name: name, Kind: SourceTable}
		}
	}
}

func lookupCTE(sc *Scope, name string) (string, bool) {
	for s := sc; s != nil; s = s.Parent {
		if _, ok := s.CTEs[name]; ok {
			return name, true
		}
	}
	return "", false
}

// collectColumns records every column reference found directly within
// nodes, and spawns a child Scope for every nested Select/SetOp it
// encounters instead of descending into it (that subtree is walked
// separately, as its own scope).
func collectColumns(sc *Scope, nodes ...ast.Node) {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		ast.Walk(n, func(node ast.Node) bool {
			switch v := node.(type) {
			case *ast.ColName:
				sc.Columns[v.Name()] = struct{}{}
				return false
			case *ast.Select:
				child := newScope(Subquery, sc)
				buildSelect(v, child)
				sc.children = append(sc.children, child)
				return false
			case *ast.SetOp:
				child := newScope(Subquery, sc)
				buildStatement(v, child)
				sc.children = append(sc.children, child)
				return false
			}
			return true
		})
	}
}

func orderByNodes(obs []*ast.OrderBy) []ast.Node {
	nodes := make([]ast.Node, len(obs))
	for i, ob := range obs {
		nodes[i] = ob
	}
	return nodes
}

