package optimizer

import (
	"strings"
	"testing"

	"github.com/brindlecode/sqlforge/ast"
	"github.com/brindlecode/sqlforge/generator"
	"github.com/brindlecode/sqlforge/parser"
)

func parseStmt(t *testing.T, sql string) ast.Statement {
	t.Helper()
	p := parser.New(sql)
	stmt, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse(%q): %v", sql, err)
	}
	return stmt
}

func render(stmt ast.Statement) string {
	g := generator.New(generator.DefaultOptions, nil)
	g.Format(stmt)
	return g.String()
}

func TestOptimizePipelineOrder(t *testing.T) {
	stmt := parseStmt(t, "SELECT a, b FROM t WHERE TRUE AND x = 2")
	out := Optimize(stmt, Context{Config: Default})
	got := render(out)
	if got == "" {
		t.Fatal("expected non-empty rendering")
	}
	// simplify should have dropped the tautology before canonicalize runs.
	if strings.Contains(strings.ToUpper(got), "TRUE") {
		t.Errorf("expected tautology to be simplified away, got %q", got)
	}
}

func TestOptimizeDisabledRuleIsNoop(t *testing.T) {
	stmt := parseStmt(t, "SELECT a FROM t WHERE 1=1")
	out := Optimize(stmt, Context{Config: Config{}})
	got := render(out)
	if !strings.Contains(got, "1 = 1") {
		t.Errorf("expected no rules to fire with an empty Config, got %q", got)
	}
}

func TestSimplifyTautology(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"SELECT a FROM t WHERE 1=1 AND x = 2", "x = 2"},
		{"SELECT a FROM t WHERE (x)", "WHERE x"},
		{"SELECT a FROM t WHERE NOT NOT x", "WHERE x"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			stmt := parseStmt(t, tt.input)
			out := simplify(stmt, Context{})
			got := render(out)
			if !strings.Contains(got, tt.want) {
				t.Errorf("simplify(%q) = %q, want substring %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSimplifyArithmeticFolding(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"SELECT a FROM t WHERE x = 1 + 2", "x = 3"},
		{"SELECT a FROM t WHERE x = 9 - 4", "x = 5"},
		{"SELECT a FROM t WHERE x = 3 * 4", "x = 12"},
		{"SELECT a FROM t WHERE x = 10 / 4", "x = 2.5"},
		{"SELECT a FROM t WHERE x = 10 % 3", "x = 1"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			stmt := parseStmt(t, tt.input)
			out := simplify(stmt, Context{})
			got := render(out)
			if !strings.Contains(got, tt.want) {
				t.Errorf("simplify(%q) = %q, want substring %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSimplifyArithmeticSkipsDivisionByZero(t *testing.T) {
	stmt := parseStmt(t, "SELECT a FROM t WHERE x = 1 / 0")
	out := simplify(stmt, Context{})
	got := render(out)
	if !strings.Contains(got, "1 / 0") {
		t.Errorf("simplify() = %q, want division by zero left unfolded", got)
	}
}

func TestSimplifyNotBoolLiteral(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"SELECT a FROM t WHERE NOT TRUE", "FALSE"},
		{"SELECT a FROM t WHERE NOT FALSE", "TRUE"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			stmt := parseStmt(t, tt.input)
			out := simplify(stmt, Context{})
			got := render(out)
			if !strings.Contains(got, tt.want) {
				t.Errorf("simplify(%q) = %q, want substring %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSimplifyIdenticalOperandCollapse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"SELECT a FROM t WHERE x = 1 AND x = 1", "SELECT a FROM t WHERE x = 1"},
		{"SELECT a FROM t WHERE x = 1 OR x = 1", "SELECT a FROM t WHERE x = 1"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			stmt := parseStmt(t, tt.input)
			out := simplify(stmt, Context{})
			got := render(out)
			if got != tt.want {
				t.Errorf("simplify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSimplifyNullPropagation(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"SELECT a FROM t WHERE NULL AND FALSE", "FALSE"},
		{"SELECT a FROM t WHERE NULL OR TRUE", "TRUE"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			stmt := parseStmt(t, tt.input)
			out := simplify(stmt, Context{})
			got := render(out)
			if !strings.Contains(got, tt.want) {
				t.Errorf("simplify(%q) = %q, want substring %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSimplifyNullOtherCombinationsLeftIntact(t *testing.T) {
	stmt := parseStmt(t, "SELECT a FROM t WHERE NULL AND TRUE")
	out := simplify(stmt, Context{})
	got := render(out)
	if !strings.Contains(got, "NULL") {
		t.Errorf("simplify() = %q, want NULL AND TRUE left unfolded", got)
	}
}

func TestCanonicalizeLiteralOrder(t *testing.T) {
	stmt := parseStmt(t, "SELECT a FROM t WHERE 5 = x")
	out := canonicalize(stmt, Context{})
	got := render(out)
	if !strings.Contains(got, "x = 5") {
		t.Errorf("canonicalize() = %q, want literal moved to the right", got)
	}
}

func TestCanonicalizeNegatedComparison(t *testing.T) {
	stmt := parseStmt(t, "SELECT a FROM t WHERE NOT (x = 1)")
	out := canonicalize(stmt, Context{})
	got := render(out)
	if strings.Contains(got, "NOT") {
		t.Errorf("canonicalize() = %q, want NOT folded into <>", got)
	}
	if !strings.Contains(got, "<>") {
		t.Errorf("canonicalize() = %q, want x <> 1", got)
	}
}

func TestQuoteIdentifiersLeavesPlainNameUnquoted(t *testing.T) {
	stmt := parseStmt(t, "SELECT a FROM t")
	out := quoteIdentifiers(stmt, Context{})
	sel := out.(*ast.Select)
	from, ok := sel.From.(*ast.AliasedTableExpr)
	if !ok {
		t.Fatalf("expected AliasedTableExpr, got %T", sel.From)
	}
	tn, ok := from.Expr.(*ast.TableName)
	if !ok {
		t.Fatalf("expected TableName, got %T", from.Expr)
	}
	if tn.Quoted {
		t.Errorf("plain table name %q should not need quoting", tn.Name())
	}
}

func TestNeedsQuoting(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"users", false},
		{"_private", false},
		{"col1", false},
		{"order", true},  // reserved word
		{"select", true}, // reserved word
		{"1col", true},   // leading digit
		{"my col", true},
		{"", true},
	}
	for _, tt := range tests {
		if got := needsQuoting(tt.id); got != tt.want {
			t.Errorf("needsQuoting(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestQuoteIdentifiersColumnCollidingWithKeyword(t *testing.T) {
	col := &ast.ColName{Parts: []string{"order"}}
	out := quoteIdentifiers(&ast.Select{Columns: []ast.SelectItem{col}}, Context{})
	sel := out.(*ast.Select)
	expr, ok := sel.Columns[0].(*ast.ColName)
	if !ok {
		t.Fatalf("expected ColName, got %T", sel.Columns[0])
	}
	if !expr.Quoted {
		t.Errorf("expected %q to be marked Quoted since it collides with a keyword", expr.Name())
	}
}

func TestEliminateUnusedCTE(t *testing.T) {
	stmt := parseStmt(t, "WITH unused AS (SELECT 1), used AS (SELECT a FROM t) SELECT * FROM used")
	out := eliminateCTEs(stmt, Context{})
	sel := out.(*ast.Select)
	if sel.With == nil {
		t.Fatal("expected the used CTE to remain in the WITH clause")
	}
	if len(sel.With.CTEs) != 1 || sel.With.CTEs[0].Name != "used" {
		t.Errorf("expected only %q left in WITH, got %+v", "used", sel.With.CTEs)
	}
	got := render(out)
	want := "WITH used AS (SELECT a FROM t) SELECT * FROM used"
	if got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestEliminateCTEsDropsWithClauseWhenEmptied(t *testing.T) {
	stmt := parseStmt(t, "WITH unused AS (SELECT 1) SELECT * FROM t")
	out := eliminateCTEs(stmt, Context{})
	sel := out.(*ast.Select)
	if sel.With != nil {
		t.Errorf("expected WITH clause removed once its only CTE is dropped, got %+v", sel.With)
	}
}

func TestEliminateCTEsLeavesReferencedCTEsAlone(t *testing.T) {
	stmt := parseStmt(t, "WITH active AS (SELECT id FROM users) SELECT a.id FROM active a JOIN active b ON a.id = b.id")
	out := eliminateCTEs(stmt, Context{})
	sel := out.(*ast.Select)
	if sel.With == nil || len(sel.With.CTEs) != 1 || sel.With.CTEs[0].Name != "active" {
		t.Fatalf("expected CTE referenced twice to be left untouched in the WITH clause, got %+v", sel.With)
	}
	if _, ok := sel.From.(*ast.Join); !ok {
		t.Errorf("expected the FROM clause to stay a join of CTE references, got %T", sel.From)
	}
}

func TestNormalizePredicatesDeMorgan(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"SELECT a FROM t WHERE NOT (x = 1 AND y = 2)", []string{"OR", "NOT"}},
		{"SELECT a FROM t WHERE NOT (x = 1 OR y = 2)", []string{"AND", "NOT"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			stmt := parseStmt(t, tt.input)
			out := normalizePredicates(stmt, Context{})
			got := render(out)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("normalizePredicates(%q) = %q, want substring %q", tt.input, got, want)
				}
			}
		})
	}
}

func TestNormalizePredicatesDedupesIdenticalConjuncts(t *testing.T) {
	stmt := parseStmt(t, "SELECT a FROM t WHERE x = 1 AND y = 2 AND x = 1")
	out := normalizePredicates(stmt, Context{})
	got := render(out)
	want := "SELECT a FROM t WHERE x = 1 AND y = 2"
	if got != want {
		t.Errorf("normalizePredicates() = %q, want %q", got, want)
	}
}

func TestNormalizePredicatesDetectsContradiction(t *testing.T) {
	stmt := parseStmt(t, "SELECT a FROM t WHERE x = 1 AND NOT x = 1")
	out := normalizePredicates(stmt, Context{})
	got := render(out)
	if !strings.Contains(got, "FALSE") {
		t.Errorf("normalizePredicates() = %q, want the contradiction collapsed to FALSE", got)
	}
}

func TestNormalizePredicatesFlattensNestedChain(t *testing.T) {
	stmt := parseStmt(t, "SELECT a FROM t WHERE (x = 1 AND y = 2) AND z = 3")
	out := normalizePredicates(stmt, Context{})
	got := render(out)
	want := "SELECT a FROM t WHERE x = 1 AND y = 2 AND z = 3"
	if got != want {
		t.Errorf("normalizePredicates() = %q, want a flat right-leaning chain %q", got, want)
	}
}

func TestNormalizePredicatesIsIdempotent(t *testing.T) {
	stmt := parseStmt(t, "SELECT a FROM t WHERE NOT (x = 1 AND y = 2)")
	once := normalizePredicates(stmt, Context{})
	twice := normalizePredicates(once.(ast.Statement), Context{})
	if render(once) != render(twice) {
		t.Errorf("normalizePredicates is not idempotent: %q then %q", render(once), render(twice))
	}
}

func TestPushdownPredicatesIntoDerivedTable(t *testing.T) {
	stmt := parseStmt(t, "SELECT s.id FROM (SELECT id, active FROM users) AS s WHERE s.active = 1")
	out := pushdownPredicates(stmt, Context{})
	sel := out.(*ast.Select)
	if sel.Where != nil {
		t.Errorf("expected outer WHERE to be emptied once pushed, got %+v", sel.Where)
	}
	aliased, ok := sel.From.(*ast.AliasedTableExpr)
	if !ok {
		t.Fatalf("expected AliasedTableExpr, got %T", sel.From)
	}
	sub, ok := aliased.Expr.(*ast.Subquery)
	if !ok {
		t.Fatalf("expected Subquery, got %T", aliased.Expr)
	}
	if sub.Select.Where == nil {
		t.Error("expected pushed predicate to land in the derived table's own WHERE")
	}
}

func TestPushdownPredicatesLeavesUnqualifiedConjunctOutside(t *testing.T) {
	stmt := parseStmt(t, "SELECT s.id FROM (SELECT id FROM users) AS s WHERE 1 = 1")
	out := pushdownPredicates(stmt, Context{})
	sel := out.(*ast.Select)
	if sel.Where == nil {
		t.Error("expected a conjunct not qualified by the alias to stay outside")
	}
}

func TestMergeSubqueriesSimpleProjection(t *testing.T) {
	stmt := parseStmt(t, "SELECT s.id FROM (SELECT id, name FROM users) AS s")
	out := mergeSubqueries(stmt, Context{})
	sel := out.(*ast.Select)
	if _, ok := sel.From.(*ast.AliasedTableExpr); !ok {
		t.Fatalf("expected merged FROM to reach the base table, got %T", sel.From)
	}
	if tn, ok := sel.From.(*ast.AliasedTableExpr).Expr.(*ast.TableName); !ok || tn.Name() != "users" {
		t.Errorf("expected FROM to be the inlined base table users, got %#v", sel.From)
	}
}

func TestMergeSubqueriesAbstainsOnDistinct(t *testing.T) {
	stmt := parseStmt(t, "SELECT s.id FROM (SELECT DISTINCT id FROM users) AS s")
	out := mergeSubqueries(stmt, Context{})
	sel := out.(*ast.Select)
	aliased, ok := sel.From.(*ast.AliasedTableExpr)
	if !ok {
		t.Fatalf("expected AliasedTableExpr, got %T", sel.From)
	}
	if _, ok := aliased.Expr.(*ast.Subquery); !ok {
		t.Errorf("expected DISTINCT subquery to be left unmerged, got %T", aliased.Expr)
	}
}

func TestProjectionPushdownDropsUnusedColumn(t *testing.T) {
	stmt := parseStmt(t, "SELECT s.id FROM (SELECT id, name, email FROM users) AS s")
	out := projectionPushdown(stmt, Context{})
	sel := out.(*ast.Select)
	aliased := sel.From.(*ast.AliasedTableExpr)
	sub := aliased.Expr.(*ast.Subquery)
	if len(sub.Select.Columns) != 1 {
		t.Errorf("expected only id to survive pruning, got %d columns", len(sub.Select.Columns))
	}
}

func TestProjectionPushdownAbstainsOnStar(t *testing.T) {
	stmt := parseStmt(t, "SELECT s.* FROM (SELECT id, name FROM users) AS s")
	out := projectionPushdown(stmt, Context{})
	sel := out.(*ast.Select)
	aliased := sel.From.(*ast.AliasedTableExpr)
	sub := aliased.Expr.(*ast.Subquery)
	if len(sub.Select.Columns) != 2 {
		t.Errorf("expected star reference to preserve every column, got %d", len(sub.Select.Columns))
	}
}

func TestQualifyColumnsUniqueMatch(t *testing.T) {
	stmt := parseStmt(t, "SELECT name FROM users WHERE active = 1")
	schema := map[string][]string{"users": {"id", "name", "active"}}
	out := qualifyColumns(stmt, Context{Schema: schema})
	got := render(out)
	if !strings.Contains(got, "users.name") || !strings.Contains(got, "users.active") {
		t.Errorf("qualifyColumns() = %q, want columns qualified with users.", got)
	}
}

func TestQualifyColumnsAmbiguousLeftAlone(t *testing.T) {
	stmt := parseStmt(t, "SELECT id FROM a JOIN b ON a.x = b.x")
	schema := map[string][]string{"a": {"id"}, "b": {"id"}}
	out := qualifyColumns(stmt, Context{Schema: schema})
	got := render(out)
	if strings.Contains(got, "a.id") || strings.Contains(got, "b.id") {
		t.Errorf("qualifyColumns() = %q, want ambiguous id left unqualified", got)
	}
}

func TestQualifyColumnsNilSchemaIsNoop(t *testing.T) {
	stmt := parseStmt(t, "SELECT name FROM users")
	out := qualifyColumns(stmt, Context{})
	if out != stmt {
		t.Error("expected qualifyColumns to abstain with a nil Schema")
	}
}

func TestAnnotateTypesNilSchemaIsNoop(t *testing.T) {
	stmt := parseStmt(t, "SELECT 1")
	out := annotateTypes(stmt, Context{})
	if out != stmt {
		t.Error("expected annotateTypes to abstain with a nil Schema")
	}
}

func TestJoinReorderingIsNoop(t *testing.T) {
	stmt := parseStmt(t, "SELECT a.id FROM a JOIN b ON a.id = b.a_id JOIN c ON b.id = c.b_id")
	out := joinReordering(stmt, Context{})
	if out != stmt {
		t.Error("expected joinReordering to return the statement unchanged")
	}
}

