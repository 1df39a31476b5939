package scope

import (
	"testing"

	"github.com/brindlecode/sqlforge/ast"
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

func TestBuildRegistersTableSources(t *testing.T) {
	root := Build(parseStmt(t, "SELECT a.id FROM users a JOIN orders b ON a.id = b.user_id"))
	if len(root.Sources) != 2 {
		t.Fatalf("expected 2 sources, got %d: %v", len(root.Sources), root.Sources)
	}
	src, ok := root.Sources["a"]
	if !ok || src.Kind != SourceTable || src.Table.Name() != "users" {
		t.Errorf("expected alias a to resolve to table users, got %+v", src)
	}
}

func TestBuildUnaliasedTableUsesItsOwnName(t *testing.T) {
	root := Build(parseStmt(t, "SELECT id FROM users"))
	src, ok := root.Sources["users"]
	if !ok || src.Kind != SourceTable {
		t.Fatalf("expected a source named users, got %+v", root.Sources)
	}
}

func TestBuildRegistersCTERefCount(t *testing.T) {
	root := Build(parseStmt(t, "WITH active AS (SELECT id FROM users) SELECT a.id FROM active a JOIN active b ON a.id = b.id"))
	if root.CTERefCount("active") != 2 {
		t.Errorf("expected CTE active to be referenced twice, got %d", root.CTERefCount("active"))
	}
}

func TestBuildCTEReferenceIsSourceCTE(t *testing.T) {
	root := Build(parseStmt(t, "WITH active AS (SELECT id FROM users) SELECT id FROM active"))
	src, ok := root.Sources["active"]
	if !ok || src.Kind != SourceCTE || src.CTEName != "active" {
		t.Fatalf("expected alias active to resolve as a CTE reference, got %+v", src)
	}
}

func TestBuildDerivedTableGetsOwnScope(t *testing.T) {
	root := Build(parseStmt(t, "SELECT s.id FROM (SELECT id FROM users) AS s"))
	src, ok := root.Sources["s"]
	if !ok || src.Kind != SourceScope || src.Scope == nil {
		t.Fatalf("expected alias s to resolve to a derived-table scope, got %+v", src)
	}
	if len(root.Children()) != 1 {
		t.Errorf("expected exactly one child scope, got %d", len(root.Children()))
	}
}

func TestBuildNestedSubqueryInWhereGetsChildScope(t *testing.T) {
	root := Build(parseStmt(t, "SELECT id FROM t WHERE EXISTS (SELECT 1 FROM u WHERE u.id = t.id)"))
	if len(root.Children()) != 1 {
		t.Fatalf("expected the WHERE subquery to spawn a child scope, got %d children", len(root.Children()))
	}
	child := root.Children()[0]
	if _, ok := child.Sources["u"]; !ok {
		t.Errorf("expected child scope to register source u, got %+v", child.Sources)
	}
}

func TestBuildCollectsColumnsInOwnClausesOnly(t *testing.T) {
	root := Build(parseStmt(t, "SELECT a FROM t WHERE b = 1 AND c IN (SELECT d FROM u)"))
	for _, name := range []string{"a", "b", "c"} {
		if _, ok := root.Columns[name]; !ok {
			t.Errorf("expected root scope to record column %q, got %v", name, root.Columns)
		}
	}
	if _, ok := root.Columns["d"]; ok {
		t.Error("expected column d (from the nested subquery) not to leak into the root scope")
	}
}

func TestBuildUpdateRegistersTargetAndFrom(t *testing.T) {
	root := Build(parseStmt(t, "UPDATE t SET x = 1 WHERE y = 2"))
	if _, ok := root.Sources["t"]; !ok {
		t.Errorf("expected UPDATE target table registered as a source, got %+v", root.Sources)
	}
	if _, ok := root.Columns["y"]; !ok {
		t.Error("expected WHERE column y to be collected")
	}
}

func TestBuildDeleteRegistersTarget(t *testing.T) {
	root := Build(parseStmt(t, "DELETE FROM t WHERE id = 1"))
	if _, ok := root.Sources["t"]; !ok {
		t.Errorf("expected DELETE target table registered as a source, got %+v", root.Sources)
	}
}
