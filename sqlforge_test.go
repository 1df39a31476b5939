package sqlforge

import (
	"testing"

	"github.com/brindlecode/sqlforge/ast"
)

func TestParseAndFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"simple select", "SELECT * FROM users"},
		{"select with where", "SELECT id, name FROM users WHERE status = 'active'"},
		{"select with join", "SELECT a.id, b.name FROM a JOIN b ON a.id = b.a_id"},
		{"select with multiple joins", "SELECT * FROM a LEFT JOIN b ON a.id = b.a_id RIGHT JOIN c ON b.id = c.b_id"},
		{"select with subquery", "SELECT * FROM users WHERE id IN (SELECT user_id FROM orders)"},
		{"insert", "INSERT INTO users (id, name) VALUES (1, 'test')"},
		{"update", "UPDATE users SET name = 'new' WHERE id = 1"},
		{"delete", "DELETE FROM users WHERE id = 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatted, err := Format(tt.input, "")
			if err != nil {
				t.Fatalf("Format error: %v", err)
			}
			if formatted == "" {
				t.Fatal("Formatted output is empty")
			}

			formatted2, err := Format(formatted, "")
			if err != nil {
				t.Fatalf("Re-format error: %v\nFormatted: %s", err, formatted)
			}
			if formatted != formatted2 {
				t.Errorf("Round-trip mismatch:\nFirst:  %s\nSecond: %s", formatted, formatted2)
			}
		})
	}
}

func TestWalk(t *testing.T) {
	stmt, err := ParseOne("SELECT a.id, b.name FROM users a JOIN orders b ON a.id = b.user_id WHERE a.status = 'active'", "")
	if err != nil {
		t.Fatal(err)
	}

	var columns []string
	Walk(stmt, func(node ast.Node) bool {
		if col, ok := node.(*ast.ColName); ok {
			columns = append(columns, col.Name())
		}
		return true
	})

	expected := []string{"id", "name", "id", "user_id", "status"}
	if len(columns) != len(expected) {
		t.Errorf("Expected %d columns, got %d: %v", len(expected), len(columns), columns)
	}
}

func TestTransform(t *testing.T) {
	stmt, err := ParseOne("SELECT id, name FROM users WHERE status = 'active'", "")
	if err != nil {
		t.Fatal(err)
	}

	rewritten := Transform(stmt, func(node ast.Node) ast.Node {
		if col, ok := node.(*ast.ColName); ok && len(col.Parts) == 1 {
			return &ast.ColName{Parts: []string{"u", col.Name()}}
		}
		return node
	})

	out, err := Generate(rewritten, "")
	if err != nil {
		t.Fatal(err)
	}
	if out == "" {
		t.Fatal("Rewritten output is empty")
	}
	t.Logf("Rewritten: %s", out)
}

func extractTables(stmt ast.Statement) []string {
	var tables []string
	seen := make(map[string]bool)
	Walk(stmt, func(node ast.Node) bool {
		if _, ok := node.(*ast.ColName); ok {
			return false
		}
		if tn, ok := node.(*ast.TableName); ok {
			name := tn.Name()
			if !seen[name] {
				tables = append(tables, name)
				seen[name] = true
			}
		}
		return true
	})
	return tables
}

func TestExtractTables(t *testing.T) {
	stmt, err := ParseOne("SELECT * FROM users u JOIN orders o ON u.id = o.user_id WHERE EXISTS (SELECT 1 FROM items)", "")
	if err != nil {
		t.Fatal(err)
	}

	tables := extractTables(stmt)
	if len(tables) != 3 {
		t.Errorf("Expected 3 tables, got %d: %v", len(tables), tables)
	}
}

func TestComplexQueries(t *testing.T) {
	queries := []string{
		`WITH active AS (SELECT id FROM users WHERE status = 'active')
		 SELECT * FROM active`,
		`SELECT id, COUNT(*) as cnt FROM orders GROUP BY id HAVING COUNT(*) > 5`,
		`SELECT ROW_NUMBER() OVER (PARTITION BY type ORDER BY created_at DESC) FROM items`,
		`SELECT CASE WHEN status = 1 THEN 'active' ELSE 'inactive' END FROM users`,
		`SELECT * FROM users WHERE name LIKE '%test%' ESCAPE '\\'`,
		`SELECT * FROM users WHERE created_at BETWEEN '2024-01-01' AND '2024-12-31'`,
		`SELECT COALESCE(name, 'unknown') FROM users`,
		`SELECT CAST(price AS INT) FROM products`,
		`SELECT a || ' ' || b FROM names`,
		`SELECT * FROM users FOR UPDATE`,
		`SELECT * FROM users LIMIT 10 OFFSET 20`,
	}

	for _, q := range queries {
		t.Run(q[:30], func(t *testing.T) {
			formatted, err := Format(q, "")
			if err != nil {
				t.Fatalf("Format error: %v", err)
			}
			if formatted == "" {
				t.Error("Empty formatted output")
			}
		})
	}
}

func TestDDL(t *testing.T) {
	queries := []string{
		`CREATE TABLE users (id INT PRIMARY KEY, name VARCHAR(255) NOT NULL)`,
		`CREATE TABLE IF NOT EXISTS items (id INT, price DECIMAL(10,2))`,
		`ALTER TABLE users ADD COLUMN email VARCHAR(255)`,
		`ALTER TABLE users DROP COLUMN IF EXISTS temp`,
		`DROP TABLE IF EXISTS old_users CASCADE`,
		`CREATE UNIQUE INDEX idx_email ON users (email)`,
		`DROP INDEX idx_old ON users`,
		`TRUNCATE TABLE logs`,
	}

	for _, q := range queries {
		name := q
		if len(name) > 20 {
			name = name[:20]
		}
		t.Run(name, func(t *testing.T) {
			formatted, err := Format(q, "")
			if err != nil {
				t.Fatalf("Format error: %v", err)
			}
			if formatted == "" {
				t.Error("Empty formatted output")
			}
		})
	}
}

func TestMultiDialect(t *testing.T) {
	queries := []struct {
		name    string
		query   string
		dialect string
	}{
		{"mysql replace", "REPLACE INTO users (id, name) VALUES (1, 'test')", "MYSQL"},
		{"mysql on duplicate", "INSERT INTO users (id, name) VALUES (1, 'test') ON DUPLICATE KEY UPDATE name = 'new'", "MYSQL"},
		{"mysql limit offset", "SELECT * FROM users LIMIT 10, 20", "MYSQL"},
		{"pg cast", "SELECT a::int FROM t", "POSTGRES"},
		{"pg returning", "INSERT INTO users (name) VALUES ('test') RETURNING id", "POSTGRES"},
		{"pg on conflict", "INSERT INTO users (id, name) VALUES (1, 'test') ON CONFLICT (id) DO NOTHING", "POSTGRES"},
		{"pg array", "SELECT ARRAY[1, 2, 3]", "POSTGRES"},
		{"cte", "WITH t AS (SELECT 1) SELECT * FROM t", ""},
		{"window", "SELECT SUM(x) OVER (PARTITION BY y) FROM t", ""},
		{"exists", "SELECT * FROM t WHERE EXISTS (SELECT 1 FROM u)", ""},
	}

	for _, tc := range queries {
		t.Run(tc.name, func(t *testing.T) {
			formatted, err := Format(tc.query, tc.dialect)
			if err != nil {
				t.Fatalf("Format error: %v", err)
			}
			if formatted == "" {
				t.Error("Empty formatted output")
			}
		})
	}
}

func TestMultiLevelIdentifiers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCols int
	}{
		{"simple column", "SELECT a FROM t", 1},
		{"two-level column", "SELECT t.a FROM t", 1},
		{"three-level column", "SELECT schema.table.column FROM schema.table", 1},
		{"four-level column (catalog.schema.table.column)", "SELECT catalog.schema.table.column FROM catalog.schema.table", 1},
		{"mixed levels", "SELECT a, t.b, s.t.c, cat.s.t.d FROM t", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := ParseOne(tt.input, "")
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}

			sel, ok := stmt.(*ast.Select)
			if !ok {
				t.Fatalf("Expected *ast.Select, got %T", stmt)
			}
			if len(sel.Columns) != tt.wantCols {
				t.Errorf("Expected %d columns, got %d", tt.wantCols, len(sel.Columns))
			}

			formatted, err := Format(tt.input, "")
			if err != nil {
				t.Fatalf("Format error: %v", err)
			}
			formatted2, err := Format(formatted, "")
			if err != nil {
				t.Fatalf("Re-format error: %v\nFormatted: %s", err, formatted)
			}
			if formatted != formatted2 {
				t.Errorf("Round-trip mismatch:\nFirst:  %s\nSecond: %s", formatted, formatted2)
			}
		})
	}
}

func TestMultiLevelIdentifierParts(t *testing.T) {
	stmt, err := ParseOne("SELECT catalog.schema.table.column FROM db", "")
	if err != nil {
		t.Fatal(err)
	}

	sel := stmt.(*ast.Select)
	ae := sel.Columns[0].(*ast.AliasedExpr)
	col := ae.Expr.(*ast.ColName)

	if len(col.Parts) != 4 {
		t.Fatalf("Expected 4 parts, got %d: %v", len(col.Parts), col.Parts)
	}

	if col.Name() != "column" {
		t.Errorf("Name() = %q, want %q", col.Name(), "column")
	}
	if col.Table() != "table" {
		t.Errorf("Table() = %q, want %q", col.Table(), "table")
	}
	if col.Schema() != "schema" {
		t.Errorf("Schema() = %q, want %q", col.Schema(), "schema")
	}
	if col.Catalog() != "catalog" {
		t.Errorf("Catalog() = %q, want %q", col.Catalog(), "catalog")
	}
}

func TestMultiLevelTableName(t *testing.T) {
	stmt, err := ParseOne("SELECT * FROM catalog.schema.table", "")
	if err != nil {
		t.Fatal(err)
	}

	sel := stmt.(*ast.Select)
	var tn *ast.TableName
	switch from := sel.From.(type) {
	case *ast.TableName:
		tn = from
	case *ast.AliasedTableExpr:
		tn = from.Expr.(*ast.TableName)
	default:
		t.Fatalf("unexpected From type: %T", sel.From)
	}

	if len(tn.Parts) != 3 {
		t.Fatalf("Expected 3 parts, got %d: %v", len(tn.Parts), tn.Parts)
	}

	if tn.Name() != "table" {
		t.Errorf("Name() = %q, want %q", tn.Name(), "table")
	}
	if tn.Schema() != "schema" {
		t.Errorf("Schema() = %q, want %q", tn.Schema(), "schema")
	}
	if tn.Catalog() != "catalog" {
		t.Errorf("Catalog() = %q, want %q", tn.Catalog(), "catalog")
	}
}

func BenchmarkParseFormat(b *testing.B) {
	query := `SELECT u.id, u.name, COUNT(o.id) as order_count
FROM users u
LEFT JOIN orders o ON u.id = o.user_id
WHERE u.status = 'active'
  AND u.created_at BETWEEN '2024-01-01' AND '2024-12-31'
GROUP BY u.id, u.name
HAVING COUNT(o.id) > 5
ORDER BY order_count DESC
LIMIT 100`

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = Format(query, "")
	}
}

func BenchmarkWalk(b *testing.B) {
	stmt, _ := ParseOne(`SELECT u.id, u.name, COUNT(o.id) as order_count
FROM users u
LEFT JOIN orders o ON u.id = o.user_id
WHERE u.status = 'active'
GROUP BY u.id, u.name
ORDER BY order_count DESC`, "")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		Walk(stmt, func(node ast.Node) bool {
			return true
		})
	}
}
