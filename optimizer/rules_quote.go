package optimizer

import (
	"github.com/brindlecode/sqlforge/ast"
	"github.com/brindlecode/sqlforge/token"
)

// quoteIdentifiers sets the Quoted flag on every ColName/TableName part
// that collides with a reserved word or contains a character the bare
// identifier grammar disallows, so the generator wraps it regardless
// of its own needs-quoting pass. The generator
// already quotes on its own when this rule is disabled; running it
// makes that decision part of the tree rather than a side effect of
// generation, which matters for a host that inspects the optimized
// tree before handing it to a different generator.
func quoteIdentifiers(stmt ast.Statement, _ Context) ast.Statement {
	out := ast.Transform(stmt, func(n ast.Node) ast.Node {
		switch v := n.(type) {
		case *ast.ColName:
			if v.Quoted || !anyPartNeedsQuoting(v.Parts) {
				return n
			}
			nv := *v
			nv.Quoted = true
			return &nv
		case *ast.TableName:
			if v.Quoted || !anyPartNeedsQuoting(v.Parts) {
				return n
			}
			nv := *v
			nv.Quoted = true
			return &nv
		}
		return n
	})
	s, _ := out.(ast.Statement)
	if s == nil {
		return stmt
	}
	return s
}

func anyPartNeedsQuoting(parts []string) bool {
	for _, p := range parts {
		if needsQuoting(p) {
			return true
		}
	}
	return false
}

func needsQuoting(id string) bool {
	if len(id) == 0 {
		return true
	}
	ch := id[0]
	if !((ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_') {
		return true
	}
	for i := 1; i < len(id); i++ {
		ch := id[i]
		if !((ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') || ch == '_' || ch == '$') {
			return true
		}
	}
	return token.IsKeyword(id)
}
