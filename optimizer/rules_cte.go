package optimizer

import (
	"github.com/brindlecode/sqlforge/ast"
	"github.com/brindlecode/sqlforge/scope"
)

// eliminateCTEs drops a non-recursive CTE that is never referenced
// anywhere in the statement, removing it from the WITH clause. A CTE
// with at least one reference is left alone — eliminating dead
// declarations is safe, inlining a live one is a different rule
// (merge_subqueries' job when the shape allows it).
func eliminateCTEs(stmt ast.Statement, _ Context) ast.Statement {
	root := scope.Build(stmt)
	out := ast.Transform(stmt, func(n ast.Node) ast.Node {
		sel, ok := n.(*ast.Select)
		if !ok || sel.With == nil || sel.With.Recursive {
			return n
		}
		newSel := *sel
		var remaining []*ast.CTE
		dropped := false
		for _, cte := range sel.With.CTEs {
			if root.CTERefCount(cte.Name) == 0 {
				dropped = true
				continue
			}
			remaining = append(remaining, cte)
		}
		if !dropped {
			return n
		}
		if len(remaining) == 0 {
			newSel.With = nil
		} else {
			newSel.With = &ast.With{Recursive: sel.With.Recursive, CTEs: remaining}
		}
		return &newSel
	})
	s, _ := out.(ast.Statement)
	if s == nil {
		return stmt
	}
	return s
}
