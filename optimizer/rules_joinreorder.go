package optimizer

import "github.com/brindlecode/sqlforge/ast"

// joinReordering is a documented no-op. Reordering joins for
// performance requires cardinality or cost estimates to decide which
// ordering is actually cheaper; this core deliberately excludes
// catalog/statistics-based cost estimation, and a reorder without that
// information is a coin flip rather than an optimization — it could
// just as easily make a query slower while still being
// semantics-preserving. Context carries no cost model, so the rule
// abstains unconditionally whether or not its flag is set.
func joinReordering(stmt ast.Statement, _ Context) ast.Statement {
	return stmt
}
