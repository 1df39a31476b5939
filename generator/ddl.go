package generator

import (
	"strconv"

	"github.com/brindlecode/sqlforge/ast"
)

func (g *Generator) formatDataType(d *ast.DataType) {
	g.writeKeyword(d.Name)
	if d.Precision != nil {
		g.write("(")
		g.write(strconv.Itoa(*d.Precision))
		if d.Scale != nil {
			g.write(", ")
			g.write(strconv.Itoa(*d.Scale))
		}
		g.write(")")
	} else if d.Length != nil {
		g.write("(")
		g.write(strconv.Itoa(*d.Length))
		g.write(")")
	}
	if d.Unsigned {
		g.write(" ")
		g.writeKeyword("UNSIGNED")
	}
	if d.IsArray {
		g.write("[]")
	}
	if d.Charset != "" {
		g.write(" ")
		g.writeKeyword("CHARACTER SET")
		g.write(" ")
		g.writeIdent(d.Charset)
	}
	if d.Collation != "" {
		g.write(" ")
		g.writeKeyword("COLLATE")
		g.write(" ")
		g.writeIdent(d.Collation)
	}
}

func (g *Generator) formatForeignKeyRef(f *ast.ForeignKeyRef) {
	g.writeKeyword("REFERENCES")
	g.write(" ")
	g.Format(f.Table)
	if len(f.Columns) > 0 {
		g.write(" (")
		for i, col := range f.Columns {
			if i > 0 {
				g.write(", ")
			}
			g.writeIdent(col)
		}
		g.write(")")
	}
	if f.OnDelete != ast.RefNoAction {
		g.write(" ")
		g.writeKeyword("ON DELETE")
		g.write(" ")
		g.writeKeyword(refActionText(f.OnDelete))
	}
	if f.OnUpdate != ast.RefNoAction {
		g.write(" ")
		g.writeKeyword("ON UPDATE")
		g.write(" ")
		g.writeKeyword(refActionText(f.OnUpdate))
	}
}

func refActionText(a ast.RefAction) string {
	switch a {
	case ast.RefCascade:
		return "CASCADE"
	case ast.RefSetNull:
		return "SET NULL"
	case ast.RefSetDefault:
		return "SET DEFAULT"
	case ast.RefRestrict:
		return "RESTRICT"
	default:
		return "NO ACTION"
	}
}

func (g *Generator) formatColumnConstraint(c *ast.ColumnConstraint) {
	if c.Name != "" {
		g.writeKeyword("CONSTRAINT")
		g.write(" ")
		g.writeIdent(c.Name)
		g.write(" ")
	}
	switch c.ConstrType {
	case ast.ConstraintPrimaryKey:
		g.writeKeyword("PRIMARY KEY")
	case ast.ConstraintUnique:
		g.writeKeyword("UNIQUE")
	case ast.ConstraintNotNull:
		g.writeKeyword("NOT NULL")
	case ast.ConstraintDefault:
		g.writeKeyword("DEFAULT")
		g.write(" ")
		g.Format(c.Default)
	case ast.ConstraintCheck:
		g.writeKeyword("CHECK")
		g.write(" (")
		g.Format(c.Check)
		g.write(")")
	case ast.ConstraintForeignKey:
		g.formatForeignKeyRef(c.References)
	case ast.ConstraintGenerated:
		g.writeKeyword("GENERATED ALWAYS AS")
		g.write(" (")
		g.Format(c.GenExpr)
		g.write(")")
		if c.GenStored {
			g.write(" ")
			g.writeKeyword("STORED")
		}
	}
}

func (g *Generator) formatColumnDef(c *ast.ColumnDef) {
	g.writeIdent(c.Name)
	g.write(" ")
	g.formatDataType(c.Type)
	for _, con := range c.Constraints {
		g.write(" ")
		g.formatColumnConstraint(con)
	}
}

func (g *Generator) formatTableConstraint(t *ast.TableConstraint) {
	if t.Name != "" {
		g.writeKeyword("CONSTRAINT")
		g.write(" ")
		g.writeIdent(t.Name)
		g.write(" ")
	}
	switch t.ConstrType {
	case ast.ConstraintPrimaryKey:
		g.writeKeyword("PRIMARY KEY")
		g.write(" ")
		g.writeColumnList(t.Columns)
	case ast.ConstraintUnique:
		g.writeKeyword("UNIQUE")
		g.write(" ")
		g.writeColumnList(t.Columns)
	case ast.ConstraintCheck:
		g.writeKeyword("CHECK")
		g.write(" (")
		g.Format(t.Check)
		g.write(")")
	case ast.ConstraintForeignKey:
		g.writeKeyword("FOREIGN KEY")
		g.write(" ")
		g.writeColumnList(t.Columns)
		g.write(" ")
		g.formatForeignKeyRef(t.References)
	}
}

func (g *Generator) writeColumnList(cols []string) {
	g.write("(")
	for i, c := range cols {
		if i > 0 {
			g.write(", ")
		}
		g.writeIdent(c)
	}
	g.write(")")
}

func (g *Generator) formatCreateTable(c *ast.CreateTable) {
	g.writeKeyword("CREATE")
	g.write(" ")
	if c.Temporary {
		g.writeKeyword("TEMPORARY")
		g.write(" ")
	}
	g.writeKeyword("TABLE")
	g.write(" ")
	if c.IfNotExists {
		g.writeKeyword("IF NOT EXISTS")
		g.write(" ")
	}
	g.Format(c.Table)

	if len(c.Columns) > 0 || len(c.Constraints) > 0 {
		g.write(" (")
		first := true
		for _, col := range c.Columns {
			if !first {
				g.write(", ")
			}
			g.formatColumnDef(col)
			first = false
		}
		for _, con := range c.Constraints {
			if !first {
				g.write(", ")
			}
			g.formatTableConstraint(con)
			first = false
		}
		g.write(")")
	}

	for i, opt := range c.Options {
		if i > 0 {
			g.write(" ")
		}
		g.write(" ")
		g.Format(opt)
	}

	if c.As != nil {
		g.write(" ")
		g.writeKeyword("AS")
		g.write(" ")
		g.Format(c.As)
	}
}

func (g *Generator) formatAlterTable(a *ast.AlterTable) {
	g.writeKeyword("ALTER TABLE")
	g.write(" ")
	g.Format(a.Table)
	for i, act := range a.Actions {
		if i > 0 {
			g.write(",")
		}
		g.write(" ")
		g.formatAlterAction(act)
	}
}

func (g *Generator) formatAlterAction(action ast.AlterTableAction) {
	switch act := action.(type) {
	case *ast.AddColumn:
		g.writeKeyword("ADD COLUMN")
		g.write(" ")
		g.formatColumnDef(act.Column)
	case *ast.DropColumn:
		g.writeKeyword("DROP COLUMN")
		g.write(" ")
		if act.IfExists {
			g.writeKeyword("IF EXISTS")
			g.write(" ")
		}
		g.writeIdent(act.Name)
		if act.Cascade {
			g.write(" ")
			g.writeKeyword("CASCADE")
		}
	case *ast.ModifyColumn:
		g.writeKeyword("ALTER COLUMN")
		g.write(" ")
		g.writeIdent(act.Name)
		switch {
		case act.NewDef != nil:
			g.write(" ")
			g.writeKeyword("TYPE")
			g.write(" ")
			g.formatDataType(act.NewDef.Type)
		case act.DropDefault:
			g.write(" ")
			g.writeKeyword("DROP DEFAULT")
		case act.SetDefault != nil:
			g.write(" ")
			g.writeKeyword("SET DEFAULT")
			g.write(" ")
			g.Format(act.SetDefault)
		case act.SetNotNull:
			g.write(" ")
			g.writeKeyword("SET NOT NULL")
		case act.DropNotNull:
			g.write(" ")
			g.writeKeyword("DROP NOT NULL")
		}
	case *ast.RenameColumn:
		g.writeKeyword("RENAME COLUMN")
		g.write(" ")
		g.writeIdent(act.OldName)
		g.write(" ")
		g.writeKeyword("TO")
		g.write(" ")
		g.writeIdent(act.NewName)
	case *ast.AddConstraint:
		g.writeKeyword("ADD")
		g.write(" ")
		g.formatTableConstraint(act.Constraint)
	case *ast.DropConstraint:
		g.writeKeyword("DROP CONSTRAINT")
		g.write(" ")
		if act.IfExists {
			g.writeKeyword("IF EXISTS")
			g.write(" ")
		}
		g.writeIdent(act.Name)
		if act.Cascade {
			g.write(" ")
			g.writeKeyword("CASCADE")
		}
	case *ast.RenameTable:
		g.writeKeyword("RENAME TO")
		g.write(" ")
		g.Format(act.NewName)
	default:
		g.write("/* unsupported alter action */")
	}
}

func (g *Generator) formatDropTable(d *ast.DropTable) {
	g.writeKeyword("DROP TABLE")
	g.write(" ")
	if d.IfExists {
		g.writeKeyword("IF EXISTS")
		g.write(" ")
	}
	for i, t := range d.Tables {
		if i > 0 {
			g.write(", ")
		}
		g.Format(t)
	}
	if d.Cascade {
		g.write(" ")
		g.writeKeyword("CASCADE")
	}
}

func (g *Generator) formatIndexColumn(i *ast.IndexColumn) {
	if i.Expr != nil {
		g.write("(")
		g.Format(i.Expr)
		g.write(")")
	} else {
		g.writeIdent(i.Column)
	}
	if i.Desc {
		g.write(" ")
		g.writeKeyword("DESC")
	}
	if i.Nulls != "" {
		g.write(" ")
		g.writeKeyword("NULLS")
		g.write(" ")
		g.writeKeyword(i.Nulls)
	}
}

func (g *Generator) formatCreateIndex(c *ast.CreateIndex) {
	g.writeKeyword("CREATE")
	g.write(" ")
	if c.Unique {
		g.writeKeyword("UNIQUE")
		g.write(" ")
	}
	g.writeKeyword("INDEX")
	g.write(" ")
	if c.Concurrent {
		g.writeKeyword("CONCURRENTLY")
		g.write(" ")
	}
	if c.IfNotExists {
		g.writeKeyword("IF NOT EXISTS")
		g.write(" ")
	}
	g.writeIdent(c.Name)
	g.write(" ")
	g.writeKeyword("ON")
	g.write(" ")
	g.Format(c.Table)
	if c.Using != "" {
		g.write(" ")
		g.writeKeyword("USING")
		g.write(" ")
		g.writeKeyword(c.Using)
	}
	g.write(" (")
	for i, col := range c.Columns {
		if i > 0 {
			g.write(", ")
		}
		g.formatIndexColumn(col)
	}
	g.write(")")
	if c.Where != nil {
		g.write(" ")
		g.writeKeyword("WHERE")
		g.write(" ")
		g.Format(c.Where)
	}
}

func (g *Generator) formatDropIndex(d *ast.DropIndex) {
	g.writeKeyword("DROP INDEX")
	g.write(" ")
	if d.Concurrent {
		g.writeKeyword("CONCURRENTLY")
		g.write(" ")
	}
	if d.IfExists {
		g.writeKeyword("IF EXISTS")
		g.write(" ")
	}
	if d.Table != nil {
		g.Format(d.Table)
		g.write(".")
	}
	g.writeIdent(d.Name)
	if d.Cascade {
		g.write(" ")
		g.writeKeyword("CASCADE")
	}
}

func (g *Generator) formatTruncate(t *ast.Truncate) {
	g.writeKeyword("TRUNCATE TABLE")
	g.write(" ")
	for i, tbl := range t.Tables {
		if i > 0 {
			g.write(", ")
		}
		g.Format(tbl)
	}
	if t.Cascade {
		g.write(" ")
		g.writeKeyword("CASCADE")
	}
}

func (g *Generator) formatExplain(e *ast.Explain) {
	g.writeKeyword("EXPLAIN")
	if e.Analyze || e.Verbose || e.Format != "" {
		g.write(" (")
		wrote := false
		if e.Analyze {
			g.writeKeyword("ANALYZE")
			wrote = true
		}
		if e.Verbose {
			if wrote {
				g.write(", ")
			}
			g.writeKeyword("VERBOSE")
			wrote = true
		}
		if e.Format != "" {
			if wrote {
				g.write(", ")
			}
			g.writeKeyword("FORMAT")
			g.write(" ")
			g.writeKeyword(e.Format)
		}
		g.write(")")
	}
	g.write(" ")
	g.Format(e.Stmt)
}
