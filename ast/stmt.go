package ast

// Select is a SELECT statement.
type Select struct {
	With       *With
	Distinct   bool
	Columns    []SelectItem
	From       TableExpr
	Where      Expression
	GroupBy    []Expression
	Having     Expression
	OrderBy    []*OrderBy
	Limit      *Limit
	Lock       string // FOR UPDATE, FOR SHARE, ""
	WindowDefs []*WindowDef
}

func (*Select) Kind() Kind { return KindSelect }
func (s *Select) Args() []Arg {
	colNodes := make([]Node, len(s.Columns))
	for i, c := range s.Columns {
		colNodes[i] = c
	}
	groupNodes := make([]Node, len(s.GroupBy))
	for i, e := range s.GroupBy {
		groupNodes[i] = e
	}
	orderNodes := make([]Node, len(s.OrderBy))
	for i, o := range s.OrderBy {
		orderNodes[i] = o
	}
	winNodes := make([]Node, len(s.WindowDefs))
	for i, w := range s.WindowDefs {
		winNodes[i] = w
	}
	var with, limit Node
	if s.With != nil {
		with = s.With
	}
	if s.Limit != nil {
		limit = s.Limit
	}
	return []Arg{
		{Name: "with", Kind: ArgNode, Node: with},
		{Name: "distinct", Kind: ArgScalar, Value: s.Distinct},
		{Name: "columns", Kind: ArgList, Nodes: colNodes},
		{Name: "from", Kind: ArgNode, Node: s.From},
		{Name: "where", Kind: ArgNode, Node: s.Where},
		{Name: "groupBy", Kind: ArgList, Nodes: groupNodes},
		{Name: "having", Kind: ArgNode, Node: s.Having},
		{Name: "orderBy", Kind: ArgList, Nodes: orderNodes},
		{Name: "limit", Kind: ArgNode, Node: limit},
		{Name: "lock", Kind: ArgScalar, Value: s.Lock},
		{Name: "windowDefs", Kind: ArgList, Nodes: winNodes},
	}
}
func (s *Select) WithArgs(a []Arg) Node {
	n := *s
	if a[0].Node != nil {
		n.With, _ = a[0].Node.(*With)
	} else {
		n.With = nil
	}
	n.Distinct = a[1].Value.(bool)
	n.Columns = make([]SelectItem, len(a[2].Nodes))
	for i, nd := range a[2].Nodes {
		n.Columns[i], _ = nd.(SelectItem)
	}
	n.From, _ = a[3].Node.(TableExpr)
	n.Where, _ = a[4].Node.(Expression)
	n.GroupBy = make([]Expression, len(a[5].Nodes))
	for i, nd := range a[5].Nodes {
		n.GroupBy[i], _ = nd.(Expression)
	}
	n.Having, _ = a[6].Node.(Expression)
	n.OrderBy = make([]*OrderBy, len(a[7].Nodes))
	for i, nd := range a[7].Nodes {
		n.OrderBy[i], _ = nd.(*OrderBy)
	}
	if a[8].Node != nil {
		n.Limit, _ = a[8].Node.(*Limit)
	} else {
		n.Limit = nil
	}
	n.Lock = a[9].Value.(string)
	n.WindowDefs = make([]*WindowDef, len(a[10].Nodes))
	for i, nd := range a[10].Nodes {
		n.WindowDefs[i], _ = nd.(*WindowDef)
	}
	return &n
}
func (*Select) statementNode() {}

// SetOpType enumerates UNION/INTERSECT/EXCEPT.
type SetOpType int

const (
	SetUnion SetOpType = iota
	SetIntersect
	SetExcept
)

// SetOp is a compound statement: Left <op> Right, built left-associative
// so a chain of N set operators produces N-1 nested SetOp nodes rather
// than discarding everything past the first operator.
type SetOp struct {
	Op      SetOpType
	All     bool
	Left    Statement
	Right   Statement
	OrderBy []*OrderBy
	Limit   *Limit
}

func (*SetOp) Kind() Kind { return KindSetOp }
func (s *SetOp) Args() []Arg {
	orderNodes := make([]Node, len(s.OrderBy))
	for i, o := range s.OrderBy {
		orderNodes[i] = o
	}
	var limit Node
	if s.Limit != nil {
		limit = s.Limit
	}
	return []Arg{
		{Name: "op", Kind: ArgScalar, Value: s.Op},
		{Name: "all", Kind: ArgScalar, Value: s.All},
		{Name: "left", Kind: ArgNode, Node: s.Left},
		{Name: "right", Kind: ArgNode, Node: s.Right},
		{Name: "orderBy", Kind: ArgList, Nodes: orderNodes},
		{Name: "limit", Kind: ArgNode, Node: limit},
	}
}
func (s *SetOp) WithArgs(a []Arg) Node {
	n := *s
	n.Op = a[0].Value.(SetOpType)
	n.All = a[1].Value.(bool)
	n.Left, _ = a[2].Node.(Statement)
	n.Right, _ = a[3].Node.(Statement)
	n.OrderBy = make([]*OrderBy, len(a[4].Nodes))
	for i, nd := range a[4].Nodes {
		n.OrderBy[i], _ = nd.(*OrderBy)
	}
	if a[5].Node != nil {
		n.Limit, _ = a[5].Node.(*Limit)
	} else {
		n.Limit = nil
	}
	return &n
}
func (*SetOp) statementNode() {}

// CTE is one entry of a WITH clause.
type CTE struct {
	Name    string
	Columns []string
	Query   Statement
}

func (*CTE) Kind() Kind { return KindCTE }
func (c *CTE) Args() []Arg {
	return []Arg{
		{Name: "name", Kind: ArgScalar, Value: c.Name},
		{Name: "columns", Kind: ArgScalar, Value: append([]string(nil), c.Columns...)},
		{Name: "query", Kind: ArgNode, Node: c.Query},
	}
}
func (c *CTE) WithArgs(a []Arg) Node {
	n := *c
	n.Name = a[0].Value.(string)
	n.Columns = a[1].Value.([]string)
	n.Query, _ = a[2].Node.(Statement)
	return &n
}

// With is a WITH clause attached to a statement.
type With struct {
	Recursive bool
	CTEs      []*CTE
}

func (*With) Kind() Kind { return KindWith }
func (w *With) Args() []Arg {
	cteNodes := make([]Node, len(w.CTEs))
	for i, c := range w.CTEs {
		cteNodes[i] = c
	}
	return []Arg{
		{Name: "recursive", Kind: ArgScalar, Value: w.Recursive},
		{Name: "ctes", Kind: ArgList, Nodes: cteNodes},
	}
}
func (w *With) WithArgs(a []Arg) Node {
	n := *w
	n.Recursive = a[0].Value.(bool)
	n.CTEs = make([]*CTE, len(a[1].Nodes))
	for i, nd := range a[1].Nodes {
		n.CTEs[i], _ = nd.(*CTE)
	}
	return &n
}

// UpdateExpr is one `column = expr` assignment in SET or ON
// DUPLICATE/CONFLICT update lists.
type UpdateExpr struct {
	Column *ColName
	Expr   Expression
}

func (*UpdateExpr) Kind() Kind { return KindUpdateExpr }
func (u *UpdateExpr) Args() []Arg {
	return []Arg{
		{Name: "column", Kind: ArgNode, Node: u.Column},
		{Name: "expr", Kind: ArgNode, Node: u.Expr},
	}
}
func (u *UpdateExpr) WithArgs(a []Arg) Node {
	n := *u
	n.Column, _ = a[0].Node.(*ColName)
	n.Expr, _ = a[1].Node.(Expression)
	return &n
}

// OnConflict is PostgreSQL's ON CONFLICT clause.
type OnConflict struct {
	Columns   []string
	Where     Expression
	DoNothing bool
	Updates   []*UpdateExpr
}

func (*OnConflict) Kind() Kind { return KindOnConflict }
func (o *OnConflict) Args() []Arg {
	updNodes := make([]Node, len(o.Updates))
	for i, u := range o.Updates {
		updNodes[i] = u
	}
	return []Arg{
		{Name: "columns", Kind: ArgScalar, Value: append([]string(nil), o.Columns...)},
		{Name: "where", Kind: ArgNode, Node: o.Where},
		{Name: "doNothing", Kind: ArgScalar, Value: o.DoNothing},
		{Name: "updates", Kind: ArgList, Nodes: updNodes},
	}
}
func (o *OnConflict) WithArgs(a []Arg) Node {
	n := *o
	n.Columns = a[0].Value.([]string)
	n.Where, _ = a[1].Node.(Expression)
	n.DoNothing = a[2].Value.(bool)
	n.Updates = make([]*UpdateExpr, len(a[3].Nodes))
	for i, nd := range a[3].Nodes {
		n.Updates[i], _ = nd.(*UpdateExpr)
	}
	return &n
}

// Insert is an INSERT statement, covering VALUES/SELECT/SET/DEFAULT
// VALUES source forms plus MySQL ON DUPLICATE KEY UPDATE and
// PostgreSQL ON CONFLICT/RETURNING.
type Insert struct {
	With              *With
	Replace           bool // REPLACE INTO
	Ignore            bool // INSERT IGNORE
	Table             *TableName
	Columns           []*ColName
	Values            [][]Expression
	Select            *Select
	OnDuplicateUpdate []*UpdateExpr
	OnConflict        *OnConflict
	Returning         []SelectItem
}

func (*Insert) Kind() Kind { return KindInsert }
func (ins *Insert) Args() []Arg {
	colNodes := make([]Node, len(ins.Columns))
	for i, c := range ins.Columns {
		colNodes[i] = c
	}
	rowNodes := make([]Node, len(ins.Values))
	for i, row := range ins.Values {
		cells := make([]Node, len(row))
		for j, e := range row {
			cells[j] = e
		}
		rowNodes[i] = &exprRow{cells}
	}
	dupNodes := make([]Node, len(ins.OnDuplicateUpdate))
	for i, u := range ins.OnDuplicateUpdate {
		dupNodes[i] = u
	}
	retNodes := make([]Node, len(ins.Returning))
	for i, r := range ins.Returning {
		retNodes[i] = r
	}
	var with, sel, conflict Node
	if ins.With != nil {
		with = ins.With
	}
	if ins.Select != nil {
		sel = ins.Select
	}
	if ins.OnConflict != nil {
		conflict = ins.OnConflict
	}
	return []Arg{
		{Name: "with", Kind: ArgNode, Node: with},
		{Name: "replace", Kind: ArgScalar, Value: ins.Replace},
		{Name: "ignore", Kind: ArgScalar, Value: ins.Ignore},
		{Name: "table", Kind: ArgNode, Node: ins.Table},
		{Name: "columns", Kind: ArgList, Nodes: colNodes},
		{Name: "values", Kind: ArgList, Nodes: rowNodes},
		{Name: "select", Kind: ArgNode, Node: sel},
		{Name: "onDuplicateUpdate", Kind: ArgList, Nodes: dupNodes},
		{Name: "onConflict", Kind: ArgNode, Node: conflict},
		{Name: "returning", Kind: ArgList, Nodes: retNodes},
	}
}
func (ins *Insert) WithArgs(a []Arg) Node {
	n := *ins
	if a[0].Node != nil {
		n.With, _ = a[0].Node.(*With)
	} else {
		n.With = nil
	}
	n.Replace = a[1].Value.(bool)
	n.Ignore = a[2].Value.(bool)
	n.Table, _ = a[3].Node.(*TableName)
	n.Columns = make([]*ColName, len(a[4].Nodes))
	for i, nd := range a[4].Nodes {
		n.Columns[i], _ = nd.(*ColName)
	}
	n.Values = make([][]Expression, len(a[5].Nodes))
	for i, nd := range a[5].Nodes {
		row := nd.(*exprRow)
		cells := make([]Expression, len(row.cells))
		for j, c := range row.cells {
			cells[j], _ = c.(Expression)
		}
		n.Values[i] = cells
	}
	if a[6].Node != nil {
		n.Select, _ = a[6].Node.(*Select)
	} else {
		n.Select = nil
	}
	n.OnDuplicateUpdate = make([]*UpdateExpr, len(a[7].Nodes))
	for i, nd := range a[7].Nodes {
		n.OnDuplicateUpdate[i], _ = nd.(*UpdateExpr)
	}
	if a[8].Node != nil {
		n.OnConflict, _ = a[8].Node.(*OnConflict)
	} else {
		n.OnConflict = nil
	}
	n.Returning = make([]SelectItem, len(a[9].Nodes))
	for i, nd := range a[9].Nodes {
		n.Returning[i], _ = nd.(SelectItem)
	}
	return &n
}
func (*Insert) statementNode() {}

// Update is an UPDATE statement.
type Update struct {
	With      *With
	Table     TableExpr
	Set       []*UpdateExpr
	From      TableExpr // PostgreSQL FROM
	Where     Expression
	OrderBy   []*OrderBy // MySQL extension
	Limit     *Limit     // MySQL extension
	Returning []SelectItem
}

func (*Update) Kind() Kind { return KindUpdate }
func (u *Update) Args() []Arg {
	setNodes := make([]Node, len(u.Set))
	for i, s := range u.Set {
		setNodes[i] = s
	}
	orderNodes := make([]Node, len(u.OrderBy))
	for i, o := range u.OrderBy {
		orderNodes[i] = o
	}
	retNodes := make([]Node, len(u.Returning))
	for i, r := range u.Returning {
		retNodes[i] = r
	}
	var with, limit Node
	if u.With != nil {
		with = u.With
	}
	if u.Limit != nil {
		limit = u.Limit
	}
	return []Arg{
		{Name: "with", Kind: ArgNode, Node: with},
		{Name: "table", Kind: ArgNode, Node: u.Table},
		{Name: "set", Kind: ArgList, Nodes: setNodes},
		{Name: "from", Kind: ArgNode, Node: u.From},
		{Name: "where", Kind: ArgNode, Node: u.Where},
		{Name: "orderBy", Kind: ArgList, Nodes: orderNodes},
		{Name: "limit", Kind: ArgNode, Node: limit},
		{Name: "returning", Kind: ArgList, Nodes: retNodes},
	}
}
func (u *Update) WithArgs(a []Arg) Node {
	n := *u
	if a[0].Node != nil {
		n.With, _ = a[0].Node.(*With)
	} else {
		n.With = nil
	}
	n.Table, _ = a[1].Node.(TableExpr)
	n.Set = make([]*UpdateExpr, len(a[2].Nodes))
	for i, nd := range a[2].Nodes {
		n.Set[i], _ = nd.(*UpdateExpr)
	}
	n.From, _ = a[3].Node.(TableExpr)
	n.Where, _ = a[4].Node.(Expression)
	n.OrderBy = make([]*OrderBy, len(a[5].Nodes))
	for i, nd := range a[5].Nodes {
		n.OrderBy[i], _ = nd.(*OrderBy)
	}
	if a[6].Node != nil {
		n.Limit, _ = a[6].Node.(*Limit)
	} else {
		n.Limit = nil
	}
	n.Returning = make([]SelectItem, len(a[7].Nodes))
	for i, nd := range a[7].Nodes {
		n.Returning[i], _ = nd.(SelectItem)
	}
	return &n
}
func (*Update) statementNode() {}

// Delete is a DELETE statement.
type Delete struct {
	With      *With
	Table     TableExpr
	Using     TableExpr // PostgreSQL USING
	Where     Expression
	OrderBy   []*OrderBy // MySQL extension
	Limit     *Limit     // MySQL extension
	Returning []SelectItem
}

func (*Delete) Kind() Kind { return KindDelete }
func (d *Delete) Args() []Arg {
	orderNodes := make([]Node, len(d.OrderBy))
	for i, o := range d.OrderBy {
		orderNodes[i] = o
	}
	retNodes := make([]Node, len(d.Returning))
	for i, r := range d.Returning {
		retNodes[i] = r
	}
	var with, limit Node
	if d.With != nil {
		with = d.With
	}
	if d.Limit != nil {
		limit = d.Limit
	}
	return []Arg{
		{Name: "with", Kind: ArgNode, Node: with},
		{Name: "table", Kind: ArgNode, Node: d.Table},
		{Name: "using", Kind: ArgNode, Node: d.Using},
		{Name: "where", Kind: ArgNode, Node: d.Where},
		{Name: "orderBy", Kind: ArgList, Nodes: orderNodes},
		{Name: "limit", Kind: ArgNode, Node: limit},
		{Name: "returning", Kind: ArgList, Nodes: retNodes},
	}
}
func (d *Delete) WithArgs(a []Arg) Node {
	n := *d
	if a[0].Node != nil {
		n.With, _ = a[0].Node.(*With)
	} else {
		n.With = nil
	}
	n.Table, _ = a[1].Node.(TableExpr)
	n.Using, _ = a[2].Node.(TableExpr)
	n.Where, _ = a[3].Node.(Expression)
	n.OrderBy = make([]*OrderBy, len(a[4].Nodes))
	for i, nd := range a[4].Nodes {
		n.OrderBy[i], _ = nd.(*OrderBy)
	}
	if a[5].Node != nil {
		n.Limit, _ = a[5].Node.(*Limit)
	} else {
		n.Limit = nil
	}
	n.Returning = make([]SelectItem, len(a[6].Nodes))
	for i, nd := range a[6].Nodes {
		n.Returning[i], _ = nd.(SelectItem)
	}
	return &n
}
func (*Delete) statementNode() {}

// ConstraintType enumerates column/table constraint kinds.
type ConstraintType int

const (
	ConstraintPrimaryKey ConstraintType = iota
	ConstraintUnique
	ConstraintNotNull
	ConstraintDefault
	ConstraintCheck
	ConstraintForeignKey
	ConstraintGenerated
)

// RefAction enumerates foreign key referential actions.
type RefAction int

const (
	RefNoAction RefAction = iota
	RefCascade
	RefSetNull
	RefSetDefault
	RefRestrict
)

// ForeignKeyRef is the REFERENCES target of a foreign key constraint.
type ForeignKeyRef struct {
	Table    *TableName
	Columns  []string
	OnDelete RefAction
	OnUpdate RefAction
}

func (*ForeignKeyRef) Kind() Kind { return KindForeignKeyRef }
func (f *ForeignKeyRef) Args() []Arg {
	return []Arg{
		{Name: "table", Kind: ArgNode, Node: f.Table},
		{Name: "columns", Kind: ArgScalar, Value: append([]string(nil), f.Columns...)},
		{Name: "onDelete", Kind: ArgScalar, Value: f.OnDelete},
		{Name: "onUpdate", Kind: ArgScalar, Value: f.OnUpdate},
	}
}
func (f *ForeignKeyRef) WithArgs(a []Arg) Node {
	n := *f
	n.Table, _ = a[0].Node.(*TableName)
	n.Columns = a[1].Value.([]string)
	n.OnDelete = a[2].Value.(RefAction)
	n.OnUpdate = a[3].Value.(RefAction)
	return &n
}

// ColumnConstraint is a column-level constraint (PRIMARY KEY, UNIQUE,
// NOT NULL, DEFAULT, CHECK, REFERENCES, or a generated-column spec).
type ColumnConstraint struct {
	Name       string
	ConstrType ConstraintType
	Default    Expression
	Check      Expression
	References *ForeignKeyRef
	GenExpr    Expression // set when ConstrType == ConstraintGenerated
	GenStored  bool
}

func (*ColumnConstraint) Kind() Kind { return KindColumnConstraint }
func (c *ColumnConstraint) Args() []Arg {
	var ref Node
	if c.References != nil {
		ref = c.References
	}
	return []Arg{
		{Name: "name", Kind: ArgScalar, Value: c.Name},
		{Name: "type", Kind: ArgScalar, Value: c.ConstrType},
		{Name: "default", Kind: ArgNode, Node: c.Default},
		{Name: "check", Kind: ArgNode, Node: c.Check},
		{Name: "references", Kind: ArgNode, Node: ref},
		{Name: "genExpr", Kind: ArgNode, Node: c.GenExpr},
		{Name: "genStored", Kind: ArgScalar, Value: c.GenStored},
	}
}
func (c *ColumnConstraint) WithArgs(a []Arg) Node {
	n := *c
	n.Name = a[0].Value.(string)
	n.ConstrType = a[1].Value.(ConstraintType)
	n.Default, _ = a[2].Node.(Expression)
	n.Check, _ = a[3].Node.(Expression)
	if a[4].Node != nil {
		n.References, _ = a[4].Node.(*ForeignKeyRef)
	} else {
		n.References = nil
	}
	n.GenExpr, _ = a[5].Node.(Expression)
	n.GenStored = a[6].Value.(bool)
	return &n
}

// ColumnDef is one column in a CREATE TABLE.
type ColumnDef struct {
	Name        string
	Type        *DataType
	Constraints []*ColumnConstraint
}

func (*ColumnDef) Kind() Kind { return KindColumnDef }
func (c *ColumnDef) Args() []Arg {
	conNodes := make([]Node, len(c.Constraints))
	for i, cc := range c.Constraints {
		conNodes[i] = cc
	}
	return []Arg{
		{Name: "name", Kind: ArgScalar, Value: c.Name},
		{Name: "type", Kind: ArgNode, Node: c.Type},
		{Name: "constraints", Kind: ArgList, Nodes: conNodes},
	}
}
func (c *ColumnDef) WithArgs(a []Arg) Node {
	n := *c
	n.Name = a[0].Value.(string)
	n.Type, _ = a[1].Node.(*DataType)
	n.Constraints = make([]*ColumnConstraint, len(a[2].Nodes))
	for i, nd := range a[2].Nodes {
		n.Constraints[i], _ = nd.(*ColumnConstraint)
	}
	return &n
}

// TableConstraint is a table-level constraint (PRIMARY KEY/UNIQUE
// over a column list, CHECK, or FOREIGN KEY).
type TableConstraint struct {
	Name       string
	ConstrType ConstraintType
	Columns    []string
	References *ForeignKeyRef
	Check      Expression
}

func (*TableConstraint) Kind() Kind { return KindTableConstraint }
func (t *TableConstraint) Args() []Arg {
	var ref Node
	if t.References != nil {
		ref = t.References
	}
	return []Arg{
		{Name: "name", Kind: ArgScalar, Value: t.Name},
		{Name: "type", Kind: ArgScalar, Value: t.ConstrType},
		{Name: "columns", Kind: ArgScalar, Value: append([]string(nil), t.Columns...)},
		{Name: "references", Kind: ArgNode, Node: ref},
		{Name: "check", Kind: ArgNode, Node: t.Check},
	}
}
func (t *TableConstraint) WithArgs(a []Arg) Node {
	n := *t
	n.Name = a[0].Value.(string)
	n.ConstrType = a[1].Value.(ConstraintType)
	n.Columns = a[2].Value.([]string)
	if a[3].Node != nil {
		n.References, _ = a[3].Node.(*ForeignKeyRef)
	} else {
		n.References = nil
	}
	n.Check, _ = a[4].Node.(Expression)
	return &n
}

// TableOption is one `ENGINE=InnoDB`-shaped storage option trailing a
// CREATE TABLE's column list (MySQL ENGINE/CHARSET/COLLATE/COMMENT/
// AUTO_INCREMENT and similar dialect-specific knobs).
type TableOption struct {
	Name  string
	Value string
}

func (*TableOption) Kind() Kind { return KindTableOption }
func (o *TableOption) Args() []Arg {
	return []Arg{
		{Name: "name", Kind: ArgScalar, Value: o.Name},
		{Name: "value", Kind: ArgScalar, Value: o.Value},
	}
}
func (o *TableOption) WithArgs(a []Arg) Node {
	n := *o
	n.Name = a[0].Value.(string)
	n.Value = a[1].Value.(string)
	return &n
}

// CreateTable is a CREATE TABLE statement, including CREATE TABLE AS
// SELECT.
type CreateTable struct {
	IfNotExists bool
	Temporary   bool
	Table       *TableName
	Columns     []*ColumnDef
	Constraints []*TableConstraint
	Options     []*TableOption
	As          *Select
}

func (*CreateTable) Kind() Kind { return KindCreateTable }
func (c *CreateTable) Args() []Arg {
	colNodes := make([]Node, len(c.Columns))
	for i, col := range c.Columns {
		colNodes[i] = col
	}
	conNodes := make([]Node, len(c.Constraints))
	for i, con := range c.Constraints {
		conNodes[i] = con
	}
	optNodes := make([]Node, len(c.Options))
	for i, opt := range c.Options {
		optNodes[i] = opt
	}
	var as Node
	if c.As != nil {
		as = c.As
	}
	return []Arg{
		{Name: "ifNotExists", Kind: ArgScalar, Value: c.IfNotExists},
		{Name: "temporary", Kind: ArgScalar, Value: c.Temporary},
		{Name: "table", Kind: ArgNode, Node: c.Table},
		{Name: "columns", Kind: ArgList, Nodes: colNodes},
		{Name: "constraints", Kind: ArgList, Nodes: conNodes},
		{Name: "options", Kind: ArgList, Nodes: optNodes},
		{Name: "as", Kind: ArgNode, Node: as},
	}
}
func (c *CreateTable) WithArgs(a []Arg) Node {
	n := *c
	n.IfNotExists = a[0].Value.(bool)
	n.Temporary = a[1].Value.(bool)
	n.Table, _ = a[2].Node.(*TableName)
	n.Columns = make([]*ColumnDef, len(a[3].Nodes))
	for i, nd := range a[3].Nodes {
		n.Columns[i], _ = nd.(*ColumnDef)
	}
	n.Constraints = make([]*TableConstraint, len(a[4].Nodes))
	for i, nd := range a[4].Nodes {
		n.Constraints[i], _ = nd.(*TableConstraint)
	}
	n.Options = make([]*TableOption, len(a[5].Nodes))
	for i, nd := range a[5].Nodes {
		n.Options[i], _ = nd.(*TableOption)
	}
	if a[6].Node != nil {
		n.As, _ = a[6].Node.(*Select)
	} else {
		n.As = nil
	}
	return &n
}
func (*CreateTable) statementNode() {}

// AlterTableAction is one action within an ALTER TABLE statement.
type AlterTableAction interface {
	Node
	alterTableAction()
}

type AddColumn struct{ Column *ColumnDef }

func (*AddColumn) Kind() Kind     { return KindInvalid }
func (a *AddColumn) Args() []Arg  { return []Arg{{Name: "column", Kind: ArgNode, Node: a.Column}} }
func (a *AddColumn) WithArgs(x []Arg) Node {
	n := *a
	n.Column, _ = x[0].Node.(*ColumnDef)
	return &n
}
func (*AddColumn) alterTableAction() {}

type DropColumn struct {
	Name     string
	IfExists bool
	Cascade  bool
}

func (*DropColumn) Kind() Kind { return KindInvalid }
func (d *DropColumn) Args() []Arg {
	return []Arg{
		{Name: "name", Kind: ArgScalar, Value: d.Name},
		{Name: "ifExists", Kind: ArgScalar, Value: d.IfExists},
		{Name: "cascade", Kind: ArgScalar, Value: d.Cascade},
	}
}
func (d *DropColumn) WithArgs(a []Arg) Node {
	n := *d
	n.Name = a[0].Value.(string)
	n.IfExists = a[1].Value.(bool)
	n.Cascade = a[2].Value.(bool)
	return &n
}
func (*DropColumn) alterTableAction() {}

type ModifyColumn struct {
	Name        string
	NewDef      *ColumnDef
	SetDefault  Expression
	DropDefault bool
	SetNotNull  bool
	DropNotNull bool
}

func (*ModifyColumn) Kind() Kind { return KindInvalid }
func (m *ModifyColumn) Args() []Arg {
	return []Arg{
		{Name: "name", Kind: ArgScalar, Value: m.Name},
		{Name: "newDef", Kind: ArgNode, Node: m.NewDef},
		{Name: "setDefault", Kind: ArgNode, Node: m.SetDefault},
		{Name: "dropDefault", Kind: ArgScalar, Value: m.DropDefault},
		{Name: "setNotNull", Kind: ArgScalar, Value: m.SetNotNull},
		{Name: "dropNotNull", Kind: ArgScalar, Value: m.DropNotNull},
	}
}
func (m *ModifyColumn) WithArgs(a []Arg) Node {
	n := *m
	n.Name = a[0].Value.(string)
	if a[1].Node != nil {
		n.NewDef, _ = a[1].Node.(*ColumnDef)
	} else {
		n.NewDef = nil
	}
	n.SetDefault, _ = a[2].Node.(Expression)
	n.DropDefault = a[3].Value.(bool)
	n.SetNotNull = a[4].Value.(bool)
	n.DropNotNull = a[5].Value.(bool)
	return &n
}
func (*ModifyColumn) alterTableAction() {}

type RenameColumn struct{ OldName, NewName string }

func (*RenameColumn) Kind() Kind { return KindInvalid }
func (r *RenameColumn) Args() []Arg {
	return []Arg{
		{Name: "oldName", Kind: ArgScalar, Value: r.OldName},
		{Name: "newName", Kind: ArgScalar, Value: r.NewName},
	}
}
func (r *RenameColumn) WithArgs(a []Arg) Node {
	n := *r
	n.OldName = a[0].Value.(string)
	n.NewName = a[1].Value.(string)
	return &n
}
func (*RenameColumn) alterTableAction() {}

type AddConstraint struct{ Constraint *TableConstraint }

func (*AddConstraint) Kind() Kind { return KindInvalid }
func (a *AddConstraint) Args() []Arg {
	return []Arg{{Name: "constraint", Kind: ArgNode, Node: a.Constraint}}
}
func (a *AddConstraint) WithArgs(x []Arg) Node {
	n := *a
	n.Constraint, _ = x[0].Node.(*TableConstraint)
	return &n
}
func (*AddConstraint) alterTableAction() {}

type DropConstraint struct {
	Name     string
	IfExists bool
	Cascade  bool
}

func (*DropConstraint) Kind() Kind { return KindInvalid }
func (d *DropConstraint) Args() []Arg {
	return []Arg{
		{Name: "name", Kind: ArgScalar, Value: d.Name},
		{Name: "ifExists", Kind: ArgScalar, Value: d.IfExists},
		{Name: "cascade", Kind: ArgScalar, Value: d.Cascade},
	}
}
func (d *DropConstraint) WithArgs(a []Arg) Node {
	n := *d
	n.Name = a[0].Value.(string)
	n.IfExists = a[1].Value.(bool)
	n.Cascade = a[2].Value.(bool)
	return &n
}
func (*DropConstraint) alterTableAction() {}

type RenameTable struct{ NewName *TableName }

func (*RenameTable) Kind() Kind { return KindInvalid }
func (r *RenameTable) Args() []Arg {
	return []Arg{{Name: "newName", Kind: ArgNode, Node: r.NewName}}
}
func (r *RenameTable) WithArgs(a []Arg) Node {
	n := *r
	n.NewName, _ = a[0].Node.(*TableName)
	return &n
}
func (*RenameTable) alterTableAction() {}

// AlterTable is an ALTER TABLE statement carrying an ordered list of
// actions (MySQL/Postgres both allow multiple actions per statement).
type AlterTable struct {
	Table   *TableName
	Actions []AlterTableAction
}

func (*AlterTable) Kind() Kind { return KindAlterTable }
func (a *AlterTable) Args() []Arg {
	actNodes := make([]Node, len(a.Actions))
	for i, act := range a.Actions {
		actNodes[i] = act
	}
	return []Arg{
		{Name: "table", Kind: ArgNode, Node: a.Table},
		{Name: "actions", Kind: ArgList, Nodes: actNodes},
	}
}
func (a *AlterTable) WithArgs(x []Arg) Node {
	n := *a
	n.Table, _ = x[0].Node.(*TableName)
	n.Actions = make([]AlterTableAction, len(x[1].Nodes))
	for i, nd := range x[1].Nodes {
		n.Actions[i], _ = nd.(AlterTableAction)
	}
	return &n
}
func (*AlterTable) statementNode() {}

// DropTable is a DROP TABLE statement.
type DropTable struct {
	IfExists bool
	Tables   []*TableName
	Cascade  bool
}

func (*DropTable) Kind() Kind { return KindDropTable }
func (d *DropTable) Args() []Arg {
	tblNodes := make([]Node, len(d.Tables))
	for i, t := range d.Tables {
		tblNodes[i] = t
	}
	return []Arg{
		{Name: "ifExists", Kind: ArgScalar, Value: d.IfExists},
		{Name: "tables", Kind: ArgList, Nodes: tblNodes},
		{Name: "cascade", Kind: ArgScalar, Value: d.Cascade},
	}
}
func (d *DropTable) WithArgs(a []Arg) Node {
	n := *d
	n.IfExists = a[0].Value.(bool)
	n.Tables = make([]*TableName, len(a[1].Nodes))
	for i, nd := range a[1].Nodes {
		n.Tables[i], _ = nd.(*TableName)
	}
	n.Cascade = a[2].Value.(bool)
	return &n
}
func (*DropTable) statementNode() {}

// IndexColumn is one column (or expression) in a CREATE INDEX column
// list.
type IndexColumn struct {
	Column string
	Expr   Expression // set for an expression index
	Desc   bool
	Nulls  string // FIRST, LAST, ""
}

func (*IndexColumn) Kind() Kind { return KindIndexColumn }
func (i *IndexColumn) Args() []Arg {
	return []Arg{
		{Name: "column", Kind: ArgScalar, Value: i.Column},
		{Name: "expr", Kind: ArgNode, Node: i.Expr},
		{Name: "desc", Kind: ArgScalar, Value: i.Desc},
		{Name: "nulls", Kind: ArgScalar, Value: i.Nulls},
	}
}
func (i *IndexColumn) WithArgs(a []Arg) Node {
	n := *i
	n.Column = a[0].Value.(string)
	n.Expr, _ = a[1].Node.(Expression)
	n.Desc = a[2].Value.(bool)
	n.Nulls = a[3].Value.(string)
	return &n
}

// CreateIndex is a CREATE INDEX statement.
type CreateIndex struct {
	IfNotExists bool
	Unique      bool
	Concurrent  bool // PostgreSQL CONCURRENTLY
	Name        string
	Table       *TableName
	Columns     []*IndexColumn
	Using       string // btree, hash, gin, ...
	Where       Expression
}

func (*CreateIndex) Kind() Kind { return KindCreateIndex }
func (c *CreateIndex) Args() []Arg {
	colNodes := make([]Node, len(c.Columns))
	for i, col := range c.Columns {
		colNodes[i] = col
	}
	return []Arg{
		{Name: "ifNotExists", Kind: ArgScalar, Value: c.IfNotExists},
		{Name: "unique", Kind: ArgScalar, Value: c.Unique},
		{Name: "concurrent", Kind: ArgScalar, Value: c.Concurrent},
		{Name: "name", Kind: ArgScalar, Value: c.Name},
		{Name: "table", Kind: ArgNode, Node: c.Table},
		{Name: "columns", Kind: ArgList, Nodes: colNodes},
		{Name: "using", Kind: ArgScalar, Value: c.Using},
		{Name: "where", Kind: ArgNode, Node: c.Where},
	}
}
func (c *CreateIndex) WithArgs(a []Arg) Node {
	n := *c
	n.IfNotExists = a[0].Value.(bool)
	n.Unique = a[1].Value.(bool)
	n.Concurrent = a[2].Value.(bool)
	n.Name = a[3].Value.(string)
	n.Table, _ = a[4].Node.(*TableName)
	n.Columns = make([]*IndexColumn, len(a[5].Nodes))
	for i, nd := range a[5].Nodes {
		n.Columns[i], _ = nd.(*IndexColumn)
	}
	n.Using = a[6].Value.(string)
	n.Where, _ = a[7].Node.(Expression)
	return &n
}
func (*CreateIndex) statementNode() {}

// DropIndex is a DROP INDEX statement.
type DropIndex struct {
	IfExists   bool
	Concurrent bool
	Name       string
	Table      *TableName // MySQL requires naming the table
	Cascade    bool
}

func (*DropIndex) Kind() Kind { return KindDropIndex }
func (d *DropIndex) Args() []Arg {
	return []Arg{
		{Name: "ifExists", Kind: ArgScalar, Value: d.IfExists},
		{Name: "concurrent", Kind: ArgScalar, Value: d.Concurrent},
		{Name: "name", Kind: ArgScalar, Value: d.Name},
		{Name: "table", Kind: ArgNode, Node: d.Table},
		{Name: "cascade", Kind: ArgScalar, Value: d.Cascade},
	}
}
func (d *DropIndex) WithArgs(a []Arg) Node {
	n := *d
	n.IfExists = a[0].Value.(bool)
	n.Concurrent = a[1].Value.(bool)
	n.Name = a[2].Value.(string)
	if a[3].Node != nil {
		n.Table, _ = a[3].Node.(*TableName)
	} else {
		n.Table = nil
	}
	n.Cascade = a[4].Value.(bool)
	return &n
}
func (*DropIndex) statementNode() {}

// Truncate is a TRUNCATE TABLE statement.
type Truncate struct {
	Tables  []*TableName
	Cascade bool
}

func (*Truncate) Kind() Kind { return KindTruncate }
func (t *Truncate) Args() []Arg {
	tblNodes := make([]Node, len(t.Tables))
	for i, tb := range t.Tables {
		tblNodes[i] = tb
	}
	return []Arg{
		{Name: "tables", Kind: ArgList, Nodes: tblNodes},
		{Name: "cascade", Kind: ArgScalar, Value: t.Cascade},
	}
}
func (t *Truncate) WithArgs(a []Arg) Node {
	n := *t
	n.Tables = make([]*TableName, len(a[0].Nodes))
	for i, nd := range a[0].Nodes {
		n.Tables[i], _ = nd.(*TableName)
	}
	n.Cascade = a[1].Value.(bool)
	return &n
}
func (*Truncate) statementNode() {}

// Explain wraps another statement for EXPLAIN [ANALYZE] [VERBOSE]
// [FORMAT fmt].
type Explain struct {
	Analyze bool
	Verbose bool
	Format  string // TEXT, JSON, YAML, XML, ""
	Stmt    Statement
}

func (*Explain) Kind() Kind { return KindExplain }
func (e *Explain) Args() []Arg {
	return []Arg{
		{Name: "analyze", Kind: ArgScalar, Value: e.Analyze},
		{Name: "verbose", Kind: ArgScalar, Value: e.Verbose},
		{Name: "format", Kind: ArgScalar, Value: e.Format},
		{Name: "stmt", Kind: ArgNode, Node: e.Stmt},
	}
}
func (e *Explain) WithArgs(a []Arg) Node {
	n := *e
	n.Analyze = a[0].Value.(bool)
	n.Verbose = a[1].Value.(bool)
	n.Format = a[2].Value.(string)
	n.Stmt, _ = a[3].Node.(Statement)
	return &n
}
func (*Explain) statementNode() {}
