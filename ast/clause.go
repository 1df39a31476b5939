package ast

// TableName is a possibly multi-part table reference, parts in source
// (outermost-qualifier-first) order: Parts[len(Parts)-1] is the table
// itself; any leading parts qualify it with schema/catalog, same
// convention as ColName.
type TableName struct {
	Parts []string
	// Quoted forces every part to be quote-wrapped at generation time,
	// regardless of whether it would otherwise need it. Set by the
	// quote_identifiers optimizer rule; false (the zero value) leaves
	// the generator's own needs-quoting heuristic in charge.
	Quoted bool
}

func (*TableName) Kind() Kind { return KindTableName }
func (t *TableName) Args() []Arg {
	return []Arg{
		{Name: "parts", Kind: ArgScalar, Value: append([]string(nil), t.Parts...)},
		{Name: "quoted", Kind: ArgScalar, Value: t.Quoted},
	}
}
func (t *TableName) WithArgs(a []Arg) Node {
	n := *t
	n.Parts = a[0].Value.([]string)
	n.Quoted = a[1].Value.(bool)
	return &n
}
func (*TableName) tableExprNode() {}

func (t *TableName) Name() string {
	if len(t.Parts) == 0 {
		return ""
	}
	return t.Parts[len(t.Parts)-1]
}

// Schema returns the schema qualifier, or "" if not present.
func (t *TableName) Schema() string { return partFromEnd(t.Parts, 1) }

// Catalog returns the catalog qualifier, or "" if not present.
func (t *TableName) Catalog() string { return partFromEnd(t.Parts, 2) }

// IndexHintType is USE/FORCE/IGNORE (MySQL index hints).
type IndexHintType int

const (
	HintUse IndexHintType = iota
	HintForce
	HintIgnore
)

// IndexHintFor narrows a hint to JOIN/ORDER BY/GROUP BY planning.
type IndexHintFor int

const (
	HintForAny IndexHintFor = iota
	HintForJoin
	HintForOrderBy
	HintForGroupBy
)

type IndexHint struct {
	HintType IndexHintType
	For      IndexHintFor
	Indexes  []string
}

func (*IndexHint) Kind() Kind { return KindIndexHint }
func (h *IndexHint) Args() []Arg {
	return []Arg{
		{Name: "type", Kind: ArgScalar, Value: h.HintType},
		{Name: "for", Kind: ArgScalar, Value: h.For},
		{Name: "indexes", Kind: ArgScalar, Value: append([]string(nil), h.Indexes...)},
	}
}
func (h *IndexHint) WithArgs(a []Arg) Node {
	n := *h
	n.HintType = a[0].Value.(IndexHintType)
	n.For = a[1].Value.(IndexHintFor)
	n.Indexes = a[2].Value.([]string)
	return &n
}

// AliasedTableExpr attaches an alias and optional index hints to a
// table expression (a table name, subquery, or join).
type AliasedTableExpr struct {
	Expr  TableExpr
	Alias string
	Hints []*IndexHint
}

func (*AliasedTableExpr) Kind() Kind { return KindAliasedTableExpr }
func (a *AliasedTableExpr) Args() []Arg {
	hintNodes := make([]Node, len(a.Hints))
	for i, h := range a.Hints {
		hintNodes[i] = h
	}
	return []Arg{
		{Name: "expr", Kind: ArgNode, Node: a.Expr},
		{Name: "alias", Kind: ArgScalar, Value: a.Alias},
		{Name: "hints", Kind: ArgList, Nodes: hintNodes},
	}
}
func (a *AliasedTableExpr) WithArgs(args []Arg) Node {
	n := *a
	n.Expr, _ = args[0].Node.(TableExpr)
	n.Alias = args[1].Value.(string)
	n.Hints = make([]*IndexHint, len(args[2].Nodes))
	for i, nd := range args[2].Nodes {
		n.Hints[i], _ = nd.(*IndexHint)
	}
	return &n
}
func (*AliasedTableExpr) tableExprNode() {}

// JoinType enumerates the join kinds.
type JoinType int

const (
	JoinInner JoinType = iota
	JoinLeft
	JoinRight
	JoinFull
	JoinCross
)

func (j JoinType) String() string {
	switch j {
	case JoinLeft:
		return "LEFT JOIN"
	case JoinRight:
		return "RIGHT JOIN"
	case JoinFull:
		return "FULL JOIN"
	case JoinCross:
		return "CROSS JOIN"
	default:
		return "JOIN"
	}
}

// Join is a two-sided table expression joined by type, ON predicate,
// or USING column list.
type Join struct {
	JoinKind    JoinType
	Left, Right TableExpr
	On          Expression
	Using       []string
	Natural     bool
	Lateral     bool
}

func (*Join) Kind() Kind { return KindJoin }
func (j *Join) Args() []Arg {
	return []Arg{
		{Name: "kind", Kind: ArgScalar, Value: j.JoinKind},
		{Name: "left", Kind: ArgNode, Node: j.Left},
		{Name: "right", Kind: ArgNode, Node: j.Right},
		{Name: "on", Kind: ArgNode, Node: j.On},
		{Name: "using", Kind: ArgScalar, Value: append([]string(nil), j.Using...)},
		{Name: "natural", Kind: ArgScalar, Value: j.Natural},
		{Name: "lateral", Kind: ArgScalar, Value: j.Lateral},
	}
}
func (j *Join) WithArgs(a []Arg) Node {
	n := *j
	n.JoinKind = a[0].Value.(JoinType)
	n.Left, _ = a[1].Node.(TableExpr)
	n.Right, _ = a[2].Node.(TableExpr)
	n.On, _ = a[3].Node.(Expression)
	n.Using = a[4].Value.([]string)
	n.Natural = a[5].Value.(bool)
	n.Lateral = a[6].Value.(bool)
	return &n
}
func (*Join) tableExprNode() {}

// ParenTableExpr is a parenthesized table-expression list/join, kept
// distinct from a derived-table Subquery.
type ParenTableExpr struct {
	Expr TableExpr
}

func (*ParenTableExpr) Kind() Kind { return KindParenTableExpr }
func (p *ParenTableExpr) Args() []Arg {
	return []Arg{{Name: "expr", Kind: ArgNode, Node: p.Expr}}
}
func (p *ParenTableExpr) WithArgs(a []Arg) Node {
	n := *p
	n.Expr, _ = a[0].Node.(TableExpr)
	return &n
}
func (*ParenTableExpr) tableExprNode() {}

// Values is a standalone VALUES (...), (...) table expression.
type Values struct {
	Rows [][]Expression
}

func (*Values) Kind() Kind { return KindValues }
func (v *Values) Args() []Arg {
	rowNodes := make([]Node, len(v.Rows))
	for i, row := range v.Rows {
		cells := make([]Node, len(row))
		for j, e := range row {
			cells[j] = e
		}
		rowNodes[i] = &exprRow{cells}
	}
	return []Arg{{Name: "rows", Kind: ArgList, Nodes: rowNodes}}
}
func (v *Values) WithArgs(a []Arg) Node {
	n := *v
	n.Rows = make([][]Expression, len(a[0].Nodes))
	for i, nd := range a[0].Nodes {
		row := nd.(*exprRow)
		cells := make([]Expression, len(row.cells))
		for j, c := range row.cells {
			cells[j], _ = c.(Expression)
		}
		n.Rows[i] = cells
	}
	return &n
}
func (*Values) tableExprNode() {}

// exprRow is an internal helper node wrapping one VALUES row so it can
// flow through the generic ArgList traversal; it is never constructed
// by the parser directly and never appears as a standalone statement
// or expression.
type exprRow struct{ cells []Node }

func (*exprRow) Kind() Kind { return KindInvalid }
func (r *exprRow) Args() []Arg {
	return []Arg{{Name: "cells", Kind: ArgList, Nodes: r.cells}}
}
func (r *exprRow) WithArgs(a []Arg) Node {
	return &exprRow{cells: a[0].Nodes}
}

// OrderBy is one ORDER BY item.
type OrderBy struct {
	Expr       Expression
	Desc       bool
	NullsFirst *bool // nil when unspecified
}

func (*OrderBy) Kind() Kind { return KindOrderBy }
func (o *OrderBy) Args() []Arg {
	return []Arg{
		{Name: "expr", Kind: ArgNode, Node: o.Expr},
		{Name: "desc", Kind: ArgScalar, Value: o.Desc},
		{Name: "nullsFirst", Kind: ArgScalar, Value: o.NullsFirst},
	}
}
func (o *OrderBy) WithArgs(a []Arg) Node {
	n := *o
	n.Expr, _ = a[0].Node.(Expression)
	n.Desc = a[1].Value.(bool)
	n.NullsFirst, _ = a[2].Value.(*bool)
	return &n
}

// Limit is a LIMIT [OFFSET] clause.
type Limit struct {
	Count, Offset Expression
}

func (*Limit) Kind() Kind { return KindLimit }
func (l *Limit) Args() []Arg {
	return []Arg{
		{Name: "count", Kind: ArgNode, Node: l.Count},
		{Name: "offset", Kind: ArgNode, Node: l.Offset},
	}
}
func (l *Limit) WithArgs(a []Arg) Node {
	n := *l
	n.Count, _ = a[0].Node.(Expression)
	n.Offset, _ = a[1].Node.(Expression)
	return &n
}

// FrameType is ROWS/RANGE/GROUPS window framing.
type FrameType int

const (
	FrameRows FrameType = iota
	FrameRange
	FrameGroups
)

// BoundType enumerates window frame bound kinds.
type BoundType int

const (
	BoundCurrentRow BoundType = iota
	BoundUnboundedPreceding
	BoundUnboundedFollowing
	BoundPreceding
	BoundFollowing
)

type FrameBound struct {
	BoundKind BoundType
	Offset    Expression // set for Preceding/Following
}

func (*FrameBound) Kind() Kind { return KindFrameBound }
func (f *FrameBound) Args() []Arg {
	return []Arg{
		{Name: "kind", Kind: ArgScalar, Value: f.BoundKind},
		{Name: "offset", Kind: ArgNode, Node: f.Offset},
	}
}
func (f *FrameBound) WithArgs(a []Arg) Node {
	n := *f
	n.BoundKind = a[0].Value.(BoundType)
	n.Offset, _ = a[1].Node.(Expression)
	return &n
}

type WindowFrame struct {
	FrameKind  FrameType
	Start, End *FrameBound
}

func (*WindowFrame) Kind() Kind { return KindWindowFrame }
func (f *WindowFrame) Args() []Arg {
	return []Arg{
		{Name: "kind", Kind: ArgScalar, Value: f.FrameKind},
		{Name: "start", Kind: ArgNode, Node: f.Start},
		{Name: "end", Kind: ArgNode, Node: f.End},
	}
}
func (f *WindowFrame) WithArgs(a []Arg) Node {
	n := *f
	n.FrameKind = a[0].Value.(FrameType)
	n.Start, _ = a[1].Node.(*FrameBound)
	n.End, _ = a[2].Node.(*FrameBound)
	return &n
}

// WindowSpec is the `(PARTITION BY ... ORDER BY ... frame)` body of an
// OVER clause, or the body of a named WINDOW definition.
type WindowSpec struct {
	Name        string // reference to a named window, or "" for inline
	PartitionBy []Expression
	OrderBy     []*OrderBy
	Frame       *WindowFrame
}

func (*WindowSpec) Kind() Kind { return KindWindowSpec }
func (w *WindowSpec) Args() []Arg {
	pbNodes := make([]Node, len(w.PartitionBy))
	for i, e := range w.PartitionBy {
		pbNodes[i] = e
	}
	obNodes := make([]Node, len(w.OrderBy))
	for i, o := range w.OrderBy {
		obNodes[i] = o
	}
	var frame Node
	if w.Frame != nil {
		frame = w.Frame
	}
	return []Arg{
		{Name: "name", Kind: ArgScalar, Value: w.Name},
		{Name: "partitionBy", Kind: ArgList, Nodes: pbNodes},
		{Name: "orderBy", Kind: ArgList, Nodes: obNodes},
		{Name: "frame", Kind: ArgNode, Node: frame},
	}
}
func (w *WindowSpec) WithArgs(a []Arg) Node {
	n := *w
	n.Name = a[0].Value.(string)
	n.PartitionBy = make([]Expression, len(a[1].Nodes))
	for i, nd := range a[1].Nodes {
		n.PartitionBy[i], _ = nd.(Expression)
	}
	n.OrderBy = make([]*OrderBy, len(a[2].Nodes))
	for i, nd := range a[2].Nodes {
		n.OrderBy[i], _ = nd.(*OrderBy)
	}
	if a[3].Node != nil {
		n.Frame, _ = a[3].Node.(*WindowFrame)
	} else {
		n.Frame = nil
	}
	return &n
}

// WindowDef is a named entry in a SELECT's WINDOW clause.
type WindowDef struct {
	Name string
	Spec *WindowSpec
}

func (*WindowDef) Kind() Kind { return KindWindowDef }
func (d *WindowDef) Args() []Arg {
	return []Arg{
		{Name: "name", Kind: ArgScalar, Value: d.Name},
		{Name: "spec", Kind: ArgNode, Node: d.Spec},
	}
}
func (d *WindowDef) WithArgs(a []Arg) Node {
	n := *d
	n.Name = a[0].Value.(string)
	n.Spec, _ = a[1].Node.(*WindowSpec)
	return &n
}

// DataType is a column/cast type reference.
type DataType struct {
	Name               string
	Length             *int
	Precision, Scale   *int
	IsArray            bool
	Unsigned           bool
	Charset, Collation string
}

func (*DataType) Kind() Kind { return KindDataType }
func (d *DataType) Args() []Arg {
	return []Arg{
		{Name: "name", Kind: ArgScalar, Value: d.Name},
		{Name: "length", Kind: ArgScalar, Value: d.Length},
		{Name: "precision", Kind: ArgScalar, Value: d.Precision},
		{Name: "scale", Kind: ArgScalar, Value: d.Scale},
		{Name: "array", Kind: ArgScalar, Value: d.IsArray},
		{Name: "unsigned", Kind: ArgScalar, Value: d.Unsigned},
		{Name: "charset", Kind: ArgScalar, Value: d.Charset},
		{Name: "collation", Kind: ArgScalar, Value: d.Collation},
	}
}
func (d *DataType) WithArgs(a []Arg) Node {
	n := *d
	n.Name = a[0].Value.(string)
	n.Length, _ = a[1].Value.(*int)
	n.Precision, _ = a[2].Value.(*int)
	n.Scale, _ = a[3].Value.(*int)
	n.IsArray = a[4].Value.(bool)
	n.Unsigned = a[5].Value.(bool)
	n.Charset = a[6].Value.(string)
	n.Collation = a[7].Value.(string)
	return &n
}
