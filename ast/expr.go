package ast

// BinOp enumerates every binary operator. Representing all of them as
// one family (instead of one Go type per operator, as the distilled
// spec's variant count would otherwise suggest) mirrors how the code
// this module is descended from already collapses binary operators
// into a single BinaryExpr{Op token.Token, ...} struct.
type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpConcat
	OpAnd
	OpOr
	OpXor
	OpEq
	OpNeq
	OpLt
	OpGt
	OpLte
	OpGte
	OpBitAnd
	OpBitOr
	OpBitXor
	OpLShift
	OpRShift
)

// Binary is a two-operand operator expression.
type Binary struct {
	Op          BinOp
	Left, Right Expression
}

func (*Binary) Kind() Kind { return KindBinary }
func (b *Binary) Args() []Arg {
	return []Arg{
		{Name: "op", Kind: ArgScalar, Value: b.Op},
		{Name: "left", Kind: ArgNode, Node: b.Left},
		{Name: "right", Kind: ArgNode, Node: b.Right},
	}
}
func (b *Binary) WithArgs(a []Arg) Node {
	n := *b
	n.Op = a[0].Value.(BinOp)
	n.Left, _ = a[1].Node.(Expression)
	n.Right, _ = a[2].Node.(Expression)
	return &n
}
func (*Binary) expressionNode() {}

// UnaryOp enumerates every prefix operator.
type UnaryOp int

const (
	OpNeg UnaryOp = iota
	OpNot
	OpBitNot
)

// Unary is a one-operand prefix operator expression.
type Unary struct {
	Op      UnaryOp
	Operand Expression
}

func (*Unary) Kind() Kind { return KindUnary }
func (u *Unary) Args() []Arg {
	return []Arg{
		{Name: "op", Kind: ArgScalar, Value: u.Op},
		{Name: "operand", Kind: ArgNode, Node: u.Operand},
	}
}
func (u *Unary) WithArgs(a []Arg) Node {
	n := *u
	n.Op = a[0].Value.(UnaryOp)
	n.Operand, _ = a[1].Node.(Expression)
	return &n
}
func (*Unary) expressionNode() {}

// Paren is an explicit parenthesization, kept as its own node (rather
// than folded away during parsing) so the generator can round-trip the
// source's grouping exactly where it matters for operator precedence
// after a rewrite changes an operand.
type Paren struct {
	Expr Expression
}

func (*Paren) Kind() Kind { return KindParen }
func (p *Paren) Args() []Arg {
	return []Arg{{Name: "expr", Kind: ArgNode, Node: p.Expr}}
}
func (p *Paren) WithArgs(a []Arg) Node {
	n := *p
	n.Expr, _ = a[0].Node.(Expression)
	return &n
}
func (*Paren) expressionNode() {}

// LiteralKind distinguishes the scalar literal forms.
type LiteralKind int

const (
	LiteralNull LiteralKind = iota
	LiteralInt
	LiteralFloat
	LiteralString
	LiteralBool
	LiteralBlob
)

// Literal is a scalar constant.
type Literal struct {
	LitKind LiteralKind
	Value   string
}

func (*Literal) Kind() Kind { return KindLiteral }
func (l *Literal) Args() []Arg {
	return []Arg{
		{Name: "kind", Kind: ArgScalar, Value: l.LitKind},
		{Name: "value", Kind: ArgScalar, Value: l.Value},
	}
}
func (l *Literal) WithArgs(a []Arg) Node {
	n := *l
	n.LitKind = a[0].Value.(LiteralKind)
	n.Value = a[1].Value.(string)
	return &n
}
func (*Literal) expressionNode() {}

// ColName is a possibly multi-part qualified column reference, parts
// in source (outermost-qualifier-first) order: Parts[len(Parts)-1] is
// the column name itself; any leading parts qualify it, narrowest
// last — e.g. "catalog.schema.table.col" is
// Parts=["catalog","schema","table","col"].
type ColName struct {
	Parts []string
	// Quoted forces every part to be quote-wrapped at generation time;
	// see TableName.Quoted.
	Quoted bool
}

func (*ColName) Kind() Kind { return KindColName }
func (c *ColName) Args() []Arg {
	return []Arg{
		{Name: "parts", Kind: ArgScalar, Value: append([]string(nil), c.Parts...)},
		{Name: "quoted", Kind: ArgScalar, Value: c.Quoted},
	}
}
func (c *ColName) WithArgs(a []Arg) Node {
	n := *c
	n.Parts = a[0].Value.([]string)
	n.Quoted = a[1].Value.(bool)
	return &n
}
func (*ColName) expressionNode() {}

// Name returns the unqualified column name.
func (c *ColName) Name() string {
	if len(c.Parts) == 0 {
		return ""
	}
	return c.Parts[len(c.Parts)-1]
}

// partFromEnd returns the part n positions before the last one ("" if
// Parts isn't long enough), shared by Table/Schema/Catalog below.
func partFromEnd(parts []string, n int) string {
	if len(parts) <= n {
		return ""
	}
	return parts[len(parts)-1-n]
}

// Table returns the table qualifier, or "" if unqualified.
func (c *ColName) Table() string { return partFromEnd(c.Parts, 1) }

// Schema returns the schema qualifier, or "" if not present.
func (c *ColName) Schema() string { return partFromEnd(c.Parts, 2) }

// Catalog returns the catalog qualifier, or "" if not present.
func (c *ColName) Catalog() string { return partFromEnd(c.Parts, 3) }

// Star is `*` or `table.*` in a select list or COUNT(*) argument
// position; it satisfies both Expression and SelectItem.
type Star struct {
	Qualifier string // "" for a bare *
}

func (*Star) Kind() Kind          { return KindStar }
func (s *Star) Args() []Arg       { return []Arg{{Name: "qualifier", Kind: ArgScalar, Value: s.Qualifier}} }
func (s *Star) WithArgs(a []Arg) Node {
	n := *s
	n.Qualifier = a[0].Value.(string)
	return &n
}
func (*Star) expressionNode() {}
func (*Star) selectItemNode() {}

// ParamStyle distinguishes placeholder spellings across dialects.
type ParamStyle int

const (
	ParamQuestion ParamStyle = iota // ?
	ParamDollar                    // $1
	ParamColon                     // :name
	ParamAt                        // @name
)

// Parameter is a bind-parameter placeholder.
type Parameter struct {
	Style ParamStyle
	Name  string // for ParamColon/ParamAt
	Index int    // for ParamDollar; 0 when unused
}

func (*Parameter) Kind() Kind { return KindParameter }
func (p *Parameter) Args() []Arg {
	return []Arg{
		{Name: "style", Kind: ArgScalar, Value: p.Style},
		{Name: "name", Kind: ArgScalar, Value: p.Name},
		{Name: "index", Kind: ArgScalar, Value: p.Index},
	}
}
func (p *Parameter) WithArgs(a []Arg) Node {
	n := *p
	n.Style = a[0].Value.(ParamStyle)
	n.Name = a[1].Value.(string)
	n.Index = a[2].Value.(int)
	return &n
}
func (*Parameter) expressionNode() {}

// Collate applies an explicit collation to an expression.
type Collate struct {
	Expr      Expression
	Collation string
}

func (*Collate) Kind() Kind { return KindCollate }
func (c *Collate) Args() []Arg {
	return []Arg{
		{Name: "expr", Kind: ArgNode, Node: c.Expr},
		{Name: "collation", Kind: ArgScalar, Value: c.Collation},
	}
}
func (c *Collate) WithArgs(a []Arg) Node {
	n := *c
	n.Expr, _ = a[0].Node.(Expression)
	n.Collation = a[1].Value.(string)
	return &n
}
func (*Collate) expressionNode() {}

// Cast is an explicit CAST(expr AS type) or the PostgreSQL expr::type
// shorthand; Postgres distinguishes only by IsShorthand since both
// render to the same semantic node.
type Cast struct {
	Expr         Expression
	Type         *DataType
	IsShorthand  bool
}

func (*Cast) Kind() Kind { return KindCast }
func (c *Cast) Args() []Arg {
	return []Arg{
		{Name: "expr", Kind: ArgNode, Node: c.Expr},
		{Name: "type", Kind: ArgNode, Node: c.Type},
		{Name: "shorthand", Kind: ArgScalar, Value: c.IsShorthand},
	}
}
func (c *Cast) WithArgs(a []Arg) Node {
	n := *c
	n.Expr, _ = a[0].Node.(Expression)
	n.Type, _ = a[1].Node.(*DataType)
	n.IsShorthand = a[2].Value.(bool)
	return &n
}
func (*Cast) expressionNode() {}

// Func is a function call: aggregate, scalar, or window (when Over is
// set). FILTER (WHERE ...) on aggregates is carried directly as Filter.
type Func struct {
	Name     string
	Distinct bool
	Args_    []Expression
	OrderBy  []*OrderBy
	Filter   Expression
	Over     *WindowSpec
}

func (*Func) Kind() Kind { return KindFunc }
func (f *Func) Args() []Arg {
	argNodes := make([]Node, len(f.Args_))
	for i, e := range f.Args_ {
		argNodes[i] = e
	}
	obNodes := make([]Node, len(f.OrderBy))
	for i, o := range f.OrderBy {
		obNodes[i] = o
	}
	var over Node
	if f.Over != nil {
		over = f.Over
	}
	return []Arg{
		{Name: "name", Kind: ArgScalar, Value: f.Name},
		{Name: "distinct", Kind: ArgScalar, Value: f.Distinct},
		{Name: "args", Kind: ArgList, Nodes: argNodes},
		{Name: "orderBy", Kind: ArgList, Nodes: obNodes},
		{Name: "filter", Kind: ArgNode, Node: f.Filter},
		{Name: "over", Kind: ArgNode, Node: over},
	}
}
func (f *Func) WithArgs(a []Arg) Node {
	n := *f
	n.Name = a[0].Value.(string)
	n.Distinct = a[1].Value.(bool)
	n.Args_ = make([]Expression, len(a[2].Nodes))
	for i, nd := range a[2].Nodes {
		n.Args_[i], _ = nd.(Expression)
	}
	n.OrderBy = make([]*OrderBy, len(a[3].Nodes))
	for i, nd := range a[3].Nodes {
		n.OrderBy[i], _ = nd.(*OrderBy)
	}
	n.Filter, _ = a[4].Node.(Expression)
	if a[5].Node != nil {
		n.Over, _ = a[5].Node.(*WindowSpec)
	} else {
		n.Over = nil
	}
	return &n
}
func (*Func) expressionNode() {}

// When is one WHEN/THEN arm of a Case.
type When struct {
	Cond, Result Expression
}

func (*When) Kind() Kind { return KindWhen }
func (w *When) Args() []Arg {
	return []Arg{
		{Name: "cond", Kind: ArgNode, Node: w.Cond},
		{Name: "result", Kind: ArgNode, Node: w.Result},
	}
}
func (w *When) WithArgs(a []Arg) Node {
	n := *w
	n.Cond, _ = a[0].Node.(Expression)
	n.Result, _ = a[1].Node.(Expression)
	return &n
}

// Case is CASE [operand] WHEN ... THEN ... [ELSE ...] END.
type Case struct {
	Operand Expression // nil for searched CASE
	Whens   []*When
	Else    Expression
}

func (*Case) Kind() Kind { return KindCase }
func (c *Case) Args() []Arg {
	whenNodes := make([]Node, len(c.Whens))
	for i, w := range c.Whens {
		whenNodes[i] = w
	}
	return []Arg{
		{Name: "operand", Kind: ArgNode, Node: c.Operand},
		{Name: "whens", Kind: ArgList, Nodes: whenNodes},
		{Name: "else", Kind: ArgNode, Node: c.Else},
	}
}
func (c *Case) WithArgs(a []Arg) Node {
	n := *c
	n.Operand, _ = a[0].Node.(Expression)
	n.Whens = make([]*When, len(a[1].Nodes))
	for i, nd := range a[1].Nodes {
		n.Whens[i], _ = nd.(*When)
	}
	n.Else, _ = a[2].Node.(Expression)
	return &n
}
func (*Case) expressionNode() {}

// In is `expr [NOT] IN (values...)` or `expr [NOT] IN (subquery)`.
type In struct {
	Expr   Expression
	Not    bool
	Values []Expression
	Select *Select
}

func (*In) Kind() Kind { return KindIn }
func (in *In) Args() []Arg {
	valNodes := make([]Node, len(in.Values))
	for i, v := range in.Values {
		valNodes[i] = v
	}
	var sel Node
	if in.Select != nil {
		sel = in.Select
	}
	return []Arg{
		{Name: "expr", Kind: ArgNode, Node: in.Expr},
		{Name: "not", Kind: ArgScalar, Value: in.Not},
		{Name: "values", Kind: ArgList, Nodes: valNodes},
		{Name: "select", Kind: ArgNode, Node: sel},
	}
}
func (in *In) WithArgs(a []Arg) Node {
	n := *in
	n.Expr, _ = a[0].Node.(Expression)
	n.Not = a[1].Value.(bool)
	n.Values = make([]Expression, len(a[2].Nodes))
	for i, nd := range a[2].Nodes {
		n.Values[i], _ = nd.(Expression)
	}
	if a[3].Node != nil {
		n.Select, _ = a[3].Node.(*Select)
	} else {
		n.Select = nil
	}
	return &n
}
func (*In) expressionNode() {}

// Between is `expr [NOT] BETWEEN low AND high`.
type Between struct {
	Expr, Low, High Expression
	Not             bool
}

func (*Between) Kind() Kind { return KindBetween }
func (b *Between) Args() []Arg {
	return []Arg{
		{Name: "expr", Kind: ArgNode, Node: b.Expr},
		{Name: "low", Kind: ArgNode, Node: b.Low},
		{Name: "high", Kind: ArgNode, Node: b.High},
		{Name: "not", Kind: ArgScalar, Value: b.Not},
	}
}
func (b *Between) WithArgs(a []Arg) Node {
	n := *b
	n.Expr, _ = a[0].Node.(Expression)
	n.Low, _ = a[1].Node.(Expression)
	n.High, _ = a[2].Node.(Expression)
	n.Not = a[3].Value.(bool)
	return &n
}
func (*Between) expressionNode() {}

// Like is `expr [NOT] LIKE pattern [ESCAPE esc]`; ILike/Similar share
// the shape and are distinguished by Variant.
type LikeVariant int

const (
	LikeOrdinary LikeVariant = iota
	LikeInsensitive
	LikeSimilarTo
)

type Like struct {
	Expr, Pattern, Escape Expression
	Not                   bool
	Variant               LikeVariant
}

func (*Like) Kind() Kind { return KindLike }
func (l *Like) Args() []Arg {
	return []Arg{
		{Name: "expr", Kind: ArgNode, Node: l.Expr},
		{Name: "pattern", Kind: ArgNode, Node: l.Pattern},
		{Name: "escape", Kind: ArgNode, Node: l.Escape},
		{Name: "not", Kind: ArgScalar, Value: l.Not},
		{Name: "variant", Kind: ArgScalar, Value: l.Variant},
	}
}
func (l *Like) WithArgs(a []Arg) Node {
	n := *l
	n.Expr, _ = a[0].Node.(Expression)
	n.Pattern, _ = a[1].Node.(Expression)
	n.Escape, _ = a[2].Node.(Expression)
	n.Not = a[3].Value.(bool)
	n.Variant = a[4].Value.(LikeVariant)
	return &n
}
func (*Like) expressionNode() {}

// IsType enumerates the predicate tested by Is.
type IsType int

const (
	IsNull IsType = iota
	IsTrue
	IsFalse
	IsUnknown
)

// Is is `expr IS [NOT] {NULL|TRUE|FALSE|UNKNOWN}`.
type Is struct {
	Expr Expression
	Not  bool
	What IsType
}

func (*Is) Kind() Kind { return KindIs }
func (is *Is) Args() []Arg {
	return []Arg{
		{Name: "expr", Kind: ArgNode, Node: is.Expr},
		{Name: "not", Kind: ArgScalar, Value: is.Not},
		{Name: "what", Kind: ArgScalar, Value: is.What},
	}
}
func (is *Is) WithArgs(a []Arg) Node {
	n := *is
	n.Expr, _ = a[0].Node.(Expression)
	n.Not = a[1].Value.(bool)
	n.What = a[2].Value.(IsType)
	return &n
}
func (*Is) expressionNode() {}

// Subquery wraps a SELECT used in an expression position.
type Subquery struct {
	Select *Select
}

func (*Subquery) Kind() Kind { return KindSubquery }
func (s *Subquery) Args() []Arg {
	return []Arg{{Name: "select", Kind: ArgNode, Node: s.Select}}
}
func (s *Subquery) WithArgs(a []Arg) Node {
	n := *s
	n.Select, _ = a[0].Node.(*Select)
	return &n
}
func (*Subquery) expressionNode() {}
func (*Subquery) tableExprNode()  {}

// Exists is `[NOT] EXISTS (subquery)`.
type Exists struct {
	Not      bool
	Subquery *Subquery
}

func (*Exists) Kind() Kind { return KindExists }
func (e *Exists) Args() []Arg {
	return []Arg{
		{Name: "not", Kind: ArgScalar, Value: e.Not},
		{Name: "subquery", Kind: ArgNode, Node: e.Subquery},
	}
}
func (e *Exists) WithArgs(a []Arg) Node {
	n := *e
	n.Not = a[0].Value.(bool)
	n.Subquery, _ = a[1].Node.(*Subquery)
	return &n
}
func (*Exists) expressionNode() {}

// Array is an ARRAY[...] constructor.
type Array struct {
	Elements []Expression
}

func (*Array) Kind() Kind { return KindArray }
func (ar *Array) Args() []Arg {
	nodes := make([]Node, len(ar.Elements))
	for i, e := range ar.Elements {
		nodes[i] = e
	}
	return []Arg{{Name: "elements", Kind: ArgList, Nodes: nodes}}
}
func (ar *Array) WithArgs(a []Arg) Node {
	n := *ar
	n.Elements = make([]Expression, len(a[0].Nodes))
	for i, nd := range a[0].Nodes {
		n.Elements[i], _ = nd.(Expression)
	}
	return &n
}
func (*Array) expressionNode() {}

// Subscript is `expr[index]`.
type Subscript struct {
	Expr, Index Expression
}

func (*Subscript) Kind() Kind { return KindSubscript }
func (s *Subscript) Args() []Arg {
	return []Arg{
		{Name: "expr", Kind: ArgNode, Node: s.Expr},
		{Name: "index", Kind: ArgNode, Node: s.Index},
	}
}
func (s *Subscript) WithArgs(a []Arg) Node {
	n := *s
	n.Expr, _ = a[0].Node.(Expression)
	n.Index, _ = a[1].Node.(Expression)
	return &n
}
func (*Subscript) expressionNode() {}

// Interval is `INTERVAL value unit`.
type Interval struct {
	Value Expression
	Unit  string
}

func (*Interval) Kind() Kind { return KindInterval }
func (iv *Interval) Args() []Arg {
	return []Arg{
		{Name: "value", Kind: ArgNode, Node: iv.Value},
		{Name: "unit", Kind: ArgScalar, Value: iv.Unit},
	}
}
func (iv *Interval) WithArgs(a []Arg) Node {
	n := *iv
	n.Value, _ = a[0].Node.(Expression)
	n.Unit = a[1].Value.(string)
	return &n
}
func (*Interval) expressionNode() {}

// Extract is `EXTRACT(field FROM source)`.
type Extract struct {
	Field  string
	Source Expression
}

func (*Extract) Kind() Kind { return KindExtract }
func (e *Extract) Args() []Arg {
	return []Arg{
		{Name: "field", Kind: ArgScalar, Value: e.Field},
		{Name: "source", Kind: ArgNode, Node: e.Source},
	}
}
func (e *Extract) WithArgs(a []Arg) Node {
	n := *e
	n.Field = a[0].Value.(string)
	n.Source, _ = a[1].Node.(Expression)
	return &n
}
func (*Extract) expressionNode() {}

// TrimType selects which side(s) TRIM removes characters from.
type TrimType int

const (
	TrimBoth TrimType = iota
	TrimLeading
	TrimTrailing
)

// Trim is `TRIM([BOTH|LEADING|TRAILING] [chars FROM] expr)`.
type Trim struct {
	TrimKind  TrimType
	TrimChars Expression // nil when omitted (trims whitespace)
	Expr      Expression
}

func (*Trim) Kind() Kind { return KindTrim }
func (t *Trim) Args() []Arg {
	return []Arg{
		{Name: "kind", Kind: ArgScalar, Value: t.TrimKind},
		{Name: "chars", Kind: ArgNode, Node: t.TrimChars},
		{Name: "expr", Kind: ArgNode, Node: t.Expr},
	}
}
func (t *Trim) WithArgs(a []Arg) Node {
	n := *t
	n.TrimKind = a[0].Value.(TrimType)
	n.TrimChars, _ = a[1].Node.(Expression)
	n.Expr, _ = a[2].Node.(Expression)
	return &n
}
func (*Trim) expressionNode() {}

// Substring is `SUBSTRING(expr FROM from [FOR for])`.
type Substring struct {
	Expr, From, For Expression
}

func (*Substring) Kind() Kind { return KindSubstring }
func (s *Substring) Args() []Arg {
	return []Arg{
		{Name: "expr", Kind: ArgNode, Node: s.Expr},
		{Name: "from", Kind: ArgNode, Node: s.From},
		{Name: "for", Kind: ArgNode, Node: s.For},
	}
}
func (s *Substring) WithArgs(a []Arg) Node {
	n := *s
	n.Expr, _ = a[0].Node.(Expression)
	n.From, _ = a[1].Node.(Expression)
	n.For, _ = a[2].Node.(Expression)
	return &n
}
func (*Substring) expressionNode() {}

// Position is `POSITION(needle IN haystack)`.
type Position struct {
	Needle, Haystack Expression
}

func (*Position) Kind() Kind { return KindPosition }
func (p *Position) Args() []Arg {
	return []Arg{
		{Name: "needle", Kind: ArgNode, Node: p.Needle},
		{Name: "haystack", Kind: ArgNode, Node: p.Haystack},
	}
}
func (p *Position) WithArgs(a []Arg) Node {
	n := *p
	n.Needle, _ = a[0].Node.(Expression)
	n.Haystack, _ = a[1].Node.(Expression)
	return &n
}
func (*Position) expressionNode() {}

// AliasedExpr attaches a SELECT-list alias to an expression.
type AliasedExpr struct {
	Expr  Expression
	Alias string
}

func (*AliasedExpr) Kind() Kind { return KindAliasedExpr }
func (ae *AliasedExpr) Args() []Arg {
	return []Arg{
		{Name: "expr", Kind: ArgNode, Node: ae.Expr},
		{Name: "alias", Kind: ArgScalar, Value: ae.Alias},
	}
}
func (ae *AliasedExpr) WithArgs(a []Arg) Node {
	n := *ae
	n.Expr, _ = a[0].Node.(Expression)
	n.Alias = a[1].Value.(string)
	return &n
}
func (*AliasedExpr) selectItemNode() {}
