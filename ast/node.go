// Package ast defines the expression tree produced by the parser and
// consumed by the generator and optimizer.
//
// Every node in the tree implements Node, which exposes its semantic
// children through Args/WithArgs. Walk and Transform are written once,
// generically, against that contract (traverse.go), so traversal needs
// no type-switch enumerating every node kind; the generator's Format
// is the one place that switches over the concrete node types. Nodes
// carry no parent pointer and no source span: once built, a tree is an
// immutable value that can be freely shared, copied by reference, and
// rebuilt piece by piece without aliasing the original.
package ast

// Kind identifies a node's concrete shape. It exists so generator and
// optimizer code can dispatch on Kind() instead of a type switch,
// keeping dialect transform tables (see the generator package) keyed
// on a small closed value rather than reflect.Type.
type Kind int

const (
	KindInvalid Kind = iota

	// Literals and references
	KindLiteral
	KindColName
	KindStar
	KindParameter

	// Operators
	KindBinary
	KindUnary
	KindParen
	KindCollate
	KindCast
	KindPostgresCast

	// Function-shaped expressions
	KindFunc
	KindCase
	KindWhen
	KindExtract
	KindTrim
	KindSubstring
	KindPosition
	KindArray
	KindSubscript
	KindInterval

	// Predicates
	KindIn
	KindBetween
	KindLike
	KindIs
	KindExists

	// Subqueries
	KindSubquery

	// Select-list / table-list shaping
	KindAliasedExpr
	KindAliasedTableExpr

	// Table expressions
	KindTableName
	KindJoin
	KindParenTableExpr
	KindValues

	// Clauses
	KindOrderBy
	KindLimit
	KindWindowSpec
	KindWindowFrame
	KindFrameBound
	KindWindowDef
	KindIndexHint

	// Statements
	KindSelect
	KindSetOp
	KindWith
	KindCTE
	KindInsert
	KindUpdate
	KindDelete
	KindUpdateExpr
	KindOnConflict
	KindCreateTable
	KindTableOption
	KindColumnDef
	KindDataType
	KindColumnConstraint
	KindTableConstraint
	KindForeignKeyRef
	KindAlterTable
	KindDropTable
	KindCreateIndex
	KindIndexColumn
	KindDropIndex
	KindTruncate
	KindExplain
)

// ArgKind classifies one slot returned by Args.
type ArgKind int

const (
	// ArgNode holds exactly one child Node (or nil).
	ArgNode ArgKind = iota
	// ArgList holds an ordered slice of child Nodes.
	ArgList
	// ArgScalar holds non-Node data (strings, bools, enums, ints) that
	// is part of the node's identity but has no children of its own.
	ArgScalar
)

// Arg is one labeled slot in a node's Args() result.
type Arg struct {
	Name  string
	Kind  ArgKind
	Node  Node    // valid when Kind == ArgNode
	Nodes []Node  // valid when Kind == ArgList
	Value any     // valid when Kind == ArgScalar
}

// Node is the single traversal contract every tree element satisfies.
// Args returns the node's semantic children (and, via ArgScalar slots,
// its non-child data) in a stable order. WithArgs returns a new node of
// the same concrete type with those slots replaced; it must not mutate
// the receiver. len(args) and the Kind of each slot must match what
// Args returned — WithArgs is only ever called with a (possibly
// modified) copy of a prior Args() result.
type Node interface {
	Kind() Kind
	Args() []Arg
	WithArgs(args []Arg) Node
}

// Statement is a top-level SQL statement.
type Statement interface {
	Node
	statementNode()
}

// Expression is any value-producing node usable inside another
// expression or clause.
type Expression interface {
	Node
	expressionNode()
}

// TableExpr is a node usable in a FROM clause position.
type TableExpr interface {
	Node
	tableExprNode()
}

// SelectItem is a node usable in a SELECT column-list position.
type SelectItem interface {
	Node
	selectItemNode()
}
