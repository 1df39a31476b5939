// Package parser provides a recursive descent SQL parser producing
// trees from the ast package. Expressions are parsed iteratively via
// precedence climbing (see expression.go) rather than one recursive
// function per precedence level, so deeply chained operator
// expressions don't exhaust the Go call stack.
package parser

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/brindlecode/sqlforge/ast"
	"github.com/brindlecode/sqlforge/errs"
	"github.com/brindlecode/sqlforge/lexer"
	"github.com/brindlecode/sqlforge/token"
)

// Error is a single parse failure with its source position.
type Error = errs.ParseError

// ErrorLevel selects how a parse error affects the call's outcome
// (spec's error_level knob).
type ErrorLevel int

const (
	// LevelRaise collects errors up to MaxErrors and, once parsing
	// completes, returns them together as the call's error. Default.
	LevelRaise ErrorLevel = iota
	// LevelImmediate fails at the first error with its location,
	// aborting the remainder of the parse.
	LevelImmediate
	// LevelWarn collects errors like LevelRaise, logs each through
	// logrus at Warn level, and does not fail the call: the caller
	// gets the best-effort tree back with a nil error.
	LevelWarn
	// LevelIgnore collects errors silently (no logging) and does not
	// fail the call.
	LevelIgnore
)

// defaultMaxErrors is the spec's documented max_errors default.
const defaultMaxErrors = 100

// Config controls parser behavior: the dialect's lexical conventions
// and how errors are collected and reported.
type Config struct {
	// Quotes selects the dialect's identifier/string quoting and
	// keyword set. The zero value uses lexer.DefaultQuotes().
	Quotes lexer.QuoteSet
	// ErrorLevel controls how a caught error affects Parse/ParseAll's
	// return value. The zero value is LevelRaise.
	ErrorLevel ErrorLevel
	// MaxErrors bounds how many errors are collected before parsing
	// stops accumulating more. Zero/negative uses defaultMaxErrors.
	MaxErrors int
}

func (c Config) maxErrors() int {
	if c.MaxErrors <= 0 {
		return defaultMaxErrors
	}
	return c.MaxErrors
}

// Parser is a recursive descent SQL parser.
type Parser struct {
	lexer *lexer.Lexer
	errs  errs.Collector
	level ErrorLevel
	cur   token.Item // current token
}

// New creates a parser for input using the default dialect.
func New(input string) *Parser {
	return NewWithConfig(input, Config{})
}

// NewWithConfig creates a parser for input using cfg's dialect and
// error-collection settings.
func NewWithConfig(input string, cfg Config) *Parser {
	p := &Parser{
		lexer: lexer.NewWithQuotes(input, cfg.Quotes),
		errs:  errs.Collector{MaxErrors: cfg.maxErrors()},
		level: cfg.ErrorLevel,
	}
	p.advance()
	return p
}

var parserPool = sync.Pool{
	New: func() any { return &Parser{} },
}

// Get returns a pooled parser for input using the default dialect.
// Call Put(p) when done to return it to the pool.
func Get(input string) *Parser {
	return GetWithConfig(input, Config{})
}

// GetWithConfig returns a pooled parser for input using cfg.
func GetWithConfig(input string, cfg Config) *Parser {
	p := parserPool.Get().(*Parser)
	p.lexer = lexer.GetWithQuotes(input, cfg.Quotes)
	p.errs = errs.Collector{MaxErrors: cfg.maxErrors()}
	p.level = cfg.ErrorLevel
	p.cur = token.Item{}
	p.advance()
	return p
}

// Put returns the parser and its lexer to the pool.
func Put(p *Parser) {
	if p.lexer != nil {
		lexer.Put(p.lexer)
		p.lexer = nil
	}
	parserPool.Put(p)
}

// bailout unwinds the recursive descent immediately. It is raised by
// errorf under LevelImmediate, or once MaxErrors is reached under any
// level, and recovered at the top of Parse/ParseAll.
type bailout struct{}

// Parse parses a single statement. The returned error reflects the
// parser's ErrorLevel: LevelRaise and LevelImmediate report collected
// errors as err; LevelWarn logs them via logrus and returns a nil err
// alongside the best-effort tree; LevelIgnore does the same silently.
func (p *Parser) Parse() (stmt ast.Statement, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			stmt = nil
		}
		err = p.outcome()
	}()

	p.skipComments()
	if p.curIs(token.EOF) {
		return nil, nil
	}
	stmt = p.parseStatement()

	// Allow trailing semicolons and comments, but nothing else.
	p.skipComments()
	for p.curIs(token.SEMICOLON) {
		p.advance()
		p.skipComments()
	}
	if !p.curIs(token.EOF) {
		p.errorf("unexpected token %v after statement", p.cur.Type)
	}
	return stmt, nil
}

// ParseAll parses every statement in the input until EOF. A statement
// that fails is recovered by skipping to the next ';' or
// statement-starting keyword before resuming, unless ErrorLevel is
// LevelImmediate or MaxErrors is reached, in which case the whole call
// aborts.
func (p *Parser) ParseAll() (stmts []ast.Statement, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
		}
		err = p.outcome()
	}()

	for !p.curIs(token.EOF) {
		p.skipComments()
		if p.curIs(token.EOF) {
			break
		}
		before := p.errs.Len()
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		} else if p.errs.Len() > before && !p.curIs(token.SEMICOLON) && !p.curIs(token.EOF) {
			p.recoverToBoundary()
		}
		for p.curIs(token.SEMICOLON) {
			p.advance()
		}
		p.skipComments()
	}
	return stmts, nil
}

// recoverToBoundary skips tokens until ';', EOF, or a keyword that
// starts a statement.
func (p *Parser) recoverToBoundary() {
	for {
		switch p.cur.Type {
		case token.EOF, token.SEMICOLON,
			token.SELECT, token.INSERT, token.REPLACE, token.UPDATE, token.DELETE,
			token.CREATE, token.ALTER, token.DROP, token.WITH, token.TRUNCATE,
			token.EXPLAIN, token.ANALYZE:
			return
		}
		p.advance()
	}
}

// outcome folds the collected errors into Parse/ParseAll's return
// value according to ErrorLevel.
func (p *Parser) outcome() error {
	if p.errs.Len() == 0 {
		return nil
	}
	switch p.level {
	case LevelWarn:
		for _, e := range p.errs.Errors() {
			logrus.Warn(e)
		}
		return nil
	case LevelIgnore:
		return nil
	default: // LevelRaise, LevelImmediate
		return p.errs.Err()
	}
}

// Token navigation helpers.

func (p *Parser) advance() {
	p.cur = p.lexer.Next()
}

func (p *Parser) curIs(t token.Token) bool {
	return p.cur.Type == t
}

// curIsIdent reports whether the current token can be used as an
// identifier: a plain IDENT, or a keyword used in a non-reserved
// position (table/column names).
func (p *Parser) curIsIdent() bool {
	return p.cur.Type == token.IDENT || p.cur.Type.IsKeyword()
}

func (p *Parser) curIdentValue() string {
	return p.cur.Value
}

func (p *Parser) peek() token.Item {
	return p.lexer.Peek()
}

func (p *Parser) peekIs(t token.Token) bool {
	return p.peek().Type == t
}

func (p *Parser) expect(t token.Token) bool {
	if p.curIs(t) {
		p.advance()
		return true
	}
	p.errorf("expected %v, got %v", t, p.cur.Type)
	return false
}

func (p *Parser) skipComments() {
	for p.curIs(token.COMMENT) {
		p.advance()
	}
}

func (p *Parser) errorf(format string, args ...interface{}) {
	added := p.errs.Add(&errs.ParseError{
		Pos:     p.cur.Pos,
		Message: fmt.Sprintf(format, args...),
	})
	if p.level == LevelImmediate || !added {
		panic(bailout{})
	}
}

// parseStatement dispatches to the appropriate statement parser.
func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case token.SELECT:
		return p.parseSelect()
	case token.INSERT, token.REPLACE:
		return p.parseInsert()
	case token.UPDATE:
		return p.parseUpdate()
	case token.DELETE:
		return p.parseDelete()
	case token.CREATE:
		return p.parseCreate()
	case token.ALTER:
		return p.parseAlter()
	case token.DROP:
		return p.parseDrop()
	case token.WITH:
		return p.parseWith()
	case token.TRUNCATE:
		return p.parseTruncate()
	case token.EXPLAIN, token.ANALYZE:
		return p.parseExplain()
	case token.LPAREN:
		return p.parseParenthesizedStatement()
	default:
		p.errorf("unexpected token %v at start of statement", p.cur.Type)
		p.advance()
		return nil
	}
}

// parseWith handles a WITH clause and attaches it to the statement
// that follows.
func (p *Parser) parseWith() ast.Statement {
	with := p.parseWithClause()

	p.skipComments()
	switch p.cur.Type {
	case token.SELECT:
		stmt := p.parseSelect()
		if stmt != nil {
			stmt.With = with
		}
		return stmt
	case token.INSERT, token.REPLACE:
		stmt := p.parseInsert()
		if stmt != nil {
			stmt.With = with
		}
		return stmt
	case token.UPDATE:
		stmt := p.parseUpdate()
		if stmt != nil {
			stmt.With = with
		}
		return stmt
	case token.DELETE:
		stmt := p.parseDelete()
		if stmt != nil {
			stmt.With = with
		}
		return stmt
	default:
		p.errorf("expected SELECT, INSERT, UPDATE, or DELETE after WITH")
		return nil
	}
}

func (p *Parser) parseWithClause() *ast.With {
	p.advance() // consume WITH

	with := &ast.With{}
	if p.curIs(token.RECURSIVE) {
		with.Recursive = true
		p.advance()
	}

	for {
		cte := p.parseCTE()
		if cte != nil {
			with.CTEs = append(with.CTEs, cte)
		}
		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}
	return with
}

func (p *Parser) parseCTE() *ast.CTE {
	if !p.curIs(token.IDENT) {
		p.errorf("expected CTE name")
		return nil
	}

	cte := &ast.CTE{Name: p.cur.Value}
	p.advance()

	if p.curIs(token.LPAREN) {
		cte.Columns = p.parseColumnNameList()
	}

	if !p.expect(token.AS) {
		return nil
	}
	if !p.expect(token.LPAREN) {
		return nil
	}

	cte.Query = p.parseStatement()

	if !p.expect(token.RPAREN) {
		return nil
	}
	return cte
}

func (p *Parser) parseColumnNameList() []string {
	p.advance() // consume (

	var names []string
	for {
		if !p.curIs(token.IDENT) {
			break
		}
		names = append(names, p.cur.Value)
		p.advance()
		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}

	p.expect(token.RPAREN)
	return names
}

func (p *Parser) parseCreate() ast.Statement {
	p.advance() // consume CREATE

	if p.curIs(token.TEMPORARY) || p.curIs(token.TEMP) {
		p.advance()
	}

	switch p.cur.Type {
	case token.TABLE:
		return p.parseCreateTable()
	case token.INDEX, token.UNIQUE:
		return p.parseCreateIndex()
	default:
		p.errorf("expected TABLE or INDEX after CREATE")
		return nil
	}
}

func (p *Parser) parseCreateTable() ast.Statement {
	p.advance() // consume TABLE

	stmt := &ast.CreateTable{}

	if p.curIs(token.IF) {
		p.advance()
		if p.curIs(token.NOT) {
			p.advance()
			if p.curIs(token.EXISTS) {
				stmt.IfNotExists = true
				p.advance()
			}
		}
	}

	stmt.Table = p.parseTableName()

	if p.curIs(token.AS) {
		p.advance()
		stmt.As = p.parseSelect()
		return stmt
	}

	if !p.expect(token.LPAREN) {
		return nil
	}

	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		if p.curIs(token.PRIMARY) || p.curIs(token.FOREIGN) ||
			p.curIs(token.UNIQUE) || p.curIs(token.CHECK) || p.curIs(token.CONSTRAINT) {
			if constraint := p.parseTableConstraint(); constraint != nil {
				stmt.Constraints = append(stmt.Constraints, constraint)
			}
		} else if col := p.parseColumnDef(); col != nil {
			stmt.Columns = append(stmt.Columns, col)
		}

		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}
	p.expect(token.RPAREN)

	stmt.Options = p.parseTableOptions()
	return stmt
}

func (p *Parser) parseColumnDef() *ast.ColumnDef {
	if !p.curIs(token.IDENT) {
		p.errorf("expected column name")
		return nil
	}

	col := &ast.ColumnDef{Name: p.cur.Value}
	p.advance()

	col.Type = p.parseDataType()
	col.Constraints = p.parseColumnConstraints()
	return col
}

func (p *Parser) parseDataType() *ast.DataType {
	dt := &ast.DataType{}

	if p.cur.Type.IsKeyword() || p.curIs(token.IDENT) {
		dt.Name = p.cur.Value
		p.advance()
	} else {
		p.errorf("expected data type")
		return dt
	}

	if p.curIs(token.PRECISION) || p.curIs(token.VARYING) {
		dt.Name += " " + p.cur.Value
		p.advance()
	}

	if p.curIs(token.LPAREN) {
		p.advance()
		if p.curIs(token.INT) {
			n := parseInt(p.cur.Value)
			dt.Length = &n
			p.advance()

			if p.curIs(token.COMMA) {
				p.advance()
				if p.curIs(token.INT) {
					s := parseInt(p.cur.Value)
					dt.Precision = dt.Length
					dt.Scale = &s
					p.advance()
				}
			}
		}
		p.expect(token.RPAREN)
	}

	for {
		switch p.cur.Type {
		case token.UNSIGNED:
			dt.Unsigned = true
			p.advance()
		case token.SIGNED, token.ZEROFILL:
			p.advance()
		case token.CHARACTER, token.CHAR:
			if p.peekIs(token.SET) || p.peekIs(token.CHARSET) {
				p.advance()
				p.advance()
				if p.curIs(token.IDENT) || p.curIs(token.STRING) {
					dt.Charset = p.cur.Value
					p.advance()
				}
			} else {
				return dt
			}
		case token.COLLATE:
			p.advance()
			if p.curIs(token.IDENT) || p.curIs(token.STRING) {
				dt.Collation = p.cur.Value
				p.advance()
			}
		case token.ARRAY:
			dt.IsArray = true
			p.advance()
		case token.LBRACKET:
			p.advance()
			p.expect(token.RBRACKET)
			dt.IsArray = true
		default:
			return dt
		}
	}
}

func (p *Parser) parseColumnConstraints() []*ast.ColumnConstraint {
	var constraints []*ast.ColumnConstraint

	for {
		var constraint *ast.ColumnConstraint
		name := ""
		if p.curIs(token.CONSTRAINT) {
			p.advance()
			if p.curIs(token.IDENT) {
				name = p.cur.Value
				p.advance()
			}
		}

		switch p.cur.Type {
		case token.NOT:
			p.advance()
			if p.curIs(token.NULL) {
				p.advance()
				constraint = &ast.ColumnConstraint{Name: name, ConstrType: ast.ConstraintNotNull}
			}
		case token.NULL:
			p.advance() // NULL is the default; no constraint recorded
		case token.PRIMARY:
			p.advance()
			p.expect(token.KEY)
			constraint = &ast.ColumnConstraint{Name: name, ConstrType: ast.ConstraintPrimaryKey}
		case token.UNIQUE:
			p.advance()
			constraint = &ast.ColumnConstraint{Name: name, ConstrType: ast.ConstraintUnique}
		case token.DEFAULT:
			p.advance()
			constraint = &ast.ColumnConstraint{Name: name, ConstrType: ast.ConstraintDefault, Default: p.parseExpr()}
		case token.CHECK:
			p.advance()
			p.expect(token.LPAREN)
			constraint = &ast.ColumnConstraint{Name: name, ConstrType: ast.ConstraintCheck, Check: p.parseExpr()}
			p.expect(token.RPAREN)
		case token.REFERENCES:
			p.advance()
			constraint = &ast.ColumnConstraint{Name: name, ConstrType: ast.ConstraintForeignKey, References: p.parseForeignKeyRef()}
		case token.AUTO_INCREMENT, token.AUTOINCREMENT:
			p.advance() // treated as a column property, not a distinct constraint
		case token.GENERATED:
			p.advance()
			constraint = p.parseGeneratedConstraint(name)
		default:
			return constraints
		}

		if constraint != nil {
			constraints = append(constraints, constraint)
		}
	}
}

func (p *Parser) parseGeneratedConstraint(name string) *ast.ColumnConstraint {
	if p.curIs(token.ALWAYS) {
		p.advance()
	}
	if p.curIs(token.AS) {
		p.advance()
	}

	p.expect(token.LPAREN)
	genExpr := p.parseExpr()
	p.expect(token.RPAREN)

	stored := false
	if p.curIs(token.STORED) {
		stored = true
		p.advance()
	} else if p.curIs(token.VIRTUAL) {
		p.advance()
	}

	return &ast.ColumnConstraint{
		Name:       name,
		ConstrType: ast.ConstraintGenerated,
		GenExpr:    genExpr,
		GenStored:  stored,
	}
}

func (p *Parser) parseForeignKeyRef() *ast.ForeignKeyRef {
	ref := &ast.ForeignKeyRef{Table: p.parseTableName()}

	if p.curIs(token.LPAREN) {
		ref.Columns = p.parseColumnNameList()
	}

	for p.curIs(token.ON) {
		p.advance()
		switch p.cur.Type {
		case token.DELETE:
			p.advance()
			ref.OnDelete = p.parseRefAction()
		case token.UPDATE:
			p.advance()
			ref.OnUpdate = p.parseRefAction()
		}
	}
	return ref
}

func (p *Parser) parseRefAction() ast.RefAction {
	switch p.cur.Type {
	case token.CASCADE:
		p.advance()
		return ast.RefCascade
	case token.RESTRICT:
		p.advance()
		return ast.RefRestrict
	case token.SET:
		p.advance()
		if p.curIs(token.NULL) {
			p.advance()
			return ast.RefSetNull
		} else if p.curIs(token.DEFAULT) {
			p.advance()
			return ast.RefSetDefault
		}
	case token.NO:
		p.advance()
		p.expect(token.ACTION)
		return ast.RefNoAction
	}
	return ast.RefNoAction
}

func (p *Parser) parseTableConstraint() *ast.TableConstraint {
	tc := &ast.TableConstraint{}

	if p.curIs(token.CONSTRAINT) {
		p.advance()
		if p.curIs(token.IDENT) {
			tc.Name = p.cur.Value
			p.advance()
		}
	}

	switch p.cur.Type {
	case token.PRIMARY:
		p.advance()
		p.expect(token.KEY)
		tc.ConstrType = ast.ConstraintPrimaryKey
		if p.curIs(token.LPAREN) {
			tc.Columns = p.parseColumnNameList()
		}
	case token.UNIQUE:
		p.advance()
		tc.ConstrType = ast.ConstraintUnique
		if p.curIs(token.KEY) {
			p.advance()
		}
		if p.curIs(token.LPAREN) {
			tc.Columns = p.parseColumnNameList()
		}
	case token.FOREIGN:
		p.advance()
		p.expect(token.KEY)
		tc.ConstrType = ast.ConstraintForeignKey
		if p.curIs(token.LPAREN) {
			tc.Columns = p.parseColumnNameList()
		}
		p.expect(token.REFERENCES)
		tc.References = p.parseForeignKeyRef()
	case token.CHECK:
		p.advance()
		tc.ConstrType = ast.ConstraintCheck
		p.expect(token.LPAREN)
		tc.Check = p.parseExpr()
		p.expect(token.RPAREN)
	}
	return tc
}

func (p *Parser) parseTableOptions() []*ast.TableOption {
	var opts []*ast.TableOption

	for {
		switch p.cur.Type {
		case token.ENGINE:
			p.advance()
			if p.curIs(token.EQ) {
				p.advance()
			}
			if p.curIs(token.IDENT) {
				opts = append(opts, &ast.TableOption{Name: "ENGINE", Value: p.cur.Value})
				p.advance()
			}
		case token.CHARSET, token.CHARACTER:
			p.advance()
			if p.curIs(token.SET) {
				p.advance()
			}
			if p.curIs(token.EQ) {
				p.advance()
			}
			if p.curIs(token.IDENT) {
				opts = append(opts, &ast.TableOption{Name: "CHARSET", Value: p.cur.Value})
				p.advance()
			}
		case token.COLLATE:
			p.advance()
			if p.curIs(token.EQ) {
				p.advance()
			}
			if p.curIs(token.IDENT) {
				opts = append(opts, &ast.TableOption{Name: "COLLATE", Value: p.cur.Value})
				p.advance()
			}
		case token.COMMENT_KW:
			p.advance()
			if p.curIs(token.EQ) {
				p.advance()
			}
			if p.curIs(token.STRING) {
				opts = append(opts, &ast.TableOption{Name: "COMMENT", Value: p.cur.Value})
				p.advance()
			}
		case token.AUTO_INCREMENT:
			p.advance()
			if p.curIs(token.EQ) {
				p.advance()
			}
			if p.curIs(token.INT) {
				opts = append(opts, &ast.TableOption{Name: "AUTO_INCREMENT", Value: p.cur.Value})
				p.advance()
			}
		default:
			return opts
		}
	}
}

func (p *Parser) parseCreateIndex() ast.Statement {
	stmt := &ast.CreateIndex{}

	if p.curIs(token.UNIQUE) {
		stmt.Unique = true
		p.advance()
	}
	p.expect(token.INDEX)

	if p.curIs(token.CONCURRENTLY) {
		stmt.Concurrent = true
		p.advance()
	}

	if p.curIs(token.IF) {
		p.advance()
		if p.curIs(token.NOT) {
			p.advance()
			if p.curIs(token.EXISTS) {
				stmt.IfNotExists = true
				p.advance()
			}
		}
	}

	if p.curIs(token.IDENT) {
		stmt.Name = p.cur.Value
		p.advance()
	}

	p.expect(token.ON)
	stmt.Table = p.parseTableName()

	if p.curIs(token.USING) {
		p.advance()
		if p.curIs(token.IDENT) {
			stmt.Using = p.cur.Value
			p.advance()
		}
	}

	p.expect(token.LPAREN)
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		col := &ast.IndexColumn{}
		if p.curIsIdent() {
			col.Column = p.curIdentValue()
			p.advance()
		} else if p.curIs(token.LPAREN) {
			col.Expr = p.parseExpr()
		} else {
			p.errorf("expected column name or expression")
			return nil
		}

		if p.curIs(token.DESC) {
			col.Desc = true
			p.advance()
		} else if p.curIs(token.ASC) {
			p.advance()
		}

		if p.curIs(token.NULLS) {
			p.advance()
			if p.curIs(token.FIRST) {
				col.Nulls = "FIRST"
				p.advance()
			} else if p.curIs(token.LAST) {
				col.Nulls = "LAST"
				p.advance()
			}
		}

		stmt.Columns = append(stmt.Columns, col)
		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}
	p.expect(token.RPAREN)

	if p.curIs(token.WHERE) {
		p.advance()
		stmt.Where = p.parseExpr()
	}
	return stmt
}

func (p *Parser) parseAlter() ast.Statement {
	p.advance() // consume ALTER

	if !p.curIs(token.TABLE) {
		p.errorf("expected TABLE after ALTER")
		return nil
	}
	p.advance()

	stmt := &ast.AlterTable{Table: p.parseTableName()}

	for {
		action := p.parseAlterTableAction()
		if action != nil {
			stmt.Actions = append(stmt.Actions, action)
		}
		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}
	return stmt
}

func (p *Parser) parseAlterTableAction() ast.AlterTableAction {
	switch p.cur.Type {
	case token.ADD:
		p.advance()
		if p.curIs(token.COLUMN) {
			p.advance()
		}
		if p.curIs(token.CONSTRAINT) || p.curIs(token.PRIMARY) ||
			p.curIs(token.FOREIGN) || p.curIs(token.UNIQUE) || p.curIs(token.CHECK) {
			return &ast.AddConstraint{Constraint: p.parseTableConstraint()}
		}
		return &ast.AddColumn{Column: p.parseColumnDef()}

	case token.DROP:
		p.advance()
		if p.curIs(token.COLUMN) {
			p.advance()
			action := &ast.DropColumn{}
			if p.curIs(token.IF) {
				p.advance()
				p.expect(token.EXISTS)
				action.IfExists = true
			}
			if p.curIsIdent() {
				action.Name = p.curIdentValue()
				p.advance()
			}
			if p.curIs(token.CASCADE) {
				action.Cascade = true
				p.advance()
			}
			return action
		}
		if p.curIs(token.CONSTRAINT) {
			p.advance()
			action := &ast.DropConstraint{}
			if p.curIs(token.IF) {
				p.advance()
				p.expect(token.EXISTS)
				action.IfExists = true
			}
			if p.curIsIdent() {
				action.Name = p.curIdentValue()
				p.advance()
			}
			if p.curIs(token.CASCADE) {
				action.Cascade = true
				p.advance()
			}
			return action
		}

	case token.RENAME:
		p.advance()
		if p.curIs(token.COLUMN) {
			p.advance()
			action := &ast.RenameColumn{}
			if p.curIsIdent() {
				action.OldName = p.curIdentValue()
				p.advance()
			}
			p.expect(token.TO)
			if p.curIsIdent() {
				action.NewName = p.curIdentValue()
				p.advance()
			}
			return action
		}
		if p.curIs(token.TO) {
			p.advance()
			return &ast.RenameTable{NewName: p.parseTableName()}
		}

	case token.MODIFY, token.ALTER:
		p.advance()
		if p.curIs(token.COLUMN) {
			p.advance()
		}
		action := &ast.ModifyColumn{}
		if p.curIsIdent() {
			action.Name = p.curIdentValue()
			p.advance()
		}
		if p.curIs(token.SET) {
			p.advance()
			if p.curIs(token.NOT) {
				p.advance()
				p.expect(token.NULL)
				action.SetNotNull = true
			} else if p.curIs(token.DEFAULT) {
				p.advance()
				action.SetDefault = p.parseExpr()
			}
		} else if p.curIs(token.DROP) {
			p.advance()
			if p.curIs(token.NOT) {
				p.advance()
				p.expect(token.NULL)
				action.DropNotNull = true
			} else if p.curIs(token.DEFAULT) {
				p.advance()
				action.DropDefault = true
			}
		} else {
			colDef := &ast.ColumnDef{Name: action.Name}
			colDef.Type = p.parseDataType()
			colDef.Constraints = p.parseColumnConstraints()
			action.NewDef = colDef
		}
		return action
	}
	return nil
}

func (p *Parser) parseDrop() ast.Statement {
	p.advance() // consume DROP

	switch p.cur.Type {
	case token.TABLE:
		return p.parseDropTable()
	case token.INDEX:
		return p.parseDropIndex()
	default:
		p.errorf("expected TABLE or INDEX after DROP")
		return nil
	}
}

func (p *Parser) parseDropTable() ast.Statement {
	p.advance() // consume TABLE

	stmt := &ast.DropTable{}
	if p.curIs(token.IF) {
		p.advance()
		p.expect(token.EXISTS)
		stmt.IfExists = true
	}

	for {
		stmt.Tables = append(stmt.Tables, p.parseTableName())
		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}

	if p.curIs(token.CASCADE) {
		stmt.Cascade = true
		p.advance()
	}
	return stmt
}

func (p *Parser) parseDropIndex() ast.Statement {
	p.advance() // consume INDEX

	stmt := &ast.DropIndex{}
	if p.curIs(token.CONCURRENTLY) {
		stmt.Concurrent = true
		p.advance()
	}

	if p.curIs(token.IF) {
		p.advance()
		p.expect(token.EXISTS)
		stmt.IfExists = true
	}

	if p.curIs(token.IDENT) {
		stmt.Name = p.cur.Value
		p.advance()
	}

	if p.curIs(token.ON) {
		p.advance()
		stmt.Table = p.parseTableName()
	}

	if p.curIs(token.CASCADE) {
		stmt.Cascade = true
		p.advance()
	}
	return stmt
}

func (p *Parser) parseTruncate() ast.Statement {
	p.advance() // consume TRUNCATE

	if p.curIs(token.TABLE) {
		p.advance()
	}

	stmt := &ast.Truncate{}
	for {
		stmt.Tables = append(stmt.Tables, p.parseTableName())
		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}

	if p.curIs(token.CASCADE) {
		stmt.Cascade = true
		p.advance()
	}
	return stmt
}

// parseParenthesizedStatement handles statements that start with a
// parenthesis, like (SELECT ...) UNION (SELECT ...).
func (p *Parser) parseParenthesizedStatement() ast.Statement {
	p.advance() // consume '('

	inner := p.parseStatement()
	if inner == nil {
		return nil
	}
	if !p.expect(token.RPAREN) {
		return nil
	}

	sel, ok := inner.(*ast.Select)
	if !ok {
		return inner
	}

	if p.curIs(token.UNION) || p.curIs(token.INTERSECT) || p.curIs(token.EXCEPT) {
		return p.parseSetOp(sel)
	}

	if p.curIs(token.ORDER) {
		sel.OrderBy = p.parseOrderBy()
	}
	if p.curIs(token.LIMIT) {
		sel.Limit = p.parseLimit()
	}
	return sel
}

func (p *Parser) parseExplain() ast.Statement {
	stmt := &ast.Explain{}

	if p.curIs(token.EXPLAIN) {
		p.advance()
	}

parseOptions:
	for {
		switch p.cur.Type {
		case token.ANALYZE:
			stmt.Analyze = true
			p.advance()
		case token.VERBOSE:
			stmt.Verbose = true
			p.advance()
		case token.FORMAT:
			p.advance()
			if p.curIs(token.IDENT) {
				stmt.Format = p.cur.Value
				p.advance()
			}
		case token.LPAREN:
			// PostgreSQL style: EXPLAIN (ANALYZE, VERBOSE, ...)
			p.advance()
			for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
				switch p.cur.Type {
				case token.ANALYZE:
					stmt.Analyze = true
				case token.VERBOSE:
					stmt.Verbose = true
				case token.FORMAT:
					p.advance()
					if p.curIs(token.IDENT) {
						stmt.Format = p.cur.Value
					}
				}
				p.advance()
				if p.curIs(token.COMMA) {
					p.advance()
				}
			}
			p.expect(token.RPAREN)
		default:
			break parseOptions
		}
	}

	stmt.Stmt = p.parseStatement()
	return stmt
}

func (p *Parser) parseTableName() *ast.TableName {
	if !p.curIsIdent() {
		p.errorf("expected table name")
		return nil
	}

	parts := []string{p.curIdentValue()}
	p.advance()

	for p.curIs(token.DOT) {
		p.advance()
		if !p.curIsIdent() {
			p.errorf("expected identifier after '.'")
			return nil
		}
		parts = append(parts, p.curIdentValue())
		p.advance()
	}

	return &ast.TableName{Parts: parts}
}

func parseInt(s string) int {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return int(^uint(0) >> 1)
	}
	if n > int64(int(^uint(0)>>1)) {
		return int(^uint(0) >> 1)
	}
	if n < int64(-int(^uint(0)>>1)-1) {
		return -int(^uint(0)>>1) - 1
	}
	return int(n)
}
