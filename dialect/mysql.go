package dialect

import (
	"strings"

	"github.com/brindlecode/sqlforge/ast"
	"github.com/brindlecode/sqlforge/generator"
	"github.com/brindlecode/sqlforge/lexer"
)

// MySQL backtick-quotes identifiers, backslash-escapes string
// literals, and rewrites two-argument COALESCE to IFNULL.
var MySQL = &Dialect{
	Name:      "MYSQL",
	Normalize: Preserve,
	Quotes: lexer.QuoteSet{
		IdentQuotes:  map[byte]byte{'`': '`'},
		StringQuotes: map[byte]lexer.EscapePolicy{'\'': lexer.EscapeBackslash, '"': lexer.EscapeBackslash},
	},
	GenOptions: generator.Options{
		Identify:  false,
		Normalize: true,
		QuoteIdent: func(name string) string {
			return "`" + strings.ReplaceAll(name, "`", "``") + "`"
		},
	},
	Transforms: generator.TransformTable{
		ast.KindFunc: mysqlFuncTransform,
	},
}

func mysqlFuncTransform(g *generator.Generator, n ast.Node) string {
	f, ok := n.(*ast.Func)
	if !ok || len(f.Args_) != 2 || !strings.EqualFold(f.Name, "COALESCE") {
		return g.DefaultText(n)
	}
	return g.KeywordText("IFNULL") + "(" + g.Render(f.Args_[0]) + ", " + g.Render(f.Args_[1]) + ")"
}

func init() {
	Register(MySQL)
	Alias("MARIADB", MySQL)
}
