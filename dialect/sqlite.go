package dialect

import (
	"github.com/brindlecode/sqlforge/generator"
	"github.com/brindlecode/sqlforge/lexer"
)

// SQLite accepts all three common identifier-quoting forms
// (double-quote, backtick, bracket — it is famously permissive about
// this) but generates with the ANSI double-quote convention, and
// preserves identifier casing since SQLite's own default collation is
// case-sensitive apart from ASCII comparisons it special-cases
// internally.
var SQLite = &Dialect{
	Name:      "SQLITE",
	Normalize: Preserve,
	Quotes: lexer.QuoteSet{
		IdentQuotes:   map[byte]byte{'"': '"', '`': '`', '[': ']'},
		StringQuotes:  map[byte]lexer.EscapePolicy{'\'': lexer.EscapeDouble},
		BracketIdents: true,
	},
	GenOptions: generator.DefaultOptions,
}

func init() {
	Register(SQLite)
}
