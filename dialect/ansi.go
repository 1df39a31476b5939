package dialect

import (
	"github.com/brindlecode/sqlforge/generator"
	"github.com/brindlecode/sqlforge/lexer"
)

// ANSI is the baseline dialect: standard double-quote identifier
// quoting, doubled-quote string escaping, and upper-cased keywords on
// generation. Every other builtin dialect starts from a copy of its
// Quotes/GenOptions and overrides only what its variant actually
// changes.
var ANSI = &Dialect{
	Name:      "ANSI",
	Normalize: Uppercase,
	Quotes: lexer.QuoteSet{
		IdentQuotes:  map[byte]byte{'"': '"'},
		StringQuotes: map[byte]lexer.EscapePolicy{'\'': lexer.EscapeDouble},
	},
	GenOptions: generator.DefaultOptions,
}

func init() {
	Register(ANSI)
	Alias("GENERIC", ANSI)
	Alias("SQL", ANSI)
}
