package dialect

import (
	"github.com/brindlecode/sqlforge/generator"
	"github.com/brindlecode/sqlforge/lexer"
)

// Postgres uses ANSI-standard double-quote identifiers and
// doubled-quote string escaping (no backslash escapes without an E''
// prefix, which this core's grammar treats as a plain string literal
// rather than a distinct form). Its Normalize strategy is Lowercase,
// PostgreSQL's own unquoted-identifier convention; Generate does not
// apply it. It needs no generator Transforms of its own: ILIKE and
// `::` casts are already part of the base grammar/generator
// (Like.Variant and Cast.IsShorthand), not dialect add-ons.
var Postgres = &Dialect{
	Name:      "POSTGRES",
	Normalize: Lowercase,
	Quotes: lexer.QuoteSet{
		IdentQuotes:  map[byte]byte{'"': '"'},
		StringQuotes: map[byte]lexer.EscapePolicy{'\'': lexer.EscapeDouble},
	},
	GenOptions: generator.DefaultOptions,
}

func init() {
	Register(Postgres)
	Alias("POSTGRESQL", Postgres)
	Alias("PG", Postgres)
}
