package lexer

import "github.com/brindlecode/sqlforge/token"

// EscapePolicy selects how a string-quoted literal represents an
// embedded copy of its own closing quote. The source this module is
// descended from conflated both forms into a single scan function that
// tried a doubled-quote check and then backslash-escape interpretation
// on every string, regardless of dialect; here a string-quote entry
// picks exactly one.
type EscapePolicy int

const (
	// EscapeDouble closes a string by doubling the quote character
	// ('it''s'), the SQL-standard and SQLite/Postgres default.
	EscapeDouble EscapePolicy = iota
	// EscapeBackslash recognizes backslash escape sequences (\n, \t,
	// \', \\, ...) in addition to the doubled quote, which the Lexer
	// accepts under either policy. This is MySQL's default
	// string-literal behavior.
	EscapeBackslash
)

// QuoteSet parameterizes a Lexer's quoting conventions. A Dialect owns
// one QuoteSet and every Lexer it creates is built from it, so the same
// scanning code serves every dialect.
type QuoteSet struct {
	// IdentQuotes maps an opening identifier-quote byte to its closing
	// byte: '"' -> '"', '`' -> '`', '[' -> ']'. A dialect need only
	// list the forms it accepts; an unlisted opener falls through to
	// operator/array-subscript scanning instead.
	IdentQuotes map[byte]byte
	// StringQuotes maps an opening string-quote byte (almost always
	// just '\'') to the escape policy used inside it.
	StringQuotes map[byte]EscapePolicy
	// BracketIdents marks a set as using SQL Server style #temp /
	// ##global_temp / @variable identifier forms alongside the '['
	// bracket-quoting convention. The Lexer does not consult it: those
	// forms are scanned the same way under every QuoteSet.
	BracketIdents bool
	// Keywords overrides which identifiers are recognized as reserved
	// words. Nil uses token.DefaultTrie(), the ANSI-ish baseline shared
	// by dialects that don't reserve anything unusual.
	Keywords *token.Trie
}

// keywords returns the effective keyword trie, falling back to the
// package default when none was set.
func (q QuoteSet) keywords() *token.Trie {
	if q.Keywords != nil {
		return q.Keywords
	}
	return token.DefaultTrie()
}

// DefaultQuotes is the permissive set used when a Lexer is built
// without an explicit dialect (via New/Get): every identifier-quote
// form is accepted, and single-quoted strings use doubled-quote
// escaping only, so a backslash inside them is kept literally.
func DefaultQuotes() QuoteSet {
	return QuoteSet{
		IdentQuotes: map[byte]byte{
			'"': '"',
			'`': '`',
			'[': ']',
		},
		StringQuotes: map[byte]EscapePolicy{
			'\'': EscapeDouble,
		},
		BracketIdents: true,
	}
}
