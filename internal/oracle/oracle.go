// Package oracle wraps blastrain/vitess-sqlparser as a second,
// independent SQL parser/formatter, used by this module's own tests as
// a round-trip property oracle: any query vitess itself can parse and
// re-emit without erroring is expected to at least parse cleanly here
// too, even when the two generators disagree on exact surface syntax.
// compare_test.go and compat_test.go used vitess-sqlparser for this
// same comparative role inline; this package gives it a stable,
// importable home instead of a build-tag-gated test file.
package oracle

import (
	vitess "github.com/blastrain/vitess-sqlparser/sqlparser"
)

// Parses reports whether vitess accepts sql as valid SQL, without
// surfacing its error (callers that want the error should call
// vitess.Parse directly; this is a yes/no oracle check).
func Parses(sql string) bool {
	_, err := vitess.Parse(sql)
	return err == nil
}

// RoundTrip parses sql with vitess and re-emits it through vitess's own
// formatter, returning the formatted text and whether parsing
// succeeded. Used to cross-check that this module's own generator
// output is itself re-parseable by an independent implementation.
func RoundTrip(sql string) (string, bool) {
	stmt, err := vitess.Parse(sql)
	if err != nil {
		return "", false
	}
	return vitess.String(stmt), true
}
