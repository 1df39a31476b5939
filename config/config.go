// Package config loads the library's runtime knobs — which dialect to
// target, which optimizer rules to run, and the parser's error
// tolerance — from layered sources: hardcoded defaults, an optional
// YAML file, then environment variable overrides. Grounded on
// leapstack-labs-leapsql's internal/config/loader.go, which layers the
// same koanf/file/yaml/env provider stack this package reuses. Purely
// additive: every struct here is also constructible by hand with no
// import of this package, so a caller embedding the library is never
// forced onto koanf.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv2 "gopkg.in/yaml.v2"

	"github.com/brindlecode/sqlforge/dialect"
	"github.com/brindlecode/sqlforge/optimizer"
	"github.com/brindlecode/sqlforge/parser"
)

// EnvPrefix is the environment-variable prefix Load's overrides
// recognize, e.g. SQLFORGE_DIALECT, SQLFORGE_OPTIMIZER_SIMPLIFY.
const EnvPrefix = "SQLFORGE_"

// Config is the full set of load-time knobs. Dialect names a
// registered dialect.Dialect by name; Optimizer and Parser mirror
// optimizer.Config and the parser's error-handling policy field-for-
// field so they can be koanf-unmarshaled directly.
type Config struct {
	Dialect   string          `koanf:"dialect"`
	Optimizer OptimizerConfig `koanf:"optimizer"`
	Parser    ParserConfig    `koanf:"parser"`
}

// OptimizerConfig mirrors optimizer.Config's eleven rule flags as
// koanf-tagged fields, since optimizer.Config itself carries no struct
// tags and this package must not add a koanf dependency to optimizer.
type OptimizerConfig struct {
	Simplify            bool `koanf:"simplify"`
	Canonicalize        bool `koanf:"canonicalize"`
	QuoteIdentifiers    bool `koanf:"quote_identifiers"`
	EliminateCTEs       bool `koanf:"eliminate_ctes"`
	NormalizePredicates bool `koanf:"normalize_predicates"`
	PushdownPredicates  bool `koanf:"pushdown_predicates"`
	MergeSubqueries     bool `koanf:"merge_subqueries"`
	JoinReordering      bool `koanf:"join_reordering"`
	ProjectionPushdown  bool `koanf:"projection_pushdown"`
	AnnotateTypes       bool `koanf:"annotate_types"`
	QualifyColumns      bool `koanf:"qualify_columns"`
}

// ParserConfig mirrors parser.Config's non-Quotes fields (Quotes comes
// from the resolved dialect, not from config files).
type ParserConfig struct {
	// ErrorLevel is "raise", "immediate", "warn", or "ignore"
	// (parser.ErrorLevel's four constants).
	ErrorLevel string `koanf:"error_level"`
	MaxErrors  int    `koanf:"max_errors"`
}

// defaults seeds every field Load doesn't find in a file or the
// environment: ANSI dialect, the PHASE_5A rule set (optimizer.Default),
// and raise-level parsing (errors collected and returned together)
// with max_errors 0, which the parser treats as its default cap of 100.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"dialect": "ANSI",
		"optimizer": map[string]interface{}{
			"simplify":             true,
			"canonicalize":         true,
			"quote_identifiers":    true,
			"eliminate_ctes":       true,
			"normalize_predicates": false,
			"pushdown_predicates":  false,
			"merge_subqueries":     false,
			"join_reordering":      false,
			"projection_pushdown":  false,
			"annotate_types":       false,
			"qualify_columns":      false,
		},
		"parser": map[string]interface{}{
			"error_level": "raise",
			"max_errors":  0,
		},
	}
}

// Default returns the built-in defaults as a Config, with no file or
// environment overrides applied — the same values Load falls back to.
func Default() *Config {
	var cfg Config
	_ = confmapUnmarshal(defaults(), &cfg)
	return &cfg
}

// confmapUnmarshal round-trips raw through a throwaway koanf instance
// so Default() shares exactly one source of truth for the defaults map
// with Load, rather than hand-duplicating struct-literal defaults that
// could drift out of sync with it.
func confmapUnmarshal(raw map[string]interface{}, out *Config) error {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(raw, "."), nil); err != nil {
		return err
	}
	return k.Unmarshal("", out)
}

// Example renders cfg as a commented YAML document suitable for
// writing out as a starter config file (a `sqlforge config init`
// subcommand's job). Uses gopkg.in/yaml.v2 directly rather than
// koanf's own (read-only) provider interface, since koanf has no
// marshal side.
func Example(cfg *Config) (string, error) {
	out, err := yamlv2.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("config: marshaling example: %w", err)
	}
	return "# sqlforge configuration. See SQLFORGE_* environment variables\n" +
		"# for the equivalent override names.\n" + string(out), nil
}

// Load builds a Config from defaults, then path (if non-empty; a
// missing file is not an error — callers that want a file to be
// mandatory should stat it themselves first), then SQLFORGE_-prefixed
// environment variables, in that precedence order (later sources win).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: loading defaults: %w", err)
	}

	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("config: reading %s: %w", path, err)
			}
		} else if !os.IsNotExist(statErr) {
			return nil, fmt.Errorf("config: reading %s: %w", path, statErr)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		trimmed := strings.TrimPrefix(s, EnvPrefix)
		return strings.ReplaceAll(strings.ToLower(trimmed), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("config: reading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshaling: %w", err)
	}
	return &cfg, nil
}

// Optimizer converts the koanf-friendly OptimizerConfig into
// optimizer.Config. Kept as a separate field-by-field type rather than
// embedding optimizer.Config directly so the optimizer package never
// needs to import koanf's struct tags.
func (c OptimizerConfig) Optimizer() optimizer.Config {
	return optimizer.Config{
		Simplify:            c.Simplify,
		Canonicalize:        c.Canonicalize,
		QuoteIdentifiers:    c.QuoteIdentifiers,
		EliminateCTEs:       c.EliminateCTEs,
		NormalizePredicates: c.NormalizePredicates,
		PushdownPredicates:  c.PushdownPredicates,
		MergeSubqueries:     c.MergeSubqueries,
		JoinReordering:      c.JoinReordering,
		ProjectionPushdown:  c.ProjectionPushdown,
		AnnotateTypes:       c.AnnotateTypes,
		QualifyColumns:      c.QualifyColumns,
	}
}

// errorLevel converts the config string ("raise", "immediate", "warn",
// "ignore") to parser.ErrorLevel. An unrecognized or empty value falls
// back to parser.LevelRaise, matching parser.Config's own zero value.
func (c ParserConfig) errorLevel() parser.ErrorLevel {
	switch strings.ToLower(c.ErrorLevel) {
	case "immediate":
		return parser.LevelImmediate
	case "warn":
		return parser.LevelWarn
	case "ignore":
		return parser.LevelIgnore
	default:
		return parser.LevelRaise
	}
}

// Resolve looks up the configured dialect by name and returns it along
// with the resolved optimizer.Config and parser.Config ready to drive
// it.
func (c *Config) Resolve() (*dialect.Dialect, optimizer.Config, parser.Config, error) {
	d, err := dialect.Lookup(c.Dialect)
	if err != nil {
		return nil, optimizer.Config{}, parser.Config{}, err
	}
	pcfg := d.ParserConfig(c.Parser.errorLevel(), c.Parser.MaxErrors)
	return d, c.Optimizer.Optimizer(), pcfg, nil
}
