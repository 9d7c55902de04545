package dialect

import (
	"github.com/juju/errors"
	"gopkg.in/yaml.v3"
)

// Config is the YAML-serializable description of a custom dialect: a
// named base dialect plus additional keywords and overridden parser
// flags. It is the concrete mechanism behind "users may define custom
// descriptors".
//
// Example:
//
//	base: ansi
//	extra_keywords: [UPSERT, MERGE]
//	allow_limit_clause: true
//	allow_offset_without_row_keyword: true
//	allow_backtick_ident: true
//	allow_dollar_in_ident: true
type Config struct {
	Base                         string   `yaml:"base"`
	ExtraKeywords                []string `yaml:"extra_keywords"`
	AllowLimitClause             *bool    `yaml:"allow_limit_clause"`
	AllowOffsetWithoutRowKeyword *bool    `yaml:"allow_offset_without_row_keyword"`
	AllowNaturalJoin             *bool    `yaml:"allow_natural_join"`
	RecursiveCTEKeywordRequired  *bool    `yaml:"recursive_cte_keyword_required"`
	AllowBacktickIdent           bool     `yaml:"allow_backtick_ident"`
	AllowDollarInIdent           bool     `yaml:"allow_dollar_in_ident"`
}

// LoadYAML parses a YAML dialect configuration and builds a usable
// descriptor layered on top of one of the four supplied base dialects.
func LoadYAML(data []byte) (*Dialect, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Annotate(err, "dialect: invalid YAML config")
	}
	return cfg.Build()
}

// Build materializes a Config into a Dialect, failing if the named base
// dialect is not one of the four supplied identifiers.
func (c Config) Build() (*Dialect, error) {
	base, ok := Lookup(c.Base)
	if !ok {
		return nil, errors.NotFoundf("dialect: base dialect %q", c.Base)
	}
	d := &Dialect{
		Name:     base.Name,
		Keywords: base.Keywords.Extend(c.ExtraKeywords...),
		Lexer:    base.Lexer,
		Parser:   base.Parser,
	}
	if c.AllowBacktickIdent {
		d.Lexer.IdentOpen = append(append([]rune{}, base.Lexer.IdentOpen...), '`')
	}
	if c.AllowDollarInIdent {
		inner := d.Lexer.IdentifierPart
		d.Lexer.IdentifierPart = func(r rune) bool { return inner(r) || r == '$' }
	}
	if c.AllowLimitClause != nil {
		d.Parser.AllowLimitClause = *c.AllowLimitClause
	}
	if c.AllowOffsetWithoutRowKeyword != nil {
		d.Parser.AllowOffsetWithoutRowKeyword = *c.AllowOffsetWithoutRowKeyword
	}
	if c.AllowNaturalJoin != nil {
		d.Parser.AllowNaturalJoin = *c.AllowNaturalJoin
	}
	if c.RecursiveCTEKeywordRequired != nil {
		d.Parser.RecursiveCTEKeywordRequired = *c.RecursiveCTEKeywordRequired
	}
	return d, nil
}
