// SPDX-License-Identifier: MIT

// Package binmat: functional configuration for text rendering.
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions helper resolving ...Option into Options.
package binmat

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultOne is the symbol rendered for a true cell.
	DefaultOne = '1'

	// DefaultZero is the symbol rendered for a false cell.
	DefaultZero = '0'

	// DefaultRowSeparator is written between rows; never after the last one.
	DefaultRowSeparator = "\n"
)

// ---------- Internal panic messages ----------

const (
	panicSymbolsEqual     = "binmat: WithSymbols: one and zero symbols must differ"
	panicRowSeparatorNone = "binmat: WithRowSeparator: separator must be non-empty"
)

// Option mutates rendering options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	one, zero rune   // DefaultOne, DefaultZero
	rowSep    string // DefaultRowSeparator
}

// WithSymbols sets the symbols rendered for true and false cells.
// Panics when one == zero, since the output would be ambiguous.
func WithSymbols(one, zero rune) Option {
	if one == zero {
		panic(panicSymbolsEqual)
	}

	return func(o *Options) { o.one, o.zero = one, zero }
}

// WithRowSeparator sets the string written between rows.
// Panics on an empty separator, which would merge rows.
func WithRowSeparator(sep string) Option {
	if sep == "" {
		panic(panicRowSeparatorNone)
	}

	return func(o *Options) { o.rowSep = sep }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{one: DefaultOne, zero: DefaultZero, rowSep: DefaultRowSeparator}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
