// SPDX-License-Identifier: MIT

// Package grid: functional configuration for Dense construction.
package grid

// DefaultValidateNaNInf toggles strict finite-value validation on Set/Apply.
// Entropy values are always finite, so the guard is on by default.
const DefaultValidateNaNInf = true

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables or disables rejection of NaN/±Inf on writes.
// Disable it to store NaN as a "failed cell" marker.
func WithValidateNaNInf(on bool) Option {
	return func(o *Options) {
		o.validateNaNInf = on
	}
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
