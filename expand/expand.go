// Package expand exposes libpostal's address normalization: expanding a
// free-form address into one or more canonicalized string variants
// ("123 Main St." -> "123 main street"). Variant ordering and duplicates are
// pass-through from the native library.
package expand

import (
	"strings"

	"github.com/kodemartin/postal/libpostal"
)

// Expand normalizes an address with the library's default options. Optional
// language codes restrict expansion to those languages, in order; with none
// given, the native language classifier decides.
//
// Requires an active lifecycle token covering libpostal.Expander.
func Expand(text string, languages ...string) ([]string, error) {
	// Language codes are validated up front so bad input surfaces as
	// InvalidInputError before the defaults fetch touches the native library.
	for _, lang := range languages {
		if strings.IndexByte(lang, 0) >= 0 {
			return nil, &libpostal.InvalidInputError{Field: "language"}
		}
	}

	if len(languages) == 0 {
		return libpostal.ExpandAddress(text, nil)
	}

	o, err := DefaultOptions()
	if err != nil {
		return nil, err
	}
	o.Languages = languages
	return ExpandWithOptions(text, o)
}

// ExpandWithOptions normalizes an address with fully explicit options.
func ExpandWithOptions(text string, o Options) ([]string, error) {
	native := o.native()
	return libpostal.ExpandAddress(text, &native)
}
