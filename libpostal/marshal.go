package libpostal

import "strings"

// checkNul rejects strings that cannot be represented as C strings. The
// check runs before any native call so invalid input never reaches the
// library.
func checkNul(field, s string) error {
	if strings.IndexByte(s, 0) >= 0 {
		return &InvalidInputError{Field: field}
	}
	return nil
}

// ParseAddress invokes the native address parser and copies the labeled
// components out of the native response, preserving the parser's
// left-to-right emission order. Empty hint fields are resolved against the
// parser's own defaults at call time.
//
// A NULL native response is a valid empty outcome, not an error: both
// returned slices are empty and the error is nil. The native response is
// destroyed exactly once on every path.
func ParseAddress(text string, o ParserOptions) (labels, tokens []string, err error) {
	if err := checkNul("address", text); err != nil {
		return nil, nil, err
	}
	if err := checkNul("language", o.Language); err != nil {
		return nil, nil, err
	}
	if err := checkNul("country", o.Country); err != nil {
		return nil, nil, err
	}

	err = withParser(func(n Native) error {
		if o.Language == "" || o.Country == "" {
			defaults := n.ParserDefaults()
			if o.Language == "" {
				o.Language = defaults.Language
			}
			if o.Country == "" {
				o.Country = defaults.Country
			}
		}

		counters.parseCalls.Add(1)
		resp := n.Parse(text, o)
		if resp == nil {
			return nil
		}
		counters.respAlloc.Add(1)
		defer func() {
			resp.Destroy()
			counters.respFree.Add(1)
		}()

		count := resp.Len()
		labels = make([]string, count)
		tokens = make([]string, count)
		for i := 0; i < count; i++ {
			labels[i] = resp.Label(i)
			tokens[i] = resp.Component(i)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return labels, tokens, nil
}

// ExpandAddress invokes the native expansion entry point and copies all
// variants out in native order. Duplicates are passed through untouched. A
// nil options pointer means "use the library defaults", fetched fresh at
// call time. The native array is destroyed exactly once, with the exact
// count the native call reported.
func ExpandAddress(text string, o *NormalizeOptions) (variants []string, err error) {
	if err := checkNul("address", text); err != nil {
		return nil, err
	}
	if o != nil {
		for _, lang := range o.Languages {
			if err := checkNul("language", lang); err != nil {
				return nil, err
			}
		}
	}

	err = withClassifier(func(n Native) error {
		var opts NormalizeOptions
		if o != nil {
			opts = *o
		} else {
			opts = n.ExpandDefaults()
		}

		counters.expandCalls.Add(1)
		exp := n.Expand(text, opts)
		if exp == nil {
			return nil
		}
		counters.expAlloc.Add(1)
		defer func() {
			exp.Destroy()
			counters.expFree.Add(1)
		}()

		variants = make([]string, exp.Len())
		for i := range variants {
			variants[i] = exp.Variant(i)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return variants, nil
}

// DefaultNormalizeOptions returns the library's current expansion defaults.
// The values are read from the native library, never duplicated as Go
// constants, so they track the linked library's behavior. Requires an active
// lifecycle token covering the Expander module.
func DefaultNormalizeOptions() (NormalizeOptions, error) {
	var out NormalizeOptions
	err := withClassifier(func(n Native) error {
		out = n.ExpandDefaults()
		return nil
	})
	return out, err
}
