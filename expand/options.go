package expand

import "github.com/kodemartin/postal/libpostal"

// Options is the typed counterpart of the native normalize options. Obtain a
// value from DefaultOptions and adjust fields; the defaults are read from
// the native library every time, never duplicated here, so they track the
// linked library's behavior.
type Options struct {
	// Languages restricts expansion to the given ISO language codes, in
	// order. Empty means the library classifies the language itself.
	Languages []string

	// Components selects the address component categories considered
	// during normalization.
	Components AddressComponents

	// String transform toggles, matching the native options field for
	// field.
	LatinASCII             bool
	Transliterate          bool
	StripAccents           bool
	Decompose              bool
	Lowercase              bool
	TrimString             bool
	DropParentheticals     bool
	ReplaceNumericHyphens  bool
	DeleteNumericHyphens   bool
	SplitAlphaFromNumeric  bool
	ReplaceWordHyphens     bool
	DeleteWordHyphens      bool
	DeleteFinalPeriods     bool
	DeleteAcronymPeriods   bool
	DropEnglishPossessives bool
	DeleteApostrophes      bool
	ExpandNumex            bool
	RomanNumerals          bool
}

// DefaultOptions fetches the library's current expansion defaults. Requires
// an active lifecycle token covering libpostal.Expander.
func DefaultOptions() (Options, error) {
	native, err := libpostal.DefaultNormalizeOptions()
	if err != nil {
		return Options{}, err
	}
	return fromNative(native), nil
}

// native translates the typed options into the ABI mirror consumed by the
// bridge. Building it twice from the same Options yields identical values.
func (o Options) native() libpostal.NormalizeOptions {
	var languages []string
	if len(o.Languages) > 0 {
		languages = append(languages, o.Languages...)
	}
	return libpostal.NormalizeOptions{
		Languages:         languages,
		AddressComponents: uint16(o.Components),

		LatinASCII:             o.LatinASCII,
		Transliterate:          o.Transliterate,
		StripAccents:           o.StripAccents,
		Decompose:              o.Decompose,
		Lowercase:              o.Lowercase,
		TrimString:             o.TrimString,
		DropParentheticals:     o.DropParentheticals,
		ReplaceNumericHyphens:  o.ReplaceNumericHyphens,
		DeleteNumericHyphens:   o.DeleteNumericHyphens,
		SplitAlphaFromNumeric:  o.SplitAlphaFromNumeric,
		ReplaceWordHyphens:     o.ReplaceWordHyphens,
		DeleteWordHyphens:      o.DeleteWordHyphens,
		DeleteFinalPeriods:     o.DeleteFinalPeriods,
		DeleteAcronymPeriods:   o.DeleteAcronymPeriods,
		DropEnglishPossessives: o.DropEnglishPossessives,
		DeleteApostrophes:      o.DeleteApostrophes,
		ExpandNumex:            o.ExpandNumex,
		RomanNumerals:          o.RomanNumerals,
	}
}

func fromNative(n libpostal.NormalizeOptions) Options {
	var languages []string
	if len(n.Languages) > 0 {
		languages = append(languages, n.Languages...)
	}
	return Options{
		Languages:  languages,
		Components: AddressComponents(n.AddressComponents) &^ componentReserved,

		LatinASCII:             n.LatinASCII,
		Transliterate:          n.Transliterate,
		StripAccents:           n.StripAccents,
		Decompose:              n.Decompose,
		Lowercase:              n.Lowercase,
		TrimString:             n.TrimString,
		DropParentheticals:     n.DropParentheticals,
		ReplaceNumericHyphens:  n.ReplaceNumericHyphens,
		DeleteNumericHyphens:   n.DeleteNumericHyphens,
		SplitAlphaFromNumeric:  n.SplitAlphaFromNumeric,
		ReplaceWordHyphens:     n.ReplaceWordHyphens,
		DeleteWordHyphens:      n.DeleteWordHyphens,
		DeleteFinalPeriods:     n.DeleteFinalPeriods,
		DeleteAcronymPeriods:   n.DeleteAcronymPeriods,
		DropEnglishPossessives: n.DropEnglishPossessives,
		DeleteApostrophes:      n.DeleteApostrophes,
		ExpandNumex:            n.ExpandNumex,
		RomanNumerals:          n.RomanNumerals,
	}
}
