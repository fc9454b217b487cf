//go:build cgo && libpostal
// +build cgo,libpostal

package libpostal

/*
#cgo pkg-config: libpostal
#include <libpostal/libpostal.h>
#include <stdlib.h>
*/
import "C"

import "unsafe"

// cgoNative routes every Native call to the linked libpostal. All C string
// allocations made here are freed before the enclosing call returns; the
// only allocations that outlive a call are the native response objects,
// whose ownership transfers to the returned handle until Destroy.
type cgoNative struct{}

func newNative() Native { return cgoNative{} }

func (cgoNative) SetupBase() bool       { return bool(C.libpostal_setup()) }
func (cgoNative) SetupParser() bool     { return bool(C.libpostal_setup_parser()) }
func (cgoNative) SetupClassifier() bool { return bool(C.libpostal_setup_language_classifier()) }

func (cgoNative) TeardownBase()       { C.libpostal_teardown() }
func (cgoNative) TeardownParser()     { C.libpostal_teardown_parser() }
func (cgoNative) TeardownClassifier() { C.libpostal_teardown_language_classifier() }

func (cgoNative) ParserDefaults() ParserOptions {
	defaults := C.libpostal_get_address_parser_default_options()

	var out ParserOptions
	if defaults.language != nil {
		out.Language = C.GoString(defaults.language)
	}
	if defaults.country != nil {
		out.Country = C.GoString(defaults.country)
	}
	return out
}

func (cgoNative) Parse(address string, o ParserOptions) ParseResponse {
	cAddress := C.CString(address)
	defer C.free(unsafe.Pointer(cAddress))

	// Hint strings must stay valid for the whole native call; the options
	// struct holds raw pointers, not copies.
	opts := C.libpostal_get_address_parser_default_options()
	if o.Language != "" {
		cLanguage := C.CString(o.Language)
		defer C.free(unsafe.Pointer(cLanguage))
		opts.language = cLanguage
	}
	if o.Country != "" {
		cCountry := C.CString(o.Country)
		defer C.free(unsafe.Pointer(cCountry))
		opts.country = cCountry
	}

	resp := C.libpostal_parse_address(cAddress, opts)
	if resp == nil {
		return nil
	}
	return &cgoParseResponse{ptr: resp}
}

type cgoParseResponse struct {
	ptr *C.libpostal_address_parser_response_t
}

func (r *cgoParseResponse) Len() int {
	return int(r.ptr.num_components)
}

func (r *cgoParseResponse) Label(i int) string {
	labels := unsafe.Slice(r.ptr.labels, int(r.ptr.num_components))
	return C.GoString(labels[i])
}

func (r *cgoParseResponse) Component(i int) string {
	components := unsafe.Slice(r.ptr.components, int(r.ptr.num_components))
	return C.GoString(components[i])
}

func (r *cgoParseResponse) Destroy() {
	C.libpostal_address_parser_response_destroy(r.ptr)
	r.ptr = nil
}

func (cgoNative) ExpandDefaults() NormalizeOptions {
	defaults := C.libpostal_get_default_options()

	var out NormalizeOptions
	if defaults.languages != nil && defaults.num_languages > 0 {
		languages := unsafe.Slice(defaults.languages, int(defaults.num_languages))
		out.Languages = make([]string, len(languages))
		for i, lang := range languages {
			out.Languages[i] = C.GoString(lang)
		}
	}
	out.AddressComponents = uint16(defaults.address_components)
	out.LatinASCII = bool(defaults.latin_ascii)
	out.Transliterate = bool(defaults.transliterate)
	out.StripAccents = bool(defaults.strip_accents)
	out.Decompose = bool(defaults.decompose)
	out.Lowercase = bool(defaults.lowercase)
	out.TrimString = bool(defaults.trim_string)
	out.DropParentheticals = bool(defaults.drop_parentheticals)
	out.ReplaceNumericHyphens = bool(defaults.replace_numeric_hyphens)
	out.DeleteNumericHyphens = bool(defaults.delete_numeric_hyphens)
	out.SplitAlphaFromNumeric = bool(defaults.split_alpha_from_numeric)
	out.ReplaceWordHyphens = bool(defaults.replace_word_hyphens)
	out.DeleteWordHyphens = bool(defaults.delete_word_hyphens)
	out.DeleteFinalPeriods = bool(defaults.delete_final_periods)
	out.DeleteAcronymPeriods = bool(defaults.delete_acronym_periods)
	out.DropEnglishPossessives = bool(defaults.drop_english_possessives)
	out.DeleteApostrophes = bool(defaults.delete_apostrophes)
	out.ExpandNumex = bool(defaults.expand_numex)
	out.RomanNumerals = bool(defaults.roman_numerals)
	return out
}

func (cgoNative) Expand(address string, o NormalizeOptions) Expansion {
	cAddress := C.CString(address)
	defer C.free(unsafe.Pointer(cAddress))

	opts := C.libpostal_get_default_options()

	// The language array and every string in it must outlive the native
	// call. langPtrs holds only C pointers, so handing its backing array to
	// C is permitted by the cgo pointer rules.
	var langPtrs []*C.char
	if len(o.Languages) > 0 {
		langPtrs = make([]*C.char, len(o.Languages))
		for i, lang := range o.Languages {
			langPtrs[i] = C.CString(lang)
			defer C.free(unsafe.Pointer(langPtrs[i]))
		}
		opts.languages = &langPtrs[0]
		opts.num_languages = C.size_t(len(langPtrs))
	} else {
		opts.languages = nil
		opts.num_languages = 0
	}

	opts.address_components = C.uint16_t(o.AddressComponents)
	opts.latin_ascii = C.bool(o.LatinASCII)
	opts.transliterate = C.bool(o.Transliterate)
	opts.strip_accents = C.bool(o.StripAccents)
	opts.decompose = C.bool(o.Decompose)
	opts.lowercase = C.bool(o.Lowercase)
	opts.trim_string = C.bool(o.TrimString)
	opts.drop_parentheticals = C.bool(o.DropParentheticals)
	opts.replace_numeric_hyphens = C.bool(o.ReplaceNumericHyphens)
	opts.delete_numeric_hyphens = C.bool(o.DeleteNumericHyphens)
	opts.split_alpha_from_numeric = C.bool(o.SplitAlphaFromNumeric)
	opts.replace_word_hyphens = C.bool(o.ReplaceWordHyphens)
	opts.delete_word_hyphens = C.bool(o.DeleteWordHyphens)
	opts.delete_final_periods = C.bool(o.DeleteFinalPeriods)
	opts.delete_acronym_periods = C.bool(o.DeleteAcronymPeriods)
	opts.drop_english_possessives = C.bool(o.DropEnglishPossessives)
	opts.delete_apostrophes = C.bool(o.DeleteApostrophes)
	opts.expand_numex = C.bool(o.ExpandNumex)
	opts.roman_numerals = C.bool(o.RomanNumerals)

	var n C.size_t
	arr := C.libpostal_expand_address(cAddress, opts, &n)
	if arr == nil {
		return nil
	}
	return &cgoExpansion{arr: arr, n: n}
}

type cgoExpansion struct {
	arr **C.char
	n   C.size_t
}

func (e *cgoExpansion) Len() int {
	return int(e.n)
}

func (e *cgoExpansion) Variant(i int) string {
	variants := unsafe.Slice(e.arr, int(e.n))
	return C.GoString(variants[i])
}

func (e *cgoExpansion) Destroy() {
	// The count must be exactly the one the native call reported.
	C.libpostal_expansion_array_destroy(e.arr, e.n)
	e.arr = nil
}
