package libpostal

// -----------------------------------------------------------------------------
// Go mirrors of the libpostal C ABI
// -----------------------------------------------------------------------------

// ParserOptions mirrors libpostal_address_parser_options. Empty fields stand
// in for NULL pointers on the C side; the cgo layer translates them back.
type ParserOptions struct {
	Language string
	Country  string
}

// NormalizeOptions mirrors libpostal_normalize_options field for field. The
// AddressComponents bitmask keeps the native bit positions, including the
// reserved bits 10-12 which must stay clear.
type NormalizeOptions struct {
	Languages         []string
	AddressComponents uint16

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

// ParseResponse is a handle to a native parser response. Label and Component
// return fully-owned Go copies; nothing returned from them aliases native
// memory. Destroy releases the underlying native allocation and must be
// called exactly once. The handle is invalid after Destroy.
type ParseResponse interface {
	Len() int
	Label(i int) string
	Component(i int) string
	Destroy()
}

// Expansion is a handle to a native expansion array. Destroy passes the exact
// element count back to the native destructor, as the ABI requires.
type Expansion interface {
	Len() int
	Variant(i int) string
	Destroy()
}

// Native is the seam between the marshaling layer and the library itself.
// The default implementation is selected at build time (cgo against a linked
// libpostal, or a stub that fails setup); tests install an instrumented fake
// through SetNative.
//
// Parse and Expand may return nil: libpostal legitimately yields a NULL
// response for degenerate inputs, and the marshaler treats that as an empty
// result rather than an error.
type Native interface {
	SetupBase() bool
	SetupParser() bool
	SetupClassifier() bool

	TeardownBase()
	TeardownParser()
	TeardownClassifier()

	ParserDefaults() ParserOptions
	Parse(address string, o ParserOptions) ParseResponse

	ExpandDefaults() NormalizeOptions
	Expand(address string, o NormalizeOptions) Expansion
}

// active is the implementation every call in this package routes through.
// Guarded by the lifecycle lock.
var active Native = newNative()

// SetNative swaps the active implementation and resets the lifecycle state
// machine to Uninitialized. It is intended for tests; calling it while
// lifecycle tokens are outstanding abandons their native state. The returned
// function restores the previous implementation (and resets state again).
func SetNative(n Native) (restore func()) {
	mu.Lock()
	defer mu.Unlock()

	prev := active
	active = n
	resetLifecycleLocked()

	return func() {
		mu.Lock()
		defer mu.Unlock()
		active = prev
		resetLifecycleLocked()
	}
}
