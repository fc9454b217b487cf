// Package postaltest provides an instrumented in-memory implementation of
// libpostal.Native for tests. It serves canned parser and expansion output,
// records every native entry point that gets hit, and enforces the
// allocate-once/destroy-once ownership contract by panicking on double
// destruction or use after destroy.
package postaltest

import (
	"sync"
	"testing"

	"github.com/kodemartin/postal/libpostal"
)

// Component is one canned (label, token) pair of a scripted parse result.
type Component struct {
	Label string
	Token string
}

// Fake is a scriptable libpostal.Native. Zero value behavior: all setups
// succeed, unknown addresses parse to an empty response and expand to an
// empty array. Configure the maps and Fail* switches before use; read the
// counters after.
type Fake struct {
	mu sync.Mutex

	// Scripted behavior.
	FailBase       bool
	FailParser     bool
	FailClassifier bool

	// Parser defaults served by ParserDefaults.
	DefaultLanguage string
	DefaultCountry  string

	// Expansion defaults served by ExpandDefaults.
	Defaults libpostal.NormalizeOptions

	// Parses maps an address to its canned components. NullParses marks
	// addresses for which the native call returns NULL.
	Parses     map[string][]Component
	NullParses map[string]bool

	// Expansions maps an address to its canned variants.
	Expansions map[string][]string

	// Calls records every native entry point in invocation order, e.g.
	// "setup", "setup_parser", "parse", "teardown".
	Calls []string

	ParseCalls  int
	ExpandCalls int

	ResponsesAllocated  int
	ResponsesReleased   int
	ExpansionsAllocated int
	ExpansionsReleased  int

	// Last options seen by Parse / Expand.
	LastParseOptions  libpostal.ParserOptions
	LastExpandOptions libpostal.NormalizeOptions
}

// New returns an empty Fake with succeeding setups.
func New() *Fake {
	return &Fake{
		Parses:     make(map[string][]Component),
		NullParses: make(map[string]bool),
		Expansions: make(map[string][]string),
	}
}

// Install registers a fresh Fake as the active native implementation and
// restores the previous one when the test finishes.
func Install(t *testing.T) *Fake {
	t.Helper()
	f := New()
	restore := libpostal.SetNative(f)
	t.Cleanup(restore)
	return f
}

func (f *Fake) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, call)
}

// NativeCallCount returns how many native entry points have been hit. Used
// to assert that invalid input is rejected before any native call.
func (f *Fake) NativeCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}

func (f *Fake) SetupBase() bool {
	f.record("setup")
	return !f.FailBase
}

func (f *Fake) SetupParser() bool {
	f.record("setup_parser")
	return !f.FailParser
}

func (f *Fake) SetupClassifier() bool {
	f.record("setup_language_classifier")
	return !f.FailClassifier
}

func (f *Fake) TeardownBase()       { f.record("teardown") }
func (f *Fake) TeardownParser()     { f.record("teardown_parser") }
func (f *Fake) TeardownClassifier() { f.record("teardown_language_classifier") }

func (f *Fake) ParserDefaults() libpostal.ParserOptions {
	f.record("get_address_parser_default_options")

	f.mu.Lock()
	defer f.mu.Unlock()
	return libpostal.ParserOptions{Language: f.DefaultLanguage, Country: f.DefaultCountry}
}

func (f *Fake) Parse(address string, o libpostal.ParserOptions) libpostal.ParseResponse {
	f.record("parse_address")

	f.mu.Lock()
	f.ParseCalls++
	f.LastParseOptions = o
	null := f.NullParses[address]
	components := f.Parses[address]
	if !null {
		f.ResponsesAllocated++
	}
	f.mu.Unlock()

	if null {
		return nil
	}
	return &fakeResponse{fake: f, components: components}
}

func (f *Fake) ExpandDefaults() libpostal.NormalizeOptions {
	f.record("get_default_options")

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Defaults
}

func (f *Fake) Expand(address string, o libpostal.NormalizeOptions) libpostal.Expansion {
	f.record("expand_address")

	f.mu.Lock()
	f.ExpandCalls++
	f.LastExpandOptions = o
	f.ExpansionsAllocated++
	variants := f.Expansions[address]
	f.mu.Unlock()

	return &fakeExpansion{fake: f, variants: variants}
}

type fakeResponse struct {
	fake       *Fake
	components []Component
	destroyed  bool
}

func (r *fakeResponse) Len() int {
	r.checkLive()
	return len(r.components)
}

func (r *fakeResponse) Label(i int) string {
	r.checkLive()
	return r.components[i].Label
}

func (r *fakeResponse) Component(i int) string {
	r.checkLive()
	return r.components[i].Token
}

func (r *fakeResponse) Destroy() {
	if r.destroyed {
		panic("postaltest: parse response destroyed twice")
	}
	r.destroyed = true

	r.fake.mu.Lock()
	r.fake.ResponsesReleased++
	r.fake.mu.Unlock()
}

func (r *fakeResponse) checkLive() {
	if r.destroyed {
		panic("postaltest: parse response used after destroy")
	}
}

type fakeExpansion struct {
	fake      *Fake
	variants  []string
	destroyed bool
}

func (e *fakeExpansion) Len() int {
	e.checkLive()
	return len(e.variants)
}

func (e *fakeExpansion) Variant(i int) string {
	e.checkLive()
	return e.variants[i]
}

func (e *fakeExpansion) Destroy() {
	if e.destroyed {
		panic("postaltest: expansion array destroyed twice")
	}
	e.destroyed = true

	e.fake.mu.Lock()
	e.fake.ExpansionsReleased++
	e.fake.mu.Unlock()
}

func (e *fakeExpansion) checkLive() {
	if e.destroyed {
		panic("postaltest: expansion array used after destroy")
	}
}
