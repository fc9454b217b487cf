package expand_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kodemartin/postal/expand"
	"github.com/kodemartin/postal/libpostal"
	"github.com/kodemartin/postal/libpostal/postaltest"
)

func installExpander(t *testing.T) *postaltest.Fake {
	t.Helper()
	f := postaltest.Install(t)
	f.Expansions["123 Main St. #2f"] = []string{
		"123 main street number 2f",
		"123 main street number 2 f",
		"123 main saint number 2f",
	}
	f.Expansions["Marktstrasse"] = []string{
		"markt strasse",
		"marktstrasse",
	}

	token, err := libpostal.Setup(libpostal.Expander)
	require.NoError(t, err)
	t.Cleanup(token.Close)
	return f
}

func TestExpandEnglish(t *testing.T) {
	f := installExpander(t)

	variants, err := expand.Expand("123 Main St. #2f", "en")
	require.NoError(t, err)
	require.Contains(t, variants, "123 main street number 2f")
	require.Equal(t, []string{"en"}, f.LastExpandOptions.Languages)
}

func TestExpandGerman(t *testing.T) {
	f := installExpander(t)

	variants, err := expand.Expand("Marktstrasse", "de")
	require.NoError(t, err)
	require.Contains(t, variants, "markt strasse")
	require.Equal(t, []string{"de"}, f.LastExpandOptions.Languages)
}

// Language overrides start from the native defaults; every other field keeps
// its default value.
func TestExpandLanguagesKeepDefaultToggles(t *testing.T) {
	f := installExpander(t)
	f.Defaults = libpostal.NormalizeOptions{
		AddressComponents: uint16(expand.ComponentStreet | expand.ComponentHouseNumber),
		Lowercase:         true,
		Transliterate:     true,
	}

	_, err := expand.Expand("Marktstrasse", "de")
	require.NoError(t, err)
	require.True(t, f.LastExpandOptions.Lowercase)
	require.True(t, f.LastExpandOptions.Transliterate)
	require.Equal(t, f.Defaults.AddressComponents, f.LastExpandOptions.AddressComponents)
}

func TestExpandWithOptions(t *testing.T) {
	f := installExpander(t)

	o, err := expand.DefaultOptions()
	require.NoError(t, err)
	o.Languages = []string{"en"}
	o.Components = o.Components.With(expand.ComponentPostalCode)
	o.DeleteFinalPeriods = true

	_, err = expand.ExpandWithOptions("123 Main St. #2f", o)
	require.NoError(t, err)
	require.True(t, f.LastExpandOptions.DeleteFinalPeriods)
	require.True(t, f.LastExpandOptions.AddressComponents&uint16(expand.ComponentPostalCode) != 0)
}

func TestExpandRejectsEmbeddedNul(t *testing.T) {
	f := postaltest.Install(t)

	_, err := expand.Expand("Markt\x00strasse")
	var invalid *libpostal.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	require.Zero(t, f.NativeCallCount())
}

// A NUL-bearing language code is invalid input, so it must be rejected
// before the defaults fetch reaches the native library.
func TestExpandRejectsEmbeddedNulLanguage(t *testing.T) {
	f := installExpander(t)
	calls := f.NativeCallCount()

	_, err := expand.Expand("Marktstrasse", "d\x00e")
	var invalid *libpostal.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, calls, f.NativeCallCount(), "no native call for invalid input")
}

// Input validation does not depend on lifecycle state: even without a token,
// a NUL-bearing language reports InvalidInputError, not SetupError.
func TestExpandNulLanguageWithoutToken(t *testing.T) {
	f := postaltest.Install(t)

	_, err := expand.Expand("Marktstrasse", "d\x00e")
	var invalid *libpostal.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	require.Zero(t, f.NativeCallCount())
}

func TestCacheServesRepeats(t *testing.T) {
	f := installExpander(t)

	cache, err := expand.NewCache(16)
	require.NoError(t, err)

	o, err := expand.DefaultOptions()
	require.NoError(t, err)
	o.Languages = []string{"de"}

	first, err := cache.Expand("Marktstrasse", o)
	require.NoError(t, err)
	calls := f.ExpandCalls

	second, err := cache.Expand("Marktstrasse", o)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, calls, f.ExpandCalls, "repeat must be served from cache")

	// The cached copy is isolated from caller mutation.
	second[0] = "mutated"
	third, err := cache.Expand("Marktstrasse", o)
	require.NoError(t, err)
	require.Equal(t, first, third)
}

func TestCacheMissesOnDifferentOptions(t *testing.T) {
	f := installExpander(t)

	cache, err := expand.NewCache(16)
	require.NoError(t, err)

	o, err := expand.DefaultOptions()
	require.NoError(t, err)

	_, err = cache.Expand("Marktstrasse", o)
	require.NoError(t, err)

	changed := o
	changed.DeleteApostrophes = !o.DeleteApostrophes
	_, err = cache.Expand("Marktstrasse", changed)
	require.NoError(t, err)
	require.Equal(t, 2, f.ExpandCalls)
	require.Equal(t, 2, cache.Len())
}

func TestCacheErrorsAreNotCached(t *testing.T) {
	postaltest.Install(t)

	cache, err := expand.NewCache(4)
	require.NoError(t, err)

	// No lifecycle token: expansion fails with a SetupError and nothing is
	// cached.
	_, err = cache.Expand("Marktstrasse", expand.Options{})
	var setupErr *libpostal.SetupError
	require.ErrorAs(t, err, &setupErr)
	require.Zero(t, cache.Len())
}
