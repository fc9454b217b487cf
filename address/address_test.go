package address_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kodemartin/postal/address"
	"github.com/kodemartin/postal/libpostal"
	"github.com/kodemartin/postal/libpostal/postaltest"
)

const (
	usAddress = "Black Alliance for Just Immigration 660 Nostrand Ave, Brooklyn, N.Y., 11216"
	gbAddress = "St Johns Centre, Rope Walk, Bedford, Bedfordshire, MK42 0XE, United Kingdom"
)

// Labeled output of the native parser for the two golden addresses.
var (
	usComponents = []postaltest.Component{
		{Label: "house", Token: "black alliance for just immigration"},
		{Label: "house_number", Token: "660"},
		{Label: "road", Token: "nostrand ave"},
		{Label: "city_district", Token: "brooklyn"},
		{Label: "state", Token: "n.y."},
		{Label: "postcode", Token: "11216"},
	}
	gbComponents = []postaltest.Component{
		{Label: "house", Token: "st johns centre"},
		{Label: "road", Token: "rope walk"},
		{Label: "city", Token: "bedford"},
		{Label: "state_district", Token: "bedfordshire"},
		{Label: "postcode", Token: "mk42 0xe"},
		{Label: "country", Token: "united kingdom"},
	}
)

func installParser(t *testing.T) *postaltest.Fake {
	t.Helper()
	f := postaltest.Install(t)
	f.Parses[usAddress] = usComponents
	f.Parses[gbAddress] = gbComponents

	token, err := libpostal.Setup(libpostal.Parser)
	require.NoError(t, err)
	t.Cleanup(token.Close)
	return f
}

func TestParseUS(t *testing.T) {
	installParser(t)

	got, err := address.Parse(usAddress)
	require.NoError(t, err)
	require.Equal(t, []address.LabeledToken{
		{Label: "house", Token: "black alliance for just immigration"},
		{Label: "house_number", Token: "660"},
		{Label: "road", Token: "nostrand ave"},
		{Label: "city_district", Token: "brooklyn"},
		{Label: "state", Token: "n.y."},
		{Label: "postcode", Token: "11216"},
	}, got, "pairs must keep the parser's emission order")
}

func TestParseGB(t *testing.T) {
	installParser(t)

	got, err := address.Parse(gbAddress)
	require.NoError(t, err)
	require.Equal(t, []address.LabeledToken{
		{Label: "house", Token: "st johns centre"},
		{Label: "road", Token: "rope walk"},
		{Label: "city", Token: "bedford"},
		{Label: "state_district", Token: "bedfordshire"},
		{Label: "postcode", Token: "mk42 0xe"},
		{Label: "country", Token: "united kingdom"},
	}, got)
}

func TestParseWithOptionsPassesHints(t *testing.T) {
	f := installParser(t)

	_, err := address.ParseWithOptions(gbAddress, address.Options{Language: "en", Country: "gb"})
	require.NoError(t, err)
	require.Equal(t, "en", f.LastParseOptions.Language)
	require.Equal(t, "gb", f.LastParseOptions.Country)
}

func TestParseRejectsEmbeddedNul(t *testing.T) {
	installParser(t)

	_, err := address.Parse("660 Nostrand\x00Ave")
	var invalid *libpostal.InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestFromTokensUS(t *testing.T) {
	installParser(t)

	pairs, err := address.Parse(usAddress)
	require.NoError(t, err)

	parsed := address.FromTokens(pairs)
	require.Equal(t, "660", parsed.HouseNumber)
	require.Equal(t, "11216", parsed.Postcode)
	require.Equal(t, "black alliance for just immigration", parsed.House)
	require.Equal(t, "nostrand ave", parsed.Road)
	require.Equal(t, "brooklyn", parsed.CityDistrict)
	require.Equal(t, "n.y.", parsed.State)

	// Every label absent from the parse stays unset.
	require.Empty(t, parsed.City)
	require.Empty(t, parsed.Country)
	require.Empty(t, parsed.Unit)
	require.Empty(t, parsed.POBox)
	require.Empty(t, parsed.Telephone)
}

func TestFromTokensLastWriterWins(t *testing.T) {
	parsed := address.FromTokens([]address.LabeledToken{
		{Label: "road", Token: "first st"},
		{Label: "city", Token: "springfield"},
		{Label: "road", Token: "second st"},
	})
	require.Equal(t, "second st", parsed.Road)
	require.Equal(t, "springfield", parsed.City)
}

func TestFromTokensIgnoresUnknownLabels(t *testing.T) {
	parsed := address.FromTokens([]address.LabeledToken{
		{Label: "galaxy", Token: "milky way"},
		{Label: "phone", Token: "555-0100"},
	})
	require.Equal(t, "555-0100", parsed.Telephone)
	require.Equal(t, address.ParsedAddress{Telephone: "555-0100"}, parsed)
}
