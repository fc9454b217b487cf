package address

// ParsedAddress is a named-field projection of a labeled-token sequence. The
// zero value of a field means the label was absent from the parse. The
// native parser does not guarantee label uniqueness; when a label repeats,
// the last occurrence wins.
type ParsedAddress struct {
	House         string
	HouseNumber   string
	POBox         string
	Building      string
	Entrance      string
	Staircase     string
	Level         string
	Unit          string
	Road          string
	MetroStation  string
	Suburb        string
	CityDistrict  string
	City          string
	StateDistrict string
	Island        string
	State         string
	Postcode      string
	CountryRegion string
	Country       string
	WorldRegion   string
	Website       string
	Telephone     string
}

// FromTokens folds labeled tokens into a ParsedAddress. Unknown labels are
// ignored; repeated labels overwrite (last writer wins).
func FromTokens(tokens []LabeledToken) ParsedAddress {
	var p ParsedAddress
	for _, lt := range tokens {
		switch lt.Label {
		case "house":
			p.House = lt.Token
		case "house_number":
			p.HouseNumber = lt.Token
		case "po_box":
			p.POBox = lt.Token
		case "building":
			p.Building = lt.Token
		case "entrance":
			p.Entrance = lt.Token
		case "staircase":
			p.Staircase = lt.Token
		case "level":
			p.Level = lt.Token
		case "unit":
			p.Unit = lt.Token
		case "road":
			p.Road = lt.Token
		case "metro_station":
			p.MetroStation = lt.Token
		case "suburb":
			p.Suburb = lt.Token
		case "city_district":
			p.CityDistrict = lt.Token
		case "city":
			p.City = lt.Token
		case "state_district":
			p.StateDistrict = lt.Token
		case "island":
			p.Island = lt.Token
		case "state":
			p.State = lt.Token
		case "postcode":
			p.Postcode = lt.Token
		case "country_region":
			p.CountryRegion = lt.Token
		case "country":
			p.Country = lt.Token
		case "world_region":
			p.WorldRegion = lt.Token
		case "website":
			p.Website = lt.Token
		case "phone":
			p.Telephone = lt.Token
		}
	}
	return p
}
