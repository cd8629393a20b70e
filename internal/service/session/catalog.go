package session

import "github.com/datafield/asset-library-backend/internal/entity"

// Reference lists offered by the collection form. Values are stable
// machine identifiers; labels are what the form displays.

var sectors = []entity.OptionPair{
	{Value: "agriculture", Label: "Agriculture"},
	{Value: "economic-development", Label: "Economic Development"},
	{Value: "education", Label: "Education"},
	{Value: "environment", Label: "Environment"},
	{Value: "governance", Label: "Governance and Civil Society"},
	{Value: "health", Label: "Health"},
	{Value: "humanitarian", Label: "Humanitarian Response"},
	{Value: "nutrition", Label: "Nutrition"},
	{Value: "security", Label: "Peace and Security"},
	{Value: "research", Label: "Research and Evaluation"},
	{Value: "water-sanitation", Label: "Water, Sanitation and Hygiene"},
	{Value: "other", Label: "Other"},
}

var countries = []entity.OptionPair{
	{Value: "AFG", Label: "Afghanistan"},
	{Value: "BGD", Label: "Bangladesh"},
	{Value: "BRA", Label: "Brazil"},
	{Value: "KHM", Label: "Cambodia"},
	{Value: "CAN", Label: "Canada"},
	{Value: "COL", Label: "Colombia"},
	{Value: "COD", Label: "Democratic Republic of the Congo"},
	{Value: "ETH", Label: "Ethiopia"},
	{Value: "FRA", Label: "France"},
	{Value: "DEU", Label: "Germany"},
	{Value: "GHA", Label: "Ghana"},
	{Value: "HTI", Label: "Haiti"},
	{Value: "IND", Label: "India"},
	{Value: "IDN", Label: "Indonesia"},
	{Value: "IRQ", Label: "Iraq"},
	{Value: "JOR", Label: "Jordan"},
	{Value: "KEN", Label: "Kenya"},
	{Value: "LBN", Label: "Lebanon"},
	{Value: "LBR", Label: "Liberia"},
	{Value: "MWI", Label: "Malawi"},
	{Value: "MLI", Label: "Mali"},
	{Value: "MEX", Label: "Mexico"},
	{Value: "MOZ", Label: "Mozambique"},
	{Value: "MMR", Label: "Myanmar"},
	{Value: "NPL", Label: "Nepal"},
	{Value: "NER", Label: "Niger"},
	{Value: "NGA", Label: "Nigeria"},
	{Value: "PAK", Label: "Pakistan"},
	{Value: "PHL", Label: "Philippines"},
	{Value: "RWA", Label: "Rwanda"},
	{Value: "SEN", Label: "Senegal"},
	{Value: "SLE", Label: "Sierra Leone"},
	{Value: "SOM", Label: "Somalia"},
	{Value: "SSD", Label: "South Sudan"},
	{Value: "LKA", Label: "Sri Lanka"},
	{Value: "SDN", Label: "Sudan"},
	{Value: "SYR", Label: "Syrian Arab Republic"},
	{Value: "TZA", Label: "Tanzania"},
	{Value: "TUR", Label: "Türkiye"},
	{Value: "UGA", Label: "Uganda"},
	{Value: "UKR", Label: "Ukraine"},
	{Value: "GBR", Label: "United Kingdom"},
	{Value: "USA", Label: "United States"},
	{Value: "VNM", Label: "Viet Nam"},
	{Value: "YEM", Label: "Yemen"},
	{Value: "ZMB", Label: "Zambia"},
	{Value: "ZWE", Label: "Zimbabwe"},
}

// Sectors returns a copy so callers cannot reorder the catalog.
func Sectors() []entity.OptionPair {
	out := make([]entity.OptionPair, len(sectors))
	copy(out, sectors)
	return out
}

func Countries() []entity.OptionPair {
	out := make([]entity.OptionPair, len(countries))
	copy(out, countries)
	return out
}
