// File: services/search/airports.go
package search

import "strings"

// iataByCity maps city names to their primary airport code. Domestic routes
// dominate, with the common international destinations on top.
var iataByCity = map[string]string{
	"delhi":              "DEL",
	"new delhi":          "DEL",
	"mumbai":             "BOM",
	"bengaluru":          "BLR",
	"bangalore":          "BLR",
	"chennai":            "MAA",
	"kolkata":            "CCU",
	"hyderabad":          "HYD",
	"pune":               "PNQ",
	"ahmedabad":          "AMD",
	"goa":                "GOI",
	"jaipur":             "JAI",
	"lucknow":            "LKO",
	"kochi":              "COK",
	"cochin":             "COK",
	"thiruvananthapuram": "TRV",
	"trivandrum":         "TRV",
	"guwahati":           "GAU",
	"bhubaneswar":        "BBI",
	"indore":             "IDR",
	"nagpur":             "NAG",
	"chandigarh":         "IXC",
	"amritsar":           "ATQ",
	"varanasi":           "VNS",
	"srinagar":           "SXR",
	"leh":                "IXL",
	"patna":              "PAT",
	"ranchi":             "IXR",
	"raipur":             "RPR",
	"coimbatore":         "CJB",
	"madurai":            "IXM",
	"mangalore":          "IXE",
	"mangaluru":          "IXE",
	"visakhapatnam":      "VTZ",
	"vijayawada":         "VGA",
	"udaipur":            "UDR",
	"jodhpur":            "JDH",
	"dehradun":           "DED",
	"bagdogra":           "IXB",
	"siliguri":           "IXB",
	"port blair":         "IXZ",
	"agartala":           "IXA",
	"imphal":             "IMF",
	"dubai":              "DXB",
	"singapore":          "SIN",
	"bangkok":            "BKK",
	"kathmandu":          "KTM",
	"colombo":            "CMB",
	"london":             "LHR",
	"new york":           "JFK",
	"paris":              "CDG",
	"kuala lumpur":       "KUL",
	"bali":               "DPS",
	"denpasar":           "DPS",
	"male":               "MLE",
	"maldives":           "MLE",
	"tokyo":              "HND",
	"sydney":             "SYD",
	"toronto":            "YYZ",
	"san francisco":      "SFO",
	"frankfurt":          "FRA",
	"doha":               "DOH",
	"abu dhabi":          "AUH",
	"hong kong":          "HKG",
}

// resolveAirport returns the IATA code for a city. Inputs that already look
// like a code pass through unchanged.
func resolveAirport(city string) (string, bool) {
	city = strings.TrimSpace(city)
	if len(city) == 3 && strings.ToUpper(city) == city {
		return city, true
	}
	code, ok := iataByCity[strings.ToLower(city)]
	return code, ok
}
