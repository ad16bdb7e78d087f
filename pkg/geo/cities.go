package geo

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Area is a coarse city/state pair, both as lowercase slugs (e.g. "sao-paulo", "sp")
type Area struct {
	City  string
	State string
}

// DefaultArea is returned by ReverseGeocode when no metro bounds match
var DefaultArea = Area{City: "sao-paulo", State: "sp"}

// bounds is the approximate bounding box of a known metro area
type bounds struct {
	latMin, latMax, lngMin, lngMax float64
}

func (b bounds) contains(lat, lng float64) bool {
	return lat >= b.latMin && lat <= b.latMax && lng >= b.lngMin && lng <= b.lngMax
}

// metro pairs an area with the bounds used to reverse geocode into it
type metro struct {
	area Area
	bounds
}

// metros is ordered, the first match wins. Sao Paulo is listed before Campinas, they overlap in -23.1..-23.0.
var metros = []metro{
	{Area{"porto-alegre", "rs"}, bounds{-30.3, -29.9, -51.4, -51.0}},
	{Area{"curitiba", "pr"}, bounds{-25.7, -25.2, -49.5, -49.1}},
	{Area{"florianopolis", "sc"}, bounds{-27.8, -27.4, -48.7, -48.3}},
	{Area{"sao-paulo", "sp"}, bounds{-24.0, -23.0, -47.2, -46.0}},
	{Area{"rio-de-janeiro", "rj"}, bounds{-23.5, -22.5, -44.0, -43.0}},
	{Area{"belo-horizonte", "mg"}, bounds{-20.5, -19.5, -44.5, -43.5}},
	{Area{"vitoria", "es"}, bounds{-20.5, -20.2, -40.5, -40.2}},
	{Area{"campinas", "sp"}, bounds{-23.1, -22.7, -47.2, -46.9}},
	{Area{"brasilia", "df"}, bounds{-16.0, -15.5, -48.2, -47.7}},
	{Area{"goiania", "go"}, bounds{-16.9, -16.5, -49.5, -49.1}},
	{Area{"cuiaba", "mt"}, bounds{-15.8, -15.4, -56.2, -55.8}},
	{Area{"campo-grande", "ms"}, bounds{-20.6, -20.3, -54.7, -54.4}},
	{Area{"salvador", "ba"}, bounds{-13.1, -12.8, -38.6, -38.3}},
	{Area{"recife", "pe"}, bounds{-8.2, -7.9, -35.0, -34.7}},
	{Area{"fortaleza", "ce"}, bounds{-3.9, -3.6, -38.7, -38.4}},
	{Area{"natal", "rn"}, bounds{-5.9, -5.7, -35.3, -35.1}},
	{Area{"joao-pessoa", "pb"}, bounds{-7.2, -7.0, -34.9, -34.7}},
	{Area{"maceio", "al"}, bounds{-9.7, -9.5, -35.8, -35.6}},
	{Area{"aracaju", "se"}, bounds{-11.0, -10.8, -37.1, -36.9}},
	{Area{"teresina", "pi"}, bounds{-5.2, -4.9, -42.9, -42.6}},
	{Area{"sao-luis", "ma"}, bounds{-2.6, -2.4, -44.3, -44.1}},
	{Area{"manaus", "am"}, bounds{-3.2, -2.9, -60.1, -59.8}},
	{Area{"belem", "pa"}, bounds{-1.5, -1.3, -48.5, -48.3}},
	{Area{"porto-velho", "ro"}, bounds{-8.8, -8.6, -64.0, -63.7}},
}

// cityBounds is used by InCity, Sao Paulo and Curitiba are narrower here than in metros
var cityBounds = func() map[string]bounds {
	res := make(map[string]bounds, len(metros))
	for _, m := range metros {
		res[m.area.City] = m.bounds
	}
	res["sao-paulo"] = bounds{-24.0, -23.0, -47.0, -46.0}
	res["curitiba"] = bounds{-25.6, -25.2, -49.5, -49.1}
	return res
}()

// Point is a latitude/longitude pair
type Point struct {
	Lat float64
	Lng float64
}

// cityCenters holds approximate centers used when an event has no coordinates
var cityCenters = map[string]Point{
	"sao-paulo":      {-23.5505, -46.6333},
	"rio-de-janeiro": {-22.9068, -43.1729},
	"belo-horizonte": {-19.9167, -43.9345},
	"brasilia":       {-15.7801, -47.9292},
	"salvador":       {-12.9714, -38.5014},
	"fortaleza":      {-3.7172, -38.5434},
	"curitiba":       {-25.4284, -49.2733},
	"recife":         {-8.0476, -34.8770},
	"porto-alegre":   {-30.0346, -51.2177},
	"goiania":        {-16.6869, -49.2648},
	"campinas":       {-22.9056, -47.0608},
	"sao-luis":       {-2.5297, -44.3028},
	"teresina":       {-5.0892, -42.8019},
	"natal":          {-5.7945, -35.2110},
	"campo-grande":   {-20.4697, -54.6201},
	"joao-pessoa":    {-7.1195, -34.8450},
	"aracaju":        {-10.9472, -37.0731},
	"cuiaba":         {-15.6014, -56.0979},
	"florianopolis":  {-27.5954, -48.5480},
	"vitoria":        {-20.3155, -40.3128},
	"belem":          {-1.4558, -48.4902},
	"macapa":         {0.0349, -51.0694},
	"porto-velho":    {-8.7608, -63.9020},
	"boa-vista":      {2.8235, -60.6758},
	"palmas":         {-10.2491, -48.3243},
	"manaus":         {-3.1190, -60.0217},
	"rio-branco":     {-9.9754, -67.8249},
}

// ReverseGeocode maps a point to a known metro area, falling back to DefaultArea
func ReverseGeocode(lat, lng float64) Area {
	for _, m := range metros {
		if m.contains(lat, lng) {
			return m.area
		}
	}
	return DefaultArea
}

// InCity reports whether the point lies within the bounds of the named city.
// Cities without known bounds never match.
func InCity(lat, lng float64, city string) bool {
	b, ok := cityBounds[Slug(city)]
	return ok && b.contains(lat, lng)
}

// CityCenter returns the approximate center of the named city, Sao Paulo for unknown cities
func CityCenter(city string) Point {
	if p, ok := cityCenters[Slug(city)]; ok {
		return p
	}
	return cityCenters[DefaultArea.City]
}

// Slug lowercases s, strips diacritics and replaces spaces with dashes ("São Paulo" -> "sao-paulo")
func Slug(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		folded = strings.ToLower(strings.TrimSpace(s))
	}
	return strings.ReplaceAll(folded, " ", "-")
}
