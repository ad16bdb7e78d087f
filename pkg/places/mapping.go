package places

import (
	"regexp"
	"slices"
	"strings"

	"github.com/luvbee/discovery/pkg/domain"
)

// unknownArea is stored when city or state can't be derived from the address
const unknownArea = "Desconhecido"

var stateCodeRe = regexp.MustCompile(`\b[A-Z]{2}\b`)

// categoryOrder maps place types to categories, the first type present wins
var categoryOrder = []struct{ placeType, category string }{
	{"night_club", "club"},
	{"bar", "bar"},
	{"restaurant", "restaurant"},
	{"cafe", "cafe"},
	{"art_gallery", "culture"},
	{"park", "park"},
}

// toLocation converts a search result into a location row
func toLocation(p Place) domain.Location {
	name := p.DisplayName.Text
	if name == "" {
		name = unknownArea
	}
	loc := domain.Location{
		PlaceID:      p.ID,
		Name:         name,
		Address:      p.FormattedAddress,
		Category:     category(p.Types),
		Description:  p.EditorialSummary.Text,
		Lat:          p.Location.Latitude,
		Lng:          p.Location.Longitude,
		City:         cityFromAddress(p.FormattedAddress),
		State:        stateFromAddress(p.FormattedAddress),
		Rating:       p.Rating,
		RatingsTotal: p.UserRatingCount,
		PriceLevel:   priceLevel(p.PriceLevel),
		IsAdult:      isAdult(p.Types),
		IsActive:     true,
	}
	if len(p.Photos) > 0 {
		loc.PhotoRef = p.Photos[0].Name
	}
	return loc
}

func priceLevel(level string) int {
	switch level {
	case "PRICE_LEVEL_INEXPENSIVE":
		return 1
	case "PRICE_LEVEL_MODERATE":
		return 2
	case "PRICE_LEVEL_EXPENSIVE":
		return 3
	case "PRICE_LEVEL_VERY_EXPENSIVE":
		return 4
	default: // PRICE_LEVEL_FREE, unspecified
		return 0
	}
}

func category(types []string) string {
	for _, c := range categoryOrder {
		if slices.Contains(types, c.placeType) {
			return c.category
		}
	}
	return "bar"
}

func isAdult(types []string) bool {
	return slices.Contains(types, "night_club") || slices.Contains(types, "adult_entertainment")
}

// cityFromAddress takes the second to last comma separated part, "Rua X, 123 - Bairro, Cidade - UF, Brasil"
func cityFromAddress(address string) string {
	parts := strings.Split(address, ",")
	if address == "" || len(parts) < 2 {
		return unknownArea
	}
	cityState := strings.TrimSpace(parts[len(parts)-2])
	if city, _, found := strings.Cut(cityState, "-"); found {
		return strings.TrimSpace(city)
	}
	return cityState
}

// stateFromAddress returns the first two-letter uppercase token of the address
func stateFromAddress(address string) string {
	if m := stateCodeRe.FindString(address); m != "" {
		return m
	}
	return unknownArea
}
