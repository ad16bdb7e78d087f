package domain

import "time"

// Location represents a cached place or event row
type Location struct {
	ID           string     `json:"id"`
	PlaceID      string     `json:"place_id,omitempty"`
	SourceID     string     `json:"source_id,omitempty"`
	Name         string     `json:"name"`
	Address      string     `json:"address"`
	Category     string     `json:"type"`
	Description  string     `json:"description,omitempty"`
	ImageURL     string     `json:"image_url,omitempty"`
	PhotoRef     string     `json:"photo_reference,omitempty"`
	Lat          float64    `json:"lat"`
	Lng          float64    `json:"lng"`
	City         string     `json:"city,omitempty"`
	State        string     `json:"state,omitempty"`
	Rating       float64    `json:"rating"`
	RatingsTotal int        `json:"user_ratings_total,omitempty"`
	PriceLevel   int        `json:"price_level"`
	IsAdult      bool       `json:"is_adult"`
	IsActive     bool       `json:"is_active"`
	EventStart   *time.Time `json:"event_start_date,omitempty"`
	EventEnd     *time.Time `json:"event_end_date,omitempty"`
	TicketURL    string     `json:"ticket_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsEvent reports whether the location is an event, i.e. has a start date
func (l *Location) IsEvent() bool {
	return l.EventStart != nil && !l.EventStart.IsZero()
}

// HasPlaceholderCoords reports whether the location was stored without confirmed coordinates
func (l *Location) HasPlaceholderCoords() bool {
	return l.Lat == 0 && l.Lng == 0
}

// FeedItem is a location candidate shown in the discovery feed
type FeedItem struct {
	Location
	IsEvent   bool       `json:"is_event"`
	EventDate *time.Time `json:"event_date,omitempty"`
	Distance  float64    `json:"distance"` // km from the query point, computed at query time
}

// NewFeedItem builds a feed item from a stored location with the given distance
func NewFeedItem(loc Location, distance float64) FeedItem {
	item := FeedItem{Location: loc, Distance: distance}
	if loc.IsEvent() {
		item.IsEvent = true
		item.EventDate = loc.EventStart
	}
	return item
}

// Mode is a discovery search mode
type Mode string

// discovery modes
const (
	ModeNormal Mode = "normal"
	ModeSolo   Mode = "solo"
)

// ParseMode converts a string to Mode, empty and unknown values map to ModeNormal
func ParseMode(s string) Mode {
	if Mode(s) == ModeSolo {
		return ModeSolo
	}
	return ModeNormal
}
