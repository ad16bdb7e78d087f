package domain

import "time"

// NearbyQuery describes a rectangular pre-filter around a point
type NearbyQuery struct {
	Lat      float64
	Lng      float64
	LatDelta float64
	LngDelta float64
	Limit    int
}

// PlaceSearch is a request to populate places around a point
type PlaceSearch struct {
	Lat     float64
	Lng     float64
	Radius  float64 // meters
	Keyword string
	Mode    Mode
}

// PlaceSearchResult summarizes a place population run
type PlaceSearchResult struct {
	Found  int
	Saved  int
	Errors []string
}

// EventSearch is a request to discover events for a city
type EventSearch struct {
	Lat   float64
	Lng   float64
	City  string
	State string
}

// EventSearchResult summarizes an event spider run
type EventSearchResult struct {
	Count   int
	Saved   int
	Updated int
	Errors  []string
}

// SearchLog records a single external nearby search
type SearchLog struct {
	Lat        float64
	Lng        float64
	Radius     float64
	SearchType string
	CreatedAt  time.Time
}
