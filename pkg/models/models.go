// Package models holds the value types shared by the bounding box and
// Morton code packages.
package models

import (
	"errors"
	"fmt"
)

const (
	MinLat = -90.0
	MaxLat = 90.0
	MinLon = -180.0
	MaxLon = 180.0
)

// ErrOutOfRange is returned when a latitude or longitude falls outside
// [-90, 90] or [-180, 180].
var ErrOutOfRange = errors.New("coordinate out of range")

// Location represents a geographic location with latitude and longitude in degrees
type Location struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Validate reports ErrOutOfRange when the location is outside the valid
// latitude/longitude ranges. Boundary values are valid. NaN is not.
func (l Location) Validate() error {
	if !(l.Lat >= MinLat && l.Lat <= MaxLat) {
		return fmt.Errorf("latitude %v: %w", l.Lat, ErrOutOfRange)
	}
	if !(l.Lon >= MinLon && l.Lon <= MaxLon) {
		return fmt.Errorf("longitude %v: %w", l.Lon, ErrOutOfRange)
	}
	return nil
}

// BoundingBox represents a rectangular area given by its southern and
// northern latitudes and its western and eastern longitudes.
//
// South is never greater than North. West may be greater than East, in
// which case the box spans the ±180° meridian.
type BoundingBox struct {
	South float64 `json:"south" yaml:"south"`
	West  float64 `json:"west" yaml:"west"`
	North float64 `json:"north" yaml:"north"`
	East  float64 `json:"east" yaml:"east"`
}

// SouthWest returns the south-west corner of the box
func (b BoundingBox) SouthWest() Location {
	return Location{Lat: b.South, Lon: b.West}
}

// NorthEast returns the north-east corner of the box
func (b BoundingBox) NorthEast() Location {
	return Location{Lat: b.North, Lon: b.East}
}

// CrossesAntimeridian reports whether the box wraps around ±180° longitude.
func (b BoundingBox) CrossesAntimeridian() bool {
	return b.West > b.East
}

// Split returns the box itself, or for a box crossing the antimeridian,
// its western part [West, 180] followed by its eastern part [-180, East].
func (b BoundingBox) Split() []BoundingBox {
	if !b.CrossesAntimeridian() {
		return []BoundingBox{b}
	}
	return []BoundingBox{
		{South: b.South, West: b.West, North: b.North, East: MaxLon},
		{South: b.South, West: MinLon, North: b.North, East: b.East},
	}
}
