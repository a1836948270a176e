package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

type ShotClass string

const (
	WideShot    ShotClass = "WS"
	MediumShot  ShotClass = "MS"
	CloseUp     ShotClass = "CU"
	ShotUnknown ShotClass = NotAvailable
)

type TimeOfDay string

const (
	Morning     TimeOfDay = "AM"
	Afternoon   TimeOfDay = "PM"
	Night       TimeOfDay = "NT"
	TimeUnknown TimeOfDay = NotAvailable
)

const (
	wideShotBelow  = 35.0
	closeUpAbove   = 85.0
	morningStarts  = 6
	afternoonStart = 12
	nightStarts    = 18
)

// CreationTimeLayout is the only timestamp shape ffprobe is trusted to emit.
const CreationTimeLayout = "2006-01-02T15:04:05.000000Z"

// ClassifyShot maps a focal length such as "50.0 mm" or "24mm" to a shot
// class. The last two characters are the unit and are dropped before parsing.
func ClassifyShot(focalLength string) ShotClass {
	if len(focalLength) < 3 {
		return ShotUnknown
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(focalLength[:len(focalLength)-2]), 64)
	if err != nil || math.IsNaN(value) {
		return ShotUnknown
	}
	switch {
	case value < wideShotBelow:
		return WideShot
	case value <= closeUpAbove:
		return MediumShot
	default:
		return CloseUp
	}
}

// ClassifyTimeOfDay buckets the UTC hour of a creation timestamp. Timestamps
// that do not match CreationTimeLayout exactly are TimeUnknown.
func ClassifyTimeOfDay(timestamp string) TimeOfDay {
	parsed, err := time.Parse(CreationTimeLayout, timestamp)
	if err != nil {
		return TimeUnknown
	}
	hour := parsed.Hour()
	switch {
	case hour >= morningStarts && hour < afternoonStart:
		return Morning
	case hour >= afternoonStart && hour < nightStarts:
		return Afternoon
	default:
		return Night
	}
}
