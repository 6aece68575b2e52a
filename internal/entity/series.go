package entity

import "time"

// Sample is one stored measurement, timestamp in unix milliseconds.
type Sample struct {
	TimestampMillis int64
	Value           float64
}

// TimeRange is inclusive on both ends.
type TimeRange struct {
	StartMillis int64
	EndMillis   int64
}

// GridPoint is one tick of a resampled series. Valid=false marks a tick with no data.
type GridPoint struct {
	TimestampMillis int64
	Value           float64
	Valid           bool
}

// SeriesPoint is the wire shape of a GridPoint; a nil Value encodes as null.
type SeriesPoint struct {
	Timestamp string   `json:"timestamp"`
	Value     *float64 `json:"value"`
}

// SeriesQuery describes a request for a resampled metric of a composite device.
// Zero Start/End mean "use the default window".
type SeriesQuery struct {
	DeviceID        int64
	Metric          string
	Start           time.Time
	End             time.Time
	IntervalMinutes float64
}

// RangeOf converts wall-clock bounds to a millisecond range. Sub-millisecond precision is dropped.
func RangeOf(from, to time.Time) TimeRange {
	return TimeRange{StartMillis: from.UnixMilli(), EndMillis: to.UnixMilli()}
}

// From returns the range start in UTC.
func (r TimeRange) From() time.Time { return time.UnixMilli(r.StartMillis).UTC() }

// To returns the range end in UTC.
func (r TimeRange) To() time.Time { return time.UnixMilli(r.EndMillis).UTC() }
