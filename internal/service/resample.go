package service

import (
	"cmp"
	"math"
	"slices"

	"github.com/dayanaadylkhanova/sensor-dashboard/internal/entity"
)

const (
	MinIntervalMillis int64 = 60_000
	MaxRangeMillis    int64 = 365 * 24 * 60 * 60 * 1000
)

// ClampInterval raises intervals below one minute to the one-minute floor.
func ClampInterval(intervalMillis int64) int64 {
	if intervalMillis < MinIntervalMillis {
		return MinIntervalMillis
	}
	return intervalMillis
}

// ClampRange pulls the start forward so the range spans at most one year. The end is never moved.
func ClampRange(r entity.TimeRange) entity.TimeRange {
	// end-MaxRangeMillis would underflow, and such a range can't exceed the cap anyway
	if r.EndMillis < math.MinInt64+MaxRangeMillis {
		return r
	}
	if r.StartMillis < r.EndMillis-MaxRangeMillis {
		r.StartMillis = r.EndMillis - MaxRangeMillis
	}
	return r
}

// Resample snaps raw samples onto the grid start, start+step, ..., <= end.
//
// Each tick takes the value of the first not yet consumed sample lying strictly
// closer than step/2; a matched sample is consumed and never reused. Ticks
// without such a sample are emitted with Valid=false. Samples are expected in
// ascending timestamp order; unsorted input is sorted on a copy. An inverted
// range yields an empty grid.
func Resample(r entity.TimeRange, intervalMillis int64, samples []entity.Sample) []entity.GridPoint {
	step := ClampInterval(intervalMillis)
	r = ClampRange(r)
	if r.EndMillis < r.StartMillis {
		return []entity.GridPoint{}
	}

	if !slices.IsSortedFunc(samples, bySampleTime) {
		samples = slices.Clone(samples)
		slices.SortStableFunc(samples, bySampleTime)
	}

	n := (r.EndMillis-r.StartMillis)/step + 1
	out := make([]entity.GridPoint, 0, n)

	half := uint64(step) / 2
	i := 0
	for k := int64(0); k < n; k++ {
		t := r.StartMillis + k*step

		for i < len(samples) && samples[i].TimestampMillis < t && distance(samples[i].TimestampMillis, t) > half {
			i++
		}

		if i < len(samples) && within(distance(samples[i].TimestampMillis, t), step) {
			out = append(out, entity.GridPoint{TimestampMillis: t, Value: samples[i].Value, Valid: true})
			i++
			continue
		}
		out = append(out, entity.GridPoint{TimestampMillis: t})
	}
	return out
}

func bySampleTime(a, b entity.Sample) int {
	return cmp.Compare(a.TimestampMillis, b.TimestampMillis)
}

func distance(a, b int64) uint64 {
	if a >= b {
		return uint64(a) - uint64(b)
	}
	return uint64(b) - uint64(a)
}

// within reports 2*d < step without overflowing.
func within(d uint64, step int64) bool {
	return d < (uint64(step)+1)/2
}
