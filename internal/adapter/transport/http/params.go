package http_server

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dayanaadylkhanova/sensor-dashboard/internal/entity"
	"github.com/go-chi/chi/v5"
)

const defaultIntervalMinutes = 1

// isoLayout matches JavaScript's Date.toISOString, which the dashboard client parses.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseDeviceID(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "deviceID")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid composite device id")
	}
	return id, nil
}

// parseSeriesQuery never fails: malformed start, end or interval fall back to defaults.
func parseSeriesQuery(r *http.Request, deviceID int64) entity.SeriesQuery {
	v := r.URL.Query()
	q := entity.SeriesQuery{
		DeviceID:        deviceID,
		Metric:          v.Get("type"),
		IntervalMinutes: defaultIntervalMinutes,
	}
	if t, err := parseISO(v.Get("start")); err == nil {
		q.Start = t
	}
	if t, err := parseISO(v.Get("end")); err == nil {
		q.End = t
	}
	if s := v.Get("intervalMinutes"); s != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && !math.IsNaN(f) {
			q.IntervalMinutes = f
		}
	}
	return q
}

// parseISO accepts RFC 3339 and the zone-less forms produced by HTML datetime inputs, read as UTC.
func parseISO(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty")
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.New("bad time")
}

// toSeriesPoint reports NaN and ±Inf as missing; JSON has no encoding for them.
func toSeriesPoint(p entity.GridPoint) entity.SeriesPoint {
	sp := entity.SeriesPoint{Timestamp: time.UnixMilli(p.TimestampMillis).UTC().Format(isoLayout)}
	if p.Valid && !math.IsNaN(p.Value) && !math.IsInf(p.Value, 0) {
		v := p.Value
		sp.Value = &v
	}
	return sp
}
