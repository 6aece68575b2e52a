package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/dayanaadylkhanova/sensor-dashboard/internal/entity"
	"go.uber.org/zap"
)

const DefaultWindow = 24 * time.Hour

// SeriesObserver receives the size of every produced grid and how many ticks carry data.
type SeriesObserver interface {
	ObserveSeries(points, matched int)
}

type DashboardOption func(*Dashboard)

func WithClock(now func() time.Time) DashboardOption {
	return func(d *Dashboard) { d.now = now }
}

func WithDefaultWindow(w time.Duration) DashboardOption {
	return func(d *Dashboard) {
		if w > 0 {
			d.window = w
		}
	}
}

func WithThresholds(th map[string]entity.Threshold) DashboardOption {
	return func(d *Dashboard) { d.thresholds = th }
}

func WithSeriesObserver(o SeriesObserver) DashboardOption {
	return func(d *Dashboard) { d.observer = o }
}

// Dashboard serves the read side of the API: catalog browsing with alert flags and
// resampled measurement series.
type Dashboard struct {
	log        *zap.Logger
	catalog    CatalogReader
	samples    MeasurementReader
	thresholds map[string]entity.Threshold
	window     time.Duration
	now        func() time.Time
	observer   SeriesObserver
}

func NewDashboard(log *zap.Logger, catalog CatalogReader, samples MeasurementReader, opts ...DashboardOption) *Dashboard {
	d := &Dashboard{
		log:        log,
		catalog:    catalog,
		samples:    samples,
		thresholds: DefaultThresholds(),
		window:     DefaultWindow,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dashboard) Stations(ctx context.Context) ([]entity.Station, error) {
	stations, err := d.catalog.ListStations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stations: %w", err)
	}
	alerts := d.alerts(ctx)
	for i := range stations {
		stations[i].HasAlert = alerts.stations[stations[i].Name]
	}
	return stations, nil
}

func (d *Dashboard) StationDevices(ctx context.Context, stationName string) ([]entity.Device, error) {
	if _, err := d.catalog.StationByName(ctx, stationName); err != nil {
		return nil, fmt.Errorf("station %q: %w", stationName, err)
	}
	devices, err := d.catalog.ListDevices(ctx, stationName)
	if err != nil {
		return nil, fmt.Errorf("list devices of %q: %w", stationName, err)
	}
	alerts := d.alerts(ctx)
	for i := range devices {
		devices[i].HasAlert = alerts.devices[devices[i].ID]
	}
	return devices, nil
}

func (d *Dashboard) Device(ctx context.Context, id int64) (entity.DeviceDetails, error) {
	dev, err := d.catalog.DeviceByID(ctx, id)
	if err != nil {
		return entity.DeviceDetails{}, fmt.Errorf("device %d: %w", id, err)
	}
	return entity.DeviceDetails{
		ID:          dev.ID,
		Name:        dev.Name,
		Location:    dev.Location,
		Description: dev.Description,
	}, nil
}

func (d *Dashboard) Thresholds() map[string]entity.Threshold {
	out := make(map[string]entity.Threshold, len(d.thresholds))
	for k, v := range d.thresholds {
		out[k] = v
	}
	return out
}

// Series resolves the metric of a device to its sensor and resamples the sensor's
// measurements onto the requested grid. A metric that can't be resolved yields an
// empty series, not an error.
func (d *Dashboard) Series(ctx context.Context, q entity.SeriesQuery) ([]entity.GridPoint, error) {
	unit, ok := UnitOf(q.Metric)
	if !ok {
		return []entity.GridPoint{}, nil
	}

	rng := d.resolveRange(q.Start, q.End)

	sensor, err := d.catalog.SensorByUnit(ctx, q.DeviceID, unit)
	if errors.Is(err, ErrNotFound) {
		return []entity.GridPoint{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve sensor: %w", err)
	}

	samples, err := d.samples.QueryRange(ctx, sensor.ID, rng.From(), rng.To())
	if err != nil {
		return nil, fmt.Errorf("query measurements of sensor %d: %w", sensor.ID, err)
	}

	points := Resample(rng, IntervalMillis(q.IntervalMinutes), samples)
	if d.observer != nil {
		matched := 0
		for _, p := range points {
			if p.Valid {
				matched++
			}
		}
		d.observer.ObserveSeries(len(points), matched)
	}
	return points, nil
}

// resolveRange fills defaults, orders the bounds and applies the one-year cap.
func (d *Dashboard) resolveRange(start, end time.Time) entity.TimeRange {
	now := d.now()
	if end.IsZero() {
		end = now
	}
	if start.IsZero() {
		start = now.Add(-d.window)
	}
	if start.After(end) {
		start, end = end, start
	}
	return ClampRange(entity.RangeOf(start, end))
}

func (d *Dashboard) alerts(ctx context.Context) alertSet {
	readings, err := d.catalog.LatestReadings(ctx)
	if err != nil {
		d.log.Warn("latest readings unavailable, alerts skipped", zap.Error(err))
		return alertSet{}
	}
	return evaluateAlerts(readings, d.thresholds)
}

// IntervalMillis converts an interval in minutes to milliseconds. Values below the
// one-minute floor, including NaN and negatives, come out as the floor.
func IntervalMillis(minutes float64) int64 {
	if math.IsNaN(minutes) || minutes <= 0 {
		return MinIntervalMillis
	}
	ms := minutes * float64(time.Minute/time.Millisecond)
	if ms >= math.MaxInt64 {
		return math.MaxInt64
	}
	return ClampInterval(int64(ms))
}

var _ DashboardPort = (*Dashboard)(nil)
