package service

//go:generate mockgen -source=contracts.go -destination=mock_contracts.go -package=service

import (
	"context"
	"errors"
	"time"

	"github.com/dayanaadylkhanova/sensor-dashboard/internal/entity"
)

// ErrNotFound is returned by stores and services when a station, device or sensor lookup misses.
var ErrNotFound = errors.New("not found")

// DashboardPort is what the HTTP layer needs from the service.
type DashboardPort interface {
	Stations(ctx context.Context) ([]entity.Station, error)
	StationDevices(ctx context.Context, stationName string) ([]entity.Device, error)
	Device(ctx context.Context, id int64) (entity.DeviceDetails, error)
	Series(ctx context.Context, q entity.SeriesQuery) ([]entity.GridPoint, error)
	Thresholds() map[string]entity.Threshold
}

type CatalogReader interface {
	ListStations(ctx context.Context) ([]entity.Station, error)
	StationByName(ctx context.Context, name string) (entity.Station, error)
	ListDevices(ctx context.Context, stationName string) ([]entity.Device, error)
	DeviceByID(ctx context.Context, id int64) (entity.Device, error)
	DeviceByName(ctx context.Context, name string) (entity.Device, error)
	SensorByUnit(ctx context.Context, deviceID int64, unit string) (entity.Sensor, error)
	// LatestReadings returns the most recent measurement of every sensor that has one.
	LatestReadings(ctx context.Context) ([]entity.Reading, error)
}

// MeasurementReader returns samples of one sensor within [from, to], ascending by time.
type MeasurementReader interface {
	QueryRange(ctx context.Context, sensorID int64, from, to time.Time) ([]entity.Sample, error)
}

// MeasurementWriter: порт для записи замеров в БД.
type MeasurementWriter interface {
	InsertMeasurement(ctx context.Context, sensorID int64, ts time.Time, value float64) error
}

// Store is the full persistence contract implemented by the postgres and sqlite adapters.
type Store interface {
	CatalogReader
	MeasurementReader
	MeasurementWriter
	Close()
}
