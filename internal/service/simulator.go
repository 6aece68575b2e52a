package service

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
)

// valueRange is the uniform range a simulated reading is drawn from.
type valueRange struct {
	min, max float64
}

var simulatedUnits = []string{UnitCelsius, UnitVolt, UnitAmpere}

var simulatedRanges = map[string]valueRange{
	UnitCelsius: {15, 30},
	UnitVolt:    {210, 235},
	UnitAmpere:  {1, 7.5},
}

// InsertObserver is notified about every simulated insert.
type InsertObserver interface {
	ObserveInsert(ok bool)
}

type SimulatorConfig struct {
	Every   time.Duration
	Devices []string
	Rand    rand.Source
	Now     func() time.Time
}

// Simulator periodically writes one reading per standard sensor of the configured devices.
type Simulator struct {
	log      *zap.Logger
	catalog  CatalogReader
	writer   MeasurementWriter
	observer InsertObserver
	every    time.Duration
	devices  []string
	now      func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand

	stopOnce sync.Once
	stopCh   chan struct{}
}

func NewSimulator(log *zap.Logger, catalog CatalogReader, w MeasurementWriter, obs InsertObserver, cfg SimulatorConfig) *Simulator {
	if cfg.Every <= 0 {
		cfg.Every = time.Minute
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.NewSource(time.Now().UnixNano())
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Simulator{
		log:      log,
		catalog:  catalog,
		writer:   w,
		observer: obs,
		every:    cfg.Every,
		devices:  cfg.Devices,
		now:      cfg.Now,
		rnd:      rand.New(cfg.Rand),
		stopCh:   make(chan struct{}),
	}
}

func (s *Simulator) Run(ctx context.Context) {
	t := time.NewTicker(s.every)
	defer t.Stop()
	s.log.Info("simulator started", zap.Duration("every", s.every), zap.Strings("devices", s.devices))
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-t.C:
			s.Tick(ctx)
		}
	}
}

func (s *Simulator) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

// Tick generates one round of readings. Lookup and insert failures are logged and skipped.
func (s *Simulator) Tick(ctx context.Context) {
	ts := s.now().UTC()
	for _, name := range s.devices {
		dev, err := s.catalog.DeviceByName(ctx, name)
		if err != nil {
			s.logLookup(err, "device not found, skipping", zap.String("device", name))
			continue
		}
		for _, unit := range simulatedUnits {
			sensor, err := s.catalog.SensorByUnit(ctx, dev.ID, unit)
			if err != nil {
				s.logLookup(err, "sensor not found, skipping", zap.String("device", name), zap.String("unit", unit))
				continue
			}
			v := s.value(unit)
			err = s.writer.InsertMeasurement(ctx, sensor.ID, ts, v)
			if s.observer != nil {
				s.observer.ObserveInsert(err == nil)
			}
			if err != nil {
				s.log.Warn("insert failed", zap.Int64("sensor_id", sensor.ID), zap.Error(err))
				continue
			}
			s.log.Debug("inserted",
				zap.String("device", name),
				zap.String("sensor", sensor.Name),
				zap.Float64("value", v),
				zap.Time("ts", ts),
			)
		}
	}
}

func (s *Simulator) logLookup(err error, msg string, fields ...zap.Field) {
	if errors.Is(err, ErrNotFound) {
		s.log.Warn(msg, fields...)
		return
	}
	s.log.Error("lookup failed", append(fields, zap.Error(err))...)
}

func (s *Simulator) value(unit string) float64 {
	r := simulatedRanges[unit]
	s.mu.Lock()
	f := s.rnd.Float64()
	s.mu.Unlock()
	return math.Round((r.min+f*(r.max-r.min))*100) / 100
}
