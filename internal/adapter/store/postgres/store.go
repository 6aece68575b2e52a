package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayanaadylkhanova/sensor-dashboard/internal/entity"
	"github.com/dayanaadylkhanova/sensor-dashboard/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type Store struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func New(ctx context.Context, dsn string, log *zap.Logger) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}
	return &Store{pool: pool, log: log}, nil
}

func (s *Store) Init(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS stations (
	id   BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS composite_devices (
	id          BIGSERIAL PRIMARY KEY,
	station_id  BIGINT NOT NULL REFERENCES stations(id) ON DELETE CASCADE,
	name        TEXT   NOT NULL UNIQUE,
	description TEXT   NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS sensors (
	id                  BIGSERIAL PRIMARY KEY,
	composite_device_id BIGINT NOT NULL REFERENCES composite_devices(id) ON DELETE CASCADE,
	name                TEXT   NOT NULL,
	unit                TEXT   NOT NULL,
	UNIQUE (composite_device_id, unit)
);
CREATE TABLE IF NOT EXISTS measurements (
	id        BIGSERIAL        PRIMARY KEY,
	sensor_id BIGINT           NOT NULL REFERENCES sensors(id) ON DELETE CASCADE,
	ts        TIMESTAMPTZ      NOT NULL,
	value     DOUBLE PRECISION NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_measurements_sensor_ts ON measurements (sensor_id, ts);
`
	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("postgres: init schema: %w", err)
	}
	return nil
}

// Seed inserts the demo catalog. Existing rows are left untouched.
func (s *Store) Seed(ctx context.Context) error {
	const seed = `
INSERT INTO stations (name) VALUES ('North Station'), ('South Station')
ON CONFLICT (name) DO NOTHING;
INSERT INTO composite_devices (station_id, name, description)
SELECT s.id, d.name, d.description
FROM (VALUES
	('North Station', 'Pump A',  'Main circulation pump'),
	('South Station', 'Motor B', 'Conveyor drive motor')
) AS d(station, name, description)
JOIN stations s ON s.name = d.station
ON CONFLICT (name) DO NOTHING;
INSERT INTO sensors (composite_device_id, name, unit)
SELECT cd.id, u.name, u.unit
FROM composite_devices cd
CROSS JOIN (VALUES
	('Temperature Sensor', 'Градус Цельсия'),
	('Voltage Sensor',     'Вольт'),
	('Current Sensor',     'Ампер')
) AS u(name, unit)
WHERE cd.name IN ('Pump A', 'Motor B')
ON CONFLICT (composite_device_id, unit) DO NOTHING;
`
	if _, err := s.pool.Exec(ctx, seed); err != nil {
		return fmt.Errorf("postgres: seed: %w", err)
	}
	s.log.Info("demo catalog seeded")
	return nil
}

func (s *Store) ListStations(ctx context.Context) ([]entity.Station, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name FROM stations ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []entity.Station{}
	for rows.Next() {
		var st entity.Station
		if err := rows.Scan(&st.ID, &st.Name); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func (s *Store) StationByName(ctx context.Context, name string) (entity.Station, error) {
	var st entity.Station
	err := s.pool.QueryRow(ctx, `SELECT id, name FROM stations WHERE name = $1`, name).Scan(&st.ID, &st.Name)
	return st, notFound(err)
}

const deviceColumns = `cd.id, cd.name, s.name, cd.description`

func (s *Store) ListDevices(ctx context.Context, stationName string) ([]entity.Device, error) {
	const q = `SELECT ` + deviceColumns + `
FROM composite_devices cd JOIN stations s ON cd.station_id = s.id
WHERE s.name = $1 ORDER BY cd.name`
	rows, err := s.pool.Query(ctx, q, stationName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []entity.Device{}
	for rows.Next() {
		var d entity.Device
		if err := rows.Scan(&d.ID, &d.Name, &d.Location, &d.Description); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Store) DeviceByID(ctx context.Context, id int64) (entity.Device, error) {
	const q = `SELECT ` + deviceColumns + `
FROM composite_devices cd JOIN stations s ON cd.station_id = s.id
WHERE cd.id = $1`
	var d entity.Device
	err := s.pool.QueryRow(ctx, q, id).Scan(&d.ID, &d.Name, &d.Location, &d.Description)
	return d, notFound(err)
}

func (s *Store) DeviceByName(ctx context.Context, name string) (entity.Device, error) {
	const q = `SELECT ` + deviceColumns + `
FROM composite_devices cd JOIN stations s ON cd.station_id = s.id
WHERE cd.name = $1`
	var d entity.Device
	err := s.pool.QueryRow(ctx, q, name).Scan(&d.ID, &d.Name, &d.Location, &d.Description)
	return d, notFound(err)
}

func (s *Store) SensorByUnit(ctx context.Context, deviceID int64, unit string) (entity.Sensor, error) {
	const q = `SELECT id, composite_device_id, name, unit FROM sensors WHERE composite_device_id = $1 AND unit = $2`
	var sn entity.Sensor
	err := s.pool.QueryRow(ctx, q, deviceID, unit).Scan(&sn.ID, &sn.DeviceID, &sn.Name, &sn.Unit)
	return sn, notFound(err)
}

func (s *Store) LatestReadings(ctx context.Context) ([]entity.Reading, error) {
	const q = `
SELECT st.name, cd.id, sn.id, sn.unit, m.ts, m.value
FROM sensors sn
JOIN composite_devices cd ON sn.composite_device_id = cd.id
JOIN stations st ON cd.station_id = st.id
JOIN LATERAL (
	SELECT ts, value FROM measurements WHERE sensor_id = sn.id ORDER BY ts DESC LIMIT 1
) m ON TRUE`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []entity.Reading
	for rows.Next() {
		var r entity.Reading
		if err := rows.Scan(&r.StationName, &r.DeviceID, &r.SensorID, &r.Unit, &r.TS, &r.Value); err != nil {
			return nil, err
		}
		r.TS = r.TS.UTC()
		out = append(out, r)
	}
	return out, rows.Err()
}

// QueryRange implements service.MeasurementReader
func (s *Store) QueryRange(ctx context.Context, sensorID int64, from, to time.Time) ([]entity.Sample, error) {
	const q = `SELECT ts, value FROM measurements WHERE sensor_id=$1 AND ts >= $2 AND ts <= $3 ORDER BY ts`
	rows, err := s.pool.Query(ctx, q, sensorID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []entity.Sample
	for rows.Next() {
		var ts time.Time
		var v float64
		if err := rows.Scan(&ts, &v); err != nil {
			return nil, err
		}
		out = append(out, entity.Sample{TimestampMillis: ts.UnixMilli(), Value: v})
	}
	return out, rows.Err()
}

// InsertMeasurement implements service.MeasurementWriter
func (s *Store) InsertMeasurement(ctx context.Context, sensorID int64, ts time.Time, value float64) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO measurements (sensor_id, ts, value) VALUES ($1, $2, $3)`, sensorID, ts, value)
	return err
}

func (s *Store) Close() { s.pool.Close() }

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return service.ErrNotFound
	}
	return err
}

var _ service.Store = (*Store)(nil)
