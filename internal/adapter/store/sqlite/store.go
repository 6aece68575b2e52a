package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dayanaadylkhanova/sensor-dashboard/internal/entity"
	"github.com/dayanaadylkhanova/sensor-dashboard/internal/service"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Store keeps the catalog and measurements in a single SQLite file. Timestamps are
// stored as unix milliseconds so range scans compare integers.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// New opens (or creates) the database at path. ":memory:" gives a private in-memory database.
func New(ctx context.Context, path string, log *zap.Logger) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	// a single connection keeps ":memory:" databases alive and serializes writers
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

func (s *Store) Init(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS stations (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS composite_devices (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	station_id  INTEGER NOT NULL REFERENCES stations(id) ON DELETE CASCADE,
	name        TEXT    NOT NULL UNIQUE,
	description TEXT    NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS sensors (
	id                  INTEGER PRIMARY KEY AUTOINCREMENT,
	composite_device_id INTEGER NOT NULL REFERENCES composite_devices(id) ON DELETE CASCADE,
	name                TEXT    NOT NULL,
	unit                TEXT    NOT NULL,
	UNIQUE (composite_device_id, unit)
);
CREATE TABLE IF NOT EXISTS measurements (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	sensor_id INTEGER NOT NULL REFERENCES sensors(id) ON DELETE CASCADE,
	ts_ms     INTEGER NOT NULL,
	value     REAL    NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_measurements_sensor_ts ON measurements (sensor_id, ts_ms);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("sqlite: init schema: %w", err)
	}
	s.log.Info("sqlite schema applied")
	return nil
}

// Seed inserts the demo catalog. Existing rows are left untouched.
func (s *Store) Seed(ctx context.Context) error {
	const seed = `
INSERT INTO stations (name) VALUES ('North Station'), ('South Station')
ON CONFLICT (name) DO NOTHING;
INSERT INTO composite_devices (station_id, name, description)
SELECT s.id, d.name, d.description
FROM (
	SELECT 'North Station' AS station, 'Pump A' AS name, 'Main circulation pump' AS description
	UNION ALL SELECT 'South Station', 'Motor B', 'Conveyor drive motor'
) AS d
JOIN stations s ON s.name = d.station
WHERE true
ON CONFLICT (name) DO NOTHING;
INSERT INTO sensors (composite_device_id, name, unit)
SELECT cd.id, u.name, u.unit
FROM composite_devices cd
CROSS JOIN (
	SELECT 'Temperature Sensor' AS name, 'Градус Цельсия' AS unit
	UNION ALL SELECT 'Voltage Sensor', 'Вольт'
	UNION ALL SELECT 'Current Sensor', 'Ампер'
) AS u
WHERE cd.name IN ('Pump A', 'Motor B')
ON CONFLICT (composite_device_id, unit) DO NOTHING;
`
	if _, err := s.db.ExecContext(ctx, seed); err != nil {
		return fmt.Errorf("sqlite: seed: %w", err)
	}
	s.log.Info("demo catalog seeded")
	return nil
}

func (s *Store) ListStations(ctx context.Context) ([]entity.Station, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM stations ORDER BY name`)
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
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM stations WHERE name = ?`, name).Scan(&st.ID, &st.Name)
	return st, notFound(err)
}

const deviceQuery = `SELECT cd.id, cd.name, s.name, cd.description
FROM composite_devices cd JOIN stations s ON cd.station_id = s.id`

func (s *Store) ListDevices(ctx context.Context, stationName string) ([]entity.Device, error) {
	rows, err := s.db.QueryContext(ctx, deviceQuery+` WHERE s.name = ? ORDER BY cd.name`, stationName)
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
	var d entity.Device
	err := s.db.QueryRowContext(ctx, deviceQuery+` WHERE cd.id = ?`, id).
		Scan(&d.ID, &d.Name, &d.Location, &d.Description)
	return d, notFound(err)
}

func (s *Store) DeviceByName(ctx context.Context, name string) (entity.Device, error) {
	var d entity.Device
	err := s.db.QueryRowContext(ctx, deviceQuery+` WHERE cd.name = ?`, name).
		Scan(&d.ID, &d.Name, &d.Location, &d.Description)
	return d, notFound(err)
}

func (s *Store) SensorByUnit(ctx context.Context, deviceID int64, unit string) (entity.Sensor, error) {
	var sn entity.Sensor
	err := s.db.QueryRowContext(ctx,
		`SELECT id, composite_device_id, name, unit FROM sensors WHERE composite_device_id = ? AND unit = ?`,
		deviceID, unit,
	).Scan(&sn.ID, &sn.DeviceID, &sn.Name, &sn.Unit)
	return sn, notFound(err)
}

func (s *Store) LatestReadings(ctx context.Context) ([]entity.Reading, error) {
	const q = `
SELECT st.name, cd.id, sn.id, sn.unit, m.ts_ms, m.value
FROM measurements m
JOIN (SELECT sensor_id, MAX(ts_ms) AS ts_ms FROM measurements GROUP BY sensor_id) last
	ON last.sensor_id = m.sensor_id AND last.ts_ms = m.ts_ms
JOIN sensors sn ON sn.id = m.sensor_id
JOIN composite_devices cd ON sn.composite_device_id = cd.id
JOIN stations st ON cd.station_id = st.id
ORDER BY m.sensor_id, m.id DESC`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []entity.Reading
	seen := map[int64]bool{}
	for rows.Next() {
		var r entity.Reading
		var tsMs int64
		if err := rows.Scan(&r.StationName, &r.DeviceID, &r.SensorID, &r.Unit, &tsMs, &r.Value); err != nil {
			return nil, err
		}
		// several rows may share the latest timestamp; keep the last inserted one
		if seen[r.SensorID] {
			continue
		}
		seen[r.SensorID] = true
		r.TS = time.UnixMilli(tsMs).UTC()
		out = append(out, r)
	}
	return out, rows.Err()
}

// QueryRange implements service.MeasurementReader
func (s *Store) QueryRange(ctx context.Context, sensorID int64, from, to time.Time) ([]entity.Sample, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT ts_ms, value FROM measurements WHERE sensor_id = ? AND ts_ms >= ? AND ts_ms <= ? ORDER BY ts_ms, id`,
		sensorID, from.UnixMilli(), to.UnixMilli(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []entity.Sample
	for rows.Next() {
		var smp entity.Sample
		if err := rows.Scan(&smp.TimestampMillis, &smp.Value); err != nil {
			return nil, err
		}
		out = append(out, smp)
	}
	return out, rows.Err()
}

// InsertMeasurement implements service.MeasurementWriter
func (s *Store) InsertMeasurement(ctx context.Context, sensorID int64, ts time.Time, value float64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO measurements (sensor_id, ts_ms, value) VALUES (?, ?, ?)`,
		sensorID, ts.UnixMilli(), value,
	)
	return err
}

func (s *Store) Close() {
	if err := s.db.Close(); err != nil {
		s.log.Warn("sqlite close", zap.Error(err))
	}
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return service.ErrNotFound
	}
	return err
}

var _ service.Store = (*Store)(nil)
