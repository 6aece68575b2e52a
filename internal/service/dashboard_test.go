package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dayanaadylkhanova/sensor-dashboard/internal/entity"
	"github.com/golang/mock/gomock"
	"go.uber.org/zap"
)

type seriesObs struct{ points, matched int }

func (o *seriesObs) ObserveSeries(points, matched int) { o.points, o.matched = points, matched }

var fixedNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newDashboard(ctrl *gomock.Controller, opts ...DashboardOption) (*Dashboard, *MockCatalogReader, *MockMeasurementReader) {
	cat := NewMockCatalogReader(ctrl)
	rd := NewMockMeasurementReader(ctrl)
	opts = append([]DashboardOption{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewDashboard(zap.NewNop(), cat, rd, opts...), cat, rd
}

func TestDashboard_Series_ResolvesSensorAndResamples(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	obs := &seriesObs{}
	d, cat, rd := newDashboard(ctrl, WithSeriesObserver(obs))

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	cat.EXPECT().SensorByUnit(gomock.Any(), int64(3), UnitVolt).
		Return(entity.Sensor{ID: 17, DeviceID: 3, Unit: UnitVolt}, nil)
	rd.EXPECT().QueryRange(gomock.Any(), int64(17), start, end).
		Return([]entity.Sample{
			{TimestampMillis: start.Add(7 * time.Minute).UnixMilli(), Value: 5},
			{TimestampMillis: start.Add(50 * time.Minute).UnixMilli(), Value: 9},
		}, nil)

	pts, err := d.Series(context.Background(), entity.SeriesQuery{
		DeviceID: 3, Metric: MetricVoltage, Start: start, End: end, IntervalMinutes: 15,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pts) != 5 {
		t.Fatalf("expected 5 points, got %d", len(pts))
	}
	if !pts[0].Valid || pts[0].Value != 5 || !pts[3].Valid || pts[3].Value != 9 {
		t.Fatalf("unexpected grid: %+v", pts)
	}
	if obs.points != 5 || obs.matched != 2 {
		t.Fatalf("observer got %+v", obs)
	}
}

func TestDashboard_Series_DefaultsToLast24h(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, cat, rd := newDashboard(ctrl)

	cat.EXPECT().SensorByUnit(gomock.Any(), int64(1), UnitCelsius).Return(entity.Sensor{ID: 2}, nil)
	rd.EXPECT().QueryRange(gomock.Any(), int64(2), fixedNow.Add(-24*time.Hour), fixedNow).Return(nil, nil)

	pts, err := d.Series(context.Background(), entity.SeriesQuery{DeviceID: 1, Metric: MetricTemperature, IntervalMinutes: 60})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pts) != 25 {
		t.Fatalf("expected 25 hourly points, got %d", len(pts))
	}
}

func TestDashboard_Series_SwapsInvertedAndCapsToOneYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, cat, rd := newDashboard(ctrl)

	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	farPast := end.AddDate(-3, 0, 0)

	cat.EXPECT().SensorByUnit(gomock.Any(), gomock.Any(), gomock.Any()).Return(entity.Sensor{ID: 2}, nil)
	rd.EXPECT().QueryRange(gomock.Any(), int64(2), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, from, to time.Time) ([]entity.Sample, error) {
			if !to.Equal(end) {
				t.Fatalf("end must be preserved, got %s", to)
			}
			if got := to.Sub(from); got != time.Duration(MaxRangeMillis)*time.Millisecond {
				t.Fatalf("expected one-year window, got %s", got)
			}
			return nil, nil
		})

	// start/end given in the wrong order
	_, err := d.Series(context.Background(), entity.SeriesQuery{
		DeviceID: 1, Metric: MetricCurrent, Start: end, End: farPast, IntervalMinutes: 1440,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDashboard_Series_UnresolvableMetricIsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, cat, _ := newDashboard(ctrl)

	pts, err := d.Series(context.Background(), entity.SeriesQuery{DeviceID: 1, Metric: "pressure"})
	if err != nil || pts == nil || len(pts) != 0 {
		t.Fatalf("unknown metric: expected empty, got %v, %v", pts, err)
	}

	cat.EXPECT().SensorByUnit(gomock.Any(), int64(1), UnitAmpere).Return(entity.Sensor{}, ErrNotFound)
	pts, err = d.Series(context.Background(), entity.SeriesQuery{DeviceID: 1, Metric: MetricCurrent})
	if err != nil || pts == nil || len(pts) != 0 {
		t.Fatalf("missing sensor: expected empty, got %v, %v", pts, err)
	}
}

func TestDashboard_Series_StoreErrorsPropagate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, cat, rd := newDashboard(ctrl)
	boom := errors.New("boom")

	cat.EXPECT().SensorByUnit(gomock.Any(), gomock.Any(), gomock.Any()).Return(entity.Sensor{}, boom)
	if _, err := d.Series(context.Background(), entity.SeriesQuery{Metric: MetricVoltage}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped lookup error, got %v", err)
	}

	cat.EXPECT().SensorByUnit(gomock.Any(), gomock.Any(), gomock.Any()).Return(entity.Sensor{ID: 1}, nil)
	rd.EXPECT().QueryRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)
	if _, err := d.Series(context.Background(), entity.SeriesQuery{Metric: MetricVoltage}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped query error, got %v", err)
	}
}

func TestDashboard_StationsAndDevicesCarryAlerts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, cat, _ := newDashboard(ctrl)

	readings := []entity.Reading{
		{StationName: "North", DeviceID: 1, Unit: UnitVolt, Value: 220},
		{StationName: "North", DeviceID: 2, Unit: UnitAmpere, Value: 9.5},
		{StationName: "South", DeviceID: 3, Unit: UnitCelsius, Value: 25},
		{StationName: "South", DeviceID: 3, Unit: "Бар", Value: 1e9},
	}
	cat.EXPECT().LatestReadings(gomock.Any()).Return(readings, nil).Times(2)
	cat.EXPECT().ListStations(gomock.Any()).Return([]entity.Station{{ID: 1, Name: "North"}, {ID: 2, Name: "South"}}, nil)

	stations, err := d.Stations(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stations[0].HasAlert || stations[1].HasAlert {
		t.Fatalf("unexpected station alerts: %+v", stations)
	}

	cat.EXPECT().StationByName(gomock.Any(), "North").Return(entity.Station{ID: 1, Name: "North"}, nil)
	cat.EXPECT().ListDevices(gomock.Any(), "North").Return([]entity.Device{{ID: 1, Name: "Pump A"}, {ID: 2, Name: "Motor B"}}, nil)

	devices, err := d.StationDevices(context.Background(), "North")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if devices[0].HasAlert || !devices[1].HasAlert {
		t.Fatalf("unexpected device alerts: %+v", devices)
	}
}

func TestDashboard_AlertsDegradeWhenReadingsFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, cat, _ := newDashboard(ctrl)

	cat.EXPECT().ListStations(gomock.Any()).Return([]entity.Station{{ID: 1, Name: "North"}}, nil)
	cat.EXPECT().LatestReadings(gomock.Any()).Return(nil, errors.New("timeout"))

	stations, err := d.Stations(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stations) != 1 || stations[0].HasAlert {
		t.Fatalf("unexpected stations: %+v", stations)
	}
}

func TestDashboard_UnknownStationAndDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, cat, _ := newDashboard(ctrl)

	cat.EXPECT().StationByName(gomock.Any(), "Nowhere").Return(entity.Station{}, ErrNotFound)
	if _, err := d.StationDevices(context.Background(), "Nowhere"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	cat.EXPECT().DeviceByID(gomock.Any(), int64(99)).Return(entity.Device{}, ErrNotFound)
	if _, err := d.Device(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	cat.EXPECT().DeviceByID(gomock.Any(), int64(5)).Return(entity.Device{ID: 5, Name: "Pump A", Location: "North", Description: "main pump"}, nil)
	det, err := d.Device(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if det.Name != "Pump A" || det.Location != "North" || det.PhotoURL != "" {
		t.Fatalf("unexpected details: %+v", det)
	}
}

func TestIntervalMillis(t *testing.T) {
	cases := map[float64]int64{
		1:    60_000,
		0.5:  60_000,
		0:    60_000,
		-3:   60_000,
		1.5:  90_000,
		15:   900_000,
		1e30: 1<<63 - 1,
	}
	for in, want := range cases {
		if got := IntervalMillis(in); got != want {
			t.Fatalf("IntervalMillis(%v) = %d, want %d", in, got, want)
		}
	}
}
