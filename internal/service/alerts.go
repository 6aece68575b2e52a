package service

import "github.com/dayanaadylkhanova/sensor-dashboard/internal/entity"

const (
	MetricTemperature = "temperature"
	MetricCurrent     = "current"
	MetricVoltage     = "voltage"
)

// Sensor units as stored in the sensors table.
const (
	UnitCelsius = "Градус Цельсия"
	UnitAmpere  = "Ампер"
	UnitVolt    = "Вольт"
)

var metricUnits = map[string]string{
	MetricTemperature: UnitCelsius,
	MetricCurrent:     UnitAmpere,
	MetricVoltage:     UnitVolt,
}

// UnitOf maps a metric name from the API to the unit of the sensor that measures it.
func UnitOf(metric string) (string, bool) {
	u, ok := metricUnits[metric]
	return u, ok
}

func MetricOf(unit string) (string, bool) {
	for m, u := range metricUnits {
		if u == unit {
			return m, true
		}
	}
	return "", false
}

func DefaultThresholds() map[string]entity.Threshold {
	return map[string]entity.Threshold{
		MetricVoltage:     {Min: 210, Max: 230},
		MetricCurrent:     {Min: 2, Max: 8},
		MetricTemperature: {Min: 18, Max: 30},
	}
}

type alertSet struct {
	devices  map[int64]bool
	stations map[string]bool
}

// evaluateAlerts flags devices whose latest reading of any known metric is out of bounds,
// and the stations those devices belong to.
func evaluateAlerts(readings []entity.Reading, thresholds map[string]entity.Threshold) alertSet {
	set := alertSet{devices: map[int64]bool{}, stations: map[string]bool{}}
	for _, r := range readings {
		metric, ok := MetricOf(r.Unit)
		if !ok {
			continue
		}
		th, ok := thresholds[metric]
		if !ok {
			continue
		}
		if r.Value < th.Min || r.Value > th.Max {
			set.devices[r.DeviceID] = true
			set.stations[r.StationName] = true
		}
	}
	return set
}
