package entity

import "time"

type Station struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	HasAlert bool   `json:"hasAlert"`
}

// Device is a composite device: a piece of equipment carrying several sensors.
type Device struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	HasAlert    bool   `json:"hasAlert"`
}

type DeviceDetails struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	PhotoURL    string `json:"photoUrl"`
}

type Sensor struct {
	ID       int64
	DeviceID int64
	Name     string
	Unit     string
}

// Reading is the latest measurement of one sensor, with enough context to evaluate alerts.
type Reading struct {
	StationName string
	DeviceID    int64
	SensorID    int64
	Unit        string
	TS          time.Time
	Value       float64
}

type Threshold struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
