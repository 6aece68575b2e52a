package http_server

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dayanaadylkhanova/sensor-dashboard/internal/entity"
	"github.com/dayanaadylkhanova/sensor-dashboard/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func (s *Server) handleStations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stations, err := s.dash.Stations(r.Context())
		if err != nil {
			s.respondError(w, err, "failed to fetch stations")
			return
		}
		writeJSON(w, http.StatusOK, stations)
	}
}

func (s *Server) handleStationDevices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "stationName")
		devices, err := s.dash.StationDevices(r.Context(), name)
		if err != nil {
			s.respondError(w, err, "failed to fetch composite devices")
			return
		}
		writeJSON(w, http.StatusOK, devices)
	}
}

func (s *Server) handleDevice() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseDeviceID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		dev, err := s.dash.Device(r.Context(), id)
		if err != nil {
			s.respondError(w, err, "failed to fetch composite device")
			return
		}
		writeJSON(w, http.StatusOK, dev)
	}
}

func (s *Server) handleSeries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseDeviceID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		pts, err := s.dash.Series(r.Context(), parseSeriesQuery(r, id))
		if err != nil {
			s.respondError(w, err, "failed to fetch data")
			return
		}
		out := make([]entity.SeriesPoint, len(pts))
		for i, p := range pts {
			out[i] = toSeriesPoint(p)
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// handleExport streams the same series as handleSeries as a CSV attachment.
func (s *Server) handleExport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseDeviceID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		q := parseSeriesQuery(r, id)
		pts, err := s.dash.Series(r.Context(), q)
		if err != nil {
			s.respondError(w, err, "failed to export data")
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="device-%d-%s.csv"`, id, exportName(q.Metric)))
		cw := csv.NewWriter(w)
		_ = cw.Write([]string{"timestamp", "value"})
		for _, p := range pts {
			sp := toSeriesPoint(p)
			v := ""
			if sp.Value != nil {
				v = strconv.FormatFloat(*sp.Value, 'f', -1, 64)
			}
			_ = cw.Write([]string{sp.Timestamp, v})
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			s.log.Warn("csv export interrupted", zap.Int64("device_id", id), zap.Error(err))
		}
	}
}

func (s *Server) handleThresholds() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.dash.Thresholds())
	}
}

// respondError maps lookup misses to 404 and everything else to a logged 500.
func (s *Server) respondError(w http.ResponseWriter, err error, msg string) {
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	s.log.Error(msg, zap.Error(err))
	writeError(w, http.StatusInternalServerError, msg)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message, Code: status})
}

// writeJSON encodes before sending the header, so an unencodable payload
// turns into a 500 instead of a truncated 200.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		zap.L().Error("encode response", zap.Error(err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"failed to encode response","code":500}` + "\n"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func exportName(metric string) string {
	if _, ok := service.UnitOf(metric); ok {
		return metric
	}
	return "data"
}
