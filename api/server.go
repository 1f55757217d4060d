package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hardipatel2510/WeatherX/datasource"
	"github.com/hardipatel2510/WeatherX/models"
)

// Server represents the API server.
type Server struct {
	store       *WeatherStore
	source      datasource.WeatherSource
	metrics     *Metrics
	logger      *zap.SugaredLogger
	server      *http.Server
	defaultCity string
	now         func() time.Time
}

// NewServer creates a new API server listening on the given port.
func NewServer(store *WeatherStore, source datasource.WeatherSource, metrics *Metrics, logger *zap.SugaredLogger, port int, defaultCity string) *Server {
	mux := http.NewServeMux()

	server := &Server{
		store:       store,
		source:      source,
		metrics:     metrics,
		logger:      logger,
		defaultCity: defaultCity,
		now:         time.Now,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: mux,
		},
	}

	mux.HandleFunc("/api/weather", server.handleWeather)
	mux.HandleFunc("/api/astro/sun", server.handleSun)
	mux.HandleFunc("/api/astro/moon", server.handleMoon)
	mux.HandleFunc("/api/locations", server.handleLocations)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/api/health", server.handleHealthCheck)

	return server
}

// Handler returns the server's root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start begins the API server.
func (s *Server) Start() error {
	s.logger.Infow("starting API server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown stops the API server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// errorStatus maps datasource errors onto HTTP status codes.
func errorStatus(err error) int {
	var notFound *datasource.NotFoundError
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case datasource.IsTimeout(err):
		return http.StatusGatewayTimeout
	case errors.Is(err, datasource.ErrMissingAPIKey):
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	writeJSON(w, errorStatus(err), map[string]string{"error": err.Error()})
}

// fetchWeather resolves a city fresh from the source, falling back to the
// latest stored data when the refresh fails and stale data exists.
func (s *Server) fetchWeather(ctx context.Context, city string, unit datasource.Unit) (map[string]interface{}, error) {
	data, err := s.source.FetchWeather(ctx, city, unit)
	if err == nil {
		fetched := s.now()
		s.store.Update(city, unit, data, fetched)
		if s.metrics != nil {
			s.metrics.Observe(data)
		}
		return map[string]interface{}{
			"data":      data,
			"timestamp": fetched,
		}, nil
	}

	if s.metrics != nil {
		s.metrics.ObserveError(city)
	}

	stale, fetched, ok := s.store.Get(city, unit)
	if !ok {
		return nil, err
	}
	s.logger.Warnw("refresh failed, serving stale data", "city", city, "error", err)
	return map[string]interface{}{
		"data":      stale,
		"timestamp": fetched,
		"stale":     true,
		"error":     err.Error(),
	}, nil
}

// handleWeather handles GET /api/weather?city=...&unit=...
func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	city := r.URL.Query().Get("city")
	if city == "" {
		city = s.defaultCity
	}
	if city == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "city not specified"})
		return
	}
	unit := datasource.ParseUnit(r.URL.Query().Get("unit"))

	response, err := s.fetchWeather(r.Context(), city, unit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// handleSun handles GET /api/astro/sun?city=...&unit=...
func (s *Server) handleSun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data, err := s.resolveCity(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ComputeSunState(data, s.now()))
}

// handleMoon handles GET /api/astro/moon?city=...&unit=...
func (s *Server) handleMoon(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data, err := s.resolveCity(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ComputeMoonState(data, s.now()))
}

// resolveCity returns weather data for the request's city, preferring the
// store and fetching on demand when the city has not been seen yet.
func (s *Server) resolveCity(r *http.Request) (models.WeatherData, error) {
	city := r.URL.Query().Get("city")
	if city == "" {
		city = s.defaultCity
	}
	unit := datasource.ParseUnit(r.URL.Query().Get("unit"))

	if data, _, ok := s.store.Get(city, unit); ok {
		return data, nil
	}

	data, err := s.source.FetchWeather(r.Context(), city, unit)
	if err != nil {
		return models.WeatherData{}, err
	}
	s.store.Update(city, unit, data, s.now())
	if s.metrics != nil {
		s.metrics.Observe(data)
	}
	return data, nil
}

// handleLocations manages the saved-city cookie list.
func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	cities := readSavedCities(r)

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"cities": cities,
			"count":  len(cities),
		})
	case http.MethodPost:
		city := r.URL.Query().Get("city")
		if city == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "city not specified"})
			return
		}
		cities = addSavedCity(cities, city)
		writeSavedCities(w, cities)
		writeJSON(w, http.StatusOK, map[string]interface{}{"cities": cities})
	case http.MethodDelete:
		city := r.URL.Query().Get("city")
		if city == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "city not specified"})
			return
		}
		cities = removeSavedCity(cities, city)
		writeSavedCities(w, cities)
		writeJSON(w, http.StatusOK, map[string]interface{}{"cities": cities})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleHealthCheck provides a simple health check endpoint.
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": s.now(),
		"cities":    len(s.store.Cities()),
	})
}
