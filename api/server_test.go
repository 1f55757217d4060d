package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hardipatel2510/WeatherX/datasource"
	"github.com/hardipatel2510/WeatherX/models"
)

type stubSource struct {
	data models.WeatherData
	err  error
}

func (s *stubSource) FetchWeather(ctx context.Context, city string, unit datasource.Unit) (models.WeatherData, error) {
	if s.err != nil {
		return models.WeatherData{}, s.err
	}
	data := s.data
	if data.City == "" {
		data.City = city
	}
	return data, nil
}

func (s *stubSource) Name() string { return "Stub" }

func testServer(t *testing.T, source datasource.WeatherSource) *Server {
	t.Helper()
	metrics := NewMetrics(prometheus.NewRegistry())
	server := NewServer(NewWeatherStore(), source, metrics, zap.NewNop().Sugar(), 0, "Ahmedabad")
	server.now = func() time.Time {
		return time.Date(2025, time.June, 15, 7, 0, 0, 0, time.UTC)
	}
	return server
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestHandleWeather(t *testing.T) {
	source := &stubSource{data: models.WeatherData{City: "Surat", Temp: 95}}
	server := testServer(t, source)

	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/weather?city=Surat", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	data := body["data"].(map[string]any)
	assert.Equal(t, "Surat", data["city"])
	assert.Equal(t, 95.0, data["temp"])
	assert.Nil(t, body["stale"])
}

func TestHandleWeather_DefaultCity(t *testing.T) {
	server := testServer(t, &stubSource{})

	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/weather", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	data := decodeBody(t, recorder)["data"].(map[string]any)
	assert.Equal(t, "Ahmedabad", data["city"])
}

func TestHandleWeather_NotFound(t *testing.T) {
	source := &stubSource{err: &datasource.NotFoundError{City: "Nowhereville"}}
	server := testServer(t, source)

	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/weather?city=Nowhereville", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, decodeBody(t, recorder)["error"], "Nowhereville")
}

func TestHandleWeather_Timeout(t *testing.T) {
	server := testServer(t, &stubSource{err: context.DeadlineExceeded})

	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/weather?city=Surat", nil))

	assert.Equal(t, http.StatusGatewayTimeout, recorder.Code)
}

func TestHandleWeather_UpstreamError(t *testing.T) {
	server := testServer(t, &stubSource{err: &datasource.UpstreamError{Endpoint: "/weather", StatusCode: 500}})

	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/weather?city=Surat", nil))

	assert.Equal(t, http.StatusBadGateway, recorder.Code)
}

func TestHandleWeather_ServesStaleOnFailure(t *testing.T) {
	source := &stubSource{data: models.WeatherData{City: "Surat", Temp: 95}}
	server := testServer(t, source)

	// Warm the store with a successful fetch
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/weather?city=Surat", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	// Break the source: the stale copy should still come back, flagged
	source.err = errors.New("upstream down")
	recorder = httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/weather?city=Surat", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["stale"])
	assert.Contains(t, body["error"], "upstream down")
	assert.Equal(t, "Surat", body["data"].(map[string]any)["city"])
}

func TestHandleWeather_MethodNotAllowed(t *testing.T) {
	server := testServer(t, &stubSource{})

	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/weather?city=Surat", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}

func TestHandleSun(t *testing.T) {
	source := &stubSource{data: models.WeatherData{
		City:     "Ahmedabad",
		Timezone: 19800,
		Sunrise:  "06:00 AM",
		Sunset:   "07:00 PM",
	}}
	server := testServer(t, source)

	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/astro/sun?city=Ahmedabad", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "afternoon", body["segment"])
	assert.Equal(t, true, body["isDay"])
	assert.InDelta(t, 0.5, body["progress"].(float64), 1e-9)
}

func TestHandleMoon(t *testing.T) {
	source := &stubSource{data: models.WeatherData{
		City:      "Ahmedabad",
		Timezone:  19800,
		Lat:       23.0225,
		Lon:       72.5714,
		MoonPhase: 0.5,
	}}
	server := testServer(t, source)

	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/astro/moon?city=Ahmedabad", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "Full Moon", body["name"])
	assert.Len(t, body["timeline"].([]any), 7)
}

func TestHandleLocations(t *testing.T) {
	server := testServer(t, &stubSource{})

	// Empty to start
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/locations", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 0.0, decodeBody(t, recorder)["count"])

	// Add one; the cookie comes back set
	recorder = httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/locations?city=Surat", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	cookies := recorder.Result().Cookies()
	require.NotEmpty(t, cookies)

	// The list round-trips through the cookie
	request := httptest.NewRequest(http.MethodGet, "/api/locations", nil)
	request.AddCookie(cookies[0])
	recorder = httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, request)
	assert.Equal(t, []any{"Surat"}, decodeBody(t, recorder)["cities"])

	// Delete it again
	request = httptest.NewRequest(http.MethodDelete, "/api/locations?city=surat", nil)
	request.AddCookie(cookies[0])
	recorder = httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, decodeBody(t, recorder)["cities"])
}

func TestHandleHealthCheck(t *testing.T) {
	server := testServer(t, &stubSource{})

	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "ok", decodeBody(t, recorder)["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	server := testServer(t, &stubSource{})

	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}
