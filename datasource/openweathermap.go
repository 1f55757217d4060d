package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hardipatel2510/WeatherX/models"
)

// fetchTimeout is the budget for one whole fetch cycle: current weather
// plus the secondary endpoints racing inside it.
const fetchTimeout = 10 * time.Second

// OpenWeatherMapSource fetches from the OpenWeatherMap REST API and
// normalizes the result. It implements WeatherSource.
type OpenWeatherMapSource struct {
	apiKey     string
	baseURL    string
	oneCallURL string
	geoURL     string
	httpClient *http.Client
	logger     *zap.SugaredLogger
	now        func() time.Time
}

// SourceOption configures an OpenWeatherMapSource.
type SourceOption func(*OpenWeatherMapSource)

// BaseURLOption overrides the data API base (tests point this at a stub).
func BaseURLOption(u string) SourceOption {
	return func(s *OpenWeatherMapSource) {
		s.baseURL = u
		s.oneCallURL = u
		s.geoURL = u
	}
}

// OneCallURLOption overrides just the One Call base.
func OneCallURLOption(u string) SourceOption {
	return func(s *OpenWeatherMapSource) { s.oneCallURL = u }
}

// GeoURLOption overrides just the geocoding base.
func GeoURLOption(u string) SourceOption {
	return func(s *OpenWeatherMapSource) { s.geoURL = u }
}

// HTTPClientOption substitutes the HTTP client.
func HTTPClientOption(c *http.Client) SourceOption {
	return func(s *OpenWeatherMapSource) { s.httpClient = c }
}

// ClockOption substitutes the time source so tests can pin "now".
func ClockOption(now func() time.Time) SourceOption {
	return func(s *OpenWeatherMapSource) { s.now = now }
}

// NewOpenWeatherMapSource creates a new OpenWeatherMap source.
func NewOpenWeatherMapSource(apiKey string, logger *zap.SugaredLogger, opts ...SourceOption) *OpenWeatherMapSource {
	s := &OpenWeatherMapSource{
		apiKey:     apiKey,
		baseURL:    "https://api.openweathermap.org/data/2.5",
		oneCallURL: "https://api.openweathermap.org/data/3.0",
		geoURL:     "https://api.openweathermap.org/geo/1.0",
		httpClient: &http.Client{
			Timeout: fetchTimeout,
		},
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the provider name.
func (s *OpenWeatherMapSource) Name() string {
	return "OpenWeatherMap"
}

// FetchWeather fetches current conditions, forecast, One Call and air
// pollution data for a city and normalizes them into one WeatherData.
// Failure of the current-weather or forecast fetch is fatal; One Call and
// pollution degrade to documented defaults.
func (s *OpenWeatherMapSource) FetchWeather(ctx context.Context, city string, unit Unit) (models.WeatherData, error) {
	if s.apiKey == "" {
		return models.WeatherData{}, ErrMissingAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	current, err := s.currentWeather(ctx, city, unit)
	if err != nil {
		return models.WeatherData{}, err
	}
	lat, lon := current.Coord.Lat, current.Coord.Lon

	// The secondary fetches are independent, so they run concurrently
	// within the same budget.
	var (
		wg          sync.WaitGroup
		forecast    *ForecastResponse
		forecastErr error
		oneCall     *OneCallResponse
		aqi         = 1 // "Good" when the pollution endpoint is unavailable
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		forecast, forecastErr = s.forecast(ctx, city, unit)
	}()
	go func() {
		defer wg.Done()
		oc, err := s.oneCall(ctx, lat, lon, unit)
		if err != nil {
			s.logger.Warnw("one call fetch failed, degrading to basic data", "city", city, "error", err)
			return
		}
		oneCall = oc
	}()
	go func() {
		defer wg.Done()
		v, err := s.airPollution(ctx, lat, lon)
		if err != nil {
			s.logger.Warnw("air pollution fetch failed, defaulting to Good", "city", city, "error", err)
			return
		}
		aqi = v
	}()
	wg.Wait()

	if forecastErr != nil {
		return models.WeatherData{}, fmt.Errorf("forecast fetch failed: %w", forecastErr)
	}

	return Normalize(current, forecast, oneCall, aqi, unit, s.now()), nil
}

// placeSuffix strips descriptors that confuse the upstream search.
var placeSuffix = regexp.MustCompile(`(?i)\s+(Taluka|District|Area|City)$`)

// gujaratCities get a country hint appended; bare names frequently resolve
// to same-named places elsewhere.
var gujaratCities = map[string]bool{
	"ahmedabad": true, "surat": true, "rajkot": true,
	"gandhinagar": true, "jamnagar": true, "bhavnagar": true,
}

// normalizeQuery cleans up a free-text place name before it is sent
// upstream.
func normalizeQuery(city string) string {
	q := placeSuffix.ReplaceAllString(strings.TrimSpace(city), "")
	lower := strings.ToLower(q)
	if lower == "baroda" {
		return "Vadodara,IN"
	}
	if gujaratCities[lower] {
		return q + ",IN"
	}
	return q
}

// currentWeather resolves a city to its current conditions. A 404 triggers
// one geocoding retry with the same name before the place is declared not
// found.
func (s *OpenWeatherMapSource) currentWeather(ctx context.Context, city string, unit Unit) (*CurrentResponse, error) {
	query := normalizeQuery(city)

	params := url.Values{}
	params.Set("q", query)
	params.Set("appid", s.apiKey)
	params.Set("units", string(unit))

	var current CurrentResponse
	status, err := s.getJSON(ctx, s.baseURL+"/weather?"+params.Encode(), &current)
	if err == nil {
		return &current, nil
	}
	if status != http.StatusNotFound {
		return nil, fmt.Errorf("current weather fetch failed: %w", err)
	}

	// Geocoding fallback: resolve the name to coordinates and retry.
	geoParams := url.Values{}
	geoParams.Set("q", query)
	geoParams.Set("limit", "1")
	geoParams.Set("appid", s.apiKey)

	var hits []GeoResult
	if _, geoErr := s.getJSON(ctx, s.geoURL+"/direct?"+geoParams.Encode(), &hits); geoErr != nil || len(hits) == 0 {
		return nil, &NotFoundError{City: city}
	}

	coordParams := url.Values{}
	coordParams.Set("lat", strconv.FormatFloat(hits[0].Lat, 'f', -1, 64))
	coordParams.Set("lon", strconv.FormatFloat(hits[0].Lon, 'f', -1, 64))
	coordParams.Set("appid", s.apiKey)
	coordParams.Set("units", string(unit))

	if _, err := s.getJSON(ctx, s.baseURL+"/weather?"+coordParams.Encode(), &current); err != nil {
		return nil, &NotFoundError{City: city}
	}
	return &current, nil
}

// forecast fetches the 5-day/3-hour feed.
func (s *OpenWeatherMapSource) forecast(ctx context.Context, city string, unit Unit) (*ForecastResponse, error) {
	params := url.Values{}
	params.Set("q", normalizeQuery(city))
	params.Set("appid", s.apiKey)
	params.Set("units", string(unit))

	var forecast ForecastResponse
	if _, err := s.getJSON(ctx, s.baseURL+"/forecast?"+params.Encode(), &forecast); err != nil {
		return nil, err
	}
	return &forecast, nil
}

// oneCall fetches the hourly/daily feed, trying 3.0 first and falling back
// to 2.5 for keys without the newer subscription.
func (s *OpenWeatherMapSource) oneCall(ctx context.Context, lat, lon float64, unit Unit) (*OneCallResponse, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("exclude", "minutely,alerts")
	params.Set("appid", s.apiKey)
	params.Set("units", string(unit))

	var oneCall OneCallResponse
	if _, err := s.getJSON(ctx, s.oneCallURL+"/onecall?"+params.Encode(), &oneCall); err == nil {
		return &oneCall, nil
	}
	if _, err := s.getJSON(ctx, s.baseURL+"/onecall?"+params.Encode(), &oneCall); err != nil {
		return nil, err
	}
	return &oneCall, nil
}

// airPollution fetches the 1-5 AQI ordinal.
func (s *OpenWeatherMapSource) airPollution(ctx context.Context, lat, lon float64) (int, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("appid", s.apiKey)

	var pollution PollutionResponse
	if _, err := s.getJSON(ctx, s.baseURL+"/air_pollution?"+params.Encode(), &pollution); err != nil {
		return 0, err
	}
	if len(pollution.List) == 0 {
		return 0, fmt.Errorf("empty air pollution response")
	}
	return pollution.List[0].Main.AQI, nil
}

// getJSON performs one uncached GET and decodes the body. The returned
// status is valid whenever the request itself got an answer.
func (s *OpenWeatherMapSource) getJSON(ctx context.Context, rawURL string, v any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &UpstreamError{Endpoint: req.URL.Path, StatusCode: resp.StatusCode}
	}
	if err := json.Unmarshal(body, v); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to parse response: %w", err)
	}
	return resp.StatusCode, nil
}

// Verify interface conformance.
var _ WeatherSource = (*OpenWeatherMapSource)(nil)
