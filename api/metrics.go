package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hardipatel2510/WeatherX/models"
)

// Metrics exposes the latest per-city readings as Prometheus gauges.
type Metrics struct {
	temperature *prometheus.GaugeVec
	humidity    *prometheus.GaugeVec
	pressure    *prometheus.GaugeVec
	windSpeed   *prometheus.GaugeVec
	uvIndex     *prometheus.GaugeVec
	airQuality  *prometheus.GaugeVec
	moonPhase   *prometheus.GaugeVec
	sunProgress *prometheus.GaugeVec
	fetchErrors *prometheus.CounterVec
}

// NewMetrics registers the weather gauges on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	labels := []string{"city"}

	return &Metrics{
		temperature: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "weatherx_temperature",
			Help: "Current temperature in the configured unit",
		}, labels),
		humidity: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "weatherx_humidity_percent",
			Help: "Current relative humidity",
		}, labels),
		pressure: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "weatherx_pressure_hpa",
			Help: "Current barometric pressure",
		}, labels),
		windSpeed: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "weatherx_wind_speed",
			Help: "Current wind speed in the configured unit",
		}, labels),
		uvIndex: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "weatherx_uv_index",
			Help: "Current UV index",
		}, labels),
		airQuality: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "weatherx_air_quality_index",
			Help: "Air quality index on the 1-5 scale",
		}, labels),
		moonPhase: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "weatherx_moon_phase",
			Help: "Moon phase in [0, 1), 0 is new moon and 0.5 full moon",
		}, labels),
		sunProgress: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "weatherx_sun_progress",
			Help: "Sun position between sunrise (0) and sunset (1) at refresh time",
		}, labels),
		fetchErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "weatherx_fetch_errors_total",
			Help: "Upstream fetch failures per city",
		}, labels),
	}
}

// Observe records the latest readings for a city.
func (m *Metrics) Observe(data models.WeatherData) {
	city := data.City
	m.temperature.WithLabelValues(city).Set(data.Temp)
	m.humidity.WithLabelValues(city).Set(data.Humidity)
	m.pressure.WithLabelValues(city).Set(data.Pressure)
	m.windSpeed.WithLabelValues(city).Set(data.WindSpeed)
	m.uvIndex.WithLabelValues(city).Set(data.UVIndex)
	m.airQuality.WithLabelValues(city).Set(float64(data.AirQuality))
	m.moonPhase.WithLabelValues(city).Set(data.MoonPhase)
	m.sunProgress.WithLabelValues(city).Set(ComputeSunState(data, time.Now()).Progress)
}

// ObserveError counts a failed refresh for a city.
func (m *Metrics) ObserveError(city string) {
	m.fetchErrors.WithLabelValues(city).Inc()
}
