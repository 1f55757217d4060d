package datasource

import (
	"context"
	"encoding/json"
	"os"

	"github.com/hardipatel2510/WeatherX/models"
)

// Unit selects the measurement system a fetch is performed in. The API is
// queried directly in this unit, so temperatures never need converting on
// our side; wind speed does (see Normalize).
type Unit string

const (
	UnitImperial Unit = "imperial"
	UnitMetric   Unit = "metric"
)

// ParseUnit maps a query-string value onto a Unit, defaulting to imperial.
func ParseUnit(s string) Unit {
	if s == string(UnitMetric) {
		return UnitMetric
	}
	return UnitImperial
}

// WeatherSource is anything that can produce a normalized WeatherData for a
// place.
type WeatherSource interface {
	// FetchWeather fetches and normalizes current conditions plus the
	// hourly and daily outlook for a city.
	FetchWeather(ctx context.Context, city string, unit Unit) (models.WeatherData, error)

	// Name returns the source's name.
	Name() string
}

// Config is the application configuration.
type Config struct {
	// APIKey for OpenWeatherMap. The OWM_API_KEY environment variable
	// overrides the file value. Absence is fatal.
	APIKey string `json:"apiKey"`

	// DefaultCity answers requests that carry no city parameter.
	DefaultCity string `json:"defaultCity"`

	// DefaultUnit is "imperial" or "metric".
	DefaultUnit string `json:"defaultUnit"`

	// Locations to keep warm in the store via the background collector.
	Locations []string `json:"locations"`
}

// LoadConfig loads configuration from a JSON file, then applies environment
// overrides. A missing file yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.Open(filename)
	if err == nil {
		defer file.Close()
		if err := json.NewDecoder(file).Decode(config); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if key := os.Getenv("OWM_API_KEY"); key != "" {
		config.APIKey = key
	}
	if config.DefaultCity == "" {
		config.DefaultCity = "Ahmedabad"
	}
	if config.DefaultUnit == "" {
		config.DefaultUnit = string(UnitImperial)
	}
	return config, nil
}

// DefaultConfig creates a configuration with the stock defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultCity: "Ahmedabad",
		DefaultUnit: string(UnitImperial),
		Locations:   []string{"Ahmedabad"},
	}
}
