package api

import (
	"strings"
	"sync"
	"time"

	"github.com/hardipatel2510/WeatherX/datasource"
	"github.com/hardipatel2510/WeatherX/models"
)

// storedWeather is one cache entry plus when it was fetched, so stale data
// can still back an inline-error response after a failed refresh.
type storedWeather struct {
	Data    models.WeatherData
	Fetched time.Time
}

// WeatherStore holds the latest normalized weather per city and unit.
type WeatherStore struct {
	data  map[string]storedWeather
	mutex sync.RWMutex
}

// NewWeatherStore creates a new in-memory weather data store.
func NewWeatherStore() *WeatherStore {
	return &WeatherStore{
		data: make(map[string]storedWeather),
	}
}

func storeKey(city string, unit datasource.Unit) string {
	return strings.ToLower(strings.TrimSpace(city)) + "|" + string(unit)
}

// Update stores the latest data for a city.
func (s *WeatherStore) Update(city string, unit datasource.Unit, data models.WeatherData, fetched time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.data[storeKey(city, unit)] = storedWeather{Data: data, Fetched: fetched}
}

// Get retrieves the latest data for a city.
func (s *WeatherStore) Get(city string, unit datasource.Unit) (models.WeatherData, time.Time, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	entry, ok := s.data[storeKey(city, unit)]
	return entry.Data, entry.Fetched, ok
}

// Cities returns every city currently held, without unit duplicates.
func (s *WeatherStore) Cities() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	seen := make(map[string]bool)
	cities := make([]string, 0, len(s.data))
	for key, entry := range s.data {
		name := strings.SplitN(key, "|", 2)[0]
		if !seen[name] {
			seen[name] = true
			cities = append(cities, entry.Data.City)
		}
	}
	return cities
}
