package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hardipatel2510/WeatherX/datasource"
	"github.com/hardipatel2510/WeatherX/models"
)

func TestWeatherStore(t *testing.T) {
	store := NewWeatherStore()
	fetched := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	_, _, ok := store.Get("Ahmedabad", datasource.UnitImperial)
	assert.False(t, ok, "empty store has nothing")

	store.Update("Ahmedabad", datasource.UnitImperial, models.WeatherData{City: "Ahmedabad", Temp: 95}, fetched)

	data, at, ok := store.Get("Ahmedabad", datasource.UnitImperial)
	assert.True(t, ok)
	assert.Equal(t, 95.0, data.Temp)
	assert.Equal(t, fetched, at)
}

func TestWeatherStore_KeyInsensitive(t *testing.T) {
	store := NewWeatherStore()
	store.Update("  Ahmedabad ", datasource.UnitImperial, models.WeatherData{City: "Ahmedabad"}, time.Now())

	_, _, ok := store.Get("ahmedabad", datasource.UnitImperial)
	assert.True(t, ok, "lookups ignore case and surrounding whitespace")
}

func TestWeatherStore_UnitsAreSeparate(t *testing.T) {
	store := NewWeatherStore()
	store.Update("Surat", datasource.UnitImperial, models.WeatherData{City: "Surat", Temp: 95}, time.Now())
	store.Update("Surat", datasource.UnitMetric, models.WeatherData{City: "Surat", Temp: 35}, time.Now())

	imperial, _, _ := store.Get("Surat", datasource.UnitImperial)
	metric, _, _ := store.Get("Surat", datasource.UnitMetric)
	assert.Equal(t, 95.0, imperial.Temp)
	assert.Equal(t, 35.0, metric.Temp)

	assert.Len(t, store.Cities(), 1, "a city counts once across units")
}

func TestWeatherStore_UpdateOverwrites(t *testing.T) {
	store := NewWeatherStore()
	store.Update("Surat", datasource.UnitImperial, models.WeatherData{City: "Surat", Temp: 90}, time.Now())
	store.Update("Surat", datasource.UnitImperial, models.WeatherData{City: "Surat", Temp: 99}, time.Now())

	data, _, _ := store.Get("Surat", datasource.UnitImperial)
	assert.Equal(t, 99.0, data.Temp)
}
