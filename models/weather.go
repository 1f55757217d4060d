package models

// Condition is the closed set of weather states the dashboard knows how to
// render. Unmapped upstream values fall back to ConditionClear.
type Condition string

const (
	ConditionClear        Condition = "Clear"
	ConditionClouds       Condition = "Clouds"
	ConditionDrizzle      Condition = "Drizzle"
	ConditionRain         Condition = "Rain"
	ConditionThunderstorm Condition = "Thunderstorm"
	ConditionSnow         Condition = "Snow"
	ConditionFog          Condition = "Fog"
)

// WeatherData is the unified view model produced by one fetch cycle.
// Temperatures are already in the requested unit (the API is queried
// directly in that unit); wind speed is converted on our side.
type WeatherData struct {
	City      string    `json:"city"`
	Temp      float64   `json:"temp"`      // current temperature
	FeelsLike float64   `json:"feelsLike"` // apparent temperature
	High      float64   `json:"high"`      // today's max
	Low       float64   `json:"low"`       // today's min
	Condition Condition `json:"condition"`

	WindSpeed  float64 `json:"windSpeed"` // mph (imperial) or km/h (metric)
	WindDeg    int     `json:"windDeg"`   // wind direction in degrees
	Humidity   float64 `json:"humidity"`  // percentage
	Pressure   float64 `json:"pressure"`  // hPa
	UVIndex    float64 `json:"uvIndex"`
	Visibility float64 `json:"visibility"` // km
	AirQuality int     `json:"airQuality"` // OpenWeather AQI ordinal, 1 (Good) .. 5 (Very Poor)
	Clouds     int     `json:"clouds"`     // cloudiness %

	// MoonPhase is in [0,1): 0 = new moon, 0.5 = full moon.
	MoonPhase float64 `json:"moonPhase"`

	// Sunrise and Sunset are wall-clock strings local to the queried place,
	// e.g. "06:32 AM". Seconds are discarded.
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`

	// Timezone is the place's offset from UTC in seconds. It is the one
	// field that lets every consumer compute "local time at the place"
	// regardless of where the server or the viewer runs.
	Timezone int `json:"timezone"`

	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`

	Hourly []HourlyForecast `json:"hourly"` // chronological
	Daily  []DailyForecast  `json:"daily"`  // index 0 = today, at most 10 entries
}

// HourlyForecast is a dense per-hour snapshot.
type HourlyForecast struct {
	Time       string  `json:"time"` // local wall-clock label, e.g. "6 PM"
	Temp       float64 `json:"temp"`
	Icon       string  `json:"icon"`
	FeelsLike  float64 `json:"feelsLike"`
	Pressure   float64 `json:"pressure"`
	Humidity   float64 `json:"humidity"`
	UVIndex    float64 `json:"uvIndex"`
	Clouds     int     `json:"clouds"`
	Visibility float64 `json:"visibility"` // meters, as delivered upstream
	WindSpeed  float64 `json:"windSpeed"`
	WindDeg    int     `json:"windDeg"`
	Pop        float64 `json:"pop"` // probability of precipitation, 0 when absent upstream
}

// DailyForecast is one row of the 10-day outlook.
type DailyForecast struct {
	Day  string  `json:"day"` // "Today" or a short weekday name, local to the place
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Icon string  `json:"icon"`
}
