package datasource

// Raw OpenWeatherMap payload shapes. Only the fields the normalizer reads
// are declared; everything else in the upstream JSON is ignored.

// WeatherBlock is the condition descriptor shared by every endpoint.
type WeatherBlock struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CurrentResponse is the /data/2.5/weather payload.
type CurrentResponse struct {
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Pressure  float64 `json:"pressure"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Weather    []WeatherBlock `json:"weather"`
	Visibility float64        `json:"visibility"` // meters
	Name       string         `json:"name"`
	Timezone   int            `json:"timezone"` // seconds offset from UTC
	Sys        struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
}

// ForecastResponse is the 5-day/3-hour /data/2.5/forecast payload.
type ForecastResponse struct {
	List []ForecastEntry `json:"list"`
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
}

// ForecastEntry is one 3-hour step of the basic forecast.
type ForecastEntry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Pressure  float64 `json:"pressure"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Weather    []WeatherBlock `json:"weather"`
	Visibility float64        `json:"visibility"`
	Pop        float64        `json:"pop"`
}

// OneCallResponse is the /data/3.0/onecall (or 2.5) payload: true per-hour
// steps plus daily entries carrying UV and moon phase.
type OneCallResponse struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Current struct {
		UVI float64 `json:"uvi"`
	} `json:"current"`
	Hourly []OneCallHour `json:"hourly"`
	Daily  []OneCallDay  `json:"daily"`
}

// OneCallHour is one per-hour step.
type OneCallHour struct {
	Dt         int64          `json:"dt"`
	Temp       float64        `json:"temp"`
	FeelsLike  float64        `json:"feels_like"`
	Pressure   float64        `json:"pressure"`
	Humidity   float64        `json:"humidity"`
	UVI        float64        `json:"uvi"`
	Clouds     int            `json:"clouds"`
	Visibility float64        `json:"visibility"`
	WindSpeed  float64        `json:"wind_speed"`
	WindDeg    int            `json:"wind_deg"`
	Pop        float64        `json:"pop"`
	Weather    []WeatherBlock `json:"weather"`
}

// OneCallDay is one daily entry. MoonPhase is a pointer so a genuinely
// absent field is distinguishable from new moon.
type OneCallDay struct {
	Dt   int64 `json:"dt"`
	Temp struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	} `json:"temp"`
	Weather   []WeatherBlock `json:"weather"`
	MoonPhase *float64       `json:"moon_phase,omitempty"`
	Moonrise  int64          `json:"moonrise"`
	Moonset   int64          `json:"moonset"`
	Pop       float64        `json:"pop"`
	UVI       float64        `json:"uvi"`
}

// PollutionResponse is the /data/2.5/air_pollution payload. The AQI is
// OpenWeather's 1-5 ordinal.
type PollutionResponse struct {
	List []struct {
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
	} `json:"list"`
}

// GeoResult is one hit from the direct geocoding endpoint.
type GeoResult struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
}
