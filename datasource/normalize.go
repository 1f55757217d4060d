package datasource

import (
	"math"
	"strings"
	"time"

	"github.com/hardipatel2510/WeatherX/astro"
	"github.com/hardipatel2510/WeatherX/models"
)

// maxDailyEntries caps the outlook length regardless of source.
const maxDailyEntries = 10

// maxHourlyOneCall / maxHourlyForecast bound how much of each feed is kept:
// 24 true hours, or 9 three-hour steps covering a similar span.
const (
	maxHourlyOneCall  = 24
	maxHourlyForecast = 9
)

// Normalize shapes the raw upstream payloads into one WeatherData. It is
// deterministic: "now" is an explicit input and nothing here reads a clock,
// so the same payloads always produce an identical result. oneCall may be
// nil; the basic forecast then covers hourly and daily, with UV defaulting
// to 0 and moon phase falling back to the local epoch calculation.
func Normalize(current *CurrentResponse, forecast *ForecastResponse, oneCall *OneCallResponse, aqi int, unit Unit, now time.Time) models.WeatherData {
	tz := current.Timezone

	var hourly []models.HourlyForecast
	if oneCall != nil && len(oneCall.Hourly) > 0 {
		hourly = hourlyFromOneCall(oneCall.Hourly, tz, unit)
	} else {
		hourly = hourlyFromForecast(forecast.List, tz, unit)
	}

	var daily []models.DailyForecast
	if oneCall != nil && len(oneCall.Daily) > 0 {
		daily = dailyFromOneCall(oneCall.Daily, tz)
	} else {
		daily = aggregateDaily(forecast.List, tz)
	}
	if len(daily) > maxDailyEntries {
		daily = daily[:maxDailyEntries]
	}

	high, low := current.Main.TempMax, current.Main.TempMin
	if len(daily) > 0 {
		high, low = daily[0].Max, daily[0].Min
	}

	uvIndex := 0.0
	moonPhase := astro.MoonPhase(now)
	if oneCall != nil {
		uvIndex = oneCall.Current.UVI
		if len(oneCall.Daily) > 0 && oneCall.Daily[0].MoonPhase != nil {
			moonPhase = *oneCall.Daily[0].MoonPhase
		}
	}

	visibility := 10.0 // km, documented default when upstream omits it
	if current.Visibility > 0 {
		visibility = math.Round(current.Visibility/100) / 10
	}

	return models.WeatherData{
		City:       current.Name,
		Temp:       current.Main.Temp,
		FeelsLike:  current.Main.FeelsLike,
		High:       high,
		Low:        low,
		Condition:  mapCondition(firstWeather(current.Weather).Main),
		WindSpeed:  convertWind(current.Wind.Speed, unit),
		WindDeg:    current.Wind.Deg,
		Humidity:   current.Main.Humidity,
		Pressure:   current.Main.Pressure,
		UVIndex:    uvIndex,
		Visibility: visibility,
		AirQuality: aqi,
		Clouds:     current.Clouds.All,
		MoonPhase:  moonPhase,
		Sunrise:    astro.FormatClockTime(current.Sys.Sunrise, tz),
		Sunset:     astro.FormatClockTime(current.Sys.Sunset, tz),
		Timezone:   tz,
		Lat:        current.Coord.Lat,
		Lon:        current.Coord.Lon,
		Hourly:     hourly,
		Daily:      daily,
	}
}

// convertWind converts the upstream wind speed to the display unit. OWM
// delivers mph for imperial queries (kept as-is) and m/s for metric
// (converted to km/h).
func convertWind(speed float64, unit Unit) float64 {
	if unit == UnitMetric {
		return speed * 3.6
	}
	return speed
}

func hourlyFromOneCall(hours []OneCallHour, tz int, unit Unit) []models.HourlyForecast {
	if len(hours) > maxHourlyOneCall {
		hours = hours[:maxHourlyOneCall]
	}
	out := make([]models.HourlyForecast, 0, len(hours))
	for _, h := range hours {
		out = append(out, models.HourlyForecast{
			Time:       astro.FormatHourLabel(h.Dt, tz),
			Temp:       h.Temp,
			Icon:       mapIcon(firstWeather(h.Weather).Icon),
			FeelsLike:  h.FeelsLike,
			Pressure:   h.Pressure,
			Humidity:   h.Humidity,
			UVIndex:    h.UVI,
			Clouds:     h.Clouds,
			Visibility: h.Visibility,
			WindSpeed:  convertWind(h.WindSpeed, unit),
			WindDeg:    h.WindDeg,
			Pop:        h.Pop,
		})
	}
	return out
}

func hourlyFromForecast(entries []ForecastEntry, tz int, unit Unit) []models.HourlyForecast {
	if len(entries) > maxHourlyForecast {
		entries = entries[:maxHourlyForecast]
	}
	out := make([]models.HourlyForecast, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.HourlyForecast{
			Time:       astro.FormatHourLabel(e.Dt, tz),
			Temp:       e.Main.Temp,
			Icon:       mapIcon(firstWeather(e.Weather).Icon),
			FeelsLike:  e.Main.FeelsLike,
			Pressure:   e.Main.Pressure,
			Humidity:   e.Main.Humidity,
			UVIndex:    0, // not available in the basic forecast
			Clouds:     e.Clouds.All,
			Visibility: e.Visibility,
			WindSpeed:  convertWind(e.Wind.Speed, unit),
			WindDeg:    e.Wind.Deg,
			Pop:        e.Pop,
		})
	}
	return out
}

func dailyFromOneCall(days []OneCallDay, tz int) []models.DailyForecast {
	out := make([]models.DailyForecast, 0, len(days))
	for i, d := range days {
		label := astro.LocalDayName(d.Dt, tz)
		if i == 0 {
			label = "Today"
		}
		out = append(out, models.DailyForecast{
			Day:  label,
			Min:  d.Temp.Min,
			Max:  d.Temp.Max,
			Icon: mapIcon(firstWeather(d.Weather).Icon),
		})
	}
	return out
}

// aggregateDaily folds the 3-hourly feed into per-day min/max buckets. Days
// are keyed by the place's local day name, never the UTC day, and buckets
// appear in first-seen (chronological) order.
func aggregateDaily(entries []ForecastEntry, tz int) []models.DailyForecast {
	type bucket struct {
		min, max float64
		icon     string
	}
	var order []string
	buckets := make(map[string]*bucket)

	for _, e := range entries {
		day := astro.LocalDayName(e.Dt, tz)
		b, ok := buckets[day]
		if !ok {
			buckets[day] = &bucket{
				min:  e.Main.TempMin,
				max:  e.Main.TempMax,
				icon: mapIcon(firstWeather(e.Weather).Icon),
			}
			order = append(order, day)
			continue
		}
		b.min = math.Min(b.min, e.Main.TempMin)
		b.max = math.Max(b.max, e.Main.TempMax)
	}

	out := make([]models.DailyForecast, 0, len(order))
	for i, day := range order {
		b := buckets[day]
		label := day
		if i == 0 {
			label = "Today"
		}
		out = append(out, models.DailyForecast{Day: label, Min: b.min, Max: b.max, Icon: b.icon})
	}
	return out
}

// firstWeather pulls the leading condition block, or a zero value so the
// downstream mapping falls back to "Clear"/"sun".
func firstWeather(blocks []WeatherBlock) WeatherBlock {
	if len(blocks) > 0 {
		return blocks[0]
	}
	return WeatherBlock{}
}

// mapIcon folds an OWM icon code ("10d", "01n", ...) onto the dashboard's
// closed icon set. Unknown codes fall back to "sun" rather than failing.
func mapIcon(iconCode string) string {
	code := strings.NewReplacer("d", "", "n", "").Replace(iconCode)
	switch code {
	case "01":
		return "sun"
	case "02", "03", "04":
		return "cloud"
	case "09", "10":
		return "rain"
	case "11":
		return "lightning"
	case "13":
		return "snow"
	case "50":
		return "cloud" // mist
	default:
		return "sun"
	}
}

// mapCondition folds an OWM "main" string onto the closed Condition enum.
// Unknown values fall back to Clear.
func mapCondition(main string) models.Condition {
	switch strings.ToLower(main) {
	case "clear":
		return models.ConditionClear
	case "clouds":
		return models.ConditionClouds
	case "drizzle":
		return models.ConditionDrizzle
	case "rain":
		return models.ConditionRain
	case "thunderstorm":
		return models.ConditionThunderstorm
	case "snow":
		return models.ConditionSnow
	case "mist", "fog":
		return models.ConditionFog
	default:
		return models.ConditionClear
	}
}
