package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hardipatel2510/WeatherX/astro"
	"github.com/hardipatel2510/WeatherX/ephemeris"
)

// astroreport prints a sun and moon report for a coordinate without touching
// any weather API. Useful for eyeballing the ephemeris output.
func main() {
	lat := flag.Float64("lat", 23.0225, "Latitude in decimal degrees")
	lon := flag.Float64("lon", 72.5714, "Longitude in decimal degrees")
	dateStr := flag.String("date", "", "Date as YYYY-MM-DD (default today, UTC)")
	tzOffset := flag.Int("tz", 19800, "UTC offset in seconds for formatted times")
	flag.Parse()

	date := time.Now().UTC()
	if *dateStr != "" {
		parsed, err := time.Parse("2006-01-02", *dateStr)
		if err != nil {
			log.Fatalf("Invalid -date %q: %v", *dateStr, err)
		}
		date = parsed
	}

	obs := ephemeris.NewObserver(*lat, *lon)

	fmt.Printf("=== Astro report for %.4f, %.4f on %s ===\n\n",
		*lat, *lon, date.Format("2006-01-02"))

	sun := obs.SunTimes(date)
	fmt.Println("Sun:")
	fmt.Printf("  Dawn:    %s\n", clock(sun.Dawn, *tzOffset))
	fmt.Printf("  Sunrise: %s\n", clock(sun.Sunrise, *tzOffset))
	fmt.Printf("  Sunset:  %s\n", clock(sun.Sunset, *tzOffset))
	fmt.Printf("  Dusk:    %s\n", clock(sun.Dusk, *tzOffset))
	fmt.Printf("  Elevation now: %.1f deg\n\n", obs.SunElevation(time.Now().UTC()))

	ill := obs.MoonIllumination(date)
	phase := astro.MoonPhase(date)
	fmt.Println("Moon:")
	fmt.Printf("  Phase:        %.3f (%s)\n", phase, astro.PhaseName(phase))
	fmt.Printf("  Illuminated:  %.0f%%\n", ill.Fraction*100)
	fmt.Printf("  Waxing:       %v\n", astro.Waxing(phase))

	times := obs.MoonTimes(date)
	switch {
	case times.AlwaysUp:
		fmt.Println("  Moon is above the horizon all day")
	case times.AlwaysDown:
		fmt.Println("  Moon is below the horizon all day")
	default:
		if times.Rise != nil {
			fmt.Printf("  Moonrise:     %s\n", clock(*times.Rise, *tzOffset))
		}
		if times.Set != nil {
			fmt.Printf("  Moonset:      %s\n", clock(*times.Set, *tzOffset))
		}
	}

	fmt.Println("\nSeven-day moon timeline:")
	for _, item := range astro.MoonTimeline(obs, date) {
		fmt.Printf("  %-6s %-16s %3.0f%% illuminated\n",
			item.Label, astro.PhaseName(item.Phase), item.Fraction*100)
	}
}

func clock(t time.Time, offset int) string {
	if t.IsZero() {
		return "-"
	}
	return astro.FormatClockTime(t.Unix(), offset)
}
