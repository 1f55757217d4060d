package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

const (
	savedCitiesCookie = "saved_cities"
	maxSavedCities    = 12
	cookieMaxAge      = 365 * 24 * 60 * 60
)

// readSavedCities decodes the saved city list from the request cookie.
// A missing or malformed cookie yields an empty list.
func readSavedCities(r *http.Request) []string {
	cookie, err := r.Cookie(savedCitiesCookie)
	if err != nil {
		return nil
	}
	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	var cities []string
	if err := json.Unmarshal([]byte(raw), &cities); err != nil {
		return nil
	}
	return cities
}

func writeSavedCities(w http.ResponseWriter, cities []string) {
	raw, err := json.Marshal(cities)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     savedCitiesCookie,
		Value:    url.QueryEscape(string(raw)),
		Path:     "/",
		MaxAge:   cookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
}

// addSavedCity appends a city, deduplicating case-insensitively and keeping
// the most recent maxSavedCities entries.
func addSavedCity(cities []string, city string) []string {
	city = strings.TrimSpace(city)
	if city == "" {
		return cities
	}
	out := make([]string, 0, len(cities)+1)
	for _, existing := range cities {
		if !strings.EqualFold(existing, city) {
			out = append(out, existing)
		}
	}
	out = append(out, city)
	if len(out) > maxSavedCities {
		out = out[len(out)-maxSavedCities:]
	}
	return out
}

func removeSavedCity(cities []string, city string) []string {
	out := make([]string, 0, len(cities))
	for _, existing := range cities {
		if !strings.EqualFold(existing, strings.TrimSpace(city)) {
			out = append(out, existing)
		}
	}
	return out
}
