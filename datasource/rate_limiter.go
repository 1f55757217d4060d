package datasource

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/hardipatel2510/WeatherX/models"
)

// RateLimitedSource wraps a WeatherSource with client-side rate limiting so
// the background collector cannot burn through the upstream quota.
type RateLimitedSource struct {
	source  WeatherSource
	limiter *rate.Limiter
	name    string
}

// NewRateLimitedSource creates a new rate limited source.
// rps is the maximum requests per second allowed (can be fractional for
// less than 1 request per second); burst is the maximum burst size.
func NewRateLimitedSource(source WeatherSource, rps float64, burst int) *RateLimitedSource {
	return &RateLimitedSource{
		source:  source,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:    fmt.Sprintf("%s [Rate Limited]", source.Name()),
	}
}

// FetchWeather fetches weather data, respecting rate limits.
func (r *RateLimitedSource) FetchWeather(ctx context.Context, city string, unit Unit) (models.WeatherData, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return models.WeatherData{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.source.FetchWeather(ctx, city, unit)
}

// Name returns the source name.
func (r *RateLimitedSource) Name() string {
	return r.name
}

var _ WeatherSource = (*RateLimitedSource)(nil)
