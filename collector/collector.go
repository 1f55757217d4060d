// Package collector keeps the weather store warm: it refetches every
// configured location on a fixed schedule so dashboard requests are
// answered from memory instead of waiting on the upstream API.
package collector

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hardipatel2510/WeatherX/datasource"
	"github.com/hardipatel2510/WeatherX/models"
)

// Collector periodically refreshes weather data for a set of locations.
// The interval is injectable so tests can drive refreshes without waiting
// on real time.
type Collector struct {
	source     datasource.WeatherSource
	locations  []string
	unit       datasource.Unit
	interval   time.Duration
	outputChan chan models.WeatherData
	errorChan  chan error
}

// New creates a collector that refreshes each location every interval.
func New(source datasource.WeatherSource, locations []string, unit datasource.Unit, interval time.Duration) *Collector {
	return &Collector{
		source:     source,
		locations:  locations,
		unit:       unit,
		interval:   interval,
		outputChan: make(chan models.WeatherData, 100),
		errorChan:  make(chan error, 100),
	}
}

// OutputChannel returns the channel that emits refreshed weather data.
func (c *Collector) OutputChannel() <-chan models.WeatherData {
	return c.outputChan
}

// ErrorChannel returns the channel that emits refresh errors.
func (c *Collector) ErrorChannel() <-chan error {
	return c.errorChan
}

// Start begins refreshing all locations. The returned function stops
// collection and waits for the workers to drain; the channels close once
// everything has wound down.
func (c *Collector) Start(ctx context.Context) func() {
	collectionCtx, cancelCollection := context.WithCancel(ctx)

	var wg sync.WaitGroup
	for _, location := range c.locations {
		wg.Add(1)
		go c.refreshLoop(collectionCtx, &wg, location)
	}

	go func() {
		wg.Wait()
		close(c.outputChan)
		close(c.errorChan)
	}()

	return func() {
		cancelCollection()
		wg.Wait()
	}
}

// refreshLoop fetches one location immediately, then on every tick until
// the context is cancelled.
func (c *Collector) refreshLoop(ctx context.Context, wg *sync.WaitGroup, location string) {
	defer wg.Done()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.fetchOnce(ctx, location)

	for {
		select {
		case <-ticker.C:
			c.fetchOnce(ctx, location)
		case <-ctx.Done():
			return
		}
	}
}

// fetchOnce performs a single refresh for one location.
func (c *Collector) fetchOnce(ctx context.Context, location string) {
	data, err := c.source.FetchWeather(ctx, location, c.unit)
	if err != nil {
		select {
		case c.errorChan <- fmt.Errorf("error refreshing %s: %w", location, err):
		default:
			// Error channel full; the next tick will report again.
		}
		return
	}

	select {
	case c.outputChan <- data:
	case <-ctx.Done():
	}
}
