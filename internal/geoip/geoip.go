// Package geoip resolves the coarse location of this machine from its public
// IP. The automatic theme uses it to tell day from night.
package geoip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"
)

var (
	ErrStatus      = errors.New("geoip: non-200 response from API")
	ErrNoTimezone  = errors.New("geoip: timezone not provided")
	ErrBadLocation = errors.New("geoip: coordinates out of range")
)

// LocationInfo stores geographic data and timezone.
type LocationInfo struct {
	Country   string    `json:"country"`
	City      string    `json:"city"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Timezone  string    `json:"timezone"`
	IP        string    `json:"query"`
	TimeStamp time.Time `json:"-"`
}

// Location returns the time zone of the place.
func (l *LocationInfo) Location() (*time.Location, error) {
	return time.LoadLocation(l.Timezone)
}

// Fallback is used when the lookup fails; any fixed place works for a theme.
var Fallback = LocationInfo{
	Country:  "The Netherlands",
	City:     "Amsterdam",
	Lat:      52.3728,
	Lon:      4.88805,
	Timezone: "Europe/Amsterdam",
}

// Client queries an ip-api.com compatible endpoint and caches the answer.
type Client struct {
	URL      string
	HTTP     *http.Client
	CacheTTL time.Duration

	mu        sync.Mutex
	cache     *LocationInfo
	cacheTime time.Time
}

// NewClient returns a client for url with a request timeout.
func NewClient(url string, timeout, ttl time.Duration) *Client {
	return &Client{
		URL:      url,
		HTTP:     &http.Client{Timeout: timeout},
		CacheTTL: ttl,
	}
}

// Default client with default settings.
var Default = NewClient("http://ip-api.com/json/", 5*time.Second, time.Hour)

// Lookup resolves the location with the default client.
func Lookup(ctx context.Context) (*LocationInfo, error) {
	return Default.Lookup(ctx)
}

// Lookup returns the cached location while it is fresh, otherwise asks the API.
func (c *Client) Lookup(ctx context.Context) (*LocationInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cache != nil && time.Since(c.cacheTime) <= c.CacheTTL {
		return c.cache, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}
	info := &LocationInfo{}
	if err := json.NewDecoder(resp.Body).Decode(info); err != nil {
		return nil, fmt.Errorf("geoip: decode: %w", err)
	}
	if info.Timezone == "" {
		return nil, ErrNoTimezone
	}
	if _, err := info.Location(); err != nil {
		return nil, err
	}
	if info.Lat < -90 || info.Lat > 90 || info.Lon < -180 || info.Lon > 180 {
		return nil, ErrBadLocation
	}

	info.TimeStamp = time.Now()
	c.cache = info
	c.cacheTime = info.TimeStamp
	return info, nil
}

// Forget drops the cached answer.
func (c *Client) Forget() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = nil
}
