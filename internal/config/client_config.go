package config

import (
	"strconv"
	"time"
)

const (
	backendURLVar      = "BACKEND_URL"
	refreshIntervalVar = "REFRESH_INTERVAL_MINUTES"
	pageLimitVar       = "PAGE_LIMIT"
)

// ClientConfig holds the settings for talking to the platform backend.
type ClientConfig interface {
	GetBackendURL() string
	GetRefreshInterval() time.Duration
	GetPageLimit() int
}

type Client struct{}

var _ ClientConfig = Client{}

func (Client) GetBackendURL() string {
	return GetEnv(backendURLVar, "http://localhost:3000")
}

// GetRefreshInterval returns how often the background task renews the access token.
func (Client) GetRefreshInterval() time.Duration {
	minutes, err := strconv.Atoi(GetEnv(refreshIntervalVar, "14"))
	if err != nil || minutes <= 0 {
		minutes = 14
	}
	return time.Duration(minutes) * time.Minute
}

// GetPageLimit returns the page size used by incremental category/brand loading.
func (Client) GetPageLimit() int {
	limit, err := strconv.Atoi(GetEnv(pageLimitVar, "5"))
	if err != nil || limit <= 0 {
		limit = 5
	}
	return limit
}
