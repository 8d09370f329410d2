package config

import (
	"os"
	"strings"

	"github.com/apex/log"

	"github.com/minicex/minicex/cli/internal/store"
)

// DefaultAPIURL is used when no API base URL has been stored.
const DefaultAPIURL = "http://localhost:8000"

// KeyAPI is the storage key holding the API base URL.
const KeyAPI = "API"

// EnvAPI overrides the stored API base URL for one process without persisting it.
const EnvAPI = "CEX_API"

// Config holds the API base URL the client talks to.
type Config struct {
	store  store.Store
	apiURL string
}

// Load reads the API base URL from st once and caches it.
func Load(st store.Store) *Config {
	url, ok := st.Get(KeyAPI)
	if !ok || url == "" {
		url = DefaultAPIURL
	}
	if env := strings.TrimSpace(os.Getenv(EnvAPI)); env != "" {
		log.WithField("api", env).Debugf("using %s override", EnvAPI)
		url = env
	}
	return &Config{store: st, apiURL: url}
}

// APIURL returns the current API base URL.
func (c *Config) APIURL() string {
	return c.apiURL
}

// SetAPIURL trims url, makes it current and persists it. The URL is not
// validated. A failed write still leaves url current for this process.
func (c *Config) SetAPIURL(url string) error {
	url = strings.TrimSpace(url)
	c.apiURL = url
	return c.store.Set(KeyAPI, url)
}
