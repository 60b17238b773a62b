package main

import (
	"log"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/hylla/browse/pkg/types"
)

type Config struct {
	Listen         string             `toml:"listen"`
	DebugListen    string             `toml:"debug_listen"`
	ShopApiUrl     string             `toml:"shop_api_url"`
	RequestTimeout int                `toml:"request_timeout_seconds"`
	Facets         types.FacetOptions `toml:"facets"`
}

func defaultConfig() Config {
	return Config{
		Listen:         ":8080",
		DebugListen:    ":8081",
		RequestTimeout: 10,
		Facets:         types.DefaultFacetOptions(),
	}
}

// LoadConfig reads the TOML config file if present and applies env
// overrides on top. A missing file keeps defaults.
func LoadConfig(path string) Config {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("invalid config %s: %v", path, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("could not read config %s: %v", path, err)
	}
	if len(cfg.Facets.Seasons) == 0 {
		cfg.Facets.Seasons = types.DefaultFacetOptions().Seasons
	}
	if len(cfg.Facets.Styles) == 0 {
		cfg.Facets.Styles = types.DefaultFacetOptions().Styles
	}
	if v := os.Getenv("SHOP_API_URL"); v != "" {
		cfg.ShopApiUrl = v
	}
	if v := os.Getenv("LISTEN_ADDRESS"); v != "" {
		cfg.Listen = v
	}
	return cfg
}
