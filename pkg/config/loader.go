// Package config loads application configuration from environment
// variables into tagged structs.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Load parses environment variables into cfg, which must be a pointer to a
// struct with `env` tags:
//
//	type Config struct {
//	    Port    int           `env:"HTTP_PORT" envDefault:"8080"`
//	    CartTTL time.Duration `env:"CART_TTL" envDefault:"168h"`
//	}
func Load(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}
