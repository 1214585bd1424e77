// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/whitenoise/core/config"
//
//	type StaticConfig struct {
//		Root   string        `env:"STATIC_ROOT,required"`
//		MaxAge time.Duration `env:"STATIC_MAX_AGE" envDefault:"60s"`
//	}
//
//	func main() {
//		var cfg StaticConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 StaticConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 StaticConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently, so splitting configuration into
// per-component structs keeps each one isolated.
package config
