// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv, which reads .env files, with
// github.com/caarlos0/env/v11, which maps variables onto struct fields
// through `env` and `envDefault` tags. Parsed values are cached per type.
//
//	var cfg cookie.Config
//	config.MustLoad(&cfg)
//
//	f, err := cookie.NewFromConfig(cfg, sink)
//
// Call Reset in tests that need to re-read the environment.
package config
