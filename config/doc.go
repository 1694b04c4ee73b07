// Package config loads settings for the demo commands.
//
// It uses Viper to read an optional config file plus environment overrides,
// and godotenv to load a local .env file first. Environment variables use
// the PIPEKIT_ prefix with underscore-separated paths (e.g.
// PIPEKIT_LOG_LEVEL, PIPEKIT_GENERATOR_COUNT). A missing config file is not
// an error; defaults apply.
package config
