// Package config holds the gallery generator configuration.
//
// All tunables (page size, thumbnail geometry, tag vocabulary, output
// locations) live in an explicit Config value passed into the pipeline
// rather than in package-level state. Defaults can be overridden through
// environment variables, an optional .env file, and command-line flags.
package config
