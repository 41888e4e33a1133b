// Package config loads the server, database and auth settings from ETM_
// environment variables, an optional .env file and an optional config.yaml,
// applies defaults and validates the result.
package config
