// Package config loads the application configuration.
//
// Values come from struct tag defaults, an optional .env file and MARVEL_-prefixed
// environment variables, in increasing priority. Nested keys use underscores:
// MARVEL_MATCH_FUZZY sets match.fuzzy.
//
// # Configuration Structure
//
//   - Log: level and format
//   - Database: read-only corpus database (sqlite or mysql)
//   - Storage: S3/MinIO bucket holding raw payloads
//   - Decode: worker count and depth ceiling for payload decoding
//   - Match: reading-list matching options
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Decode.Workers)
package config
