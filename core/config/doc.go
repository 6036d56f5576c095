// Package config provides configuration management for server-relay.
//
// Values come from the process environment, optionally seeded from a .env
// file, with defaults declared on each section's struct tags.
//
// # Configuration Structure
//
//   - Server: listen port, read timeout, body limit
//   - Discord: token and channel to poll
//   - Poller: poll interval, page size, optional forward URL
//   - Store: entity TTL and sweep interval
//   - Log: logging level and format
//   - Database: optional MySQL history log
//   - Storage, Archive: optional snapshot export to S3/MinIO
//
// Nested keys map to upper-case variables (poller.interval_ms ->
// POLLER_INTERVAL_MS). A few keys also accept short aliases: PORT,
// TOKEN, CHANNEL_ID, POLL_INTERVAL_MS and EXPIRY_SECONDS.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
