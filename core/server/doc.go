// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines
// the listen port and request limits shared by the ingestion and query
// endpoints.
package server
