// Package servers exposes the tracked game servers over HTTP.
//
// Routes:
//
//	POST /receive        merge a record or an array of records
//	GET  /messages       live entities, most recently updated first
//	GET  /messages/:key  one live entity by identity key
//	GET  /health         liveness and entity count
//
// The Service wraps the entity store and is shared with the poll loop,
// which calls Ingest directly, and with the periodic sweeper.
package servers
