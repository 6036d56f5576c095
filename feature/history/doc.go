// Package history keeps an append-only log of every accepted record in
// MySQL and serves it per job id.
//
// It is enabled only when database.enabled is set and the connection
// succeeds. Writes happen on the ingestion path through servers.Recorder;
// a failed write is logged by the caller and never blocks the store. The
// log is not replayed into the store on startup.
//
//	GET /history/:jobId?limit=N
package history
