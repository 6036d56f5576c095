// Package archive exports JSON snapshots of the live entities to S3
// compatible object storage.
//
// Every export writes two objects: <prefix>/<unix>.json and
// <prefix>/latest.json. Exports run on a schedule and on demand;
// concurrent requests are coalesced into a single upload.
//
//	POST /archive         export now
//	GET  /archive/latest  the most recent snapshot
package archive
