// Package store keeps the freshest known state of each tracked server.
//
// Records are merged under an identity key derived by Keyer:
//
//	job:<jobId>   when the record names a job
//	msg:<id>      otherwise, when it carries a message id
//	ts:<ms>-<n>   otherwise; never merges with anything
//
// A merge only fills or replaces fields with non-empty values. firstSeen is
// fixed at creation and lastSeen never moves backwards. Expired entities
// stay in memory until Sweep runs but are hidden from Snapshot and Get.
package store
