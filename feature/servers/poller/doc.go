// Package poller drives ingestion from the upstream channel.
//
// Each cycle lists messages newer than the cursor, processes them oldest
// first, skips messages that name neither a server nor a job, and hands
// the rest to an Ingestor. The cursor advances past every processed
// message whether or not its hand-off succeeded, so delivery is at most
// once. Failures never stop the loop; only context cancellation does.
//
// Two ingestors exist: the servers service writes straight into the local
// store, and Forwarder posts to a remote /receive endpoint.
package poller
