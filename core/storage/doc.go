// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so the snapshot
// archive can be tested against core/storage/mocks. Both AWS S3 and
// self-hosted MinIO endpoints are supported.
//
// # Operations
//
//   - BucketExists / MakeBucket: used by EnsureBucket on startup.
//   - PutObject: uploads a snapshot document.
//   - GetObject: streams the latest snapshot back to API callers.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
