// Package storage wraps the MinIO Go client for the two object-storage jobs of this
// module: reading raw year-page payloads from a bucket prefix, and publishing the
// decoded JSONL export next to them. It works against AWS S3 and self-hosted MinIO.
//
// The Client interface is the narrow subset of minio.Client the code calls, which keeps
// tests on core/storage/mocks.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err := storage.RequireBucket(ctx, client, cfg.Storage.Bucket); err != nil {
//	    return err
//	}
//	keys, err := storage.ListKeys(ctx, client, cfg.Storage.Bucket, cfg.Storage.Prefix, ".json")
package storage
