// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small Client interface so that S3 and
// self-hosted MinIO work the same way and tests can swap in core/storage/mocks.
//
// # Operations
//
//   - EnsureBucket: creates the archive bucket on first start.
//   - PutJSON / GetJSON: store and load JSON documents (raw provider responses, reconciled records).
//   - ListKeys: lists keys under a prefix, surfacing listing errors.
//   - RemovePrefix: deletes everything archived under a prefix.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
//	    return err
//	}
//	err = storage.PutJSON(ctx, client, cfg.Storage.Bucket, storage.Join(cfg.Storage.Prefix, vin, "result.json"), result)
package storage
