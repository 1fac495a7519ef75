// Package storage is the shopper's durable key-value slot store.
package storage

import (
	"context"

	"storefront/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// ErrNotFound is returned by Read when a slot has never been written.
var ErrNotFound = errors.New("storage slot not found")

const contentType = "application/json"

// Store keeps one JSON document per key in a blob bucket.
type Store struct {
	bucket *blob.Bucket
}

// Open opens the bucket at url, e.g. file:///var/lib/shopper?create_dir=1 or mem://.
func Open(ctx context.Context, url string) (*Store, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "open storage bucket %q", url)
	}

	return &Store{bucket: bucket}, nil
}

// Read returns the slot content or ErrNotFound.
func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, objectKey(key))
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read slot %s", key)
	}

	return data, nil
}

// Write overwrites the slot.
func (s *Store) Write(ctx context.Context, key string, data []byte) error {
	err := s.bucket.WriteAll(ctx, objectKey(key), data, &blob.WriterOptions{ContentType: contentType})

	return errors.Wrapf(err, "write slot %s", key)
}

// Clear deletes the slot. Clearing an absent slot is not an error.
func (s *Store) Clear(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, objectKey(key))
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil
	}

	return errors.Wrapf(err, "clear slot %s", key)
}

// Close releases the bucket.
func (s *Store) Close() error {
	return errors.WithStack(s.bucket.Close())
}

func objectKey(key string) string {
	return key + ".json"
}
