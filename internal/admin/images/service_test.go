package images

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"storefront-backend/internal/shared/storage/object"
)

// fakeBuckets keeps objects in memory keyed by bucket then key.
type fakeBuckets struct {
	mu      sync.Mutex
	objects map[string]map[string]int64
	copyErr map[string]error
}

func newFakeBuckets() *fakeBuckets {
	return &fakeBuckets{
		objects: make(map[string]map[string]int64),
		copyErr: make(map[string]error),
	}
}

func (f *fakeBuckets) put(bucket, key string, size int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.objects[bucket] == nil {
		f.objects[bucket] = make(map[string]int64)
	}
	f.objects[bucket][key] = size
}

func (f *fakeBuckets) List(ctx context.Context, bucket, prefix string) ([]object.Info, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	keys, ok := f.objects[bucket]
	if !ok {
		return nil, object.ErrNotFound
	}
	var out []object.Info
	for key, size := range keys {
		out = append(out, object.Info{Key: key, SizeBytes: size})
	}
	return out, nil
}

func (f *fakeBuckets) Head(ctx context.Context, bucket, key string) (object.Info, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	size, ok := f.objects[bucket][key]
	if !ok {
		return object.Info{}, object.ErrNotFound
	}
	return object.Info{Key: key, SizeBytes: size}, nil
}

func (f *fakeBuckets) Copy(ctx context.Context, srcBucket, srcKey, dstBucket, dstKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.copyErr[srcKey]; err != nil {
		return err
	}
	size, ok := f.objects[srcBucket][srcKey]
	if !ok {
		return object.ErrNotFound
	}
	if f.objects[dstBucket] == nil {
		f.objects[dstBucket] = make(map[string]int64)
	}
	f.objects[dstBucket][dstKey] = size
	return nil
}

func (f *fakeBuckets) Delete(ctx context.Context, bucket, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.objects[bucket][key]; !ok {
		return object.ErrNotFound
	}
	delete(f.objects[bucket], key)
	return nil
}

func TestMigrateCopiesThenSkipsOnRerun(t *testing.T) {
	buckets := newFakeBuckets()
	for i := 0; i < 5; i++ {
		buckets.put("old-images", fmt.Sprintf("products/%d.jpg", i), int64(100+i))
	}
	svc := &Service{Ops: buckets}
	opts := MigrateOptions{
		SrcBucket:       "old-images",
		DstBucket:       "new-images",
		ContinueOnError: true,
	}

	first, err := svc.Migrate(context.Background(), opts)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if len(first.Copied) != 5 || len(first.Skipped) != 0 || len(first.Failed) != 0 {
		t.Fatalf("first run: copied=%d skipped=%d failed=%d",
			len(first.Copied), len(first.Skipped), len(first.Failed))
	}
	if first.Total != 5 {
		t.Fatalf("expected total 5, got %d", first.Total)
	}

	second, err := svc.Migrate(context.Background(), opts)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(second.Copied) != 0 || len(second.Skipped) != 5 {
		t.Fatalf("second run not idempotent: copied=%d skipped=%d",
			len(second.Copied), len(second.Skipped))
	}
}

func TestMigrateSmallBatches(t *testing.T) {
	buckets := newFakeBuckets()
	for i := 0; i < 7; i++ {
		buckets.put("src", fmt.Sprintf("img-%d.png", i), 42)
	}
	svc := &Service{Ops: buckets}

	result, err := svc.Migrate(context.Background(), MigrateOptions{
		SrcBucket:       "src",
		DstBucket:       "dst",
		BatchSize:       3,
		ContinueOnError: true,
	})
	if err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if len(result.Copied) != 7 {
		t.Fatalf("expected 7 copied across batches, got %d", len(result.Copied))
	}
}

func TestMigrateAbortsWithoutContinueOnError(t *testing.T) {
	buckets := newFakeBuckets()
	buckets.put("src", "a.jpg", 1)
	buckets.copyErr["a.jpg"] = errors.New("access denied")
	svc := &Service{Ops: buckets}

	result, err := svc.Migrate(context.Background(), MigrateOptions{
		SrcBucket: "src",
		DstBucket: "dst",
	})
	if err == nil {
		t.Fatal("expected abort error")
	}
	if len(result.Failed) != 1 {
		t.Fatalf("expected 1 failed item in partial result, got %d", len(result.Failed))
	}
}

func TestMigrateRecordsFailuresWithContinueOnError(t *testing.T) {
	buckets := newFakeBuckets()
	buckets.put("src", "good.jpg", 1)
	buckets.put("src", "bad.jpg", 2)
	buckets.copyErr["bad.jpg"] = errors.New("throttled")
	svc := &Service{Ops: buckets}

	result, err := svc.Migrate(context.Background(), MigrateOptions{
		SrcBucket:       "src",
		DstBucket:       "dst",
		ContinueOnError: true,
	})
	if err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if len(result.Copied) != 1 || len(result.Failed) != 1 {
		t.Fatalf("copied=%d failed=%d", len(result.Copied), len(result.Failed))
	}
	if result.Failed[0].Key != "bad.jpg" || result.Failed[0].Error == "" {
		t.Fatalf("unexpected failure record: %+v", result.Failed[0])
	}
}

func TestMigrateDeleteSourceMovesObjects(t *testing.T) {
	buckets := newFakeBuckets()
	buckets.put("src", "move-me.jpg", 9)
	svc := &Service{Ops: buckets}

	result, err := svc.Migrate(context.Background(), MigrateOptions{
		SrcBucket:       "src",
		DstBucket:       "dst",
		DeleteSource:    true,
		ContinueOnError: true,
	})
	if err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if len(result.Copied) != 1 {
		t.Fatalf("expected 1 copied, got %d", len(result.Copied))
	}
	if _, err := buckets.Head(context.Background(), "src", "move-me.jpg"); !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected source object removed, got %v", err)
	}
	if _, err := buckets.Head(context.Background(), "dst", "move-me.jpg"); err != nil {
		t.Fatalf("expected destination object present: %v", err)
	}
}

func TestListUnknownBucket(t *testing.T) {
	svc := &Service{Ops: newFakeBuckets()}
	_, err := svc.List(context.Background(), "missing", "")
	if !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
