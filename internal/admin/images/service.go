package images

import (
	"context"
	"errors"
	"sync"

	"storefront-backend/internal/shared/metrics"
	"storefront-backend/internal/shared/storage/object"
	"storefront-backend/internal/shared/telemetry"
)

const defaultBatchSize = 50

// ItemResult records one object's outcome in a bulk operation.
type ItemResult struct {
	Key   string `json:"key"`
	Error string `json:"error,omitempty"`
}

// BulkResult accumulates per-item outcomes across all batches.
type BulkResult struct {
	Copied  []ItemResult `json:"copied"`
	Skipped []ItemResult `json:"skipped"`
	Failed  []ItemResult `json:"failed"`
	Total   int          `json:"total"`
}

// MigrateOptions controls a bulk copy or move.
type MigrateOptions struct {
	SrcBucket       string
	DstBucket       string
	Prefix          string
	BatchSize       int
	ContinueOnError bool
	DeleteSource    bool
}

// Service implements the admin bucket utilities on top of BucketOps.
type Service struct {
	Ops object.BucketOps
}

// List returns the objects under a bucket prefix.
func (s *Service) List(ctx context.Context, bucket, prefix string) ([]object.Info, error) {
	return s.Ops.List(ctx, bucket, prefix)
}

// Migrate bulk-copies every object under the prefix from the source
// bucket to the destination, batch by batch with per-batch fan-out.
// Objects already present at the destination with an identical size are
// skipped, which makes re-runs idempotent.
func (s *Service) Migrate(ctx context.Context, opts MigrateOptions) (BulkResult, error) {
	objects, err := s.Ops.List(ctx, opts.SrcBucket, opts.Prefix)
	if err != nil {
		return BulkResult{}, err
	}

	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	result := BulkResult{
		Copied:  []ItemResult{},
		Skipped: []ItemResult{},
		Failed:  []ItemResult{},
		Total:   len(objects),
	}

	for start := 0; start < len(objects); start += batchSize {
		end := start + batchSize
		if end > len(objects) {
			end = len(objects)
		}
		batch := objects[start:end]

		outcomes := s.runBatch(ctx, batch, opts)
		metrics.IncImageMigrationBatch()

		for _, outcome := range outcomes {
			switch outcome.state {
			case stateCopied:
				result.Copied = append(result.Copied, outcome.item)
			case stateSkipped:
				result.Skipped = append(result.Skipped, outcome.item)
			default:
				result.Failed = append(result.Failed, outcome.item)
				if !opts.ContinueOnError {
					return result, errors.New("migration aborted: " + outcome.item.Error)
				}
			}
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}
	}

	telemetry.Info("image migration finished", map[string]interface{}{
		"src_bucket": opts.SrcBucket,
		"dst_bucket": opts.DstBucket,
		"copied":     len(result.Copied),
		"skipped":    len(result.Skipped),
		"failed":     len(result.Failed),
	})
	return result, nil
}

type itemState int

const (
	stateCopied itemState = iota
	stateSkipped
	stateFailed
)

type outcome struct {
	state itemState
	item  ItemResult
}

// runBatch processes one batch's items concurrently and joins their
// outcomes in input order.
func (s *Service) runBatch(ctx context.Context, batch []object.Info, opts MigrateOptions) []outcome {
	outcomes := make([]outcome, len(batch))
	var wg sync.WaitGroup
	for i, info := range batch {
		wg.Add(1)
		go func(i int, info object.Info) {
			defer wg.Done()
			outcomes[i] = s.migrateOne(ctx, info, opts)
		}(i, info)
	}
	wg.Wait()
	return outcomes
}

func (s *Service) migrateOne(ctx context.Context, info object.Info, opts MigrateOptions) outcome {
	existing, err := s.Ops.Head(ctx, opts.DstBucket, info.Key)
	if err == nil && existing.SizeBytes == info.SizeBytes {
		return outcome{state: stateSkipped, item: ItemResult{Key: info.Key}}
	}
	if err != nil && !errors.Is(err, object.ErrNotFound) {
		return outcome{state: stateFailed, item: ItemResult{Key: info.Key, Error: err.Error()}}
	}

	if err := s.Ops.Copy(ctx, opts.SrcBucket, info.Key, opts.DstBucket, info.Key); err != nil {
		return outcome{state: stateFailed, item: ItemResult{Key: info.Key, Error: err.Error()}}
	}
	if opts.DeleteSource {
		if err := s.Ops.Delete(ctx, opts.SrcBucket, info.Key); err != nil {
			return outcome{state: stateFailed, item: ItemResult{Key: info.Key, Error: "copied but delete failed: " + err.Error()}}
		}
	}
	return outcome{state: stateCopied, item: ItemResult{Key: info.Key}}
}
