package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	searchTotal           atomic.Uint64
	searchDegradedTotal   atomic.Uint64
	searchCacheHitTotal   atomic.Uint64
	recommendationTotal   atomic.Uint64
	visualSearchTotal     atomic.Uint64
	visualFallbackTotal   atomic.Uint64
	checkoutSessionTotal  atomic.Uint64
	checkoutFailedTotal   atomic.Uint64
	imageMigrationBatches atomic.Uint64

	searchDuration       = newHistogram([]float64{5, 10, 25, 50, 100, 250, 500, 1000, 5000})
	visualSearchDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncSearch increments the catalog search counter.
func IncSearch() { searchTotal.Add(1) }

// IncSearchDegraded increments the degraded (database unavailable) search counter.
func IncSearchDegraded() { searchDegradedTotal.Add(1) }

// IncSearchCacheHit increments the search cache hit counter.
func IncSearchCacheHit() { searchCacheHitTotal.Add(1) }

// IncRecommendation increments the recommendation request counter.
func IncRecommendation() { recommendationTotal.Add(1) }

// IncVisualSearch increments the visual search counter.
func IncVisualSearch() { visualSearchTotal.Add(1) }

// IncVisualFallback increments the counter of visual searches served by the fallback analysis.
func IncVisualFallback() { visualFallbackTotal.Add(1) }

// IncCheckoutSession increments the checkout session counter.
func IncCheckoutSession() { checkoutSessionTotal.Add(1) }

// IncCheckoutFailed increments the failed checkout counter.
func IncCheckoutFailed() { checkoutFailedTotal.Add(1) }

// IncImageMigrationBatch increments the processed migration batch counter.
func IncImageMigrationBatch() { imageMigrationBatches.Add(1) }

// ObserveSearchDurationMs records a catalog search duration in milliseconds.
func ObserveSearchDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	searchDuration.Observe(value)
}

// ObserveVisualSearchDurationMs records a visual search duration in milliseconds.
func ObserveVisualSearchDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	visualSearchDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "catalog_search_total", "Total catalog searches", searchTotal.Load())
	writeCounter(&buf, "catalog_search_degraded_total", "Total searches served without the database source", searchDegradedTotal.Load())
	writeCounter(&buf, "catalog_search_cache_hit_total", "Total searches served from cache", searchCacheHitTotal.Load())
	writeCounter(&buf, "recommendation_total", "Total recommendation requests", recommendationTotal.Load())
	writeCounter(&buf, "visual_search_total", "Total visual searches", visualSearchTotal.Load())
	writeCounter(&buf, "visual_search_fallback_total", "Total visual searches served by the fallback analysis", visualFallbackTotal.Load())
	writeCounter(&buf, "checkout_session_total", "Total checkout sessions created", checkoutSessionTotal.Load())
	writeCounter(&buf, "checkout_failed_total", "Total failed checkout attempts", checkoutFailedTotal.Load())
	writeCounter(&buf, "image_migration_batch_total", "Total image migration batches processed", imageMigrationBatches.Load())
	writeHistogram(&buf, "catalog_search_duration_ms", "Catalog search duration in milliseconds", searchDuration.Snapshot())
	writeHistogram(&buf, "visual_search_duration_ms", "Visual search duration in milliseconds", visualSearchDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
