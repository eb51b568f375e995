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
	reportOpenAITotal        atomic.Uint64
	reportFallbackTotal      atomic.Uint64
	reportErrorFallbackTotal atomic.Uint64

	emailSentTotal      atomic.Uint64
	emailSimulatedTotal atomic.Uint64
	emailFailedTotal    atomic.Uint64

	reportDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncReportOpenAI counts a report generated by the LLM provider.
func IncReportOpenAI() {
	reportOpenAITotal.Add(1)
}

// IncReportFallback counts a report served by the deterministic fallback.
func IncReportFallback() {
	reportFallbackTotal.Add(1)
}

// IncReportErrorFallback counts a fallback triggered by an unexpected error.
func IncReportErrorFallback() {
	reportErrorFallbackTotal.Add(1)
}

// IncEmailSent counts a delivered report email.
func IncEmailSent() {
	emailSentTotal.Add(1)
}

// IncEmailSimulated counts an email skipped for missing credentials.
func IncEmailSimulated() {
	emailSimulatedTotal.Add(1)
}

// IncEmailFailed counts an email the provider rejected. The user-facing
// response stays optimistic; this counter is where the failure surfaces.
func IncEmailFailed() {
	emailFailedTotal.Add(1)
}

// ObserveReportDurationMs records a report generation duration in milliseconds.
func ObserveReportDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	reportDuration.Observe(value)
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
	writeCounter(&buf, "report_openai_total", "Total reports generated by the LLM provider", reportOpenAITotal.Load())
	writeCounter(&buf, "report_fallback_total", "Total reports served by the deterministic fallback", reportFallbackTotal.Load())
	writeCounter(&buf, "report_error_fallback_total", "Total fallbacks triggered by unexpected errors", reportErrorFallbackTotal.Load())
	writeCounter(&buf, "email_sent_total", "Total report emails delivered", emailSentTotal.Load())
	writeCounter(&buf, "email_simulated_total", "Total report emails simulated without credentials", emailSimulatedTotal.Load())
	writeCounter(&buf, "email_failed_total", "Total report emails rejected by the provider", emailFailedTotal.Load())
	writeHistogram(&buf, "report_duration_ms", "Report generation duration in milliseconds", reportDuration.Snapshot())
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
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
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

// NowMillis returns current time in milliseconds for duration math.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
