package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters for request traffic and triage
// outcomes.
type Metrics struct {
	mu                sync.Mutex
	requestCount      map[string]int64
	errorCount        map[string]int64
	submissions       int64
	autoResolved      int64
	escalated         int64
	transportFailures int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount: make(map[string]int64),
		errorCount:   make(map[string]int64),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
}

// RequestCount returns the number of requests recorded for one
// path/method/status combination.
func (m *Metrics) RequestCount(path, method string, status int) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requestCount[pathKey(path, method, status)]
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// RecordSubmission counts one routed submission by outcome.
func (m *Metrics) RecordSubmission(autoResolved bool) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissions++
	if autoResolved {
		m.autoResolved++
	} else {
		m.escalated++
	}
}

// RecordTransportFailure counts a failed classification call.
func (m *Metrics) RecordTransportFailure() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transportFailures++
}

// TriageCounts returns submission totals: all, auto-resolved, escalated,
// transport failures.
func (m *Metrics) TriageCounts() (int64, int64, int64, int64) {
	if m == nil {
		return 0, 0, 0, 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submissions, m.autoResolved, m.escalated, m.transportFailures
}

func pathKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
