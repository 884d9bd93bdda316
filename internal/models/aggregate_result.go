package models

// Summary carries the headline statistics of a filtered log subset. The
// latency fields are nil when the subset is empty.
type Summary struct {
	TotalRequests   int64    `json:"total_requests"`
	UniqueIPs       int64    `json:"unique_ips"`
	AvgResponseTime *float64 `json:"avg_response_time"`
	MinResponseTime *float64 `json:"min_response_time"`
	MaxResponseTime *float64 `json:"max_response_time"`
	ErrorRate       float64  `json:"error_rate"`
}

// EndpointStatsEntry is one row of the top-endpoints view.
type EndpointStatsEntry struct {
	Endpoint    string  `json:"endpoint"`
	Requests    int64   `json:"requests"`
	AvgTime     float64 `json:"avg_time"`
	ErrorsCount int64   `json:"errors_count"`
}

// TopIPEntry is one row of the top-IPs ranking.
type TopIPEntry struct {
	IP       string `json:"ip"`
	Requests int64  `json:"requests"`
}

// TimeSeriesEntry is one time bucket, keyed by the period-truncated timestamp.
type TimeSeriesEntry struct {
	Timestamp string  `json:"timestamp"`
	Requests  int64   `json:"requests"`
	AvgTime   float64 `json:"avg_time"`
	ErrorRate float64 `json:"error_rate"`
}

// AggregateResult is the composed dashboard response: all seven views derived
// from one owner-scoped, time-filtered subset. Floats are rounded to two
// decimals when the result is composed.
type AggregateResult struct {
	Summary       Summary              `json:"summary"`
	MethodUsage   map[string]int64     `json:"method_usage"`
	EndpointStats []EndpointStatsEntry `json:"endpoint_stats"`
	StatusCodes   map[int]int64        `json:"status_codes"`
	TopIPs        []TopIPEntry         `json:"top_ips"`
	TimeSeries    []TimeSeriesEntry    `json:"time_series"`
}

// NewEmptyAggregateResult returns the canonical result for an empty subset:
// zero counts, absent latency stats, zero error rate, empty collections.
func NewEmptyAggregateResult() *AggregateResult {
	return &AggregateResult{
		Summary:       Summary{},
		MethodUsage:   make(map[string]int64),
		EndpointStats: []EndpointStatsEntry{},
		StatusCodes:   make(map[int]int64),
		TopIPs:        []TopIPEntry{},
		TimeSeries:    []TimeSeriesEntry{},
	}
}
