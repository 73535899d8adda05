package ports

// ActionMetrics counts action resolutions for the KPI endpoint.
type ActionMetrics interface {
	RecordMatched()
	RecordMismatched()
	RecordFailure()
}

// TickMetrics counts batch tick outcomes.
type TickMetrics interface {
	RecordTick(processed, skipped int)
}
