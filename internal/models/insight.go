// ABOUTME: Derived insight types: daily series, chart points, insight results.
// ABOUTME: All ephemeral; recomputed per query and never persisted.
package models

// DailyDatum is one day of a gap-filled daily series.
type DailyDatum struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ChartPoint is a single chart-ready value with its axis label.
type ChartPoint struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
	Unit  string  `json:"unit,omitempty"`
}

// InsightSeries groups chart points under a named topic.
type InsightSeries struct {
	Topic string       `json:"topic"`
	Data  []ChartPoint `json:"data"`
}

// InsightResult is the full payload for one insight over a date range.
// An insight with no logged data carries an empty Series slice so callers
// can render an explicit "no data" state instead of omitting the entry.
type InsightResult struct {
	InsightKey  string          `json:"insightKey"`
	InsightName string          `json:"insightName"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	Series      []InsightSeries `json:"series"`
}

// InsightTopic names one insight a patient is eligible to see.
type InsightTopic struct {
	InsightName string `json:"insightName"`
	InsightKey  string `json:"insightKey"`
}
