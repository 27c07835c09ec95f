package dto

// SentimentTriple is a per-day sentiment breakdown for temporal trends.
type SentimentTriple struct {
	Positive int `json:"POSITIVE"`
	Negative int `json:"NEGATIVE"`
	Neutral  int `json:"NEUTRAL"`
}

// RecentFeedItem is the display projection of one record in the
// dashboard's recent-activity slice.
type RecentFeedItem struct {
	ID             uint    `json:"id"`
	StudentID      string  `json:"student_id"`
	Category       string  `json:"category"`
	Location       string  `json:"location"`
	Text           string  `json:"text"`
	Status         string  `json:"status"`
	SentimentLabel string  `json:"sentiment_label"`
	SentimentScore float64 `json:"sentiment_score"`
	CreatedAt      string  `json:"created_at"`
}

// DashboardStats is the aggregated summary returned to the admin view.
type DashboardStats struct {
	Total                int                         `json:"total"`
	UniqueStudents       int                         `json:"unique_students"`
	ResolvedCount        int                         `json:"resolved_count"`
	SentimentCounts      map[string]int              `json:"sentiment_counts"`
	CategoryDistribution map[string]int              `json:"category_distribution"`
	LocationStats        map[string]int              `json:"location_stats"`
	TemporalTrends       map[string]*SentimentTriple `json:"temporal_trends"`
	AISummary            string                      `json:"ai_summary"`
	RecentFeed           []RecentFeedItem            `json:"recent_feed"`
}
