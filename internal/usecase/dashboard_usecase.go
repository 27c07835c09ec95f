package usecase

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/campuspulse/feedback-api/internal/dto"
	"github.com/campuspulse/feedback-api/internal/model"
	"github.com/campuspulse/feedback-api/internal/repository"
)

const (
	recentFeedLimit   = 15
	summaryExcerptLen = 50

	summaryOptimistic        = "Sentiment trajectory is optimal. No critical architectural issues detected across segments."
	summaryDiagnosticFailure = "System diagnostic failed."
)

type DashboardUsecase struct {
	feedbackRepo *repository.FeedbackRepository
}

func NewDashboardUsecase(feedbackRepo *repository.FeedbackRepository) *DashboardUsecase {
	return &DashboardUsecase{feedbackRepo: feedbackRepo}
}

// BuildStats folds every record (newest first) into the dashboard
// summary in a single pass. The dashboard never fails: any error or
// panic degrades to empty stats with a diagnostic message.
func (uc *DashboardUsecase) BuildStats() (stats dto.DashboardStats) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("CRITICAL ERROR: dashboard aggregation panicked: %v", r)
			stats = emptyStats()
			stats.AISummary = summaryDiagnosticFailure
		}
	}()

	stats = emptyStats()

	feedbacks, err := uc.feedbackRepo.ListNewestFirst()
	if err != nil {
		log.Printf("CRITICAL ERROR: dashboard aggregation failed: %v", err)
		stats.AISummary = summaryDiagnosticFailure
		return stats
	}

	stats.Total = len(feedbacks)

	students := make(map[string]struct{})
	seenNegCategory := make(map[string]bool)
	var negCategories []string
	var firstNegativeText string
	haveNegative := false

	for _, f := range feedbacks {
		label := strings.ToUpper(f.SentimentLabel)
		if _, known := stats.SentimentCounts[label]; !known {
			// Labels outside the expected set clamp to NEUTRAL so the
			// dashboard key set stays fixed.
			label = model.SentimentNeutral
		}

		category := f.Category
		if category == "" {
			category = "General"
		}
		location := f.Location
		if location == "" {
			location = model.DefaultLocation
		}
		studentID := f.StudentID
		if studentID == "" {
			studentID = "Unknown"
		}
		students[studentID] = struct{}{}

		if f.Status == model.StatusResolved {
			stats.ResolvedCount++
		}

		stats.SentimentCounts[label]++
		stats.CategoryDistribution[category]++
		stats.LocationStats[location]++

		dateStr := f.CreatedAt.Format("2006-01-02")
		trend, ok := stats.TemporalTrends[dateStr]
		if !ok {
			trend = &dto.SentimentTriple{}
			stats.TemporalTrends[dateStr] = trend
		}
		switch label {
		case model.SentimentPositive:
			trend.Positive++
		case model.SentimentNegative:
			trend.Negative++
		default:
			trend.Neutral++
		}

		if len(stats.RecentFeed) < recentFeedLimit {
			stats.RecentFeed = append(stats.RecentFeed, dto.RecentFeedItem{
				ID:             f.ID,
				StudentID:      f.StudentID,
				Category:       f.Category,
				Location:       location,
				Text:           f.Text,
				Status:         f.Status,
				SentimentLabel: f.SentimentLabel,
				SentimentScore: math.Round(f.SentimentScore*100) / 100,
				CreatedAt:      f.CreatedAt.Format(time.RFC3339),
			})
		}

		if f.SentimentLabel == model.SentimentNegative {
			if !haveNegative {
				haveNegative = true
				firstNegativeText = f.Text
			}
			if !seenNegCategory[f.Category] {
				seenNegCategory[f.Category] = true
				negCategories = append(negCategories, f.Category)
			}
		}
	}

	stats.UniqueStudents = len(students)

	if haveNegative {
		stats.AISummary = fmt.Sprintf("Critical focus areas: %s. Recurring themes detected: %s...",
			strings.Join(negCategories, ", "), excerpt(firstNegativeText, summaryExcerptLen))
	} else {
		stats.AISummary = summaryOptimistic
	}

	return stats
}

func emptyStats() dto.DashboardStats {
	return dto.DashboardStats{
		SentimentCounts: map[string]int{
			model.SentimentPositive: 0,
			model.SentimentNegative: 0,
			model.SentimentNeutral:  0,
		},
		CategoryDistribution: map[string]int{},
		LocationStats:        map[string]int{},
		TemporalTrends:       map[string]*dto.SentimentTriple{},
		RecentFeed:           []dto.RecentFeedItem{},
	}
}

func excerpt(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
