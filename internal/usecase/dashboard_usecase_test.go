package usecase

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/campuspulse/feedback-api/internal/model"
	"github.com/campuspulse/feedback-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedFeedback(t *testing.T, db *gorm.DB, f model.Feedback) model.Feedback {
	t.Helper()
	require.NoError(t, db.Create(&f).Error)
	return f
}

func TestBuildStatsEmptyStore(t *testing.T) {
	db := newTestDB(t)
	uc := NewDashboardUsecase(repository.NewFeedbackRepository(db))

	stats := uc.BuildStats()

	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0, stats.UniqueStudents)
	assert.Equal(t, 0, stats.ResolvedCount)
	assert.Equal(t, map[string]int{"POSITIVE": 0, "NEGATIVE": 0, "NEUTRAL": 0}, stats.SentimentCounts)
	assert.Empty(t, stats.CategoryDistribution)
	assert.Empty(t, stats.TemporalTrends)
	assert.Empty(t, stats.RecentFeed)
	assert.NotNil(t, stats.RecentFeed)
	assert.Equal(t, summaryOptimistic, stats.AISummary)
}

func TestBuildStatsFoldsCountsAndDistributions(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()

	seedFeedback(t, db, model.Feedback{
		StudentID: "S1", Category: "Facilities", Location: "Library",
		Text: "The library needs more power outlets", SentimentLabel: "NEGATIVE",
		SentimentScore: 0.95, Status: model.StatusPending, CreatedAt: now,
	})
	seedFeedback(t, db, model.Feedback{
		StudentID: "S1", Category: "Academics", Location: "Main Block",
		Text: "Professor Smith is excellent!", SentimentLabel: "POSITIVE",
		SentimentScore: 0.99, Status: model.StatusResolved, CreatedAt: now.Add(-time.Hour),
	})
	seedFeedback(t, db, model.Feedback{
		StudentID: "", Category: "", Location: "",
		Text: "ok", SentimentLabel: "NEUTRAL",
		SentimentScore: 0.5, Status: model.StatusPending, CreatedAt: now.Add(-2 * time.Hour),
	})

	uc := NewDashboardUsecase(repository.NewFeedbackRepository(db))
	stats := uc.BuildStats()

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.UniqueStudents, "S1 plus the Unknown fallback")
	assert.Equal(t, 1, stats.ResolvedCount)
	assert.Equal(t, 1, stats.SentimentCounts["POSITIVE"])
	assert.Equal(t, 1, stats.SentimentCounts["NEGATIVE"])
	assert.Equal(t, 1, stats.SentimentCounts["NEUTRAL"])
	assert.Equal(t, 1, stats.CategoryDistribution["Facilities"])
	assert.Equal(t, 1, stats.CategoryDistribution["Academics"])
	assert.Equal(t, 1, stats.CategoryDistribution["General"], "empty category defaults to General")
	assert.Equal(t, 1, stats.LocationStats["Library"])
	assert.Equal(t, 2, stats.LocationStats["Main Block"], "empty location defaults to Main Block")

	day := now.Format("2006-01-02")
	require.Contains(t, stats.TemporalTrends, day)
}

func TestBuildStatsClampsUnknownLabels(t *testing.T) {
	db := newTestDB(t)

	seedFeedback(t, db, model.Feedback{
		StudentID: "S1", Category: "Academics", Location: "Main Block",
		Text: "meh", SentimentLabel: "MIXED", SentimentScore: 0.6,
		Status: model.StatusPending, CreatedAt: time.Now(),
	})
	seedFeedback(t, db, model.Feedback{
		StudentID: "S2", Category: "Academics", Location: "Main Block",
		Text: "nice", SentimentLabel: "positive", SentimentScore: 0.9,
		Status: model.StatusPending, CreatedAt: time.Now(),
	})

	uc := NewDashboardUsecase(repository.NewFeedbackRepository(db))
	stats := uc.BuildStats()

	assert.Equal(t, 1, stats.SentimentCounts["NEUTRAL"], "unknown labels clamp to NEUTRAL")
	assert.Equal(t, 1, stats.SentimentCounts["POSITIVE"], "labels are uppercased before counting")
	assert.NotContains(t, stats.SentimentCounts, "MIXED")
	assert.Len(t, stats.SentimentCounts, 3)
}

func TestBuildStatsRecentFeed(t *testing.T) {
	db := newTestDB(t)
	base := time.Now().Add(-24 * time.Hour)

	for i := 0; i < 20; i++ {
		seedFeedback(t, db, model.Feedback{
			StudentID: fmt.Sprintf("S%d", i), Category: "Academics", Location: "Main Block",
			Text: fmt.Sprintf("feedback %d", i), SentimentLabel: "POSITIVE",
			SentimentScore: 0.987, Status: model.StatusPending,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	uc := NewDashboardUsecase(repository.NewFeedbackRepository(db))
	stats := uc.BuildStats()

	assert.Equal(t, 20, stats.Total)
	require.Len(t, stats.RecentFeed, 15)
	assert.Equal(t, "feedback 19", stats.RecentFeed[0].Text, "feed is newest first")
	assert.Equal(t, "feedback 5", stats.RecentFeed[14].Text)
	assert.Equal(t, 0.99, stats.RecentFeed[0].SentimentScore, "score rounds to 2 decimals")
}

func TestBuildStatsNegativeSummary(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	longText := strings.Repeat("The sports ground is poorly maintained. ", 3)

	seedFeedback(t, db, model.Feedback{
		StudentID: "S1", Category: "Sports", Location: "Sports Complex",
		Text: longText, SentimentLabel: "NEGATIVE", SentimentScore: 0.91,
		Status: model.StatusPending, CreatedAt: now,
	})
	seedFeedback(t, db, model.Feedback{
		StudentID: "S2", Category: "Hostel", Location: "Hostel A",
		Text: "Wifi in hostel is very slow.", SentimentLabel: "NEGATIVE",
		SentimentScore: 0.88, Status: model.StatusPending, CreatedAt: now.Add(-time.Hour),
	})
	seedFeedback(t, db, model.Feedback{
		StudentID: "S3", Category: "Academics", Location: "Main Block",
		Text: "All good", SentimentLabel: "POSITIVE", SentimentScore: 0.99,
		Status: model.StatusPending, CreatedAt: now.Add(-2 * time.Hour),
	})

	uc := NewDashboardUsecase(repository.NewFeedbackRepository(db))
	stats := uc.BuildStats()

	assert.Equal(t, "Critical focus areas: Sports, Hostel. Recurring themes detected: "+
		longText[:50]+"...", stats.AISummary)
}

func TestBuildStatsDegradesOnStoreFailure(t *testing.T) {
	db := newTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	uc := NewDashboardUsecase(repository.NewFeedbackRepository(db))
	stats := uc.BuildStats()

	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, summaryDiagnosticFailure, stats.AISummary)
	assert.Empty(t, stats.RecentFeed)
}
