package service

import (
	"context"

	"github.com/campuspulse/feedback-api/internal/model"
)

// Sentiment is the classifier verdict for one piece of text.
type Sentiment struct {
	Label string
	Score float64
}

// ClassifierInterface abstracts the sentiment model so ingestion can run
// against a deterministic stub in tests.
type ClassifierInterface interface {
	Classify(ctx context.Context, text string) (Sentiment, error)
}

// DefaultSentiment is the degraded verdict used when the classifier is
// unavailable or errors out. Ingestion never fails on classifier errors.
func DefaultSentiment() Sentiment {
	return Sentiment{Label: model.SentimentNeutral, Score: 0.5}
}
