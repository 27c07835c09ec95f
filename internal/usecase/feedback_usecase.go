package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/campuspulse/feedback-api/internal/dto"
	"github.com/campuspulse/feedback-api/internal/model"
	"github.com/campuspulse/feedback-api/internal/repository"
	"github.com/campuspulse/feedback-api/internal/service"
	"github.com/campuspulse/feedback-api/internal/util"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("feedback not found")
	ErrMissingColumns = errors.New("missing required columns: category, text, student_id")
)

const defaultResolutionNote = "Resolved by Admin"

// Columns a bulk upload must carry, matched case-insensitively.
var requiredColumns = []string{"category", "text", "student_id"}

type FeedbackUsecase struct {
	feedbackRepo *repository.FeedbackRepository
	classifier   service.ClassifierInterface
}

func NewFeedbackUsecase(feedbackRepo *repository.FeedbackRepository, classifier service.ClassifierInterface) *FeedbackUsecase {
	return &FeedbackUsecase{feedbackRepo: feedbackRepo, classifier: classifier}
}

// Submit classifies and stores a single submission, returning the fully
// populated record.
func (uc *FeedbackUsecase) Submit(ctx context.Context, req dto.CreateFeedbackRequest) (*model.Feedback, error) {
	verdict := uc.classify(ctx, req.Text)

	location := req.Location
	if location == "" {
		location = model.DefaultLocation
	}

	feedback := model.Feedback{
		StudentID:      req.StudentID,
		Category:       req.Category,
		Location:       location,
		Text:           req.Text,
		SentimentLabel: verdict.Label,
		SentimentScore: verdict.Score,
		Aspects:        service.TagAspects(req.Text, verdict.Label),
		Status:         model.StatusPending,
		CreatedAt:      time.Now(),
	}

	if err := uc.feedbackRepo.Create(&feedback); err != nil {
		return nil, fmt.Errorf("failed to store feedback: %w", err)
	}
	return &feedback, nil
}

// BulkImport stages one record per row and writes them in a single
// transaction. Any failure rolls the whole batch back; the returned
// count is the number of records written.
func (uc *FeedbackUsecase) BulkImport(ctx context.Context, table *util.Table) (int, error) {
	if !table.HasColumns(requiredColumns...) {
		return 0, ErrMissingColumns
	}

	batchID := uuid.New()

	staged := make([]model.Feedback, 0, len(table.Rows))
	for _, row := range table.Rows {
		verdict := uc.classify(ctx, row["text"])

		location := row["location"]
		if location == "" {
			location = model.DefaultLocation
		}

		staged = append(staged, model.Feedback{
			StudentID:      row["student_id"],
			Category:       row["category"],
			Location:       location,
			Text:           row["text"],
			SentimentLabel: verdict.Label,
			SentimentScore: verdict.Score,
			Aspects:        service.TagAspects(row["text"], verdict.Label),
			Status:         model.StatusPending,
			CreatedAt:      time.Now(),
		})
	}

	if err := uc.feedbackRepo.BulkCreate(staged); err != nil {
		return 0, fmt.Errorf("bulk import %s failed: %w", batchID, err)
	}

	log.Printf("bulk import %s: %d records written", batchID, len(staged))
	return len(staged), nil
}

// Resolve marks a record RESOLVED and attaches a resolution note. The
// creation timestamp is left alone; resolved_at records when it
// happened.
func (uc *FeedbackUsecase) Resolve(id uint, note *string) error {
	feedback, err := uc.feedbackRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	resolution := defaultResolutionNote
	if note != nil {
		resolution = *note
	}

	now := time.Now()
	feedback.Status = model.StatusResolved
	feedback.ResolutionNote = &resolution
	feedback.ResolvedAt = &now

	return uc.feedbackRepo.Update(feedback)
}

func (uc *FeedbackUsecase) classify(ctx context.Context, text string) service.Sentiment {
	verdict, err := uc.classifier.Classify(ctx, text)
	if err != nil {
		log.Printf("classifier unavailable, using neutral default: %v", err)
		return service.DefaultSentiment()
	}
	return verdict
}
