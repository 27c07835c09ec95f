package repository

import (
	"github.com/campuspulse/feedback-api/internal/model"
	"gorm.io/gorm"
)

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db}
}

func (r *FeedbackRepository) Create(feedback *model.Feedback) error {
	return r.db.Create(feedback).Error
}

// BulkCreate writes all records in a single transaction. GORM rolls the
// whole batch back if any insert fails, so there is no partial
// visibility.
func (r *FeedbackRepository) BulkCreate(feedbacks []model.Feedback) error {
	if len(feedbacks) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&feedbacks).Error
	})
}

func (r *FeedbackRepository) FindByID(id uint) (*model.Feedback, error) {
	var feedback model.Feedback
	err := r.db.First(&feedback, "id = ?", id).Error
	return &feedback, err
}

func (r *FeedbackRepository) Update(feedback *model.Feedback) error {
	return r.db.Save(feedback).Error
}

// ListNewestFirst returns every record ordered by creation time
// descending. The dashboard fold materializes the full set in memory.
func (r *FeedbackRepository) ListNewestFirst() ([]model.Feedback, error) {
	var feedbacks []model.Feedback
	err := r.db.Order("created_at DESC").Find(&feedbacks).Error
	return feedbacks, err
}

func (r *FeedbackRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Feedback{}).Count(&count).Error
	return count, err
}
