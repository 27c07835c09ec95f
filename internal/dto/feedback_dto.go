package dto

type CreateFeedbackRequest struct {
	StudentID string `json:"student_id"`
	Category  string `json:"category"`
	Text      string `json:"text"`
	Location  string `json:"location"`
}

type ResolveFeedbackRequest struct {
	Note *string `json:"note"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
