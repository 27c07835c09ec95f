package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/campuspulse/feedback-api/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// HuggingFaceService calls the hosted inference API for a sentiment
// model. The response is a ranked list of {label, score} pairs; the top
// entry wins.
type HuggingFaceService struct {
	APIKey  string
	Model   string
	BaseURL string
	client  *resty.Client
}

func NewHuggingFaceService() *HuggingFaceService {
	cfg := config.LoadClassifierConfig()
	return &HuggingFaceService{
		APIKey:  cfg.HFAPIKey,
		Model:   cfg.HFModel,
		BaseURL: "https://api-inference.huggingface.co/models",
		client:  resty.New().SetTimeout(30 * time.Second),
	}
}

func (s *HuggingFaceService) Classify(ctx context.Context, text string) (Sentiment, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{"inputs": text}).
		Post(fmt.Sprintf("%s/%s", s.BaseURL, s.Model))
	if err != nil {
		return Sentiment{}, err
	}
	if resp.IsError() {
		return Sentiment{}, fmt.Errorf("inference API returned %d: %s", resp.StatusCode(), resp.String())
	}

	// Shape: [[{"label":"POSITIVE","score":0.99},{"label":"NEGATIVE",...}]]
	top := gjson.Get(resp.String(), "0.0")
	if !top.Exists() {
		return Sentiment{}, fmt.Errorf("unexpected inference response: %s", resp.String())
	}

	label := strings.ToUpper(top.Get("label").String())
	score := top.Get("score").Float()
	if label == "" {
		return Sentiment{}, fmt.Errorf("inference response missing label: %s", resp.String())
	}

	return Sentiment{Label: label, Score: score}, nil
}
