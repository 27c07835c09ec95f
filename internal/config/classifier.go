package config

import (
	"os"
	"sync"
)

type ClassifierConfig struct {
	Provider     string // "huggingface" (default) or "gemini"
	HFAPIKey     string
	HFModel      string
	GeminiAPIKey string
}

var (
	classifierConfig *ClassifierConfig
	classifierOnce   sync.Once
)

func LoadClassifierConfig() *ClassifierConfig {
	classifierOnce.Do(func() {
		provider := os.Getenv("CLASSIFIER_PROVIDER")
		if provider == "" {
			provider = "huggingface"
		}
		model := os.Getenv("HF_MODEL")
		if model == "" {
			model = "distilbert-base-uncased-finetuned-sst-2-english"
		}
		classifierConfig = &ClassifierConfig{
			Provider:     provider,
			HFAPIKey:     os.Getenv("HF_API_KEY"),
			HFModel:      model,
			GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		}
	})
	return classifierConfig
}
