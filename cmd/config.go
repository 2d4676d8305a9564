package main

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	LogLevel                 string        `env:"LOG_LEVEL,default=INFO"`
	SentimentEndpoint        string        `env:"SENTIMENT_ENDPOINT" validate:"omitempty,url"`
	ToxicityEndpoint         string        `env:"TOXICITY_ENDPOINT" validate:"omitempty,url"`
	ToxicityFallbackEndpoint string        `env:"TOXICITY_FALLBACK_ENDPOINT" validate:"omitempty,url"`
	HateEndpoint             string        `env:"HATE_ENDPOINT" validate:"omitempty,url"`
	InferenceTimeout         time.Duration `env:"INFERENCE_TIMEOUT,default=10s"`
}

var validate = validator.New()

func (c Config) Validate() error {
	return validate.Struct(c)
}
