package errors

import "fmt"

var (
	ErrEmptyText       = fmt.Errorf("input text is empty")
	ErrNotText         = fmt.Errorf("input is not text content")
	ErrNoEndpoint      = fmt.Errorf("no inference endpoint configured")
	ErrInferenceStatus = fmt.Errorf("inference endpoint returned non-OK status")
)
