// Package categorizer suggests a category for a bank account from its name
// and description. The suggestion is advisory: callers decide whether to
// store it.
package categorizer

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by Disabled.
var ErrNotConfigured = errors.New("categorizer is not configured")

type Input struct {
	AccountName        string `json:"accountName"`
	AccountDescription string `json:"accountDescription"`
}

// Result is a suggested category and a confidence score within [0, 1].
type Result struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

type Categorizer interface {
	Categorize(ctx context.Context, in Input) (Result, error)
}

// Disabled is used when no model credentials are available.
type Disabled struct{}

func (Disabled) Categorize(context.Context, Input) (Result, error) {
	return Result{}, ErrNotConfigured
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
