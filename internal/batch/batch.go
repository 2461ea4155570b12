// Package batch runs the cascade over a list of inputs, preserving order.
package batch

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/leadpilot/sector-cli/internal/cascade"
	"github.com/leadpilot/sector-cli/internal/model"
)

// Runner classifies inputs sequentially. The rate limiter paces calls to
// the upstream registry and search endpoints; the first item is never
// delayed.
type Runner struct {
	orchestrator *cascade.Orchestrator
	limiter      *rate.Limiter
}

// NewRunner creates a runner pacing at most ratePerSec classifications per
// second. A zero or negative rate disables pacing.
func NewRunner(orchestrator *cascade.Orchestrator, ratePerSec float64) *Runner {
	var limiter *rate.Limiter
	if ratePerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(ratePerSec), 1)
	}
	return &Runner{orchestrator: orchestrator, limiter: limiter}
}

// Run classifies every non-blank input and returns one result per input,
// in input order. It stops early only on context cancellation.
func (r *Runner) Run(ctx context.Context, inputs []string) ([]model.ClassificationResult, error) {
	results := make([]model.ClassificationResult, 0, len(inputs))

	first := true
	for _, input := range inputs {
		if strings.TrimSpace(input) == "" {
			continue
		}
		if !first && r.limiter != nil {
			if err := r.limiter.Wait(ctx); err != nil {
				return results, eris.Wrap(err, "batch: rate limit wait")
			}
		}
		first = false

		results = append(results, r.orchestrator.Classify(ctx, input))

		if err := ctx.Err(); err != nil {
			return results, eris.Wrap(err, "batch: cancelled")
		}
	}

	zap.L().Info("batch: complete", zap.Int("inputs", len(inputs)), zap.Int("results", len(results)))
	return results, nil
}
