// ============================================================================
// textkit - Code point safe string tooling
// ============================================================================
//
// Package:     pipeline
// Description: Applies the steps of a job to each of its inputs
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package pipeline

import (
	"context"
	"fmt"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/pkg/core/logging"
)

// Result is the outcome for one input. Output is empty when Err is set.
type Result struct {
	Input  string
	Output string
	Err    error

	// FailedStep is the index of the step that failed, or -1
	FailedStep int
}

// OK reports whether every step succeeded
func (r Result) OK() bool {
	return r.Err == nil
}

// Run applies the steps to every input in order. A failing step stops
// processing of that input only; the remaining inputs still run.
func (j *Job) Run() []Result {
	results := make([]Result, len(j.Inputs))
	for i, input := range j.Inputs {
		results[i] = j.apply(input)
	}
	return results
}

func (j *Job) apply(input string) Result {
	current := input
	for i, step := range j.Steps {
		op, ok := Lookup(step.Op)
		if !ok {
			return Result{Input: input, FailedStep: i,
				Err: errors.NotFound(errors.ModulePipeline, "run", step.Op)}
		}

		out, err := op.Handler(current, step.Params)
		if err != nil {
			return Result{Input: input, FailedStep: i, Err: stepError(i, step.Op, err)}
		}
		current = out
	}
	return Result{Input: input, Output: current, FailedStep: -1}
}

// Summary counts succeeded and failed results
func Summary(results []Result) (succeeded, failed int) {
	for _, r := range results {
		if r.OK() {
			succeeded++
		} else {
			failed++
		}
	}
	return succeeded, failed
}

// Runner validates and runs jobs with logging and cancellation
type Runner struct {
	logger *logging.Logger
}

// NewRunner creates a runner. A nil logger gets the default "pipeline"
// logger.
func NewRunner(logger *logging.Logger) *Runner {
	if logger == nil {
		logger = logging.New("pipeline")
	}
	return &Runner{logger: logger}
}

// Run validates the job and processes its inputs, checking ctx between
// inputs. On cancellation the results gathered so far are returned with
// the context error.
func (r *Runner) Run(ctx context.Context, job *Job) ([]Result, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}

	timer := r.logger.StartTimer("pipeline.run").
		WithField("job", job.Name).
		WithField("inputs", len(job.Inputs)).
		WithField("steps", len(job.Steps))

	results := make([]Result, 0, len(job.Inputs))
	for i, input := range job.Inputs {
		if err := ctx.Err(); err != nil {
			timer.StopWithError(err)
			return results, errors.NewErrorBuilder(errors.ModulePipeline).
				Operation("run").
				Code(mdwerror.CodeInternal).
				Messagef("run cancelled after %d of %d inputs", i, len(job.Inputs)).
				Cause(err).
				Build()
		}

		result := job.apply(input)
		if !result.OK() {
			r.logger.Warn("Input failed", "index", i, "step", result.FailedStep, "error", result.Err)
		}
		results = append(results, result)
	}

	succeeded, failed := Summary(results)
	timer.WithField("succeeded", succeeded).WithField("failed", failed).StopWithResult(failed == 0, fmt.Sprintf("%d/%d", succeeded, len(results)))
	return results, nil
}

func stepError(index int, op string, err error) error {
	return errors.NewErrorBuilder(errors.ModulePipeline).
		Operation(op).
		Code(mdwerror.GetCode(err)).
		Messagef("step %d (%s) failed", index, op).
		Cause(err).
		Detail("step", index).
		Build()
}
