// ============================================================================
// textkit - Code point safe string tooling
// ============================================================================
//
// Package:     pipeline
// Description: Job files listing inputs and the steps applied to them
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/errors"
)

// Job is a batch of inputs and the ordered steps applied to each of them
type Job struct {
	Name   string   `yaml:"name" toml:"name"`
	Inputs []string `yaml:"inputs" toml:"inputs"`
	Steps  []Step   `yaml:"steps" toml:"steps"`

	// Internal tracking (not from the file)
	SourceFile string `yaml:"-" toml:"-"`
}

// Step applies one operation
type Step struct {
	Op     string `yaml:"op" toml:"op"`
	Params Params `yaml:"params,omitempty" toml:"params"`
}

// Load reads a job file. The decoder is chosen by extension: .yaml and .yml,
// or .toml. The job is validated before it is returned.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.NotFound(errors.ModulePipeline, "load", path)
	}
	if err != nil {
		return nil, loadError(path, err)
	}

	job, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	job.SourceFile = path

	if err := job.Validate(); err != nil {
		return nil, err
	}
	return job, nil
}

// Parse decodes a job from data in the format named by ext (".yaml", ".yml"
// or ".toml"). It does not validate.
func Parse(data []byte, ext string) (*Job, error) {
	var job Job
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &job); err != nil {
			return nil, formatError(ext, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &job); err != nil {
			return nil, formatError(ext, err)
		}
	default:
		return nil, errors.InvalidFormat(errors.ModulePipeline, ext, ".yaml, .yml or .toml")
	}
	return &job, nil
}

// Validate checks that every step names a known operation and that its
// parameters are known, present when required and of the declared type
func (j *Job) Validate() error {
	if len(j.Steps) == 0 {
		return errors.ValidationFailed(errors.ModulePipeline, "steps", 0, "at least one step is required")
	}

	for i, step := range j.Steps {
		field := fmt.Sprintf("steps[%d]", i)

		op, ok := Lookup(step.Op)
		if !ok {
			return errors.ValidationFailed(errors.ModulePipeline, field+".op", step.Op,
				fmt.Sprintf("unknown operation, expected one of %s", strings.Join(Operations(), ", ")))
		}

		for _, name := range sortedParams(step.Params) {
			def, known := op.Parameters[name]
			if !known {
				return errors.ValidationFailed(errors.ModulePipeline, field+".params."+name, step.Params[name],
					fmt.Sprintf("unknown parameter for %s", op.Name))
			}
			if !checkType(def.Type, step.Params[name]) {
				return errors.ValidationFailed(errors.ModulePipeline, field+".params."+name, step.Params[name],
					"must be of type "+def.Type)
			}
		}

		for _, name := range op.ParameterNames() {
			if _, present := step.Params[name]; op.Parameters[name].Required && !present {
				return errors.ValidationFailed(errors.ModulePipeline, field+".params."+name, nil,
					fmt.Sprintf("required by %s", op.Name))
			}
		}
	}
	return nil
}

// WithInputs returns a copy of the job that processes inputs instead
func (j *Job) WithInputs(inputs []string) *Job {
	clone := *j
	clone.Inputs = inputs
	return &clone
}

func sortedParams(p Params) []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func loadError(path string, err error) error {
	return errors.NewErrorBuilder(errors.ModulePipeline).
		Operation("load").
		Code(mdwerror.CodeInvalidInput).
		Message("failed to read job file").
		Cause(err).
		Detail("path", path).
		Build()
}

func formatError(ext string, err error) error {
	return errors.NewErrorBuilder(errors.ModulePipeline).
		Operation("parse").
		Code(mdwerror.CodeInvalidFormat).
		Messagef("invalid %s job", strings.TrimPrefix(ext, ".")).
		Cause(err).
		Build()
}
