// Package validator checks parsed hook pipelines: every remote source is
// pinned to a revision, hook identifiers are unique within their source,
// and every stage value names a recognized lifecycle stage.
package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/devx-cli/devx/internal/hooks"
	"github.com/devx-cli/devx/internal/validator"
)

// Validator validates Pipeline structs.
type Validator struct{}

// New creates a new Validator.
func New() *Validator {
	return &Validator{}
}

// Validate checks a pipeline and returns the collected issues.
func (v *Validator) Validate(p *hooks.Pipeline) *validator.Result {
	result := &validator.Result{}

	if len(p.Repos) == 0 {
		result.AddWarning("repos", "pipeline declares no hook sources", nil)
	}

	v.validateStageList("default_stages", p.DefaultStages, result)

	for i, repo := range p.Repos {
		v.validateRepo(i, repo, result)
	}

	return result
}

// ValidateWithPath validates a pipeline and records the source path on the result.
func (v *Validator) ValidateWithPath(p *hooks.Pipeline, path string) *validator.Result {
	result := v.Validate(p)
	result.Path = path
	return result
}

func (v *Validator) validateRepo(idx int, repo hooks.Repo, result *validator.Result) {
	field := fmt.Sprintf("repos[%d]", idx)

	if strings.TrimSpace(repo.Source) == "" {
		result.AddError(field+".repo", "hook source must not be empty", nil)
	}

	if repo.Remote() && strings.TrimSpace(repo.Rev) == "" {
		result.AddError(field+".rev", "remote hook source must be pinned to a revision", repo.Source)
	}
	if !repo.Remote() && repo.Rev != "" {
		result.AddWarning(field+".rev", "revision pin is ignored for local and meta sources", repo.Rev)
	}

	if len(repo.Hooks) == 0 {
		result.AddWarning(field+".hooks", "hook source declares no hooks", repo.Source)
	}

	seen := make(map[string]bool)
	for j, hook := range repo.Hooks {
		hookField := fmt.Sprintf("%s.hooks[%d]", field, j)
		v.validateHook(hookField, repo, hook, seen, result)
	}
}

func (v *Validator) validateHook(field string, repo hooks.Repo, hook hooks.Hook, seen map[string]bool, result *validator.Result) {
	if strings.TrimSpace(hook.ID) == "" {
		result.AddError(field+".id", "hook identifier must not be empty", nil)
	} else if seen[hook.ID] {
		result.AddError(field+".id", "hook identifier already used in this source", hook.ID)
	} else {
		seen[hook.ID] = true
	}

	v.validateStageList(field+".stages", hook.Stages, result)

	if hook.Files != "" {
		if _, err := regexp.Compile(hook.Files); err != nil {
			result.AddError(field+".files", "file pattern is not a valid regular expression", hook.Files)
		}
	}

	// Local hooks are run from the declaring repository, so the runner
	// needs to know what to execute and how.
	if repo.Source == hooks.RepoLocal {
		if hook.Entry == "" {
			result.AddError(field+".entry", "local hook must declare an entry command", hook.ID)
		}
		if hook.Language == "" {
			result.AddWarning(field+".language", "local hook does not declare a language", hook.ID)
		}
	}
}

func (v *Validator) validateStageList(field string, stages []string, result *validator.Result) {
	for _, stage := range stages {
		if !hooks.KnownStage(stage) {
			result.AddError(field, "stage is not a recognized lifecycle stage", stage)
		}
	}
}
