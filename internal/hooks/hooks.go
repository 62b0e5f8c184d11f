// Package hooks defines the pre-commit hook pipeline model.
//
// A pipeline is an ordered list of hook sources, each pinned to a revision,
// each hook keyed by identifier with an optional lifecycle stage restriction
// and argument list. devx validates pipeline definitions; executing hooks at
// the git lifecycle stages is the hook runner's job.
package hooks

// Special repo source values that refer to no remote repository.
const (
	// RepoLocal marks hooks defined inline in the consuming repository.
	RepoLocal = "local"

	// RepoMeta marks the hook runner's built-in sanity hooks.
	RepoMeta = "meta"
)

// Stages recognized by the hook runner, in lifecycle order.
var Stages = []string{
	"commit",
	"merge-commit",
	"prepare-commit-msg",
	"commit-msg",
	"post-commit",
	"post-checkout",
	"post-merge",
	"push",
	"manual",
}

// KnownStage reports whether stage is one of the recognized lifecycle stages.
func KnownStage(stage string) bool {
	for _, s := range Stages {
		if s == stage {
			return true
		}
	}
	return false
}

// Pipeline is the parsed hook pipeline definition.
type Pipeline struct {
	// Repos is the ordered list of hook sources.
	Repos []Repo `json:"repos" yaml:"repos"`

	// DefaultStages restricts all hooks without their own stage list.
	DefaultStages []string `json:"default_stages,omitempty" yaml:"default_stages"`
}

// Repo is a single hook source.
type Repo struct {
	// Source is the repository URL, or RepoLocal / RepoMeta.
	Source string `json:"repo" yaml:"repo"`

	// Rev pins the source to a revision (tag or commit). Unused for
	// local and meta sources.
	Rev string `json:"rev,omitempty" yaml:"rev"`

	// Hooks lists the hooks taken from this source.
	Hooks []Hook `json:"hooks" yaml:"hooks"`
}

// Remote reports whether the repo refers to a remote repository that
// must be pinned to a revision.
func (r Repo) Remote() bool {
	return r.Source != RepoLocal && r.Source != RepoMeta
}

// Hook is a single hook entry.
type Hook struct {
	// ID identifies the hook within its source.
	ID string `json:"id" yaml:"id"`

	// Name overrides the display name.
	Name string `json:"name,omitempty" yaml:"name"`

	// Stages restricts the lifecycle stages the hook runs at.
	// Empty means the pipeline's default stages apply.
	Stages []string `json:"stages,omitempty" yaml:"stages"`

	// Args is the extra argument list passed to the hook.
	Args []string `json:"args,omitempty" yaml:"args"`

	// Files is a pattern limiting which files the hook sees.
	Files string `json:"files,omitempty" yaml:"files"`

	// Entry is the command to run, for hooks from local sources.
	Entry string `json:"entry,omitempty" yaml:"entry"`

	// Language tells the runner how to install a local hook.
	Language string `json:"language,omitempty" yaml:"language"`
}

// HookCount returns the total number of hooks across all repos.
func (p *Pipeline) HookCount() int {
	n := 0
	for _, r := range p.Repos {
		n += len(r.Hooks)
	}
	return n
}
