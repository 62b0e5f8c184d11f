package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	hooksparser "github.com/devx-cli/devx/internal/hooks/parser"
	hooksvalidator "github.com/devx-cli/devx/internal/hooks/validator"
	manifestparser "github.com/devx-cli/devx/internal/manifest/parser"
	manifestvalidator "github.com/devx-cli/devx/internal/manifest/validator"
	siteparser "github.com/devx-cli/devx/internal/site/parser"
	sitevalidator "github.com/devx-cli/devx/internal/site/validator"
	"github.com/devx-cli/devx/internal/validator"
)

// ManifestCheck parses and validates the package manifest.
type ManifestCheck struct {
	path string
}

var _ Check = (*ManifestCheck)(nil)

// NewManifestCheck creates a manifest check for the given path.
func NewManifestCheck(path string) *ManifestCheck {
	return &ManifestCheck{path: path}
}

// Name returns the unique identifier for this check.
func (c *ManifestCheck) Name() string {
	return "manifest"
}

// Category returns the grouping for this check.
func (c *ManifestCheck) Category() string {
	return "manifest"
}

// Run executes the manifest diagnostic check.
func (c *ManifestCheck) Run() *CheckResult {
	if r, ok := missingFileResult(c, c.path); ok {
		return r
	}

	m, err := manifestparser.ParseFile(c.path)
	if err != nil {
		return parseFailureResult(c, c.path, err)
	}

	result := manifestvalidator.New().ValidateWithPath(m, c.path)
	passMsg := fmt.Sprintf("%s: %d dependencies, %d extras", filepath.Base(c.path), len(m.Dependencies), len(m.Extras))
	return validationResult(c, c.path, result, passMsg)
}

// HooksCheck parses and validates the hook pipeline definition.
type HooksCheck struct {
	path string
}

var _ Check = (*HooksCheck)(nil)

// NewHooksCheck creates a hook pipeline check for the given path.
func NewHooksCheck(path string) *HooksCheck {
	return &HooksCheck{path: path}
}

// Name returns the unique identifier for this check.
func (c *HooksCheck) Name() string {
	return "hook-pipeline"
}

// Category returns the grouping for this check.
func (c *HooksCheck) Category() string {
	return "hooks"
}

// Run executes the hook pipeline diagnostic check.
func (c *HooksCheck) Run() *CheckResult {
	if r, ok := missingFileResult(c, c.path); ok {
		return r
	}

	p, err := hooksparser.ParseFile(c.path)
	if err != nil {
		return parseFailureResult(c, c.path, err)
	}

	result := hooksvalidator.New().ValidateWithPath(p, c.path)
	passMsg := fmt.Sprintf("%s: %d repos, %d hooks", filepath.Base(c.path), len(p.Repos), p.HookCount())
	return validationResult(c, c.path, result, passMsg)
}

// SiteCheck parses and validates the documentation site configuration.
type SiteCheck struct {
	path    string
	docsDir string
}

var _ Check = (*SiteCheck)(nil)

// NewSiteCheck creates a site configuration check. docsDir may be empty
// to skip nav page existence checks.
func NewSiteCheck(path, docsDir string) *SiteCheck {
	return &SiteCheck{path: path, docsDir: docsDir}
}

// Name returns the unique identifier for this check.
func (c *SiteCheck) Name() string {
	return "site-config"
}

// Category returns the grouping for this check.
func (c *SiteCheck) Category() string {
	return "site"
}

// Run executes the site configuration diagnostic check.
func (c *SiteCheck) Run() *CheckResult {
	if r, ok := missingFileResult(c, c.path); ok {
		return r
	}

	cfg, err := siteparser.ParseFile(c.path)
	if err != nil {
		return parseFailureResult(c, c.path, err)
	}

	var opts []sitevalidator.Option
	if c.docsDir != "" {
		opts = append(opts, sitevalidator.WithDocsDir(c.docsDir))
	}

	result := sitevalidator.New(opts...).ValidateWithPath(cfg, c.path)
	passMsg := fmt.Sprintf("%s: theme %q, %d plugins", filepath.Base(c.path), cfg.Theme.Name, len(cfg.Plugins))
	return validationResult(c, c.path, result, passMsg)
}

// missingFileResult returns an info result when the checked file does not exist.
func missingFileResult(c Check, path string) (*CheckResult, bool) {
	_, err := os.Stat(path)
	if err == nil {
		return nil, false
	}
	if os.IsNotExist(err) {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  fmt.Sprintf("%s not found (not configured)", filepath.Base(path)),
		}, true
	}
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityError,
		Message:  fmt.Sprintf("cannot stat %s: %v", path, err),
	}, true
}

// parseFailureResult builds the error result for an unparseable file.
func parseFailureResult(c Check, path string, err error) *CheckResult {
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityError,
		Message:  fmt.Sprintf("%s cannot be parsed", filepath.Base(path)),
		Details:  map[string]any{"error": err.Error()},
		FixHint:  "fix the syntax error and re-run",
	}
}

// validationResult converts a validation result into a check result.
func validationResult(c Check, path string, result *validator.Result, passMsg string) *CheckResult {
	out := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
	}

	switch {
	case result.HasErrors():
		out.Status = SeverityError
		out.Message = fmt.Sprintf("%s has %d validation error(s)", filepath.Base(path), len(result.Errors()))
	case result.HasWarnings():
		out.Status = SeverityWarning
		out.Message = fmt.Sprintf("%s has %d warning(s)", filepath.Base(path), len(result.Warnings()))
	default:
		out.Status = SeverityPass
		out.Message = passMsg
		return out
	}

	issues := make([]map[string]any, 0, len(result.Issues))
	for _, issue := range result.Issues {
		entry := map[string]any{
			"severity": issue.Severity.String(),
			"field":    issue.Field,
			"message":  issue.Message,
		}
		if issue.Value != nil {
			entry["value"] = issue.Value
		}
		issues = append(issues, entry)
	}
	out.Details = map[string]any{"issues": issues}
	out.FixHint = fmt.Sprintf("run: devx %s validate", c.Category())
	return out
}

// PathPermissionCheck validates permissions on the project's config files.
type PathPermissionCheck struct {
	paths []string
}

var _ Check = (*PathPermissionCheck)(nil)

// NewPathPermissionCheck creates a permission check over the given files.
func NewPathPermissionCheck(paths ...string) *PathPermissionCheck {
	return &PathPermissionCheck{paths: paths}
}

// Name returns the unique identifier for this check.
func (c *PathPermissionCheck) Name() string {
	return "path-permissions"
}

// Category returns the grouping for this check.
func (c *PathPermissionCheck) Category() string {
	return "filesystem"
}

// Run executes the path and permission diagnostic check.
func (c *PathPermissionCheck) Run() *CheckResult {
	var issues []map[string]any
	var fixHints []string
	checked := 0
	worst := SeverityPass

	for _, path := range c.paths {
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			// Missing files are covered by the per-file checks.
			continue
		}
		checked++
		if err != nil {
			issues = append(issues, map[string]any{
				"path":    path,
				"problem": fmt.Sprintf("cannot stat: %v", err),
			})
			worst = SeverityError
			continue
		}

		if f, err := os.Open(path); err != nil {
			issues = append(issues, map[string]any{
				"path":        path,
				"problem":     "file is not readable",
				"permissions": formatPermissions(info.Mode()),
			})
			fixHints = append(fixHints, "chmod 644 "+path)
			worst = SeverityError
			continue
		} else {
			f.Close()
		}

		// Unix permission bits don't apply on Windows.
		if runtime.GOOS == "windows" {
			continue
		}

		if info.Mode().Perm()&0002 != 0 {
			issues = append(issues, map[string]any{
				"path":        path,
				"problem":     "file is world-writable",
				"permissions": formatPermissions(info.Mode()),
			})
			fixHints = append(fixHints, "chmod 644 "+path)
			if worst < SeverityWarning {
				worst = SeverityWarning
			}
		}
	}

	if len(issues) == 0 {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityPass,
			Message:  fmt.Sprintf("all %d config files have valid permissions", checked),
		}
	}

	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   worst,
		Message:  fmt.Sprintf("found %d permission issue(s) across %d files", len(issues), checked),
		Details: map[string]any{
			"checked": checked,
			"issues":  issues,
		},
	}
	if len(fixHints) > 0 {
		result.FixHint = strings.Join(fixHints, "; ")
	}
	return result
}

// formatPermissions returns a human-readable permission string (e.g., "0644").
func formatPermissions(mode os.FileMode) string {
	return fmt.Sprintf("%04o", mode.Perm())
}
