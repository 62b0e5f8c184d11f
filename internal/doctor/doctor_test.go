package doctor

import (
	"testing"
)

// stubCheck is a fixed-result check for runner tests.
type stubCheck struct {
	name   string
	status Severity
}

func (c stubCheck) Name() string     { return c.name }
func (c stubCheck) Category() string { return "test" }
func (c stubCheck) Run() *CheckResult {
	return &CheckResult{Name: c.name, Category: "test", Status: c.status}
}

func TestNewRunner(t *testing.T) {
	r := NewRunner()
	if r == nil {
		t.Fatal("NewRunner returned nil")
	}
	if len(r.checks) != 0 {
		t.Errorf("NewRunner().checks = %d, want 0", len(r.checks))
	}
}

func TestRunner_Run(t *testing.T) {
	r := NewRunner()
	r.AddCheck(stubCheck{name: "a", status: SeverityPass})
	r.AddCheck(stubCheck{name: "b", status: SeverityWarning})
	r.AddCheck(stubCheck{name: "c", status: SeverityError})
	r.AddCheck(stubCheck{name: "d", status: SeverityInfo})

	report := r.Run()

	if len(report.Results) != 4 {
		t.Fatalf("Results = %d, want 4", len(report.Results))
	}
	if report.Results[0].Name != "a" || report.Results[3].Name != "d" {
		t.Error("check order not preserved")
	}

	want := Summary{Passed: 1, Info: 1, Warnings: 1, Errors: 1}
	if report.Summary != want {
		t.Errorf("Summary = %+v, want %+v", report.Summary, want)
	}
	if !report.HasErrors() {
		t.Error("HasErrors() = false")
	}
	if !report.HasWarnings() {
		t.Error("HasWarnings() = false")
	}
	if report.Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}
}

func TestRunner_Run_Empty(t *testing.T) {
	report := NewRunner().Run()
	if len(report.Results) != 0 {
		t.Errorf("Results = %d, want 0", len(report.Results))
	}
	if report.HasErrors() || report.HasWarnings() {
		t.Error("empty report should have no errors or warnings")
	}
}

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SeverityPass, "pass"},
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{Severity(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.sev, got, tt.want)
		}
	}
}
