package redact

import "testing"

func TestShouldMask(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"GITHUB_TOKEN", true},
		{"api_key", true},
		{"password", true},
		{"AuthHeader", true},
		{"manifest_path", false},
		{"theme", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := ShouldMask(tt.key); got != tt.want {
				t.Errorf("ShouldMask(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestMaskValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"short fully masked", "abc", "********"},
		{"long shows suffix", "ghp_abcdef123456", "****3456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskValue(tt.value); got != tt.want {
				t.Errorf("MaskValue(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestContainsTokenPrefix(t *testing.T) {
	if !ContainsTokenPrefix("ghp_secretsecret") {
		t.Error("GitHub token prefix should be detected")
	}
	if ContainsTokenPrefix("plain value") {
		t.Error("plain values should not be detected")
	}
}
