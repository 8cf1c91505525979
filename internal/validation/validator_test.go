package validation

import (
	"strings"
	"testing"
	"time"

	"tasksync/internal/config"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty string", "", false},
		{"Whitespace only", "   ", false},
		{"Tab and newline", "\t\n", false},
		{"Valid string", "hello", true},
		{"String with spaces", "hello world", true},
		{"String with leading/trailing spaces", "  hello  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsNonEmptyString(tt.input)
			if result != tt.expected {
				t.Errorf("IsNonEmptyString(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidTitleLength(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty title", "", false},
		{"Whitespace only", "   ", false},
		{"Single character", "a", true},
		{"Normal title", "Buy groceries", true},
		{"Maximum length", strings.Repeat("a", 255), true},
		{"Over maximum length", strings.Repeat("a", 256), false},
		{"Trimmed to valid length", "  " + strings.Repeat("a", 255) + "  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsValidTitleLength(tt.input)
			if result != tt.expected {
				t.Errorf("IsValidTitleLength(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidTitleLength_WithConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.TitleMinLength = 3
	cfg.Validation.TitleMaxLength = 10
	validator := NewValidatorWithConfig(cfg)

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Below configured minimum", "ab", false},
		{"At configured minimum", "abc", true},
		{"At configured maximum", strings.Repeat("a", 10), true},
		{"Over configured maximum", strings.Repeat("a", 11), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsValidTitleLength(tt.input)
			if result != tt.expected {
				t.Errorf("IsValidTitleLength(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidTaskID(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		id       int64
		expected bool
	}{
		{"Positive ID", 1, true},
		{"Millisecond timestamp ID", 1756291413000, true},
		{"Zero ID", 0, false},
		{"Negative ID", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsValidTaskID(tt.id)
			if result != tt.expected {
				t.Errorf("IsValidTaskID(%d) = %v, expected %v", tt.id, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidDate(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{"Zero date", time.Time{}, false},
		{"Set date", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), true},
		{"Past date", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsValidDate(tt.date)
			if result != tt.expected {
				t.Errorf("IsValidDate(%v) = %v, expected %v", tt.date, result, tt.expected)
			}
		})
	}
}

func TestValidator_TrimAndValidateString(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"No whitespace", "hello", "hello"},
		{"Leading whitespace", "  hello", "hello"},
		{"Trailing whitespace", "hello  ", "hello"},
		{"Both sides", "  hello  ", "hello"},
		{"Only whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.TrimAndValidateString(tt.input)
			if result != tt.expected {
				t.Errorf("TrimAndValidateString(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}
