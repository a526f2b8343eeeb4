package util

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_GET_ENV", "value")

	if got := GetEnv("TEST_GET_ENV"); got != "value" {
		t.Fatalf("expected %q, got %q", "value", got)
	}
	if got := GetEnv("TEST_GET_ENV_MISSING"); got != "" {
		t.Fatalf("expected empty string for missing key, got %q", got)
	}
}

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_GET_ENV_STRING", "set")

	if got := GetEnvString("TEST_GET_ENV_STRING", "fallback"); got != "set" {
		t.Fatalf("expected %q, got %q", "set", got)
	}
	if got := GetEnvString("TEST_GET_ENV_STRING_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("expected %q, got %q", "fallback", got)
	}
}

func TestGetEnvNumeric(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		set          bool
		defaultValue int
		expected     float64
	}{
		{name: "integer value", value: "15", set: true, defaultValue: 5, expected: 15},
		{name: "float value", value: "2.5", set: true, defaultValue: 5, expected: 2.5},
		{name: "missing key", set: false, defaultValue: 5, expected: 5},
		{name: "non-numeric value", value: "abc", set: true, defaultValue: 5, expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("TEST_GET_ENV_NUMERIC", tt.value)
			}
			if got := GetEnvNumeric("TEST_GET_ENV_NUMERIC", tt.defaultValue); got != tt.expected {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		set          bool
		defaultValue bool
		expected     bool
	}{
		{name: "true", value: "true", set: true, defaultValue: false, expected: true},
		{name: "false", value: "false", set: true, defaultValue: true, expected: false},
		{name: "missing key", set: false, defaultValue: true, expected: true},
		{name: "invalid value", value: "yes", set: true, defaultValue: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("TEST_GET_ENV_BOOL", tt.value)
			}
			if got := GetEnvBool("TEST_GET_ENV_BOOL", tt.defaultValue); got != tt.expected {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
