package util

import (
	"testing"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		expected string
	}{
		{name: "already canonical", email: "ana@example.com", expected: "ana@example.com"},
		{name: "mixed case", email: "Ana@Example.COM", expected: "ana@example.com"},
		{name: "surrounding spaces", email: "  ana@example.com\t", expected: "ana@example.com"},
		{name: "empty", email: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NormalizeEmail(tt.email); got != tt.expected {
				t.Fatalf("NormalizeEmail(%q) = %q, want %q", tt.email, got, tt.expected)
			}
		})
	}
}

func TestPageCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		total    int64
		pageSize int
		expected int
	}{
		{name: "no items", total: 0, pageSize: 10, expected: 0},
		{name: "partial page", total: 3, pageSize: 10, expected: 1},
		{name: "exact pages", total: 20, pageSize: 10, expected: 2},
		{name: "one over", total: 21, pageSize: 10, expected: 3},
		{name: "invalid page size", total: 5, pageSize: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := PageCount(tt.total, tt.pageSize); got != tt.expected {
				t.Fatalf("PageCount(%d, %d) = %d, want %d", tt.total, tt.pageSize, got, tt.expected)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}
