package middleware

import "testing"

func TestIsAPIPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{
			name:     "api root",
			path:     "/api",
			expected: true,
		},
		{
			name:     "api subpath",
			path:     "/api/projects",
			expected: true,
		},
		{
			name:     "nested api subpath",
			path:     "/api/projects/123/keywords",
			expected: true,
		},
		{
			name:     "dashboard page",
			path:     "/projects/123",
			expected: false,
		},
		{
			name:     "root",
			path:     "/",
			expected: false,
		},
		{
			name:     "prefix collision",
			path:     "/apidocs",
			expected: false,
		},
		{
			name:     "empty path",
			path:     "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isAPIPath(tt.path)
			if got != tt.expected {
				t.Errorf("isAPIPath(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}
