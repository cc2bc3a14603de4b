package main

import "testing"

func TestSourceURL(t *testing.T) {
	tests := []struct {
		base, ref, want string
	}{
		{"https://github.com/Cubitect/cubiomes.git", "", "git::https://github.com/Cubitect/cubiomes.git"},
		{"https://example.com/c.git", "v1.2", "git::https://example.com/c.git?ref=v1.2"},
	}
	for _, tt := range tests {
		if got := sourceURL(tt.base, tt.ref); got != tt.want {
			t.Errorf("sourceURL(%q, %q) = %q, want %q", tt.base, tt.ref, got, tt.want)
		}
	}
}
