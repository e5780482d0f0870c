package main

import "testing"

func TestExportTarget(t *testing.T) {
	tests := []struct {
		format, path string
		wantF, wantP string
		wantErr      bool
	}{
		{"", "", "svg", "scene.svg", false},
		{"png", "", "png", "scene.png", false},
		{"PNG", "", "png", "scene.png", false},
		{"", "out/frame.png", "png", "out/frame.png", false},
		{"", "frame.SVG", "svg", "frame.SVG", false},
		{"svg", "frame.txt", "svg", "frame.txt", false},
		{"", "frame.jpg", "", "", true},
		{"gif", "", "", "", true},
	}
	for _, tt := range tests {
		f, p, err := exportTarget(tt.format, tt.path)
		if tt.wantErr {
			if err == nil {
				t.Errorf("(%q, %q): expected error", tt.format, tt.path)
			}
			continue
		}
		if err != nil {
			t.Errorf("(%q, %q): %v", tt.format, tt.path, err)
			continue
		}
		if f != tt.wantF || p != tt.wantP {
			t.Errorf("(%q, %q) = %q %q, want %q %q", tt.format, tt.path, f, p, tt.wantF, tt.wantP)
		}
	}
}
