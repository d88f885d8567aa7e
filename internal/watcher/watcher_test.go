package watcher

import "testing"

func TestIsMediaFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/in/video.mp4", true},
		{"/in/VIDEO.MP4", true},
		{"/in/audio.m4a", true},
		{"/in/audio.opus", true},
		{"/in/notes.txt", false},
		{"/in/summary.md", false},
		{"/in/.mp4.part", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := isMediaFile(tt.path); got != tt.want {
				t.Errorf("isMediaFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
