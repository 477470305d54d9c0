package media

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
)

func TestDisplayURL(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/a/b/c.png", "file:///a/b/c.png"},
		{"/a/b/clip.mp4", "file:///a/b/clip.mp4"},
		{`C:\Users\me\Pictures\cat.jpg`, "file:///C:/Users/me/Pictures/cat.jpg"},
		{`\\server\share\c.png`, "file://server/share/c.png"},
		{`\\nas\media\videos\clip.webm`, "file://nas/media/videos/clip.webm"},
		{"relative/c.gif", "file:///relative/c.gif"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DisplayURL(tt.path); got != tt.want {
				t.Errorf("DisplayURL(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestGetDisplayURL(t *testing.T) {
	tmpDir := t.TempDir()
	svc := newTestService()

	path := filepath.Join(tmpDir, "photo.png")
	writeFile(t, path, []byte("x"))

	got, err := svc.GetDisplayURL(path)
	if err != nil {
		t.Fatalf("GetDisplayURL: %v", err)
	}
	if want := "file://" + path; got != want {
		t.Errorf("GetDisplayURL = %q, want %q", got, want)
	}

	_, err = svc.GetDisplayURL(filepath.Join(tmpDir, "missing.png"))
	var accessErr *AccessError
	if !errors.As(err, &accessErr) {
		t.Fatalf("error = %v, want AccessError", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("AccessError should wrap ErrNotExist, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "cannot access file: ") {
		t.Errorf("message = %q, want cannot access file prefix", err.Error())
	}
}
