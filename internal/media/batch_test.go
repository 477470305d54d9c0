package media

import (
	"path/filepath"
	"testing"

	"media-viewer-core/internal/workers"
)

func TestLoadMany(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		filepath.Join(dir, "a.png"),
		filepath.Join(dir, "missing.jpg"),
		filepath.Join(dir, "b.jpg"),
		filepath.Join(dir, "notes.txt"),
	}
	createTestImage(t, paths[0], 10, 20, "png")
	createTestImage(t, paths[2], 30, 40, "jpeg")
	writeFile(t, paths[3], []byte("text"))

	results := newTestService().LoadMany(paths)

	if len(results) != len(paths) {
		t.Fatalf("got %d results, want %d", len(results), len(paths))
	}
	for i, r := range results {
		if r.Path != paths[i] {
			t.Errorf("result %d path = %q, want %q (order must be preserved)", i, r.Path, paths[i])
		}
	}

	if r := results[0]; r.Error != "" || r.Record == nil || r.Record.Resolution != (Resolution{Width: 10, Height: 20}) {
		t.Errorf("a.png result = %+v", r)
	}
	if r := results[1]; r.Error == "" || r.Record != nil {
		t.Errorf("missing.jpg should fail, got %+v", r)
	}
	if r := results[2]; r.Record == nil || r.Record.Resolution != (Resolution{Width: 30, Height: 40}) {
		t.Errorf("b.jpg result = %+v", r)
	}
	if r := results[3]; r.Error == "" {
		t.Errorf("notes.txt should be unsupported, got %+v", r)
	}
}

func TestLoadMany_SingleWorker(t *testing.T) {
	t.Setenv(workers.OverrideEnv, "1")

	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"1.png", "2.png", "3.png"} {
		p := filepath.Join(dir, name)
		createTestImage(t, p, 4, 4, "png")
		paths = append(paths, p)
	}

	for i, r := range newTestService().LoadMany(paths) {
		if r.Record == nil || r.Path != paths[i] {
			t.Errorf("result %d = %+v", i, r)
		}
	}
}

func TestLoadMany_Empty(t *testing.T) {
	if got := newTestService().LoadMany(nil); len(got) != 0 {
		t.Errorf("LoadMany(nil) = %v, want empty", got)
	}
}
