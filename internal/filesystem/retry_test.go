package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"syscall"
	"testing"
	"time"
)

// recordingObserver counts observer callbacks per operation.
type recordingObserver struct {
	operations map[string]int
	errors     map[string]int
	attempts   map[string]int
	successes  map[string]int
	failures   map[string]int
	stale      map[string]int
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{
		operations: map[string]int{},
		errors:     map[string]int{},
		attempts:   map[string]int{},
		successes:  map[string]int{},
		failures:   map[string]int{},
		stale:      map[string]int{},
	}
}

func (o *recordingObserver) ObserveOperation(op string, _ float64, err error) {
	o.operations[op]++
	if err != nil {
		o.errors[op]++
	}
}
func (o *recordingObserver) ObserveRetryAttempt(op string) { o.attempts[op]++ }
func (o *recordingObserver) ObserveRetrySuccess(op string) { o.successes[op]++ }
func (o *recordingObserver) ObserveRetryFailure(op string) { o.failures[op]++ }
func (o *recordingObserver) ObserveStaleError(op string)   { o.stale[op]++ }

func installObserver(t *testing.T) *recordingObserver {
	t.Helper()
	obs := newRecordingObserver()
	SetObserver(obs)
	t.Cleanup(func() { SetObserver(nil) })
	return obs
}

func noSleep(t *testing.T) *[]time.Duration {
	t.Helper()
	var slept []time.Duration
	sleep = func(d time.Duration) { slept = append(slept, d) }
	t.Cleanup(func() { sleep = time.Sleep })
	return &slept
}

func TestDefaultRetryConfig(t *testing.T) {
	config := DefaultRetryConfig()

	if config.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", config.MaxRetries)
	}
	if config.InitialBackoff != 50*time.Millisecond {
		t.Errorf("InitialBackoff = %v, want 50ms", config.InitialBackoff)
	}
	if config.MaxBackoff != 500*time.Millisecond {
		t.Errorf("MaxBackoff = %v, want 500ms", config.MaxBackoff)
	}
}

func TestIsStaleError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"ESTALE error", syscall.ESTALE, true},
		{"wrapped ESTALE", &fs.PathError{Op: "open", Path: "/x", Err: syscall.ESTALE}, true},
		{"ENOENT error", syscall.ENOENT, false},
		{"generic error", os.ErrNotExist, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isStaleError(tt.err); got != tt.want {
				t.Errorf("isStaleError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestWithRetry_RecoversFromStaleHandle(t *testing.T) {
	obs := installObserver(t)
	slept := noSleep(t)

	calls := 0
	got, err := withRetry("stat", "/share/a.png", DefaultRetryConfig(), func() (int, error) {
		calls++
		if calls < 3 {
			return 0, syscall.ESTALE
		}
		return 42, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Errorf("result = %d, want 42", got)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if len(*slept) != 2 || (*slept)[0] != 50*time.Millisecond || (*slept)[1] != 100*time.Millisecond {
		t.Errorf("backoff sequence = %v, want [50ms 100ms]", *slept)
	}
	if obs.stale["stat"] != 2 || obs.successes["stat"] != 1 || obs.failures["stat"] != 0 {
		t.Errorf("unexpected observer counts: stale=%d success=%d failure=%d",
			obs.stale["stat"], obs.successes["stat"], obs.failures["stat"])
	}
}

func TestWithRetry_GivesUpAfterMaxRetries(t *testing.T) {
	obs := installObserver(t)
	slept := noSleep(t)

	config := RetryConfig{MaxRetries: 4, InitialBackoff: 100 * time.Millisecond, MaxBackoff: 300 * time.Millisecond}
	calls := 0
	_, err := withRetry("open", "/share/a.png", config, func() (string, error) {
		calls++
		return "", syscall.ESTALE
	})
	if !errors.Is(err, syscall.ESTALE) {
		t.Fatalf("error = %v, want ESTALE", err)
	}
	if calls != 5 {
		t.Errorf("calls = %d, want 5", calls)
	}

	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 300 * time.Millisecond, 300 * time.Millisecond}
	if len(*slept) != len(want) {
		t.Fatalf("slept %v, want %v", *slept, want)
	}
	for i := range want {
		if (*slept)[i] != want[i] {
			t.Errorf("backoff[%d] = %v, want %v", i, (*slept)[i], want[i])
		}
	}
	if obs.failures["open"] != 1 {
		t.Errorf("failures = %d, want 1", obs.failures["open"])
	}
	if obs.attempts["open"] != 4 {
		t.Errorf("attempts = %d, want 4", obs.attempts["open"])
	}
}

func TestWithRetry_NonStaleErrorFailsImmediately(t *testing.T) {
	obs := installObserver(t)
	slept := noSleep(t)

	calls := 0
	_, err := withRetry("stat", "/missing", DefaultRetryConfig(), func() (int, error) {
		calls++
		return 0, os.ErrPermission
	})
	if !errors.Is(err, os.ErrPermission) {
		t.Fatalf("error = %v, want ErrPermission", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if len(*slept) != 0 {
		t.Errorf("should not sleep, slept %v", *slept)
	}
	if obs.errors["stat"] != 1 {
		t.Errorf("operation errors = %d, want 1", obs.errors["stat"])
	}
}

func TestStatWithRetry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.png")
	if err := os.WriteFile(path, []byte("12345"), 0o644); err != nil {
		t.Fatal(err)
	}

	info, err := StatWithRetry(path, DefaultRetryConfig())
	if err != nil {
		t.Fatalf("StatWithRetry: %v", err)
	}
	if info.Size() != 5 {
		t.Errorf("Size = %d, want 5", info.Size())
	}

	_, err = StatWithRetry(filepath.Join(dir, "missing.png"), DefaultRetryConfig())
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestOpenWithRetry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.gif")
	if err := os.WriteFile(path, []byte("GIF89a"), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := OpenWithRetry(path, DefaultRetryConfig())
	if err != nil {
		t.Fatalf("OpenWithRetry: %v", err)
	}
	defer f.Close()

	buf := make([]byte, 6)
	if _, err := f.Read(buf); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(buf) != "GIF89a" {
		t.Errorf("content = %q", buf)
	}

	if _, err := OpenWithRetry(filepath.Join(dir, "nope"), DefaultRetryConfig()); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestReadDirWithRetry(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.jpg", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	entries, err := ReadDirWithRetry(dir, DefaultRetryConfig())
	if err != nil {
		t.Fatalf("ReadDirWithRetry: %v", err)
	}

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	want := []string{"a.jpg", "b.png", "c.txt", "sub"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	if _, err := ReadDirWithRetry(filepath.Join(dir, "missing"), DefaultRetryConfig()); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
