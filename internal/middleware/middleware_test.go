package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"media-viewer-core/internal/logging"
	"media-viewer-core/internal/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	t.Cleanup(func() { logging.SetOutput(os.Stderr) })
	return &buf
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	if rw.statusCode != http.StatusOK {
		t.Errorf("default status = %d, want 200", rw.statusCode)
	}

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusInternalServerError)
	if rw.statusCode != http.StatusNotFound {
		t.Errorf("status = %d, want first WriteHeader to win", rw.statusCode)
	}

	n, err := rw.Write([]byte("hello"))
	if err != nil || n != 5 {
		t.Fatalf("Write = (%d, %v)", n, err)
	}
	if rw.bytesWritten != 5 {
		t.Errorf("bytesWritten = %d, want 5", rw.bytesWritten)
	}
}

func TestSanitizeLogField(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"line\nbreak", "line break"},
		{"cr\rlf", "cr lf"},
		{"nul\x00byte", "nulbyte"},
		{"\x1b[31mred", "[31mred"},
		{"tab\tkept", "tab\tkept"},
	}

	for _, tt := range tests {
		if got := sanitizeLogField(tt.in); got != tt.want {
			t.Errorf("sanitizeLogField(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoggerMiddleware(t *testing.T) {
	buf := captureLogs(t)

	handler := Logger(DefaultLoggingConfig())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("body"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/media?path=%2Ftmp%2Fa.png", nil)
	req.Header.Set("User-Agent", "viewer test")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	for _, want := range []string{" GET ", " /api/media ", "path=%2Ftmp%2Fa.png", " 418 4 ", `"viewer test"`} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q missing %q", line, want)
		}
	}
}

func TestLoggerMiddleware_Skips(t *testing.T) {
	tests := []struct {
		name    string
		config  LoggingConfig
		path    string
		wantLog bool
	}{
		{"metrics skipped by default", DefaultLoggingConfig(), "/metrics", false},
		{"health logged by default", DefaultLoggingConfig(), "/health", true},
		{"health skipped when disabled", LoggingConfig{LogHealthChecks: false}, "/livez", false},
		{"api always logged", LoggingConfig{LogHealthChecks: false}, "/api/scan", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)
			handler := Logger(tt.config)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			if logged := buf.Len() > 0; logged != tt.wantLog {
				t.Errorf("logged = %v, want %v (%q)", logged, tt.wantLog, buf.String())
			}
		})
	}
}

func TestEscapeW3CField(t *testing.T) {
	tests := map[string]string{
		"curl/8.0":    "curl/8.0",
		"Mozilla 5.0": `"Mozilla 5.0"`,
		`say "hi"`:    `"say ""hi"""`,
	}
	for in, want := range tests {
		if got := escapeW3CField(in); got != want {
			t.Errorf("escapeW3CField(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	router := mux.NewRouter()
	router.Use(Metrics(DefaultMetricsConfig()))
	router.HandleFunc("/api/media/size", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/media/size", "404")
	before := testutil.ToFloat64(counter)

	for _, p := range []string{"/a.png", "/b.png", "/c/d.png"} {
		req := httptest.NewRequest(http.MethodGet, "/api/media/size?path="+p, nil)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	if got := testutil.ToFloat64(counter); got != before+3 {
		t.Errorf("requests counter = %v, want %v", got, before+3)
	}
}

func TestMetricsMiddleware_SkipPaths(t *testing.T) {
	router := mux.NewRouter()
	router.Use(Metrics(DefaultMetricsConfig()))
	router.HandleFunc("/health", func(http.ResponseWriter, *http.Request) {}).Methods(http.MethodGet)

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/health", "200")
	before := testutil.ToFloat64(counter)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	if got := testutil.ToFloat64(counter); got != before {
		t.Errorf("skipped path was recorded: %v -> %v", before, got)
	}
}

func TestRouteTemplate_Unmatched(t *testing.T) {
	if got := routeTemplate(httptest.NewRequest(http.MethodGet, "/nowhere", nil)); got != unmatchedRoute {
		t.Errorf("routeTemplate() = %q, want %q", got, unmatchedRoute)
	}
}

func serveCompressed(t *testing.T, contentType, body string, acceptGzip bool) *httptest.ResponseRecorder {
	t.Helper()

	handler := Compression(DefaultCompressionConfig())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		_, _ = io.WriteString(w, body)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/scan", nil)
	if acceptGzip {
		req.Header.Set("Accept-Encoding", "gzip, deflate")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCompressionMiddleware(t *testing.T) {
	large := "[" + strings.Repeat(`"/photos/holiday/img.jpg",`, 100) + `""]`

	tests := []struct {
		name         string
		contentType  string
		body         string
		acceptGzip   bool
		wantEncoding string
	}{
		{"large json compressed", "application/json", large, true, "gzip"},
		{"small json passthrough", "application/json", `{"size":1}`, true, ""},
		{"image bytes passthrough", "image/png", large, true, ""},
		{"client without gzip", "application/json", large, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveCompressed(t, tt.contentType, tt.body, tt.acceptGzip)

			if got := rec.Header().Get("Content-Encoding"); got != tt.wantEncoding {
				t.Fatalf("Content-Encoding = %q, want %q", got, tt.wantEncoding)
			}

			body := rec.Body.Bytes()
			if tt.wantEncoding == "gzip" {
				zr, err := gzip.NewReader(rec.Body)
				if err != nil {
					t.Fatalf("gzip.NewReader: %v", err)
				}
				if body, err = io.ReadAll(zr); err != nil {
					t.Fatalf("read gzip body: %v", err)
				}
			}
			if string(body) != tt.body {
				t.Errorf("body mismatch: got %d bytes, want %d", len(body), len(tt.body))
			}
		})
	}
}

func TestCompressionMiddleware_PreservesStatus(t *testing.T) {
	handler := Compression(DefaultCompressionConfig())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":"cannot access file"}`)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/media", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
