package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func echoHandler(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	defer r.Body.Close()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func TestGzipMiddleware(t *testing.T) {
	payload := `{"nit":"123.45678.90-0"}`

	tests := []struct {
		name            string
		acceptEncoding  string
		compressRequest bool
		wantEncoding    string
	}{
		{
			name:           "response is compressed for gzip capable client",
			acceptEncoding: "gzip",
			wantEncoding:   "gzip",
		},
		{
			name:           "response stays plain without accept-encoding",
			acceptEncoding: "",
			wantEncoding:   "",
		},
		{
			name:            "compressed request body is decompressed",
			acceptEncoding:  "gzip",
			compressRequest: true,
			wantEncoding:    "gzip",
		},
		{
			name:            "compressed request with plain response",
			acceptEncoding:  "",
			compressRequest: true,
			wantEncoding:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var requestBody io.Reader = strings.NewReader(payload)
			if tt.compressRequest {
				var buf bytes.Buffer
				zw := gzip.NewWriter(&buf)
				if _, err := zw.Write([]byte(payload)); err != nil {
					t.Fatalf("write gzip: %v", err)
				}
				if err := zw.Close(); err != nil {
					t.Fatalf("close gzip: %v", err)
				}
				requestBody = &buf
			}

			req := httptest.NewRequest(http.MethodPost, "/api/nit/validate", requestBody)
			req.Header.Set("Content-Type", "application/json")
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.compressRequest {
				req.Header.Set("Content-Encoding", "gzip")
			}

			w := httptest.NewRecorder()

			h := GzipMiddleware(http.HandlerFunc(echoHandler))
			h.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusOK)
			}

			if ce := res.Header.Get("Content-Encoding"); ce != tt.wantEncoding {
				t.Fatalf("content-encoding = %q, want %q", ce, tt.wantEncoding)
			}

			var body []byte
			var err error
			if tt.wantEncoding == "gzip" {
				zr, zrErr := gzip.NewReader(res.Body)
				if zrErr != nil {
					t.Fatalf("new gzip reader: %v", zrErr)
				}
				defer zr.Close()
				body, err = io.ReadAll(zr)
			} else {
				body, err = io.ReadAll(res.Body)
			}
			if err != nil {
				t.Fatalf("read body: %v", err)
			}

			if string(body) != payload {
				t.Fatalf("body = %q, want %q", string(body), payload)
			}
		})
	}
}

func TestGzipMiddlewareRejectsBrokenBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/nit/validate", strings.NewReader("not gzip at all"))
	req.Header.Set("Content-Encoding", "gzip")

	w := httptest.NewRecorder()

	h := GzipMiddleware(http.HandlerFunc(echoHandler))
	h.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusBadRequest)
	}
}
