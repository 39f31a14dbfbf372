package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestParseWildcardOrigin(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantNil bool
		scheme  string
		suffix  string
	}{
		{name: "valid https wildcard", pattern: "https://*.example.com", scheme: "https://", suffix: ".example.com"},
		{name: "valid http wildcard", pattern: "http://*.localhost.dev", scheme: "http://", suffix: ".localhost.dev"},
		{name: "invalid - no scheme", pattern: "*.example.com", wantNil: true},
		{name: "invalid - bare wildcard", pattern: "*", wantNil: true},
		{name: "invalid - wildcard at end", pattern: "https://example.*", wantNil: true},
		{name: "invalid - multiple wildcards", pattern: "https://*.*.example.com", wantNil: true},
		{name: "invalid - no dot after wildcard", pattern: "https://*example.com", wantNil: true},
		{name: "invalid - single part domain", pattern: "https://*.com", wantNil: true},
		{name: "exact origin - not a wildcard", pattern: "https://example.com", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseWildcardOrigin(tt.pattern)
			if tt.wantNil {
				if got != nil {
					t.Errorf("parseWildcardOrigin(%q) = %+v, want nil", tt.pattern, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("parseWildcardOrigin(%q) = nil, want non-nil", tt.pattern)
			}
			if got.scheme != tt.scheme {
				t.Errorf("scheme = %q, want %q", got.scheme, tt.scheme)
			}
			if got.suffix != tt.suffix {
				t.Errorf("suffix = %q, want %q", got.suffix, tt.suffix)
			}
		})
	}
}

func TestWildcardOriginMatches(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		want   bool
	}{
		{name: "simple subdomain match", origin: "https://app.example.com", want: true},
		{name: "wrong scheme", origin: "http://app.example.com", want: false},
		{name: "wrong domain", origin: "https://app.other.com", want: false},
		{name: "nested subdomain", origin: "https://a.b.example.com", want: false},
		{name: "no subdomain", origin: "https://example.com", want: false},
		{name: "partial match attack", origin: "https://evil-example.com", want: false},
		{name: "suffix injection attack", origin: "https://app.example.com.evil.com", want: false},
	}

	wildcard := parseWildcardOrigin("https://*.example.com")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wildcard.matches(tt.origin); got != tt.want {
				t.Errorf("wildcard.matches(%q) = %v, want %v", tt.origin, got, tt.want)
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"https://mood.example.org", "https://*.preview.example.org"}))
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		origin     string
		wantStatus int
		wantAllow  string
	}{
		{origin: "https://mood.example.org", wantStatus: http.StatusNoContent, wantAllow: "https://mood.example.org"},
		{origin: "https://pr-12.preview.example.org", wantStatus: http.StatusNoContent, wantAllow: "https://pr-12.preview.example.org"},
		{origin: "https://evil.example.com", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodOptions, "/x", nil)
			req.Header.Set("Origin", tt.origin)
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllow {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantAllow)
			}
		})
	}
}
