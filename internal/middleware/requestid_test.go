package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestID_HeaderIsSet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(200, c.GetString(RequestIDKey)) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != 200 {
		t.Fatalf("code=%d", w.Code)
	}
	rid := w.Header().Get(RequestIDHeader)
	if rid == "" {
		t.Fatalf("missing request id header")
	}
	if w.Body.String() != rid {
		t.Fatalf("context id %q, header %q", w.Body.String(), rid)
	}
}

func TestRequestID_Incoming(t *testing.T) {
	cases := []struct {
		name   string
		header string
		reuse  bool
	}{
		{name: "reused", header: "trace-abc-123", reuse: true},
		{name: "whitespace rejected", header: "bad id"},
		{name: "too long rejected", header: strings.Repeat("a", maxRequestIDLen+1)},
		{name: "empty", header: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(RequestID())
			r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(RequestIDHeader, tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			if got == "" {
				t.Fatalf("missing request id header")
			}
			if tc.reuse != (got == tc.header) {
				t.Fatalf("header %q, incoming %q, reuse=%v", got, tc.header, tc.reuse)
			}
		})
	}
}
