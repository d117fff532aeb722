package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newTraceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("trace_id"))
	})
	return r
}

func TestTraceIDGenerated(t *testing.T) {
	w := httptest.NewRecorder()
	newTraceRouter().ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))

	traceID := w.Header().Get("X-Trace-ID")
	if _, err := uuid.Parse(traceID); err != nil {
		t.Fatalf("response header %q is not a uuid: %v", traceID, err)
	}
	if w.Body.String() != traceID {
		t.Errorf("context trace id %q != header %q", w.Body.String(), traceID)
	}
}

func TestTraceIDPropagatesInbound(t *testing.T) {
	inbound := uuid.New().String()
	request := httptest.NewRequest("GET", "/ping", nil)
	request.Header.Set("X-Trace-ID", inbound)

	w := httptest.NewRecorder()
	newTraceRouter().ServeHTTP(w, request)

	if got := w.Header().Get("X-Trace-ID"); got != inbound {
		t.Errorf("inbound trace id not propagated: got %q, want %q", got, inbound)
	}
}

func TestTraceIDRejectsMalformedInbound(t *testing.T) {
	request := httptest.NewRequest("GET", "/ping", nil)
	request.Header.Set("X-Trace-ID", "not-a-uuid")

	w := httptest.NewRecorder()
	newTraceRouter().ServeHTTP(w, request)

	got := w.Header().Get("X-Trace-ID")
	if got == "not-a-uuid" {
		t.Fatal("malformed inbound trace id must be replaced")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Errorf("replacement %q is not a uuid: %v", got, err)
	}
}
