package common

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpCtx "github.com/bornholm/burnin/internal/http/context"
)

func TestAssetsHandler(t *testing.T) {
	handler := NewHandler()

	req := httptest.NewRequest(http.MethodGet, "/style.css", nil)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
	}

	etag := res.Header().Get("ETag")
	if etag == "" {
		t.Fatalf("expected an etag")
	}

	if !strings.HasPrefix(res.Header().Get("Content-Type"), "text/css") {
		t.Errorf("unexpected content type '%s'", res.Header().Get("Content-Type"))
	}

	req = httptest.NewRequest(http.MethodGet, "/style.css", nil)
	req.Header.Set("If-None-Match", etag)
	res = httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if e, g := http.StatusNotModified, res.Code; e != g {
		t.Errorf("res.Code: expected '%v', got '%v'", e, g)
	}
}

func TestHandleErrorNegotiation(t *testing.T) {
	type testCase struct {
		Accept      string
		ContentType string
	}

	testCases := []testCase{
		{Accept: "application/json", ContentType: "application/json"},
		{Accept: "text/html,application/json", ContentType: "text/html"},
		{Accept: "", ContentType: "text/html"},
	}

	for _, tc := range testCases {
		t.Run(tc.Accept, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Accept", tc.Accept)

			ctx := httpCtx.SetBaseURL(req.Context(), "/")
			ctx = httpCtx.SetCurrentURL(ctx, req.URL)
			req = req.WithContext(ctx)
			res := httptest.NewRecorder()

			HandleError(res, req, NewForbiddenError("nope"))

			if e, g := http.StatusForbidden, res.Code; e != g {
				t.Errorf("res.Code: expected '%v', got '%v'", e, g)
			}

			if !strings.HasPrefix(res.Header().Get("Content-Type"), tc.ContentType) {
				t.Errorf("unexpected content type '%s'", res.Header().Get("Content-Type"))
			}

			if !strings.Contains(res.Body.String(), "nope") {
				t.Errorf("expected body to contain the user message, got '%s'", res.Body.String())
			}
		})
	}
}
