package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestHandler(t *testing.T) {
	registry := prometheus.NewRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "burnin_test_total",
		Help: "Test counter",
	})
	registry.MustRegister(counter)
	counter.Inc()

	type testCase struct {
		Name           string
		Token          string
		Authorization  string
		ExpectedStatus int
	}

	testCases := []testCase{
		{
			Name:           "no token configured",
			ExpectedStatus: http.StatusOK,
		},
		{
			Name:           "missing token",
			Token:          "secret",
			ExpectedStatus: http.StatusUnauthorized,
		},
		{
			Name:           "wrong token",
			Token:          "secret",
			Authorization:  "Bearer nope",
			ExpectedStatus: http.StatusUnauthorized,
		},
		{
			Name:           "valid token",
			Token:          "secret",
			Authorization:  "Bearer secret",
			ExpectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			handler := NewHandler(WithToken(tc.Token), WithGatherer(registry))

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.Authorization != "" {
				r.Header.Set("Authorization", tc.Authorization)
			}

			handler.ServeHTTP(w, r)

			if e, g := tc.ExpectedStatus, w.Code; e != g {
				t.Fatalf("status: expected %d, got %d", e, g)
			}

			if tc.ExpectedStatus == http.StatusOK && !strings.Contains(w.Body.String(), "burnin_test_total 1") {
				t.Errorf("expected counter in body, got '%s'", w.Body.String())
			}
		})
	}
}
