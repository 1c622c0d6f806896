package gitlab

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bornholm/burnin/internal/record"
	"github.com/bornholm/burnin/internal/slogx"
	"github.com/pkg/errors"
)

const projectPath = "/api/v4/projects/burn-in-tests%2Fdeployments/repository"

type fakeRepository struct {
	mu       sync.Mutex
	tree     map[string][]treeEntry
	files    map[string]string
	delays   map[string]time.Duration
	failing  map[string]int
	requests []*recordedRequest
}

type recordedRequest struct {
	Method        string
	EscapedPath   string
	Query         map[string]string
	Authorization string
	Body          map[string]any
}

func (f *fakeRepository) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	recorded := &recordedRequest{
		Method:        r.Method,
		EscapedPath:   r.URL.EscapedPath(),
		Query:         map[string]string{},
		Authorization: r.Header.Get("Authorization"),
	}

	for key := range r.URL.Query() {
		recorded.Query[key] = r.URL.Query().Get(key)
	}

	if r.Body != nil {
		data, _ := io.ReadAll(r.Body)
		if len(data) > 0 {
			_ = json.Unmarshal(data, &recorded.Body)
		}
	}

	f.mu.Lock()
	f.requests = append(f.requests, recorded)
	f.mu.Unlock()

	escaped := r.URL.EscapedPath()

	if !strings.HasPrefix(escaped, projectPath) {
		http.NotFound(w, r)
		return
	}

	rest := strings.TrimPrefix(escaped, projectPath)

	switch {
	case rest == "/tree" && r.Method == http.MethodGet:
		if code, exists := f.failing["tree"]; exists {
			http.Error(w, "tree unavailable", code)
			return
		}

		entries, exists := f.tree[r.URL.Query().Get("path")]
		if !exists {
			entries = []treeEntry{}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(entries)

	case strings.HasPrefix(rest, "/files/") && strings.HasSuffix(rest, "/raw") && r.Method == http.MethodGet:
		path := strings.ReplaceAll(strings.TrimSuffix(strings.TrimPrefix(rest, "/files/"), "/raw"), "%2F", "/")

		if delay, exists := f.delays[path]; exists {
			time.Sleep(delay)
		}

		content, exists := f.files[path]
		if !exists {
			http.NotFound(w, r)
			return
		}

		_, _ = io.WriteString(w, content)

	case strings.HasPrefix(rest, "/files/"):
		if code, exists := f.failing["commit"]; exists {
			http.Error(w, `{"message":"A file with this name already exists"}`, code)
			return
		}

		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
			return
		}

		w.WriteHeader(http.StatusNoContent)

	default:
		http.NotFound(w, r)
	}
}

func (f *fakeRepository) lastRequest() *recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.requests) == 0 {
		return nil
	}

	return f.requests[len(f.requests)-1]
}

func newTestClient(t *testing.T, repo *fakeRepository) *Client {
	server := httptest.NewServer(repo)
	t.Cleanup(server.Close)

	client, err := NewClient(
		server.URL,
		WithHTTPClient(server.Client()),
		WithReadOnlyToken("readonly-token"),
		WithLogger(slogx.NewTestLogger(t)),
	)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	return client
}

func TestList(t *testing.T) {
	repo := &fakeRepository{
		tree: map[string][]treeEntry{
			"runs": {
				{Name: "run-3.toml", Type: "blob"},
				{Name: "README.md", Type: "blob"},
				{Name: "run-1.toml", Type: "blob"},
				{Name: "run-archive.toml", Type: "tree"},
				{Name: "request-2.toml", Type: "blob"},
			},
		},
	}

	client := newTestClient(t, repo)

	paths := client.List(context.Background(), "runs")

	if e, g := []string{"runs/run-3.toml", "runs/run-1.toml"}, paths; !slices.Equal(e, g) {
		t.Errorf("expected %v, got %v", e, g)
	}

	req := repo.lastRequest()

	expectedQuery := map[string]string{
		"ref":      "master",
		"path":     "runs",
		"per_page": "100",
	}

	for key, value := range expectedQuery {
		if g := req.Query[key]; g != value {
			t.Errorf("query %s: expected '%s', got '%s'", key, value, g)
		}
	}

	if e, g := "Bearer readonly-token", req.Authorization; e != g {
		t.Errorf("authorization: expected '%s', got '%s'", e, g)
	}
}

func TestListFailure(t *testing.T) {
	repo := &fakeRepository{
		failing: map[string]int{"tree": http.StatusInternalServerError},
	}

	client := newTestClient(t, repo)

	paths := client.List(context.Background(), "runs")

	if paths == nil {
		t.Fatal("expected an empty, non nil list")
	}

	if e, g := 0, len(paths); e != g {
		t.Errorf("expected %d paths, got %d", e, g)
	}
}

func TestFetchFile(t *testing.T) {
	repo := &fakeRepository{
		files: map[string]string{
			"runs/run-1.toml": `pull_request = "https://github.com/paritytech/polkadot/pull/1"`,
		},
	}

	client := newTestClient(t, repo)

	ctx := WithToken(context.Background(), "user-token")

	content := client.FetchFile(ctx, "runs/run-1.toml")
	if e, g := `pull_request = "https://github.com/paritytech/polkadot/pull/1"`, content; e != g {
		t.Errorf("expected '%s', got '%s'", e, g)
	}

	req := repo.lastRequest()

	if e, g := projectPath+"/files/runs%2Frun-1.toml/raw", req.EscapedPath; e != g {
		t.Errorf("path: expected '%s', got '%s'", e, g)
	}

	if e, g := "Bearer user-token", req.Authorization; e != g {
		t.Errorf("authorization: expected '%s', got '%s'", e, g)
	}

	if e, g := "", client.FetchFile(ctx, "runs/missing.toml"); e != g {
		t.Errorf("expected '%s' for a missing file, got '%s'", e, g)
	}
}

func TestFetchAll(t *testing.T) {
	repo := &fakeRepository{
		tree: map[string][]treeEntry{
			"runs": {
				{Name: "run-1.toml", Type: "blob"},
				{Name: "run-2.toml", Type: "blob"},
				{Name: "run-3.toml", Type: "blob"},
				{Name: "run-4.toml", Type: "blob"},
			},
		},
		files: map[string]string{
			"runs/run-1.toml": `deployed_on = "first"`,
			"runs/run-2.toml": `deployed_on = "unterminated`,
			"runs/run-4.toml": `deployed_on = "fourth"`,
		},
		delays: map[string]time.Duration{
			"runs/run-1.toml": 50 * time.Millisecond,
		},
	}

	client := newTestClient(t, repo)

	entries, err := FetchAll(context.Background(), client, "runs", record.ParseRun)
	if err == nil {
		t.Error("expected an error for the file that could not be fetched")
	}

	if e, g := 4, len(entries); e != g {
		t.Fatalf("expected %d entries, got %d", e, g)
	}

	for i, e := range []string{"runs/run-1.toml", "runs/run-2.toml", "runs/run-3.toml", "runs/run-4.toml"} {
		if g := entries[i].Path; e != g {
			t.Errorf("entries[%d].Path: expected '%s', got '%s'", i, e, g)
		}
	}

	if e, g := "first", entries[0].Content.DeployedOn; e != g {
		t.Errorf("entries[0]: expected '%s', got '%s'", e, g)
	}

	if !errors.Is(entries[1].Err, record.ErrMalformed) {
		t.Errorf("entries[1]: expected ErrMalformed, got %v", entries[1].Err)
	}

	if entries[2].Valid() {
		t.Errorf("entries[2]: expected a fetch error")
	}

	if e, g := "fourth", entries[3].Content.DeployedOn; e != g {
		t.Errorf("entries[3]: expected '%s', got '%s'", e, g)
	}

	if e, g := 2, record.CountInvalid(entries); e != g {
		t.Errorf("expected %d invalid entries, got %d", e, g)
	}
}

func TestFetchAllEmpty(t *testing.T) {
	client := newTestClient(t, &fakeRepository{})

	entries, err := FetchAll(context.Background(), client, "manual", record.ParseManualRun)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := 0, len(entries); e != g {
		t.Errorf("expected %d entries, got %d", e, g)
	}
}

func TestFetchAllListFailure(t *testing.T) {
	repo := &fakeRepository{
		failing: map[string]int{"tree": http.StatusBadGateway},
	}

	client := newTestClient(t, repo)

	entries, err := FetchAll(context.Background(), client, "runs", record.ParseRun)
	if err == nil {
		t.Fatal("expected an error")
	}

	if entries == nil {
		t.Fatal("expected an empty, non nil list")
	}

	if e, g := 0, len(entries); e != g {
		t.Errorf("expected %d entries, got %d", e, g)
	}
}

func TestFetchAllParseErrorIsNotAReadFailure(t *testing.T) {
	repo := &fakeRepository{
		tree: map[string][]treeEntry{
			"runs": {{Name: "run-1.toml", Type: "blob"}},
		},
		files: map[string]string{
			"runs/run-1.toml": `deployed_on = "unterminated`,
		},
	}

	client := newTestClient(t, repo)

	entries, err := FetchAll(context.Background(), client, "runs", record.ParseRun)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := 1, record.CountInvalid(entries); e != g {
		t.Errorf("expected %d invalid entries, got %d", e, g)
	}
}

func TestCreateFile(t *testing.T) {
	repo := &fakeRepository{}
	client := newTestClient(t, repo)

	ctx := WithToken(context.Background(), "user-token")
	author := Author{Name: "Jane Doe", Email: "jane@example.com"}

	err := client.CreateFile(ctx, "requests/request-1.toml", RequestMessage("https://github.com/paritytech/polkadot/pull/1"), author, "pull_request = \"x\"\n")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	req := repo.lastRequest()

	if e, g := http.MethodPost, req.Method; e != g {
		t.Errorf("method: expected '%s', got '%s'", e, g)
	}

	if e, g := projectPath+"/files/requests%2Frequest-1.toml", req.EscapedPath; e != g {
		t.Errorf("path: expected '%s', got '%s'", e, g)
	}

	if e, g := "Bearer user-token", req.Authorization; e != g {
		t.Errorf("authorization: expected '%s', got '%s'", e, g)
	}

	expectedBody := map[string]any{
		"branch":         "master",
		"commit_message": "Request https://github.com/paritytech/polkadot/pull/1",
		"author_name":    "Jane Doe",
		"author_email":   "jane@example.com",
		"content":        "pull_request = \"x\"\n",
	}

	for key, value := range expectedBody {
		if g := req.Body[key]; g != value {
			t.Errorf("body %s: expected '%v', got '%v'", key, value, g)
		}
	}
}

func TestDeleteFile(t *testing.T) {
	repo := &fakeRepository{}
	client := newTestClient(t, repo)

	author := Author{Name: "Jane Doe", Email: "jane@example.com"}

	if err := client.DeleteFile(context.Background(), "manual/run-1.toml", RemoveMessage(true, "node-01"), author); err != nil {
		t.Fatalf("%+v", err)
	}

	req := repo.lastRequest()

	if e, g := http.MethodDelete, req.Method; e != g {
		t.Errorf("method: expected '%s', got '%s'", e, g)
	}

	if _, exists := req.Body["content"]; exists {
		t.Errorf("expected no content in delete body, got %v", req.Body)
	}

	if e, g := "Remove manual deployment on node-01", req.Body["commit_message"]; e != g {
		t.Errorf("commit message: expected '%v', got '%v'", e, g)
	}
}

func TestCommitFailure(t *testing.T) {
	repo := &fakeRepository{
		failing: map[string]int{"commit": http.StatusBadRequest},
	}

	client := newTestClient(t, repo)

	author := Author{Name: "Jane Doe", Email: "jane@example.com"}

	err := client.CreateFile(context.Background(), "manual/run-1.toml", AddManualMessage("node-01"), author, "")
	if !errors.Is(err, ErrCommitFailed) {
		t.Errorf("create: expected ErrCommitFailed, got %v", err)
	}

	err = client.DeleteFile(context.Background(), "runs/run-1.toml", RemoveMessage(false, "node-01"), author)
	if !errors.Is(err, ErrCommitFailed) {
		t.Errorf("delete: expected ErrCommitFailed, got %v", err)
	}

	err = client.DeleteFile(context.Background(), "", RemoveMessage(false, "node-01"), author)
	if !errors.Is(err, ErrInvalidPath) {
		t.Errorf("empty path: expected ErrInvalidPath, got %v", err)
	}
}

func TestMessages(t *testing.T) {
	testCases := []struct {
		Got      string
		Expected string
	}{
		{RequestMessage("https://github.com/paritytech/polkadot/pull/42"), "Request https://github.com/paritytech/polkadot/pull/42"},
		{AddManualMessage("westend-01"), "Add manual deployment on westend-01"},
		{RemoveMessage(false, "kusama-01"), "[cleanup] kusama-01"},
		{RemoveMessage(true, "kusama-01"), "Remove manual deployment on kusama-01"},
	}

	for i, tc := range testCases {
		t.Run(fmt.Sprintf("message-%d", i), func(t *testing.T) {
			if tc.Got != tc.Expected {
				t.Errorf("expected '%s', got '%s'", tc.Expected, tc.Got)
			}
		})
	}
}

func TestCommitRefused(t *testing.T) {
	type testCase struct {
		Status       int
		Unauthorized bool
	}

	testCases := []testCase{
		{Status: http.StatusUnauthorized, Unauthorized: true},
		{Status: http.StatusForbidden, Unauthorized: false},
	}

	for _, tc := range testCases {
		t.Run(http.StatusText(tc.Status), func(t *testing.T) {
			repo := &fakeRepository{
				failing: map[string]int{"commit": tc.Status},
			}

			client := newTestClient(t, repo)

			ctx := WithToken(context.Background(), "user-token")

			err := client.CreateFile(ctx, "requests/request-1.toml", RequestMessage("x"), Author{}, "")

			if !errors.Is(err, ErrCommitFailed) {
				t.Errorf("expected ErrCommitFailed, got %v", err)
			}

			if e, g := tc.Unauthorized, errors.Is(err, ErrUnauthorized); e != g {
				t.Errorf("errors.Is(err, ErrUnauthorized): expected '%v', got '%v' (%v)", e, g, err)
			}
		})
	}
}
