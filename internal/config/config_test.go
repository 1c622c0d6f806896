package config

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	t.Setenv("BURNIN_ADMINS", "jane@example.com,bob@example.com")
	t.Setenv("BURNIN_GITLAB_BRANCH", "main")
	t.Setenv("BURNIN_LOGGER_LEVEL", "debug")

	conf, err := Parse()
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if !slices.Equal(conf.Admins, []string{"jane@example.com", "bob@example.com"}) {
		t.Errorf("unexpected admins: %v", conf.Admins)
	}

	if e, g := "main", conf.GitLab.Branch; e != g {
		t.Errorf("conf.GitLab.Branch: expected '%s', got '%s'", e, g)
	}

	if e, g := "burn-in-tests/deployments", conf.GitLab.Project; e != g {
		t.Errorf("conf.GitLab.Project: expected '%s', got '%s'", e, g)
	}

	if e, g := 5*time.Second, conf.Poll.Interval; e != g {
		t.Errorf("conf.Poll.Interval: expected '%v', got '%v'", e, g)
	}

	if e, g := slog.LevelDebug, conf.Logger.Level; e != g {
		t.Errorf("conf.Logger.Level: expected '%v', got '%v'", e, g)
	}

	if !slices.Equal(conf.OAuth.Scopes, []string{"api"}) {
		t.Errorf("unexpected oauth scopes: %v", conf.OAuth.Scopes)
	}
}

func TestLoggerHandler(t *testing.T) {
	type testCase struct {
		Format   LoggerFormat
		Contains string
	}

	testCases := []testCase{
		{Format: LoggerFormatText, Contains: "msg=hello"},
		{Format: LoggerFormatJSON, Contains: `"msg":"hello"`},
		{Format: "unknown", Contains: "msg=hello"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.Format), func(t *testing.T) {
			var buf bytes.Buffer

			conf := Logger{Level: slog.LevelInfo, Format: tc.Format}

			slog.New(conf.Handler(&buf)).Info("hello")

			if !strings.Contains(buf.String(), tc.Contains) {
				t.Errorf("expected output to contain '%s', got '%s'", tc.Contains, buf.String())
			}
		})
	}
}
