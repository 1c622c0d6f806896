package slogx

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestContextHandler(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(ContextHandler{
		Handler: slog.NewTextHandler(&buf, nil),
	}).With("component", "test")

	ctx := WithAttrs(context.Background(), slog.String("poll_id", "1"))
	ctx = WithAttrs(ctx, slog.String("collection", "runs"))

	logger.InfoContext(ctx, "fetched")

	output := buf.String()

	for _, expected := range []string{"component=test", "poll_id=1", "collection=runs", "msg=fetched"} {
		if !strings.Contains(output, expected) {
			t.Errorf("expected output to contain '%s', got '%s'", expected, output)
		}
	}
}

func TestWithAttrsDoesNotAliasParent(t *testing.T) {
	parent := WithAttrs(context.Background(), slog.String("a", "1"))

	first := WithAttrs(parent, slog.String("b", "2"))
	second := WithAttrs(parent, slog.String("c", "3"))

	firstAttrs := first.Value(slogFields).([]slog.Attr)
	secondAttrs := second.Value(slogFields).([]slog.Attr)

	if got := firstAttrs[1].Key; got != "b" {
		t.Errorf("expected second attribute of first context to be 'b', got '%s'", got)
	}

	if got := secondAttrs[1].Key; got != "c" {
		t.Errorf("expected second attribute of second context to be 'c', got '%s'", got)
	}
}
