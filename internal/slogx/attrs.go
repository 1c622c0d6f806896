package slogx

import (
	"log/slog"
)

func Error(err error) slog.Attr {
	return slog.Any("error", err)
}

func Path(path string) slog.Attr {
	return slog.String("path", path)
}
