package common

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"io/fs"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

//go:embed assets/*
var assetsFS embed.FS

const assetsMaxAge = 3600

// Handler serves the embedded stylesheet and scripts of the dashboard.
type Handler struct {
	files fs.FS
	etags map[string]string
	mux   *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) serveAsset(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")

		if etag, exists := h.etags[name]; exists {
			// FileServer answers If-None-Match itself once the header is set
			w.Header().Set("ETag", etag)
		}

		w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(assetsMaxAge))

		next.ServeHTTP(w, r)
	})
}

func NewHandler() *Handler {
	files, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		panic(errors.WithStack(err))
	}

	etags, err := computeETags(files)
	if err != nil {
		panic(errors.WithStack(err))
	}

	h := &Handler{
		files: files,
		etags: etags,
		mux:   http.NewServeMux(),
	}

	h.mux.Handle("GET /", h.serveAsset(http.FileServerFS(files)))

	return h
}

func computeETags(files fs.FS) (map[string]string, error) {
	etags := map[string]string{}

	err := fs.WalkDir(files, ".", func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return errors.WithStack(err)
		}

		if entry.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(files, name)
		if err != nil {
			return errors.WithStack(err)
		}

		sum := sha256.Sum256(data)
		etags[name] = `"` + hex.EncodeToString(sum[:8]) + `"`

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return etags, nil
}

var _ http.Handler = &Handler{}
