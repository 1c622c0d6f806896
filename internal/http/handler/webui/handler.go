package webui

import (
	"net/http"
	"strings"

	"github.com/bornholm/burnin/internal/http/handler/webui/common"
	"github.com/bornholm/burnin/internal/http/handler/webui/dashboard"
)

// Handler serves the dashboard page, its form endpoints and its assets.
type Handler struct {
	assets    http.Handler
	dashboard http.Handler
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, assetsPrefix+"/") {
		http.StripPrefix(assetsPrefix, h.assets).ServeHTTP(w, r)
		return
	}

	h.dashboard.ServeHTTP(w, r)
}

const assetsPrefix = "/assets"

func NewHandler(committer dashboard.Committer, poller dashboard.Poller, collections dashboard.Collections, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	return &Handler{
		assets:    common.NewHandler(),
		dashboard: dashboard.NewHandler(committer, poller, collections, opts.Dashboard...),
	}
}

var _ http.Handler = &Handler{}
