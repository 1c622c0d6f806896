package dashboard

import (
	"net/http"

	"github.com/bornholm/burnin/internal/http/handler/webui/common"
	"github.com/invopop/ctxi18n/i18n"
)

func (h *Handler) getForbiddenPage(w http.ResponseWriter, r *http.Request) {
	common.HandleError(w, r, common.NewForbiddenError(i18n.T(r.Context(), "forbidden")))
}
