package component

import (
	"context"
	"io"

	"github.com/a-h/templ"
	common "github.com/bornholm/burnin/internal/http/handler/webui/common/component"
	"github.com/bornholm/burnin/internal/http/handler/webui/common/form"
	"github.com/invopop/ctxi18n/i18n"
	"github.com/pkg/errors"
)

// disableOnSubmit keeps the submit button disabled while the browser
// waits for the response.
const disableOnSubmit = "this.querySelector('button[type=submit]').disabled = true"

type FormVModel struct {
	ID        string
	Action    string
	Form      *form.Form
	SubmitKey string
}

// Form renders every field of a form followed by its form level alerts
// and the submit button.
func Form(vmodel FormVModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := common.NewHTML(ctx, w)

		attrs := []string{
			"id", vmodel.ID,
			"method", "post",
			"action", string(common.BaseURL(ctx, common.WithPath(vmodel.Action))),
			"onsubmit", disableOnSubmit,
		}

		h.Open("form", attrs...)

		for _, name := range vmodel.Form.GetFieldNames() {
			field, err := vmodel.Form.RenderField(name)
			if err != nil {
				return errors.WithStack(err)
			}

			h.Component(field)
		}

		for _, alert := range vmodel.Form.Alerts {
			h.Element("p", alert, "class", "form-alert")
		}

		buttonAttrs := []string{"type", "submit", "class", "button"}
		if vmodel.Form.Submitting() {
			buttonAttrs = append(buttonAttrs, "disabled", "")
		}

		h.Element("button", i18n.T(ctx, vmodel.SubmitKey), buttonAttrs...).
			Close("form")

		return h.Err()
	})
}
