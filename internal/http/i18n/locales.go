package i18n

import (
	"embed"

	"github.com/invopop/ctxi18n"
	"github.com/pkg/errors"
)

//go:embed locales/*.yml
var locales embed.FS

func init() {
	if err := ctxi18n.Load(locales); err != nil {
		panic(errors.Wrap(err, "could not load translations"))
	}
}
