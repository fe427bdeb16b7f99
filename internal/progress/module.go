package progress

import (
	"os"

	"go.uber.org/fx"
	"url-checker/internal/domain"
)

var Module = fx.Options(
	fx.Provide(func() *Printer { return NewPrinter(os.Stdout) }),
	fx.Provide(func(p *Printer) domain.ProgressObserver { return p }),
)
