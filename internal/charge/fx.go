package charge

import (
	"github.com/stayloop/leasebill/internal/charge/domain"
	"go.uber.org/fx"
)

var Module = fx.Module("charge.calculator",
	fx.Provide(domain.NewCalculator),
)
