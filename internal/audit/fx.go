package audit

import (
	"github.com/stayloop/leasebill/internal/audit/repository"
	"github.com/stayloop/leasebill/internal/audit/service"
	"go.uber.org/fx"
)

var Module = fx.Module("audit.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
