package invoice

import (
	"github.com/jesus-or/facturas/internal/invoice/domain"
	"github.com/jesus-or/facturas/internal/invoice/repository"
	"github.com/jesus-or/facturas/internal/invoice/service"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
	fx.Invoke(autoMigrate),
)

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Invoice{})
}
