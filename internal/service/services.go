package service

import (
	"github.com/MKhiriev/expense-tracker/internal/config"
	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/internal/store"
	"github.com/MKhiriev/expense-tracker/internal/validators"
)

type Services struct {
	AuthService    AuthService
	ExpenseService ExpenseService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator()

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, validator, cfg, logger),
		ExpenseService: NewExpenseValidationService(validator).
			Wrap(NewExpenseService(storages.ExpenseRepository, logger)),
		AppInfoService: appInfoService,
	}, nil
}
