package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gotrip/internal/api/controllers"
	"gotrip/internal/repositories"
	"gotrip/internal/services"
	mem "gotrip/pkg/memcache"
)

var Module = fx.Provide(
	provideResetTokenStore, provideAccountRepo, provideAccountService, provideAccountController,
)

func provideResetTokenStore() mem.ResetTokenStore {
	return mem.NewResetTokens()
}

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, mailService services.IMailService, resetTokens mem.ResetTokenStore) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, mailService, resetTokens)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
