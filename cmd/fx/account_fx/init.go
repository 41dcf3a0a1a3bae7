package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tuliptour/internal/api/controllers"
	"tuliptour/internal/repositories"
	"tuliptour/internal/services"
	"tuliptour/pkg/mem"
)

var Module = fx.Provide(
	provideResetTokens, provideAccountRepo, provideAccountService, provideAccountController,
)

func provideResetTokens() mem.ResetTokenStore {
	return mem.NewResetTokens()
}

func provideAccountRepo(db *gorm.DB) repositories.AccountRepositoryInterface {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	resetTokens mem.ResetTokenStore,
	mailer services.MailServiceInterface,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, resetTokens, mailer)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
