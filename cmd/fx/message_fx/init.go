package message_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tuliptour/internal/api/controllers"
	"tuliptour/internal/repositories"
	"tuliptour/internal/services"
)

var Module = fx.Provide(
	provideMessageRepo, provideMessageService, provideMessageController,
)

func provideMessageRepo(db *gorm.DB) repositories.MessageRepositoryInterface {
	return repositories.NewMessageRepository(db)
}

func provideMessageService(
	messageRepo repositories.MessageRepositoryInterface,
	mailer services.MailServiceInterface,
) services.MessageServiceInterface {
	return services.NewMessageService(messageRepo, mailer)
}

func provideMessageController(messageService services.MessageServiceInterface) *controllers.MessageController {
	return controllers.NewMessageController(messageService)
}
