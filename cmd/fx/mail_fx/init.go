package mail_fx

import (
	"log"

	"go.uber.org/fx"

	"tuliptour/internal/services"
)

var Module = fx.Provide(
	provideMailService,
)

func provideMailService() services.MailServiceInterface {
	cfg := services.SMTPConfigFromEnv()
	if !cfg.Enabled() {
		log.Println("SMTP not configured; mail notifications disabled")
		return nil
	}
	return services.NewSMTPMailService(cfg)
}
