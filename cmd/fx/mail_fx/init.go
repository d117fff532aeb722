package mail_fx

import (
	"os"
	"strconv"

	"go.uber.org/fx"

	"gotrip/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() (services.IMailService, error) {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	cfg := services.SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
		FromName: "GoTrip",

		AppName:    "GoTrip",
		AppBaseURL: os.Getenv("APP_BASE_URL"),
	}

	return services.NewSMTPMailService(cfg)
}
