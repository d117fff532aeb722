package services

import (
	"testing"
)

func TestNewSMTPMailService(t *testing.T) {
	svc, err := NewSMTPMailService(SMTPConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "mailer",
		Password: "secret",
		From:     "noreply@example.com",
		FromName: "GoTrip",

		AppName:    "GoTrip",
		AppBaseURL: "https://gotrip.example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc == nil {
		t.Fatal("expected a usable mail service")
	}
}
