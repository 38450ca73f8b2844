package services

import (
	"log"

	twilio "github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"fixfleet-server/config"
)

// SMSSender delivers OTP codes out-of-band. The demo flag reports
// whether the message was actually sent or only logged.
type SMSSender interface {
	Send(phone, body string) (demo bool, err error)
}

// TwilioSender sends real SMS through the Twilio REST API
type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioSender creates a sender bound to the configured Twilio account
func NewTwilioSender(accountSID, authToken, from string) *TwilioSender {
	return &TwilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: from,
	}
}

// Send delivers the message via Twilio
func (t *TwilioSender) Send(phone, body string) (bool, error) {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(t.from)
	params.SetBody(body)

	if _, err := t.client.Api.CreateMessage(params); err != nil {
		log.Printf("❌ Twilio SMS error: %v", err)
		return false, err
	}
	return false, nil
}

// DemoSender logs messages instead of sending them. Used whenever
// Twilio is not configured so auth flows still complete locally.
type DemoSender struct{}

// Send logs the message and reports demo mode
func (DemoSender) Send(phone, body string) (bool, error) {
	log.Printf("📱 [DEMO] SMS to %s: %s", phone, body)
	return true, nil
}

// NewSMSSenderFromConfig picks the Twilio sender when credentials are
// present and falls back to demo mode otherwise.
func NewSMSSenderFromConfig() SMSSender {
	cfg := config.AppConfig.Twilio
	if cfg.AccountSID != "" && cfg.AuthToken != "" {
		log.Println("✅ Twilio SMS service initialized")
		return NewTwilioSender(cfg.AccountSID, cfg.AuthToken, cfg.PhoneNumber)
	}
	log.Println("⚠️ Twilio not configured - SMS will use demo mode")
	return DemoSender{}
}
