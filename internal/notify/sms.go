package notify

import (
	"log"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/votepress/backend/internal/config"
)

// SMSNotifier sends transactional texts through Twilio. A nil notifier is
// valid and sends nothing, so callers never need to check configuration.
type SMSNotifier struct {
	client *twilio.RestClient
	from   string
}

// NewSMSNotifier returns nil when Twilio credentials are not configured.
func NewSMSNotifier(cfg config.Config) *SMSNotifier {
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.TwilioFromNumber == "" {
		return nil
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})

	return &SMSNotifier{client: client, from: cfg.TwilioFromNumber}
}

// Welcome texts a newly registered user. Failures are logged, never surfaced:
// registration must not depend on the SMS provider.
func (n *SMSNotifier) Welcome(phoneNumber string) {
	if n == nil || phoneNumber == "" {
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phoneNumber)
	params.SetFrom(n.from)
	params.SetBody("Welcome to VotePress! Your account is ready.")

	if _, err := n.client.Api.CreateMessage(params); err != nil {
		log.Printf("Failed to send welcome SMS: %v", err)
	}
}
