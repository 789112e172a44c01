package sms

import (
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// VoteNotification carries everything needed to tell a candidate they
// received a justified vote.
type VoteNotification struct {
	RecipientPhone string
	RecipientName  string
	VoterName      string
	Comment        string
}

// Notifier delivers vote notifications. Delivery is best-effort
// everywhere: failures are logged by callers, never propagated.
type Notifier interface {
	SendVoteNotification(n VoteNotification) error
}

// TwilioNotifier sends SMS through the Twilio REST API
type TwilioNotifier struct {
	client    *twilio.RestClient
	fromPhone string
	log       *zap.Logger
}

// NewTwilioNotifier builds a Twilio-backed notifier. Returns a Noop
// notifier when credentials are missing, so callers never have to branch.
func NewTwilioNotifier(accountSID, authToken, fromPhone string, log *zap.Logger) Notifier {
	if accountSID == "" || authToken == "" || fromPhone == "" {
		log.Warn("Twilio not configured, vote notifications disabled")
		return NoopNotifier{}
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioNotifier{client: client, fromPhone: fromPhone, log: log}
}

// SendVoteNotification sends the justification SMS to the candidate
func (t *TwilioNotifier) SendVoteNotification(n VoteNotification) error {
	body := fmt.Sprintf("Opa %s! Voce recebeu um voto de %s com a seguinte justificativa: %q",
		n.RecipientName, n.VoterName, n.Comment)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(n.RecipientPhone)
	params.SetFrom(t.fromPhone)
	params.SetBody(body)

	if _, err := t.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}

	t.log.Debug("vote notification sent", zap.String("recipient", n.RecipientName))
	return nil
}

// NoopNotifier drops every notification
type NoopNotifier struct{}

func (NoopNotifier) SendVoteNotification(VoteNotification) error { return nil }
