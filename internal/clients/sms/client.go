package sms

import (
	"context"
	"fmt"

	"villanova-server/internal/observability"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioClient sends SMS through the Twilio REST API
type TwilioClient struct {
	client *twilio.RestClient
	from   string
	logger *observability.Logger
}

func NewTwilioClient(accountSID, authToken, from string, logger *observability.Logger) (*TwilioClient, error) {
	if accountSID == "" || authToken == "" || from == "" {
		return nil, fmt.Errorf("twilio credentials and sender number are required")
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioClient{client: client, from: from, logger: logger}, nil
}

// SendSMS sends body to the E.164 number to and returns the message SID
func (c *TwilioClient) SendSMS(ctx context.Context, to, body string) (string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "sms_to", Value: to})

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(c.from)
	params.SetBody(body)

	resp, err := c.client.Api.CreateMessage(params)
	if err != nil {
		c.logger.Error(ctx, "failed to send sms", err)
		return "", fmt.Errorf("failed to send sms: %w", err)
	}

	sid := ""
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	c.logger.Info(observability.WithFields(ctx, observability.Field{Key: "sms_sid", Value: sid}), "sms sent successfully")
	return sid, nil
}
