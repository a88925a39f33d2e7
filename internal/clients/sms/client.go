package sms

import (
	"context"
	"fmt"
	"strings"

	"loyalty-server/internal/domain"
	"loyalty-server/internal/observability"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

const whatsAppPrefix = "whatsapp:"

// MessageCreator is the Twilio messages endpoint
type MessageCreator interface {
	CreateMessage(params *twilioapi.CreateMessageParams) (*twilioapi.ApiV2010Message, error)
}

// Client sends SMS and WhatsApp messages through Twilio
type Client struct {
	api          MessageCreator
	smsFrom      string
	whatsAppFrom string
	logger       *observability.Logger
}

type Config struct {
	AccountSID   string
	AuthToken    string
	SMSFrom      string
	WhatsAppFrom string
}

func NewClient(cfg Config, logger *observability.Logger) *Client {
	rest := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return NewClientWithAPI(rest.Api, cfg.SMSFrom, cfg.WhatsAppFrom, logger)
}

func NewClientWithAPI(api MessageCreator, smsFrom, whatsAppFrom string, logger *observability.Logger) *Client {
	return &Client{
		api:          api,
		smsFrom:      smsFrom,
		whatsAppFrom: whatsAppFrom,
		logger:       logger,
	}
}

// SendSMS delivers body to phone and returns the Twilio message SID
func (c *Client) SendSMS(ctx context.Context, phone, body string) (string, error) {
	return c.send(ctx, "sms", c.smsFrom, phone, body)
}

// SendWhatsApp delivers body over WhatsApp and returns the Twilio message SID
func (c *Client) SendWhatsApp(ctx context.Context, phone, body string) (string, error) {
	return c.send(ctx, "whatsapp", withWhatsAppPrefix(c.whatsAppFrom), withWhatsAppPrefix(phone), body)
}

func (c *Client) send(ctx context.Context, channel, from, to, body string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetFrom(from)
	params.SetTo(to)
	params.SetBody(body)

	msg, err := c.api.CreateMessage(params)
	if err != nil {
		c.logger.Error(observability.WithFields(ctx,
			observability.Field{Key: "channel", Value: channel},
		), "twilio send failed", err)
		return "", &domain.UpstreamTransportError{Service: "twilio_" + channel, Err: err}
	}
	if msg == nil || msg.Sid == nil {
		return "", &domain.UpstreamTransportError{Service: "twilio_" + channel, Err: fmt.Errorf("response without message sid")}
	}
	return *msg.Sid, nil
}

func withWhatsAppPrefix(number string) string {
	if strings.HasPrefix(number, whatsAppPrefix) {
		return number
	}
	return whatsAppPrefix + number
}
