package notify

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/google/uuid"
)

// Job is one planned notification delivery. Jobs are independent; a failed
// job never blocks or fails its siblings.
type Job struct {
	ID        string
	Channel   string // forms.ChannelEmail or forms.ChannelWhatsApp
	Recipient string
	Audience  string // "customer" or "admin", for logs and metrics
	Template  string
	Data      map[string]interface{}
}

// NewJob assigns a fresh job id for correlation in logs.
func NewJob(channel, audience, recipient, templateName string, data map[string]interface{}) Job {
	return Job{
		ID:        uuid.New().String(),
		Channel:   channel,
		Audience:  audience,
		Recipient: recipient,
		Template:  templateName,
		Data:      data,
	}
}

// Outcome records the result of one delivery attempt.
type Outcome struct {
	JobID     string
	Channel   string
	Audience  string
	Recipient string
	Sent      bool
	Err       error
	Duration  time.Duration
}

// EmailSender matches the SES client surface the dispatcher needs.
type EmailSender interface {
	SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

// SMSSender matches the SNS client surface used for WhatsApp fallback.
type SMSSender interface {
	Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error)
}

// WhatsAppSender delivers a message to a phone number over WhatsApp.
type WhatsAppSender interface {
	Send(ctx context.Context, to, message string) error
}
