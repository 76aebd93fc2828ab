// Package notify plans and dispatches the notification fan-out for accepted
// form submissions: up to four concurrent deliveries per submission across
// email and WhatsApp, best effort, at most once.
package notify

import (
	"context"
	"sync"
	"time"

	"dealership-api/internal/common/config"
	"dealership-api/internal/common/logger"
	"dealership-api/internal/common/observability"
	"dealership-api/internal/forms"
	"dealership-api/internal/template"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

type Dispatcher struct {
	cfg      config.NotificationConfig
	logger   logger.Logger
	obs      *observability.Observability
	email    EmailSender
	sms      SMSSender
	whatsapp WhatsAppSender
}

func NewDispatcher(
	cfg config.NotificationConfig,
	log logger.Logger,
	obs *observability.Observability,
	email EmailSender,
	sms SMSSender,
	whatsapp WhatsAppSender,
) *Dispatcher {
	return &Dispatcher{
		cfg:      cfg,
		logger:   log,
		obs:      obs,
		email:    email,
		sms:      sms,
		whatsapp: whatsapp,
	}
}

// BuildJobs plans the deliveries for one accepted submission: admin email
// always, customer email when an address was supplied, customer WhatsApp
// when the form enables it and a phone number was supplied, admin WhatsApp
// for contact and booking forms.
func (d *Dispatcher) BuildJobs(spec forms.Spec, payload map[string]interface{}, referenceID string) []Job {
	data := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		data[k] = v
	}
	data["referenceId"] = referenceID

	var jobs []Job

	if d.cfg.Email.Enabled {
		jobs = append(jobs, NewJob(forms.ChannelEmail, "admin", d.cfg.Email.AdminEmail, spec.AdminTemplate(), data))

		if email := stringField(payload, spec.EmailField); email != "" {
			jobs = append(jobs, NewJob(forms.ChannelEmail, "customer", email, spec.CustomerTemplate(), data))
		}
	}

	if d.cfg.WhatsApp.Enabled {
		if spec.CustomerWhatsApp {
			if phone := stringField(payload, spec.PhoneField); phone != "" {
				jobs = append(jobs, NewJob(forms.ChannelWhatsApp, "customer", phone, spec.CustomerTemplate(), data))
			}
		}
		if spec.AdminWhatsApp {
			jobs = append(jobs, NewJob(forms.ChannelWhatsApp, "admin", d.cfg.WhatsApp.AdminNumber, spec.AdminTemplate(), data))
		}
	}

	return jobs
}

// Dispatch runs every job concurrently and waits for all of them. Failures
// are logged and counted, never propagated: the submission already
// succeeded by the time dispatch begins.
func (d *Dispatcher) Dispatch(ctx context.Context, jobs []Job) []Outcome {
	outcomes := make([]Outcome, len(jobs))

	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job Job) {
			defer wg.Done()
			outcomes[i] = d.deliver(ctx, job)
		}(i, job)
	}
	wg.Wait()

	for _, outcome := range outcomes {
		fields := map[string]interface{}{
			"jobId":      outcome.JobID,
			"channel":    outcome.Channel,
			"audience":   outcome.Audience,
			"recipient":  outcome.Recipient,
			"durationMs": outcome.Duration.Milliseconds(),
		}
		if outcome.Sent {
			d.logger.Info("notification sent", fields)
			d.obs.RecordNotification(ctx, outcome.Channel, "sent")
		} else {
			fields["error"] = outcome.Err
			d.logger.Error("notification failed", fields)
			d.obs.RecordNotification(ctx, outcome.Channel, "failed")
		}
	}

	return outcomes
}

func (d *Dispatcher) deliver(ctx context.Context, job Job) Outcome {
	start := time.Now()
	outcome := Outcome{
		JobID:     job.ID,
		Channel:   job.Channel,
		Audience:  job.Audience,
		Recipient: job.Recipient,
	}

	msg, err := template.Render(job.Template, job.Data)
	if err != nil {
		outcome.Err = err
		outcome.Duration = time.Since(start)
		return outcome
	}

	switch job.Channel {
	case forms.ChannelEmail:
		err = d.sendEmail(ctx, job.Recipient, msg.Subject, msg.Body)
	case forms.ChannelWhatsApp:
		err = d.sendWhatsApp(ctx, job.Recipient, msg.Body)
	default:
		err = nil
	}

	outcome.Sent = err == nil
	outcome.Err = err
	outcome.Duration = time.Since(start)
	return outcome
}

func (d *Dispatcher) sendEmail(ctx context.Context, to, subject, body string) error {
	_, err := d.email.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
				Html: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(d.cfg.Email.FromEmail),
	})
	return err
}

func (d *Dispatcher) sendWhatsApp(ctx context.Context, to, message string) error {
	err := d.whatsapp.Send(ctx, to, message)
	if err == nil {
		return nil
	}

	if d.cfg.SMSFallback.Enabled && d.sms != nil {
		d.logger.Warn("whatsapp delivery failed, falling back to sms", map[string]interface{}{
			"recipient": to,
			"error":     err,
		})
		_, smsErr := d.sms.Publish(ctx, &sns.PublishInput{
			PhoneNumber: aws.String(to),
			Message:     aws.String(message),
		})
		return smsErr
	}

	return err
}

func stringField(payload map[string]interface{}, key string) string {
	if key == "" {
		return ""
	}
	s, _ := payload[key].(string)
	return s
}
