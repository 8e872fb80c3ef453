package notifier

import (
	"context"
	"net/http"

	"github.com/slack-go/slack"
)

// WebhookClient posts a message to a Slack channel.
type WebhookClient interface {
	Send(context.Context, *slack.WebhookMessage) error
}

// IncomingWebhook posts to a Slack Incoming Webhook URL.
type IncomingWebhook struct {
	URL        string
	HTTPClient *http.Client
}

func NewIncomingWebhook(url string) *IncomingWebhook {
	return &IncomingWebhook{URL: url}
}

func (w *IncomingWebhook) Send(ctx context.Context, msg *slack.WebhookMessage) error {
	client := w.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	return slack.PostWebhookCustomHTTPContext(ctx, w.URL, client, msg)
}
