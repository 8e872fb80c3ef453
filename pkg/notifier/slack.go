package notifier

import (
	"context"

	"github.com/arkivo/arkivo-slack/pkg/config"
	"github.com/arkivo/arkivo-slack/pkg/template"
	"github.com/arkivo/arkivo-slack/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
)

type SlackNotifier struct {
	Config          config.Config
	Webhook         WebhookClient
	MessageTemplate *template.Template
}

// NewSlack does not check cfg.WebhookURL. A missing URL surfaces as an
// error from the first Send.
func NewSlack(cfg config.Config) (*SlackNotifier, error) {
	t, err := template.Parse(template.Default)
	if err != nil {
		return nil, err
	}
	return &SlackNotifier{
		Config:          cfg,
		Webhook:         NewIncomingWebhook(cfg.WebhookURL),
		MessageTemplate: t,
	}, nil
}

// Send posts text to the channel as the configured bot. Transport errors are
// returned as is.
func (n *SlackNotifier) Send(ctx context.Context, text string) error {
	msg := &slack.WebhookMessage{
		Username: n.Config.BotName,
		IconURL:  n.Config.BotIconURL,
		Text:     text,
	}

	log.Debug().Str("username", msg.Username).Int("length", len(text)).Msg("posting message to slack")
	if err := n.Webhook.Send(ctx, msg); err != nil {
		messagesTotal.WithLabelValues("failed").Inc()
		return err
	}
	messagesTotal.WithLabelValues("sent").Inc()

	return nil
}

// Notify posts one message listing the items created by sync. Sync results
// without items or without created items are ignored.
func (n *SlackNotifier) Notify(ctx context.Context, sync *types.SyncResult) error {
	library, ok := sync.Library()
	if !ok {
		skippedTotal.WithLabelValues("no_items").Inc()
		return nil
	}

	if len(sync.Created) == 0 {
		skippedTotal.WithLabelValues("no_created").Inc()
		return nil
	}

	vars, err := template.NewVars(library, sync)
	if err != nil {
		return err
	}

	message, err := n.MessageTemplate.Execute(vars)
	if err != nil {
		return err
	}

	if err := n.Send(ctx, message); err != nil {
		return err
	}
	log.Info().Str("library", library.Name).Int("created", len(sync.Created)).Msg("posted a message")

	return nil
}
