package plugin

import (
	"context"
	"time"

	"github.com/arkivo/arkivo-slack/pkg/config"
	"github.com/arkivo/arkivo-slack/pkg/notifier"
	"github.com/arkivo/arkivo-slack/pkg/template"
	"github.com/arkivo/arkivo-slack/pkg/types"
	"github.com/rs/zerolog/log"
)

const (
	Name        = "slack"
	Description = "Sends notifications to Slack about newly added items"
)

type Parameter struct {
	Mandatory   bool   `json:"mandatory"`
	Description string `json:"description"`
}

// Descriptor is what the host reads to register the plugin and to know
// which parameters a subscription has to supply.
type Descriptor struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Parameters  map[string]Parameter `json:"parameters"`
}

// Slack builds a fresh notifier for every Process call.
type Slack struct {
	// Shared is the slack section of the host's config file.
	Shared config.Options
	// MessageTemplate replaces the default message when set.
	MessageTemplate *template.Template
	// Timeout bounds each Process call when positive.
	Timeout time.Duration
	// NewWebhook replaces the Incoming Webhook client when set.
	NewWebhook func(config.Config) notifier.WebhookClient
}

func New(shared config.Options) *Slack {
	return &Slack{Shared: shared}
}

func (p *Slack) Descriptor() Descriptor {
	return Descriptor{
		Name:        Name,
		Description: Description,
		Parameters: map[string]Parameter{
			config.KeyWebhookURL: {
				Mandatory:   true,
				Description: "Slack WebHook URL used to post a message to a channel",
			},
		},
	}
}

// Process posts the created items of sync using the options bound to the
// subscription.
func (p *Slack) Process(ctx context.Context, options config.Options, sync *types.SyncResult) error {
	nt, err := p.notifier(options)
	if err != nil {
		return err
	}

	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	log.Debug().Int("items", sync.Items.Len()).Int("created", len(sync.Created)).
		Int("updated", len(sync.Updated)).Int("deleted", len(sync.Deleted)).Msg("processing sync result")

	return nt.Notify(ctx, sync)
}

func (p *Slack) notifier(options config.Options) (*notifier.SlackNotifier, error) {
	nt, err := notifier.NewSlack(config.Resolve(p.Shared, options))
	if err != nil {
		return nil, err
	}
	if p.MessageTemplate != nil {
		nt.MessageTemplate = p.MessageTemplate
	}
	if p.NewWebhook != nil {
		nt.Webhook = p.NewWebhook(nt.Config)
	}
	return nt, nil
}
