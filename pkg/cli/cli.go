package cli

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arkivo/arkivo-slack/pkg/config"
	"github.com/arkivo/arkivo-slack/pkg/plugin"
	"github.com/arkivo/arkivo-slack/pkg/server"
	"github.com/arkivo/arkivo-slack/pkg/template"
	"github.com/arkivo/arkivo-slack/pkg/types"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

const flagListen = "listen"
const flagConfigFile = "config-file"
const flagMessageTemplateFile = "message-template-file"
const flagTimeout = "timeout"
const flagWebhookURL = "webhook-url"
const flagTemplateFile = "template-file"
const flagPayloadFile = "payload-file"
const flagLogLevel = "log-level"

const defaultPayloadFile = "samples/sync.json"

//go:embed samples/*.json
var samples embed.FS

func App() *cli.App {
	return &cli.App{
		Name:  os.Args[0],
		Usage: "Arkivo plugin posting newly added Zotero items to Slack",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagLogLevel,
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"ARKIVO_SLACK_LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			level, err := zerolog.ParseLevel(c.String(flagLogLevel))
			if err != nil {
				return err
			}
			zerolog.SetGlobalLevel(level)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "start",
				Usage: "Start HTTP server accepting sync results",
				Action: func(c *cli.Context) error {
					if err := actionStart(c); err != nil {
						return cli.Exit(fmt.Errorf("error: %w", err), 1)
					}
					return nil
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    flagListen,
						Value:   ":8080",
						Usage:   "HTTP listen on",
						EnvVars: []string{"ARKIVO_SLACK_LISTEN"},
					},
					&cli.StringFlag{
						Name:    flagConfigFile,
						Usage:   "Config file (JSON or YAML) with a \"slack\" section",
						EnvVars: []string{"ARKIVO_SLACK_CONFIG_FILE"},
					},
					&cli.StringFlag{
						Name:    flagMessageTemplateFile,
						Usage:   "Message template file",
						EnvVars: []string{"ARKIVO_SLACK_MESSAGE_TEMPLATE_FILE"},
					},
					&noDefaultDurationFlag{
						cli.DurationFlag{
							Name:    flagTimeout,
							Usage:   "Timeout for posting a message (no timeout when unset)",
							EnvVars: []string{"ARKIVO_SLACK_TIMEOUT"},
						},
					},
				},
			},
			{
				Name:  "process",
				Usage: "Post the created items of a sync result file",
				Action: func(c *cli.Context) error {
					if err := actionProcess(c); err != nil {
						return cli.Exit(fmt.Errorf("error: %w", err), 1)
					}
					return nil
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     flagWebhookURL,
						Required: true,
						Usage:    "Slack WebHook URL (command line argument is not recommended)",
						EnvVars:  []string{"ARKIVO_SLACK_WEBHOOK_URL"},
					},
					&cli.StringFlag{
						Name:     flagPayloadFile,
						Required: true,
						Usage:    "Sync result file",
					},
					&cli.StringFlag{
						Name:    flagConfigFile,
						Usage:   "Config file (JSON or YAML) with a \"slack\" section",
						EnvVars: []string{"ARKIVO_SLACK_CONFIG_FILE"},
					},
					&cli.StringFlag{
						Name:    flagMessageTemplateFile,
						Usage:   "Message template file",
						EnvVars: []string{"ARKIVO_SLACK_MESSAGE_TEMPLATE_FILE"},
					},
					&noDefaultDurationFlag{
						cli.DurationFlag{
							Name:    flagTimeout,
							Usage:   "Timeout for posting a message (no timeout when unset)",
							EnvVars: []string{"ARKIVO_SLACK_TIMEOUT"},
						},
					},
				},
			},
			{
				Name:  "test-template",
				Usage: "Test rendering a template",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  flagTemplateFile,
						Usage: "Template file (built-in message template when unset)",
					},
					&cli.StringFlag{
						Name:  flagPayloadFile,
						Usage: "Sync result file (built-in sample when unset)",
					},
				},
				Action: func(c *cli.Context) error {
					if err := actionTestTemplate(c); err != nil {
						return cli.Exit(fmt.Errorf("error: %w", err), 1)
					}
					return nil
				},
			},
		},
	}
}

func templateFromFile(path string) (*template.Template, error) {
	if path == "" {
		return template.Parse(template.Default)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return template.Parse(strings.TrimSuffix(string(b), "\n"))
}

func syncFromReader(r io.Reader) (*types.SyncResult, error) {
	sync := &types.SyncResult{}
	if err := json.NewDecoder(r).Decode(sync); err != nil {
		return nil, err
	}
	return sync, nil
}

func buildPlugin(c *cli.Context) (*plugin.Slack, error) {
	shared, err := config.Load(c.String(flagConfigFile))
	if err != nil {
		return nil, err
	}

	p := plugin.New(shared)
	p.Timeout = c.Duration(flagTimeout)
	if path := c.String(flagMessageTemplateFile); path != "" {
		t, err := templateFromFile(path)
		if err != nil {
			return nil, err
		}
		p.MessageTemplate = t
	}

	return p, nil
}

func actionStart(c *cli.Context) error {
	p, err := buildPlugin(c)
	if err != nil {
		return err
	}

	router := server.New(p).Router()
	if err := router.Run(c.String(flagListen)); err != nil {
		return err
	}

	return nil
}

func actionProcess(c *cli.Context) error {
	p, err := buildPlugin(c)
	if err != nil {
		return err
	}

	r, err := openReader(c.String(flagPayloadFile), defaultPayloadFile)
	if err != nil {
		return err
	}
	defer r.Close()
	sync, err := syncFromReader(r)
	if err != nil {
		return err
	}

	options := config.Options{config.KeyWebhookURL: c.String(flagWebhookURL)}
	return p.Process(context.Background(), options, sync)
}

func actionTestTemplate(c *cli.Context) error {
	t, err := templateFromFile(c.String(flagTemplateFile))
	if err != nil {
		return err
	}

	r, err := openReader(c.String(flagPayloadFile), defaultPayloadFile)
	if err != nil {
		return err
	}
	defer r.Close()
	sync, err := syncFromReader(r)
	if err != nil {
		return err
	}

	library, ok := sync.Library()
	if !ok {
		return fmt.Errorf("payload has no items")
	}
	vars, err := template.NewVars(library, sync)
	if err != nil {
		return err
	}

	s, err := t.Execute(vars)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s\n", s)

	return nil
}

func openReader(path string, defaultFile string) (io.ReadCloser, error) {
	if path == "" {
		return samples.Open(defaultFile)
	} else {
		return os.Open(path)
	}
}
