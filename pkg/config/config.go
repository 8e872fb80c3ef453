package config

import (
	"fmt"
	"os"

	yaml "go.yaml.in/yaml/v3"
)

const (
	KeyWebhookURL = "webhookUrl"
	KeyBotName    = "botName"
	KeyBotIconURL = "botIconUrl"

	// Section is the key of the plugin's section in a shared config file.
	Section = "slack"

	DefaultBotName    = "Zotero"
	DefaultBotIconURL = "https://www.zotero.org/support/_media/logo/zotero_48x48x32.png"
)

// Options is one layer of plugin configuration.
type Options map[string]string

// Config is the effective configuration of a notifier.
type Config struct {
	WebhookURL string
	BotName    string
	BotIconURL string
}

func Defaults() Options {
	return Options{
		KeyBotName:    DefaultBotName,
		KeyBotIconURL: DefaultBotIconURL,
	}
}

// Merge returns a new layer holding every key of the given layers. Keys of
// later layers win. The inputs are left untouched.
func Merge(layers ...Options) Options {
	merged := Options{}
	for _, layer := range layers {
		for k, v := range layer {
			merged[k] = v
		}
	}
	return merged
}

// Resolve merges the defaults, the shared layer and the subscription layer,
// in this order.
func Resolve(shared, subscription Options) Config {
	return Merge(Defaults(), shared, subscription).Config()
}

func (o Options) Config() Config {
	return Config{
		WebhookURL: o[KeyWebhookURL],
		BotName:    o[KeyBotName],
		BotIconURL: o[KeyBotIconURL],
	}
}

// Load reads the shared layer from the slack section of a JSON or YAML
// file. An empty path or a file without the section yields an empty layer.
func Load(path string) (Options, error) {
	if path == "" {
		return Options{}, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

func Parse(b []byte) (Options, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	opts := Options{}
	raw, ok := doc[Section]
	if !ok || raw == nil {
		return opts, nil
	}

	section, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("parse config: %q section must be a mapping", Section)
	}
	for k, v := range section {
		if v == nil {
			continue
		}
		opts[k] = fmt.Sprint(v)
	}
	return opts, nil
}
