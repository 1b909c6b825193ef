package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlOptions mirrors Options with snake_case YAML tags, for
// deployments that prefer a static config file over environment variables.
type yamlOptions struct {
	MessageID       string `yaml:"message_id"`
	ProtocolVersion string `yaml:"protocol_version"`
	OutputFormat    string `yaml:"output_format"`
	AutoEvents      *bool  `yaml:"auto_events"`
	AutoClose       *bool  `yaml:"auto_close"`
	AutoContext     *bool  `yaml:"auto_context"`
	BufferSize      int    `yaml:"buffer_size"`
}

// LoadYAML reads Options from a YAML document at path, starting from
// Default() and overriding only the fields present in the document.
func LoadYAML(path string) (Options, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var doc yamlOptions
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Options{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	opts := Default()
	if doc.MessageID != "" {
		opts.MessageID = doc.MessageID
	}
	if doc.ProtocolVersion != "" {
		opts.ProtocolVersion = ProtocolVersion(doc.ProtocolVersion)
	}
	if doc.OutputFormat != "" {
		opts.OutputFormat = OutputFormat(doc.OutputFormat)
	}
	if doc.AutoEvents != nil {
		opts.AutoEvents = *doc.AutoEvents
	}
	if doc.AutoClose != nil {
		opts.AutoClose = *doc.AutoClose
	}
	if doc.AutoContext != nil {
		opts.AutoContext = *doc.AutoContext
	}
	if doc.BufferSize > 0 {
		opts.BufferSize = doc.BufferSize
	}

	return opts, nil
}
