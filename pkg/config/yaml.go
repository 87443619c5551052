package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/linesplice/pkg/plan"
)

// yamlIndent is the indentation used when writing config files.
const yamlIndent = 2

// TemplateHeader is written above generated config files.
const TemplateHeader = `# linesplice configuration
#
# steps are applied from the highest start line to the lowest; start and end
# are 0-based line indices of the original target, end exclusive. Ranges past
# the end of the target are cut short at its last line.`

// ToYAML serializes the persisted fields of the configuration.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// ToYAMLWithHeader serializes the configuration below a comment header.
func (c *Config) ToYAMLWithHeader(header string) ([]byte, error) {
	body, err := c.ToYAML()
	if err != nil {
		return nil, err
	}
	if header == "" {
		return body, nil
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if header[len(header)-1] != '\n' {
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	buf.Write(body)
	return buf.Bytes(), nil
}

// GenerateTemplate returns a config file holding the defaults.
func GenerateTemplate() ([]byte, error) {
	return NewConfig().ToYAMLWithHeader(TemplateHeader)
}

// FromYAML parses a configuration. Fields absent from data stay zero so the
// result can be merged over other sources.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

// Clone returns a deep copy, CLI-only fields included.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	clone.Backups.Enabled = cloneBool(c.Backups.Enabled)
	clone.StrictRaceDetection = cloneBool(c.StrictRaceDetection)

	if c.Steps != nil {
		clone.Steps = make([]plan.Step, len(c.Steps))
		for i, s := range c.Steps {
			if s.Text != nil {
				text := *s.Text
				s.Text = &text
			}
			clone.Steps[i] = s
		}
	}

	return &clone
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
