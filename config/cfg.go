package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"github.com/tomsutton1984/lost/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	// SheetConfig describes where CSS comes from and where it goes.
	SheetConfig struct {
		// Source is an optional base stylesheet the generated rules are
		// appended to.
		Source string `yaml:"source,omitempty" sanitize:"path_clean" validate:"omitempty,filepath"`
		// Destination of "-" writes the result to stdout.
		Destination string `yaml:"destination" sanitize:"path_clean" validate:"required"`
		Banner      bool   `yaml:"banner"`
	}

	// GridConfig carries the shared layout knobs.
	GridConfig struct {
		Gutter    string            `yaml:"gutter"`
		Direction common.Direction  `yaml:"direction"`
		Mode      common.LayoutMode `yaml:"mode"`
		Cycle     int               `yaml:"cycle" validate:"gte=0"`
	}

	// ScaffoldConfig describes a generated class family.
	ScaffoldConfig struct {
		Name          string `yaml:"name" validate:"required"`
		Denominator   int    `yaml:"denominator" validate:"min=1"`
		ClassTemplate string `yaml:"class_template,omitempty"`
	}

	// RuleConfig binds one mixin to one selector.
	RuleConfig struct {
		Selector string      `yaml:"selector" validate:"required"`
		Mixin    string      `yaml:"mixin" validate:"required,oneof=column row waffle offset move masonry-wrap masonry-column center align flex-container edit clearfix"`
		Fraction string      `yaml:"fraction,omitempty"`
		Axis     common.Axis `yaml:"axis,omitempty"`
		Location string      `yaml:"location,omitempty"`
		MaxWidth string      `yaml:"max_width,omitempty"`
		Padding  string      `yaml:"padding,omitempty"`
		Color    string      `yaml:"color,omitempty"`
		Cycle    int         `yaml:"cycle,omitempty" validate:"gte=0"`
	}

	Config struct {
		Version   int              `yaml:"version" validate:"eq=1"`
		Sheet     SheetConfig      `yaml:"sheet"`
		Grid      GridConfig       `yaml:"grid"`
		Scaffolds []ScaffoldConfig `yaml:"scaffolds" validate:"dive"`
		Rules     []RuleConfig     `yaml:"rules" validate:"dive"`
		Logging   LoggingConfig    `yaml:"logging"`
		Reporting ReporterConfig   `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, alternative is to use struct
	// field name and reflection which I want to avoid for now
	ClassTemplateFieldName TemplateFieldName = "class_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(ClassTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("configuration sanitization failed: %w", err)
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
