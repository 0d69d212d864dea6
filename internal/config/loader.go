package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/goccy/go-yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/ukaji3/conspire-go/internal/logger"
)

// EnvPrefix marks environment variables read into the configuration.
const EnvPrefix = "CONSPIRE_"

// Load builds the configuration. Later layers win: defaults, then the YAML
// file at path (skipped when path is empty), then the environment.
func Load(ctx context.Context, path string) (*Config, error) {
	log := logger.FromContext(ctx)
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		data, err := readYAML(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(rawMap(data), nil); err != nil {
			return nil, fmt.Errorf("failed to apply config file %s: %w", path, err)
		}
		log.Debug("config file loaded", "path", path)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: transformEnv,
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
			DecodeHook:       mapstructure.ComposeDecodeHookFunc(nameDecodeHook),
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks field constraints.
func Validate(cfg *Config) error {
	return validator.New().Struct(cfg)
}

func readYAML(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if m == nil {
		return map[string]any{}, nil
	}
	return filterNil(m), nil
}

// filterNil drops nil leaves so empty YAML keys keep the lower layer's value.
func filterNil(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch v := v.(type) {
		case nil:
			continue
		case map[string]any:
			if nested := filterNil(v); len(nested) > 0 {
				out[k] = nested
			}
		default:
			out[k] = v
		}
	}
	return out
}

// transformEnv maps CONSPIRE_OUTPUT_PATH to output.path: the first segment
// names the section and the rest is the field.
func transformEnv(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	parts := strings.FieldsFunc(key, func(r rune) bool { return r == '_' })
	switch len(parts) {
	case 0:
		return "", nil
	case 1:
		return parts[0], value
	}
	return parts[0] + "." + strings.Join(parts[1:], "_"), value
}

// nameDecodeHook folds Name values to trimmed lower case.
func nameDecodeHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(Name("")) {
		return data, nil
	}
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.String {
		return data, nil
	}
	return Name(strings.ToLower(strings.TrimSpace(v.String()))), nil
}

// rawMap is a koanf.Provider adapter for map[string]any data.
type rawMap map[string]any

func (r rawMap) Read() (map[string]any, error) {
	return r, nil
}

func (r rawMap) ReadBytes() ([]byte, error) {
	return nil, errors.New("ReadBytes not implemented")
}
