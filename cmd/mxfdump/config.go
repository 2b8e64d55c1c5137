package main

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/viper"

	s377m "github.com/metarex-media/mxf-s377m"
)

// Config is the mxfdump configuration: the vendor tag mappings applied to
// every parse.
type Config struct {
	Vendor []VendorEntry `mapstructure:"vendor"`
}

// VendorEntry teaches the parser one private local tag.
type VendorEntry struct {
	// Tag is the local tag as four hex digits, e.g. "8001"
	Tag string `mapstructure:"tag"`
	// Symbol is the name the decoded field answers to
	Symbol string `mapstructure:"symbol"`
	// Type is the registered codec, e.g. "UInt32" or "UTF16"
	Type string `mapstructure:"type"`
	// Group labels where the field belongs, defaults to "Vendor"
	Group string `mapstructure:"group"`
}

// loadConfig reads the config from path, or from ./mxfdump.yaml when no
// path is given. A missing default config is not an error.
func loadConfig(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("mxfdump")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	// Enable environment variable support
	v.SetEnvPrefix("MXFDUMP")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// no config file - nothing vendor specific to apply
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// vendorMappings converts the config entries into the mapping Customize
// takes.
func (c *Config) vendorMappings() (map[s377m.Tag]s377m.Entry, error) {
	if len(c.Vendor) == 0 {
		return nil, nil
	}

	out := make(map[s377m.Tag]s377m.Entry, len(c.Vendor))
	for _, ve := range c.Vendor {
		b, err := hex.DecodeString(ve.Tag)
		if err != nil || len(b) != 2 {
			return nil, fmt.Errorf("vendor tag %q is not four hex digits", ve.Tag)
		}
		if ve.Symbol == "" {
			return nil, fmt.Errorf("vendor tag %q has no symbol", ve.Tag)
		}

		group := ve.Group
		if group == "" {
			group = "Vendor"
		}
		out[s377m.Tag{b[0], b[1]}] = s377m.Entry{Group: group, Symbol: ve.Symbol, Type: ve.Type}
	}
	return out, nil
}
