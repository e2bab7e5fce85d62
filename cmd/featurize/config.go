package main

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/colbyford/PepFlowww/featurize"
	"github.com/colbyford/PepFlowww/logger"
)

// envPrefix is the prefix of environment variables that override flags,
// e.g. FEATURIZE_UNKNOWN_THRESHOLD for --unknown-threshold.
const envPrefix = "FEATURIZE"

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	return v
}

// loadConfig reads the YAML file named by the "config" key, if any. Flags
// given on the command line win over the file, which wins over defaults.
func loadConfig(v *viper.Viper) error {
	fp := v.GetString("config")
	if fp == "" {
		return nil
	}
	v.SetConfigFile(fp)
	if err := v.ReadInConfig(); err != nil {
		return ef("Could not read config file '%s': %w", fp, err)
	}
	return nil
}

func options(v *viper.Viper) featurize.Options {
	return featurize.Options{
		ModelIndex:       v.GetInt("model"),
		AssemblyIndex:    v.GetInt("assembly"),
		UnknownThreshold: v.GetFloat64("unknown-threshold"),
		BreakDistance:    v.GetFloat64("break-distance"),
		BFactors:         v.GetBool("bfactor"),
		Logger:           logger.L(),
	}
}
