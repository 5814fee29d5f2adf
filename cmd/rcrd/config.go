package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileName = "rcrd"
	configFileType = "yaml"
	envPrefix      = "RCRD"

	cfgKeyBackend     = "backend"
	cfgKeyDir         = "dir"
	cfgKeyBucket      = "bucket"
	cfgKeyPrefix      = "prefix"
	cfgKeyEndpoint    = "endpoint"
	cfgKeyRegion      = "region"
	cfgKeyAccessKey   = "access_key"
	cfgKeySecretKey   = "secret_key"
	cfgKeyInsecure    = "insecure"
	cfgKeyCodec       = "codec"
	cfgKeyCompression = "compression"
	cfgKeyConcurrency = "concurrency"
	cfgKeyIOLimit     = "io_limit"
	cfgKeyCache       = "cache_bytes"
	cfgKeyLogLevel    = "log_level"

	defaultBackend = "local"
	defaultDir     = "./rcrd-data"
)

// loadConfig merges, from highest to lowest priority, explicitly set flags,
// RCRD_* environment variables, the config file and defaults. A missing
// config file is not an error unless one was named explicitly.
func loadConfig(configFile string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyDir, defaultDir)
	v.SetDefault(cfgKeyCodec, "go-json")
	v.SetDefault(cfgKeyCompression, "none")
	v.SetDefault(cfgKeyConcurrency, 4)
	v.SetDefault(cfgKeyLogLevel, "warn")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			if f.Name == "config" {
				return
			}
			if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil {
				bindErr = errors.Join(bindErr, err)
			}
		})
		if bindErr != nil {
			return nil, fmt.Errorf("bind flags: %w", bindErr)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".rcrd"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}
