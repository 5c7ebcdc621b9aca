package config

import (
	"cwasset/core"

	"github.com/asaskevich/govalidator"
	configUtil "github.com/fox-one/pkg/config"
)

const (
	defaultCacheSize = 1024
	defaultCacheTTL  = 6
)

// Load load config file, CWASSET_* env vars override it
func Load(configFile string, config *core.Config) error {
	configUtil.AutomaticLoadEnv("CWASSET")
	if err := configUtil.LoadYaml(configFile, config); err != nil {
		return err
	}

	defaultCache(config)

	if _, err := govalidator.ValidateStruct(config); err != nil {
		return err
	}

	return nil
}

func defaultCache(config *core.Config) {
	if config.Cache.Size <= 0 {
		config.Cache.Size = defaultCacheSize
	}

	if config.Cache.TTL <= 0 {
		config.Cache.TTL = defaultCacheTTL
	}
}
