package cmd

import (
	"time"

	"cwasset/core"
	"cwasset/pkg/resthttp"
	"cwasset/service/balance"
	"cwasset/service/querier"

	"github.com/go-resty/resty/v2"
)

func provideConfig() *core.Config {
	return &cfg
}

func provideAddressValidator() core.AddressValidator {
	return core.NewBech32Validator(cfg.Chain.Bech32Prefix)
}

func provideRestClient() *resty.Client {
	if cfg.LCD.Endpoint == "" {
		panic("lcd endpoint not configured")
	}

	return resthttp.New(cfg.LCD.Endpoint, time.Duration(cfg.LCD.Timeout)*time.Second)
}

func provideQuerier() core.Querier {
	q := querier.New(provideRestClient())
	return querier.Cache(q, cfg.Cache.Size, time.Duration(cfg.Cache.TTL)*time.Second)
}

func provideBalanceService() *balance.Service {
	return balance.New(provideQuerier(), balance.Config{Capacity: 4})
}
