package core

// Config cwasset config
type Config struct {
	Chain Chain `json:"chain"`
	LCD   LCD   `json:"lcd"`
	Cache Cache `json:"cache"`
}

// Chain host chain settings
type Chain struct {
	// Bech32Prefix human readable part of addresses, empty accepts any
	Bech32Prefix string `json:"bech32_prefix" valid:"alphanum,optional"`
	// Denoms native denom whitelist, empty accepts any
	Denoms []string `json:"denoms"`
}

// LCD rest endpoint of a chain node
type LCD struct {
	Endpoint string `json:"endpoint" valid:"url,optional"`
	// Timeout seconds
	Timeout int64 `json:"timeout"`
}

// Cache balance query cache
type Cache struct {
	Size int `json:"size"`
	// TTL seconds
	TTL int64 `json:"ttl"`
}
