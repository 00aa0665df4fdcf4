package config

import "time"

// Prefix for environment variable names, so HTTP_LISTEN becomes LOTTO_HTTP_LISTEN.
const envprefix = "LOTTO"

// Configuration via environment variables with github.com/kelseyhightower/envconfig.
type Configuration struct {

	// HTTP_LISTEN is the listening address for the JSON API.
	HttpListen string `split_words:"true" default:"localhost:8080" desc:"Listening Addr for HTTP server"`

	// GRPC_LISTEN is the listening address for the gRPC Predictor service. Empty disables it.
	GrpcListen string `split_words:"true" default:"localhost:9090" desc:"Listening Addr for gRPC server"`

	// CONFIG_DIR holds games/default.yaml and games/<id>.yaml.
	// An empty string serves the builtin profiles A and B only.
	ConfigDir string `split_words:"true" desc:"Directory with games/*.yaml profile files"`

	// WATCH_INTERVAL is how often the profile files are polled for changes; 0 disables reloads.
	WatchInterval time.Duration `split_words:"true" default:"2s" desc:"Poll interval for profile reloads"`

	// METRICS will expose metrics for Prometheus via /metrics
	Metrics bool `desc:"Enable Prometheus exporter on /metrics" default:"true"`
}
