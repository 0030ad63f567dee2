package consul

import (
	"context"
	"strings"

	"github.com/hashicorp/consul/api"
)

// ConsulBackend stores status records as JSON values in the Consul KV store.
//
// Architecture:
// - Each status record is stored under its path below a configurable prefix
// - Creation and time updates use check-and-set on the KV modify index,
// so concurrent writers never lose an update
//
// Limitations:
// - Consul KV has a 512KB limit per value, far above a status record
type ConsulBackend struct {
	client *api.Client
	kv     *api.KV

	config *Config
}

// Config contains configuration options for the Consul backend
type Config struct {
	// Address of the Consul server (default: "127.0.0.1:8500")
	Address string

	// Token for Consul ACL authentication (optional)
	Token string

	// Datacenter to use (optional)
	Datacenter string

	// Namespace for Consul Enterprise (optional)
	Namespace string

	// Prefix for all keys in Consul KV (default: "fsattr")
	Prefix string

	// Attempts made for a check-and-set write before giving up (default: 8)
	MaxAttempts int
}

// NewConsulBackend creates a new Consul-backed status backend
func NewConsulBackend(config *Config) (*ConsulBackend, error) {
	if config == nil {
		config = &Config{}
	}

	if config.Address == "" {
		config.Address = "127.0.0.1:8500"
	}
	if config.Prefix == "" {
		config.Prefix = "fsattr"
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 8
	}

	clientConfig := api.DefaultConfig()
	clientConfig.Address = config.Address
	if config.Token != "" {
		clientConfig.Token = config.Token
	}
	if config.Datacenter != "" {
		clientConfig.Datacenter = config.Datacenter
	}
	if config.Namespace != "" {
		clientConfig.Namespace = config.Namespace
	}

	client, err := api.NewClient(clientConfig)
	if err != nil {
		return nil, err
	}

	return &ConsulBackend{
		client: client,
		kv:     client.KV(),
		config: config,
	}, nil
}

// Name returns the identifier name defined for this backend
func (*ConsulBackend) Name() string {
	return "consul"
}

// Open checks that the Consul agent is reachable
func (cb *ConsulBackend) Open(ctx context.Context) error {
	_, err := cb.client.Status().Leader()
	return err
}

// Close is part of the lifecycle behaviour; the Consul client holds no connections
func (cb *ConsulBackend) Close(ctx context.Context) error {
	return nil
}

// buildKey constructs the full Consul KV key from the status path
func (cb *ConsulBackend) buildKey(key string) string {
	key = strings.TrimPrefix(key, "/")
	prefix := strings.Trim(cb.config.Prefix, "/")
	if prefix == "" {
		return key
	}

	return prefix + "/" + key
}
