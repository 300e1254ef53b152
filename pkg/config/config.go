// Package config loads the configuration an address-space host needs
// to boot: which namespaces exist, where the optional Badger-backed
// external namespace keeps its data, and how the introspection facade
// listens. Configuration comes from environment variables first, then
// an optional YAML bootstrap file for the namespace table and seed
// nodes — the teacher's env-first pattern (pkg/config/config.go),
// narrowed from its Neo4j-compatibility surface to this module's much
// smaller domain.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds everything a uaspace host reads at startup.
//
// Example:
//
//	cfg := config.LoadFromEnv()
//	if err := cfg.Validate(); err != nil {
//		log.Fatalf("invalid config: %v", err)
//	}
type Config struct {
	// NamespaceCount bounds the namespace indices Begin accepts (spec
	// §4.H). Namespace 0 (the standard OPC UA namespace) always
	// exists; additional application namespaces are indices 1..N-1.
	NamespaceCount int

	// Namespaces names each namespace URI by index, index 0 fixed to
	// the standard OPC UA namespace.
	Namespaces []string

	// ExternalNamespace configures the optional Badger-backed
	// external namespace (pkg/extnamespace).
	ExternalNamespace ExternalNamespaceConfig

	// Facade configures the read-only HTTP introspection facade.
	Facade FacadeConfig

	// Logging configures internal/ualog's minimum level.
	Logging LoggingConfig

	// BootstrapFile, if set, names a file for LoadBootstrapFile holding
	// an initial namespace table and node set. cmd/uaspace's serve
	// command loads it and logs how many nodes it lists; it does not add
	// those nodes to the address space.
	BootstrapFile string
}

// ExternalNamespaceConfig configures pkg/extnamespace.
type ExternalNamespaceConfig struct {
	Enabled  bool
	DataDir  string
	InMemory bool
}

// FacadeConfig configures pkg/httpfacade.
type FacadeConfig struct {
	Enabled bool
	Address string
	Port    int
}

// LoggingConfig configures internal/ualog.
type LoggingConfig struct {
	Level string // DEBUG, INFO, WARN, ERROR
}

// LoadFromEnv loads configuration from environment variables, using
// UASPACE_-prefixed names, falling back to sensible defaults so
// LoadFromEnv can be called with no environment configured at all.
func LoadFromEnv() *Config {
	cfg := &Config{}

	cfg.NamespaceCount = getEnvInt("UASPACE_NAMESPACE_COUNT", 2)
	cfg.Namespaces = getEnvStringSlice("UASPACE_NAMESPACE_URIS", []string{
		"http://opcfoundation.org/UA/",
		"http://uaspace.example/",
	})

	cfg.ExternalNamespace.Enabled = getEnvBool("UASPACE_EXTNAMESPACE_ENABLED", false)
	cfg.ExternalNamespace.DataDir = getEnv("UASPACE_EXTNAMESPACE_DATADIR", "./data/extnamespace")
	cfg.ExternalNamespace.InMemory = getEnvBool("UASPACE_EXTNAMESPACE_INMEMORY", false)

	cfg.Facade.Enabled = getEnvBool("UASPACE_FACADE_ENABLED", true)
	cfg.Facade.Address = getEnv("UASPACE_FACADE_ADDRESS", "127.0.0.1")
	cfg.Facade.Port = getEnvInt("UASPACE_FACADE_PORT", 4840)

	cfg.Logging.Level = getEnv("UASPACE_LOG_LEVEL", "INFO")

	cfg.BootstrapFile = getEnv("UASPACE_BOOTSTRAP_FILE", "")

	return cfg
}

// Validate checks cfg for logical errors before a host acts on it.
func (c *Config) Validate() error {
	if c.NamespaceCount < 1 {
		return fmt.Errorf("config: namespace count must be at least 1 (namespace 0 always exists)")
	}
	if len(c.Namespaces) > c.NamespaceCount {
		return fmt.Errorf("config: %d namespace URIs given but namespace count is %d", len(c.Namespaces), c.NamespaceCount)
	}
	if c.Facade.Enabled && c.Facade.Port <= 0 {
		return fmt.Errorf("config: invalid facade port: %d", c.Facade.Port)
	}
	if c.ExternalNamespace.Enabled && !c.ExternalNamespace.InMemory && c.ExternalNamespace.DataDir == "" {
		return fmt.Errorf("config: external namespace enabled but no data directory set")
	}
	return nil
}

// Bootstrap is the shape of an optional YAML bootstrap file: the
// initial namespace table and a flat list of seed nodes, kept in file
// order. Nothing in this module adds the seed nodes to a Store.
type Bootstrap struct {
	Namespaces []string        `yaml:"namespaces"`
	Nodes      []BootstrapNode `yaml:"nodes"`
}

// BootstrapNode is one seed node from a bootstrap file. NodeID/ParentID
// use the OPC UA string notation ("ns=1;i=1001") and are kept as
// unparsed strings.
type BootstrapNode struct {
	NodeID         string `yaml:"nodeId"`
	BrowseName     string `yaml:"browseName"`
	DisplayName    string `yaml:"displayName"`
	Class          string `yaml:"class"`
	ParentID       string `yaml:"parentId"`
	ReferenceType  string `yaml:"referenceType"`
	TypeDefinition string `yaml:"typeDefinition"`
}

// LoadBootstrapFile reads and parses a YAML bootstrap file, mirroring
// the teacher's env-then-file layering: environment variables set
// process-wide knobs, while a bootstrap file seeds actual address-space
// content.
func LoadBootstrapFile(path string) (*Bootstrap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading bootstrap file: %w", err)
	}
	var b Bootstrap
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("config: parsing bootstrap file: %w", err)
	}
	return &b, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		val = strings.ToLower(val)
		return val == "true" || val == "1" || val == "yes" || val == "on"
	}
	return defaultVal
}

func getEnvStringSlice(key string, defaultVal []string) []string {
	if val := os.Getenv(key); val != "" {
		parts := strings.Split(val, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultVal
}
