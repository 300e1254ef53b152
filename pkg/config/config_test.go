package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	cfg := LoadFromEnv()

	assert.Equal(t, 2, cfg.NamespaceCount)
	assert.Equal(t, []string{"http://opcfoundation.org/UA/", "http://uaspace.example/"}, cfg.Namespaces)
	assert.False(t, cfg.ExternalNamespace.Enabled)
	assert.True(t, cfg.Facade.Enabled)
	assert.Equal(t, 4840, cfg.Facade.Port)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("UASPACE_NAMESPACE_COUNT", "4")
	t.Setenv("UASPACE_NAMESPACE_URIS", "http://opcfoundation.org/UA/, http://example.org/plant/")
	t.Setenv("UASPACE_FACADE_PORT", "8080")
	t.Setenv("UASPACE_FACADE_ENABLED", "false")
	t.Setenv("UASPACE_EXTNAMESPACE_ENABLED", "yes")
	t.Setenv("UASPACE_EXTNAMESPACE_INMEMORY", "1")
	t.Setenv("UASPACE_LOG_LEVEL", "DEBUG")

	cfg := LoadFromEnv()
	assert.Equal(t, 4, cfg.NamespaceCount)
	assert.Equal(t, []string{"http://opcfoundation.org/UA/", "http://example.org/plant/"}, cfg.Namespaces)
	assert.Equal(t, 8080, cfg.Facade.Port)
	assert.False(t, cfg.Facade.Enabled)
	assert.True(t, cfg.ExternalNamespace.Enabled)
	assert.True(t, cfg.ExternalNamespace.InMemory)
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
}

func TestValidateRejectsNamespaceCountBelowOne(t *testing.T) {
	cfg := LoadFromEnv()
	cfg.NamespaceCount = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsTooManyNamespaceURIs(t *testing.T) {
	cfg := LoadFromEnv()
	cfg.NamespaceCount = 1
	cfg.Namespaces = []string{"a", "b"}
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsBadFacadePort(t *testing.T) {
	cfg := LoadFromEnv()
	cfg.Facade.Enabled = true
	cfg.Facade.Port = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsExternalNamespaceWithoutDataDir(t *testing.T) {
	cfg := LoadFromEnv()
	cfg.ExternalNamespace.Enabled = true
	cfg.ExternalNamespace.InMemory = false
	cfg.ExternalNamespace.DataDir = ""
	assert.Error(t, cfg.Validate())
}

func TestLoadBootstrapFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "uaspace.yaml")
	content := `namespaces:
  - http://opcfoundation.org/UA/
  - http://uaspace.example/

nodes:
  - nodeId: "ns=1;i=1000"
    browseName: Boiler1
    displayName: Boiler #1
    class: Object
    parentId: "ns=0;i=85"
    referenceType: Organizes
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	boot, err := LoadBootstrapFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"http://opcfoundation.org/UA/", "http://uaspace.example/"}, boot.Namespaces)
	require.Len(t, boot.Nodes, 1)
	assert.Equal(t, "Boiler1", boot.Nodes[0].BrowseName)
	assert.Equal(t, "ns=1;i=1000", boot.Nodes[0].NodeID)
}

func TestLoadBootstrapFileMissing(t *testing.T) {
	_, err := LoadBootstrapFile(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}
