package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scriptbin.yaml", `
database: /var/lib/scriptbin/scriptbin.db
denylist:
  - brewery
  - internalcode
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/scriptbin/scriptbin.db", cfg.Database)
	assert.Equal(t, []string{"brewery", "internalcode"}, cfg.Denylist)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadConfig_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.yaml", `database: [`)

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestConfigFile_ProvidesDatabasePath(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "cfg.db")
	cfgPath := writeFile(t, dir, "scriptbin.yaml", "database: "+db+"\n")
	metadataPath := writeFile(t, dir, "metadata.json", `{"name":"s"}`)
	rolesPath := writeFile(t, dir, "roles.json", `{"roles":[]}`)

	out, err := execute(t, "--config", cfgPath, "store", metadataPath, rolesPath)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "/"), 2)
}

func TestDBFlag_OverridesConfig(t *testing.T) {
	dir := t.TempDir()
	flagDB := filepath.Join(dir, "flag.db")
	cfgPath := writeFile(t, dir, "scriptbin.yaml",
		"database: "+filepath.Join(dir, "cfg.db")+"\n")
	metadataPath := writeFile(t, dir, "metadata.json", `{"name":"s"}`)
	rolesPath := writeFile(t, dir, "roles.json", `{"roles":[]}`)

	_, err := execute(t, "--config", cfgPath, "--db", flagDB, "store", metadataPath, rolesPath)
	require.NoError(t, err)

	// The flag database got the data; the config database was never created.
	out, err := execute(t, "--db", flagDB, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "metadata: 1 records")

	assert.NoFileExists(t, filepath.Join(dir, "cfg.db"))
}
