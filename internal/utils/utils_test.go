package utils_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/frogthefrog/moondeck-buddy/internal/utils"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindConfigPath(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, filepath.Join(dir, "settings.json"), utils.FindConfigPath(dir, "settings.json"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.jsonc"), []byte("{}"), 0o644))
	assert.Equal(t, filepath.Join(dir, "settings.jsonc"), utils.FindConfigPath(dir, "settings.json"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), []byte("{}"), 0o644))
	assert.Equal(t, filepath.Join(dir, "settings.json"), utils.FindConfigPath(dir, "settings.json"))
}

func TestConfigParser(t *testing.T) {
	out, err := utils.ConfigParser().Unmarshal([]byte(`{
		// override the apollo location
		"apollo": {"apps": "/srv/apollo/apps.json",},
	}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"apollo": map[string]interface{}{"apps": "/srv/apollo/apps.json"},
	}, out)
}

func TestConfigLayers(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(fp, []byte(`{"steam": {"exec": "/opt/steam/steam"}}`), 0o644))

	config := utils.NewConfig()
	require.NoError(t, config.Load(confmap.Provider(utils.Defaults, "."), nil))
	require.NoError(t, config.Load(file.Provider(fp), utils.ConfigParser()))

	assert.Equal(t, "/opt/steam/steam", config.SteamExec("/usr/bin/steam"))
	assert.Equal(t, "", config.AppsFile())
	assert.Equal(t, "buddy", config.String("app"))

	config.Reset()
	assert.Equal(t, "/usr/bin/steam", config.SteamExec("/usr/bin/steam"))
}

func TestSetKey(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "MoonDeckBuddy", "settings.json")

	require.NoError(t, utils.SetKey(fp, "apollo.apps", "/srv/apollo/apps.json"))
	require.NoError(t, utils.SetKey(fp, "steam.exec", "/opt/steam/steam"))
	require.NoError(t, utils.SetKey(fp, "apollo.apps", "/tmp/apps.json"))

	b, err := os.ReadFile(fp)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, map[string]interface{}{
		"apollo": map[string]interface{}{"apps": "/tmp/apps.json"},
		"steam":  map[string]interface{}{"exec": "/opt/steam/steam"},
	}, out)
}

func TestSetKeyKeepsComments(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "settings.jsonc")
	require.NoError(t, os.WriteFile(fp, []byte("{\n  // keep me\n  \"app\": \"stream\"\n}\n"), 0o644))

	require.NoError(t, utils.SetKey(fp, "log.format", "json"))

	b, err := os.ReadFile(fp)
	require.NoError(t, err)
	assert.Contains(t, string(b), "// keep me")

	out, err := utils.ConfigParser().Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, "stream", out["app"])
	assert.Equal(t, map[string]interface{}{"format": "json"}, out["log"])
}

func TestNewLogger(t *testing.T) {
	_, err := utils.NewLogger(utils.LogOptions{Format: "xml"})
	assert.Error(t, err)

	_, err = utils.NewLogger(utils.LogOptions{Output: "file"})
	assert.Error(t, err)

	fp := filepath.Join(t.TempDir(), "moondeckbuddy.log")
	logger, err := utils.NewLogger(utils.LogOptions{Format: "json", Output: "file", FilePath: fp})
	require.NoError(t, err)
	logger.Info("hello", "apps", 2)

	b, err := os.ReadFile(fp)
	require.NoError(t, err)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, float64(2), record["apps"])
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, utils.FileExists(dir))
	assert.False(t, utils.FileExists(dir, "missing"))
}
