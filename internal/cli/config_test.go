package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("chartdeck", pflag.ContinueOnError)
	fs.StringP("config", "c", "", "")
	fs.String("theme", "dusk", "")
	fs.Bool("legend", true, "")
	return fs
}

func TestSetAllConfigDefaults(t *testing.T) {
	fs := testFlags()
	require.NoError(t, setAllConfig(viper.New(), fs))
	theme, err := fs.GetString("theme")
	require.NoError(t, err)
	assert.Equal(t, "dusk", theme)
}

func TestSetAllConfigEnv(t *testing.T) {
	t.Setenv("CHARTDECK_THEME", "neon")
	fs := testFlags()
	require.NoError(t, setAllConfig(viper.New(), fs))
	theme, _ := fs.GetString("theme")
	assert.Equal(t, "neon", theme)
}

func TestSetAllConfigFlagBeatsEnv(t *testing.T) {
	t.Setenv("CHARTDECK_THEME", "neon")
	fs := testFlags()
	require.NoError(t, fs.Set("theme", "mono"))
	require.NoError(t, setAllConfig(viper.New(), fs))
	theme, _ := fs.GetString("theme")
	assert.Equal(t, "mono", theme)
}

func TestSetAllConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chartdeck.toml")
	require.NoError(t, os.WriteFile(path, []byte("theme = \"mono\"\nlegend = false\n"), 0o644))
	fs := testFlags()
	require.NoError(t, fs.Set("config", path))
	require.NoError(t, setAllConfig(viper.New(), fs))
	theme, _ := fs.GetString("theme")
	legend, _ := fs.GetBool("legend")
	assert.Equal(t, "mono", theme)
	assert.False(t, legend)
}

func TestSetAllConfigFileUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chartdeck.toml")
	require.NoError(t, os.WriteFile(path, []byte("palette = \"mono\"\n"), 0o644))
	fs := testFlags()
	require.NoError(t, fs.Set("config", path))
	err := setAllConfig(viper.New(), fs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid option")
}

func TestParseRange(t *testing.T) {
	r, err := parseRange("2,60")
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, [2]float64{2, 60}, *r)

	r, err = parseRange("")
	require.NoError(t, err)
	assert.Nil(t, r)

	for _, bad := range []string{"5", "a,b", "9,3", "1,1"} {
		_, err := parseRange(bad)
		assert.Error(t, err, bad)
	}
}
