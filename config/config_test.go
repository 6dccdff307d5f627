package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/spf13/pflag"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()

	is.Equal(cfg.GetBool(KeyDebug), false)
	is.Equal(cfg.GetBool(KeyThinking), false)
	is.Equal(cfg.GetInt(KeyWorkers), 8)
	is.Equal(filepath.Base(cfg.GetString(KeyHistoryFile)), "history")
	is.Equal(filepath.Base(cfg.GetString(KeyResultsDir)), "experiments")
}

func TestEnvOverride(t *testing.T) {
	is := is.New(t)
	t.Setenv("RBNIM_DEBUG", "true")
	t.Setenv("RBNIM_RESULTS_DIR", "/tmp/nim-results")

	cfg := DefaultConfig()

	is.True(cfg.GetBool(KeyDebug))
	is.Equal(cfg.GetString(KeyResultsDir), "/tmp/nim-results")
}

func TestFlagOverride(t *testing.T) {
	is := is.New(t)
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Bool(KeyThinking, false, "")
	fs.Int(KeyWorkers, 8, "")
	is.NoErr(fs.Parse([]string{"--thinking", "--workers=2"}))

	cfg := DefaultConfig()
	is.NoErr(cfg.BindFlags(fs))

	is.True(cfg.GetBool(KeyThinking))
	is.Equal(cfg.GetInt(KeyWorkers), 2)
}

func TestLoad(t *testing.T) {
	t.Run("reads yaml", func(t *testing.T) {
		is := is.New(t)
		path := filepath.Join(t.TempDir(), "config.yaml")
		is.NoErr(os.WriteFile(path, []byte("debug: true\nworkers: 3\n"), 0o644))

		cfg := DefaultConfig()
		is.NoErr(cfg.Load(path))

		is.True(cfg.GetBool(KeyDebug))
		is.Equal(cfg.GetInt(KeyWorkers), 3)
	})

	t.Run("explicit missing file is an error", func(t *testing.T) {
		is := is.New(t)
		err := DefaultConfig().Load(filepath.Join(t.TempDir(), "missing.yaml"))
		is.True(err != nil)
	})

	t.Run("missing default file is fine", func(t *testing.T) {
		is := is.New(t)
		is.NoErr(DefaultConfig().Load(""))
	})
}
