package config

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.NoErr(cfg.Load([]string{}))
	is.Equal(cfg.Language, "en")
	is.Equal(cfg.ListenAddr, ":8180")
	is.Equal(cfg.GenerateTimeout, 10*time.Second)
	is.Equal(cfg.MaxRestarts, 0)
	is.True(cfg.MaxGenerations >= 1)
}

func TestLoadArgs(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"-data-path", "/tmp/words", "-language", "cs",
		"-generate-timeout", "3s", "-max-restarts", "50"}))
	is.Equal(cfg.DataPath, "/tmp/words")
	is.Equal(cfg.Language, "cs")
	is.Equal(cfg.GenerateTimeout, 3*time.Second)
	is.Equal(cfg.MaxRestarts, 50)
}

func TestLoadBadFlag(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.True(cfg.Load([]string{"-no-such-flag"}) != nil)
}
