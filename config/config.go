package config

import (
	"runtime"
	"time"

	"github.com/namsral/flag"
)

const EnvPrefix = "ANAGRID"

type Config struct {
	DataPath   string
	Language   string
	LogLevel   string
	DBPath     string
	DBURI      string
	SecretKey  string
	ListenAddr string

	GenerateTimeout time.Duration
	MaxRestarts     int
	MaxGenerations  int
}

// AddFlags registers the shared settings on fs. Commands that need extra
// flags register their own next to these.
func (c *Config) AddFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.DataPath, "data-path", "./data", "directory holding one <language>/words file per language")
	fs.StringVar(&c.Language, "language", "en", "the default dictionary language")
	fs.StringVar(&c.LogLevel, "log-level", "info", "log level")
	fs.StringVar(&c.DBPath, "db-path", "", "sqlite file for saved games and scores; empty disables persistence")
	fs.StringVar(&c.DBURI, "db-uri", "", "postgres URI; takes precedence over db-path")
	fs.StringVar(&c.SecretKey, "secret-key", "", "HMAC key used to verify JWTs")
	fs.StringVar(&c.ListenAddr, "listen-addr", ":8180", "address the puzzle server listens on")
	fs.DurationVar(&c.GenerateTimeout, "generate-timeout", 10*time.Second, "how long to give the generator before giving up")
	fs.IntVar(&c.MaxRestarts, "max-restarts", 0, "give up after this many full restarts (0 = never)")
	fs.IntVar(&c.MaxGenerations, "max-generations", runtime.NumCPU(), "puzzles the server generates at once")
}

// Load loads the configs from the given arguments. Anything not passed as
// an argument is read from ANAGRID_* environment variables.
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSetWithEnvPrefix("anagrid", EnvPrefix, flag.ContinueOnError)
	c.AddFlags(fs)
	return fs.Parse(args)
}
