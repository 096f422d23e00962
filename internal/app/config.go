package app

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/ThomasA12354656/heat/internal/sims/melt"
)

// Environment variables consulted when the matching flag is left unset.
const (
	EnvLogLevel = "HEAT_LOG_LEVEL"
	EnvLogFile  = "HEAT_LOG_FILE"
)

// Config represents the command-line parameters shared by the shells.
type Config struct {
	Scale    int
	TPS      int
	Speed    float64
	Seed     int64
	LogLevel string
	LogFile  string
	Audio    bool

	// Sets holds -set key=value overrides forwarded to melt.FromMap.
	Sets KeyValues
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := melt.DefaultConfig()
	return &Config{
		Scale:    1,
		TPS:      60,
		Speed:    def.Speed,
		Seed:     def.Seed,
		LogLevel: "info",
		Sets:     KeyValues{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "simulated seconds per wall-clock second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for effect randomness")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error (env "+EnvLogLevel+")")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "append logs to this file instead of stderr (env "+EnvLogFile+")")
	fs.BoolVar(&c.Audio, "audio", c.Audio, "play the sizzle cue while the block transitions")
	if c.Sets == nil {
		c.Sets = KeyValues{}
	}
	fs.Var(c.Sets, "set", "simulation input as key=value (repeatable), e.g. -set material=wood")
}

// ApplyEnv fills logging settings from the environment for flags that were
// not given explicitly. getenv defaults to os.Getenv.
func (c *Config) ApplyEnv(fs *flag.FlagSet, getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if v := getenv(EnvLogLevel); v != "" && !explicit["log-level"] {
		c.LogLevel = v
	}
	if v := getenv(EnvLogFile); v != "" && !explicit["log-file"] {
		c.LogFile = v
	}
}

// SimConfig resolves the simulation inputs. -set entries take precedence
// over the -speed and -seed flags.
func (c *Config) SimConfig() melt.Config {
	m := map[string]string{
		"speed": strconv.FormatFloat(c.Speed, 'f', -1, 64),
		"seed":  strconv.FormatInt(c.Seed, 10),
	}
	for k, v := range c.Sets {
		m[k] = v
	}
	return melt.FromMap(m)
}

// KeyValues is a repeatable key=value flag.
type KeyValues map[string]string

// String renders the pairs sorted by key.
func (kv KeyValues) String() string {
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + kv[k]
	}
	return strings.Join(parts, ",")
}

// Set parses one key=value pair.
func (kv KeyValues) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	kv[key] = strings.TrimSpace(value)
	return nil
}
