package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/blrd/internal/puzzle"
	"github.com/KirkDiggler/blrd/internal/repositories/score"
	"github.com/KirkDiggler/blrd/internal/roundclock"
)

const (
	storeSQLite = "sqlite"
	storeRedis  = "redis"
)

// Config is everything the commands read from flags and BLRD_* variables
type Config struct {
	Store         string        `validate:"oneof=sqlite redis"`
	DBPath        string        `validate:"required_if=Store sqlite"`
	RedisAddr     string        `validate:"required_if=Store redis,omitempty,hostname_port"`
	RedisPassword string        `validate:"-"`
	RedisDB       int           `validate:"min=0,max=15"`
	KeyPrefix     string        `validate:"max=64"`
	Duration      int           `validate:"min=1,max=3600"`
	Tick          time.Duration `validate:"min=10ms"`
	Salt          string        `validate:"-"`
	Answer        string        `validate:"omitempty,alphanum,max=12"`
	FallbackScore int           `validate:"min=0"`
	Sound         bool          `validate:"-"`
	LogLevel      string        `validate:"oneof=trace debug info warn error disabled"`
	LogFile       string        `validate:"-"`
}

func (c *Config) validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// dataDir is where the database and log live by default
func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".blrd"
	}
	return filepath.Join(home, ".blrd")
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("BLRD")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "blrd",
		Short:         "Guess the blurred picture before the timer runs out.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return runPlay(cmd.Context(), cfg)
		},
	}

	fs := cmd.PersistentFlags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVar(&cfg.Store, "store", storeSQLite, "where scores are kept: sqlite or redis (env: BLRD_STORE)")
	fs.StringVar(&cfg.DBPath, "db-path", filepath.Join(dataDir(), "blrd.db"), "sqlite database file (env: BLRD_DB_PATH)")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", "localhost:6379", "redis address (env: BLRD_REDIS_ADDR)")
	fs.StringVar(&cfg.RedisPassword, "redis-password", "", "redis password (env: BLRD_REDIS_PASSWORD)")
	fs.IntVar(&cfg.RedisDB, "redis-db", 0, "redis database number (env: BLRD_REDIS_DB)")
	fs.StringVar(&cfg.KeyPrefix, "key-prefix", score.DefaultKeyPrefix, "namespace for stored keys (env: BLRD_KEY_PREFIX)")
	fs.IntVarP(&cfg.Duration, "duration", "d", roundclock.DefaultDuration, "round length in seconds (env: BLRD_DURATION)")
	fs.DurationVar(&cfg.Tick, "tick", roundclock.DefaultInterval, "wall time per counted second (env: BLRD_TICK)")
	fs.StringVar(&cfg.Salt, "salt", puzzle.DefaultSalt, "salt for the daily puzzle pick (env: BLRD_SALT)")
	fs.StringVarP(&cfg.Answer, "answer", "a", "", "play a fixed answer instead of today's puzzle (env: BLRD_ANSWER)")
	fs.IntVar(&cfg.FallbackScore, "fallback-score", 0, "score shown when already played and none is recorded (env: BLRD_FALLBACK_SCORE)")
	fs.BoolVarP(&cfg.Sound, "sound", "s", false, "play sound cues (env: BLRD_SOUND)")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "log level (env: BLRD_LOG_LEVEL)")
	fs.StringVar(&cfg.LogFile, "log-file", filepath.Join(dataDir(), "blrd.log"), "log file for the play screen (env: BLRD_LOG_FILE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.AddCommand(newStatsCmd(cfg))

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("blrd v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
