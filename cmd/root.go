package cmd

import (
	"errors"
	"io/fs"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/talentx/internal/talentx"
)

const (
	app = "talentx"
)

type Config struct {
	Backend     string         `mapstructure:"backend"`
	Identity    IdentityConfig `mapstructure:"identity"`
	Storage     StorageConfig  `mapstructure:"storage"`
	Remote      talentx.Config `mapstructure:"remote"`
	AI          AIConfig       `mapstructure:"ai"`
	Metrics     MetricsConfig  `mapstructure:"metrics"`
	Feed        FeedConfig     `mapstructure:"feed"`
	ExcludeFile string         `mapstructure:"exclude-file"`
}

// IdentityConfig is the user the CLI acts as. The remote backend takes the identity
// from the token instead.
type IdentityConfig struct {
	ID   string `mapstructure:"id"`
	Name string `mapstructure:"name"`
	Role string `mapstructure:"role"`
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
}

type FeedConfig struct {
	MinScore int `mapstructure:"min-score"`
	Exclude  struct {
		Employers []string `mapstructure:"employers"`
	} `mapstructure:"exclude"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:           app,
		Short:         "talentx is a cli for the TalentX job board: jobs, applications, invitations and matches",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	viper.SetEnvPrefix(app)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if err := viper.BindEnv("remote.token-file", "TALENTX_TOKEN_FILE"); err != nil {
		log.Fatalf("binding TALENTX_TOKEN_FILE environment variable: %v", err)
	}

	viper.SetDefault("backend", "")
	viper.SetDefault("identity.id", "talent-1")
	viper.SetDefault("identity.name", "Alex Chen")
	viper.SetDefault("identity.role", "talent")
	viper.SetDefault("storage.driver", "file")
	viper.SetDefault("storage.path", ".talentx")
	viper.SetDefault("remote.base-url", "")
	viper.SetDefault("remote.timeout", "10s")
	viper.SetDefault("ai.enabled", false)
	viper.SetDefault("ai.provider", "gemini")
	viper.SetDefault("metrics.textfile", "")
	viper.SetDefault("exclude-file", "")

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is talentx.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().StringP("backend", "b", "", "backend to use: mock or remote (default: remote when remote.base-url is set)")
	rootCmd.PersistentFlags().String("as", "", "act as this user id")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("backend", rootCmd.PersistentFlags().Lookup("backend"))
	viper.BindPFlag("identity.id", rootCmd.PersistentFlags().Lookup("as"))
}

func initConfig() {
	// .env is optional; variables already set in the environment win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env file: %v", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	// A missing default config is fine: everything has a default. A broken one is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
