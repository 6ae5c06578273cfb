package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/talentx/internal/ai"
	"github.com/spigell/talentx/internal/ai/gemini"
	"github.com/spigell/talentx/internal/facade"
	"github.com/spigell/talentx/internal/logger"
	"github.com/spigell/talentx/internal/metrics"
	"github.com/spigell/talentx/internal/secrets"
	"github.com/spigell/talentx/internal/store"
	"github.com/spigell/talentx/internal/talentx"
	"github.com/spigell/talentx/internal/workflow"
)

const (
	storageMemory = "memory"
	storageFile   = "file"
	storageSQLite = "sqlite"

	sqliteFile = "talentx.db"
)

// session is everything a command needs: config, logger and the board facade.
type session struct {
	config   *Config
	logger   *zap.Logger
	board    *facade.Facade
	registry *prometheus.Registry
	store    *store.Store
}

// withSession builds a session for the command, runs fn and reports its failure.
func withSession(fn func(ctx context.Context, cmd *cobra.Command, s *session, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		s, err := newSession(ctx)
		if err != nil {
			return err
		}
		defer s.close()

		if err := fn(ctx, cmd, s, args); err != nil {
			s.logger.Error("command failed", zap.String("command", cmd.CommandPath()), zap.Error(err))
			return err
		}
		return nil
	}
}

func newSession(ctx context.Context) (*session, error) {
	log, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		return nil, fmt.Errorf("creating a logger: %w", err)
	}

	config, err := getConfig()
	if err != nil {
		log.Error("getting a config", zap.Error(err))
		return nil, err
	}
	if config == nil {
		return nil, errors.New("config is required")
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	log.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	s := &session{
		config:   config,
		logger:   log,
		registry: prometheus.NewRegistry(),
	}
	recorder := metrics.NewCollector(s.registry)

	builders := facade.Builders{
		Mock: func() (facade.Backend, error) {
			st, err := openStore(config.Storage, log)
			if err != nil {
				return nil, err
			}
			s.store = st

			engine := workflow.New(st,
				workflow.WithLogger(log.Named("workflow")),
				workflow.WithRecorder(recorder),
			)
			return facade.NewLocal(engine, newDescriber(ctx, config.AI, log)), nil
		},
		Remote: func() (facade.Backend, error) {
			client, err := talentx.New(config.Remote, tokenSource(config.Remote, log), log.Named("talentx"),
				talentx.WithRecorder(recorder),
			)
			if err != nil {
				return nil, err
			}
			return facade.NewRemote(client, log.Named("remote")), nil
		},
	}

	board, err := facade.New(config.Backend, config.Remote.BaseURL, builders, log)
	if err != nil {
		log.Error("selecting a backend", zap.Error(err))
		return nil, err
	}
	s.board = board
	s.logger = board.Logger()

	return s, nil
}

func (s *session) close() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("closing the store failed", zap.Error(err))
		}
	}

	if err := metrics.WriteTextfile(s.config.Metrics.Textfile, s.registry); err != nil {
		s.logger.Warn("writing metrics textfile failed", zap.String("path", s.config.Metrics.Textfile), zap.Error(err))
	}

	_ = s.logger.Sync()
}

// talent is the id the CLI acts as.
func (s *session) talent() string {
	return s.config.Identity.ID
}

func openStore(cfg StorageConfig, log *zap.Logger) (*store.Store, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	log = log.With(zap.String("driver", driver), zap.String("path", cfg.Path))

	var kv store.KV
	switch driver {
	case storageMemory:
	case "", storageFile:
		fileKV, err := store.NewFileKV(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("opening file storage: %w", err)
		}
		kv = fileKV
	case storageSQLite:
		if err := os.MkdirAll(cfg.Path, 0o755); err != nil {
			return nil, fmt.Errorf("creating storage directory: %w", err)
		}
		sqliteKV, err := store.OpenSQLiteKV(filepath.Join(cfg.Path, sqliteFile))
		if err != nil {
			return nil, fmt.Errorf("opening sqlite storage: %w", err)
		}
		kv = sqliteKV
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Driver)
	}

	log.Debug("opening the store")

	return store.Open(kv, log.Named("store"), store.DefaultSeed()), nil
}

// tokenSource loads the api token. Without one, requests go out anonymously and the
// service decides what is allowed.
func tokenSource(cfg talentx.Config, log *zap.Logger) talentx.TokenSource {
	token, err := secrets.Load(secrets.Source{
		Name: "talentx api token",
		File: cfg.TokenFile,
		Env:  "TALENTX_TOKEN",
	})
	if err != nil {
		log.Warn("api token is not available",
			zap.Error(err),
			zap.String("hint", "set TALENTX_TOKEN_FILE environment variable or the 'remote.token-file' key in the configuration file"),
		)
		return talentx.TokenFunc(func(context.Context) (string, error) { return "", err })
	}
	return talentx.StaticToken(token)
}

// newDescriber returns the template describer, backed by Gemini when ai is enabled.
func newDescriber(ctx context.Context, cfg AIConfig, log *zap.Logger) ai.Describer {
	if !cfg.Enabled {
		return ai.Template{}
	}

	primary, err := newGeminiDescriber(ctx, cfg, log)
	if err != nil {
		log.Warn("skipping AI description generator", zap.Error(err))
		return ai.Template{}
	}

	return &ai.Fallback{Primary: primary, Secondary: ai.Template{}, Logger: log}
}

func newGeminiDescriber(ctx context.Context, cfg AIConfig, log *zap.Logger) (ai.Describer, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}
	if cfg.Gemini == nil {
		return nil, errors.New("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	genLogger := log.With(
		zap.String("provider", "gemini"),
		zap.String("model", cfg.Gemini.Model),
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	genLogger.Debug("gemini generator ready", zap.String("resolved_model", generator.Model()))

	return gemini.NewDescriber(generator, genLogger, cfg.Gemini.MaxLogLength), nil
}

// printJSON writes v to the command output.
func printJSON(cmd *cobra.Command, v any) error {
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(pretty))
	return err
}
