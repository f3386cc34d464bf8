package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/havili/tohitapu/internal/bible"
	"github.com/havili/tohitapu/internal/bootstrap"
	"github.com/havili/tohitapu/internal/config"
	"github.com/havili/tohitapu/internal/dictionary"
	"github.com/havili/tohitapu/internal/lookup"
	"github.com/havili/tohitapu/internal/server"
	"github.com/havili/tohitapu/internal/translator"
)

var configFile string

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "tohitapu-server",
		Short:         "Tongan scripture reader HTTP API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	bibleStore, err := bible.NewStore(cfg.Bible.Directory, cfg.Bible.BooksFile)
	if err != nil {
		return fmt.Errorf("bible.NewStore() > %w", err)
	}

	reference := dictionary.NewReferenceDictionary(dictionary.ReferenceConfig{
		Path: cfg.Dictionaries.Reference.Path,
		URL:  cfg.Dictionaries.Reference.URL,
	})
	customStore := dictionary.NewCustomStore(cfg.CustomDictionaryPath())
	translatorClient := translator.NewClient(translator.Config{
		Endpoint: cfg.Translator.Endpoint,
		Key:      cfg.Translator.Key,
		Region:   cfg.Translator.Region,
		Timeout:  cfg.Translator.Timeout(),
	})
	resolver := lookup.NewResolver(reference, customStore, translatorClient, logger)

	handler := server.New(
		server.NewWordHandler(customStore, translatorClient, resolver, logger),
		server.NewBibleHandler(bibleStore),
		cfg.Server.CORS.AllowedOrigins,
		logger,
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: h2c.NewHandler(handler, &http2.Server{}),
	}

	app := bootstrap.New(logger)
	app.OnShutdown("http server", srv.Shutdown)
	app.OnShutdown("translator client", func(ctx context.Context) error {
		return translatorClient.Close()
	})

	return app.Run(ctx, func(ctx context.Context) error {
		logger.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
