package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/havili/tohitapu/internal/cli"
	"github.com/havili/tohitapu/internal/config"
	"github.com/havili/tohitapu/internal/dictionary"
	"github.com/havili/tohitapu/internal/lookup"
	"github.com/havili/tohitapu/internal/translator"
)

var configFile string

func main() {
	// Azure credentials may live in a .env file during development.
	_ = godotenv.Load()

	var debugMode bool
	rootCommand := cobra.Command{
		Use:           "tohitapu",
		Short:         "Tongan scripture reader word lookup tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	rootCommand.AddCommand(
		newLookupCommand(),
		newDictionaryCommand(),
	)
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		})),
	)
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

func newResolver(cfg *config.Config) (*lookup.Resolver, *dictionary.CustomStore, *translator.Client) {
	reference := dictionary.NewReferenceDictionary(dictionary.ReferenceConfig{
		Path: cfg.Dictionaries.Reference.Path,
		URL:  cfg.Dictionaries.Reference.URL,
	})
	store := dictionary.NewCustomStore(cfg.CustomDictionaryPath())
	client := translator.NewClient(translator.Config{
		Endpoint: cfg.Translator.Endpoint,
		Key:      cfg.Translator.Key,
		Region:   cfg.Translator.Region,
		Timeout:  cfg.Translator.Timeout(),
	})
	return lookup.NewResolver(reference, store, client, nil), store, client
}

func newLookupCommand() *cobra.Command {
	var save bool
	command := &cobra.Command{
		Use:   "lookup <word>",
		Short: "Resolve a Tongan word through the dictionary fallback chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			resolver, store, client := newResolver(cfg)
			defer func() {
				_ = client.Close()
			}()

			return cli.NewLookupCLI(resolver, store, cmd.OutOrStdout()).
				Run(cmd.Context(), args[0], save)
		},
	}
	command.Flags().BoolVar(&save, "save", false, "Save a machine translation into my dictionary")
	return command
}

func newDictionaryCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "dictionary",
		Short: "Manage my dictionary",
	}
	command.AddCommand(
		newDictionaryListCommand(),
		newDictionaryAddCommand(),
		newDictionaryExportCommand(),
	)
	return command
}

func newDictionaryListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every saved word",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store := dictionary.NewCustomStore(cfg.CustomDictionaryPath())
			return cli.NewDictionaryCLI(store, cmd.OutOrStdout()).List(cmd.Context())
		},
	}
}

func newDictionaryAddCommand() *cobra.Command {
	var partOfSpeech, example string
	command := &cobra.Command{
		Use:   "add <word> <translation>",
		Short: "Save a word into my dictionary",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store := dictionary.NewCustomStore(cfg.CustomDictionaryPath())
			if err := store.Append(dictionary.CustomEntry{
				Word:         args[0],
				Translation:  args[1],
				PartOfSpeech: partOfSpeech,
				Example:      example,
			}); err != nil {
				return fmt.Errorf("store.Append > %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "saved %q\n", args[0])
			return nil
		},
	}
	command.Flags().StringVar(&partOfSpeech, "pos", "", "Part of speech")
	command.Flags().StringVar(&example, "example", "", "Example sentence")
	return command
}

func newDictionaryExportCommand() *cobra.Command {
	var format, output, templatePath string
	command := &cobra.Command{
		Use:   "export",
		Short: "Export my dictionary as a study sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store := dictionary.NewCustomStore(cfg.CustomDictionaryPath())
			path, err := cli.NewDictionaryCLI(store, cmd.OutOrStdout()).
				Export(cmd.Context(), format, output, templatePath)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", path)
			return nil
		},
	}
	command.Flags().StringVar(&format, "format", cli.FormatMarkdown, "Export format (markdown or pdf)")
	command.Flags().StringVar(&output, "output", "my_tongan_dictionary.md", "Output markdown path")
	command.Flags().StringVar(&templatePath, "template", "", "Custom export template path")
	return command
}
