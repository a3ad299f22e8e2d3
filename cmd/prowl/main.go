// Command prowl is a headless harness around the browser-shell engine: it
// validates configurations, runs command texts against a console UI, and
// answers completion queries, all without a windowing front end.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/prowl-browser/prowl/internal/config"
	"github.com/prowl-browser/prowl/internal/engine"
	"github.com/prowl-browser/prowl/internal/logging"
	"github.com/prowl-browser/prowl/internal/ui"
)

var _ ui.BrowserUI = (*console)(nil)

var (
	flagConfig   string
	flagLogLevel string
	flagDev      bool

	rootCmd = &cobra.Command{
		Use:           "prowl",
		Short:         "Command-resolution and script-execution core for a keyboard-driven browser shell",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "configuration file (default $PROWL_CONFIG or the user config dir)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagDev, "dev", false, "console log encoding with debug detail")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(commandsCmd)
	rootCmd.AddCommand(watchCmd)
}

// runConfiguration resolves environment defaults and applies flag overrides.
func runConfiguration() (config.RunConfiguration, error) {
	rc, err := config.LoadRunConfiguration()
	if err != nil {
		return config.RunConfiguration{}, err
	}
	if flagConfig != "" {
		rc.ConfigPath = flagConfig
	}
	if flagLogLevel != "" {
		rc.LogLevel = flagLogLevel
	}
	if flagDev {
		rc.Development = true
	}
	return rc, nil
}

func newEngine() (*engine.Engine, error) {
	rc, err := runConfiguration()
	if err != nil {
		return nil, err
	}
	log, err := logging.New(logging.Config{
		Level:       rc.LogLevel,
		Development: rc.Development,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		return nil, fmt.Errorf("invalid log configuration: %w", err)
	}
	return engine.New(rc, log)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Parse a configuration file and print the derived command settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		cfg := eng.Config()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "configuration OK")
		if page, ok := cfg.StartPage(); ok {
			fmt.Fprintf(out, "start page:     %s\n", page)
		}
		if filter, ok := cfg.ContentFilterPath(); ok {
			fmt.Fprintf(out, "content filter: %s\n", filter)
		}
		if def, ok := cfg.DefaultCommand(); ok {
			fmt.Fprintf(out, "default:        %s\n", def)
		}
		fmt.Fprintf(out, "search paths:   %v\n", cfg.CommandSearchPaths())
		if disabled := cfg.CommandsDisabled(); len(disabled) > 0 {
			fmt.Fprintf(out, "disabled:       %v\n", disabled)
		}
		if aliases := cfg.CommandAliases(); len(aliases) > 0 {
			fmt.Fprintf(out, "aliases:        %v\n", aliases)
		}
		return nil
	},
}

var execCmd = &cobra.Command{
	Use:   "exec <text>",
	Short: "Run one command text against a console UI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		browser := newConsole(cmd.OutOrStdout())
		output := eng.ExecuteCommand(browser, 0, args[0])
		if output.Failed() {
			return fmt.Errorf("%s: %s", output.Error, output.Message)
		}
		return nil
	},
}

var completeKind string

var completeCmd = &cobra.Command{
	Use:   "complete <prefix>",
	Short: "Print completions for a command-bar or address prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		browser := newConsole(os.Stderr)

		var completions []string
		switch completeKind {
		case "command":
			completions = eng.CommandCompletions(browser, args[0])
		case "address":
			completions = eng.AddressCompletions(browser, args[0])
		default:
			return fmt.Errorf("unknown completion kind %q", completeKind)
		}
		for _, completion := range completions {
			fmt.Fprintln(cmd.OutOrStdout(), completion)
		}
		return nil
	},
}

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List command names resolvable from the configured search paths",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		for _, name := range eng.AvailableCommands() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	completeCmd.Flags().StringVar(&completeKind, "kind", "command", "completion variant: command or address")
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload the configuration whenever the file changes, until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		stop := make(chan struct{})
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sigChan
			close(stop)
		}()

		rc, err := runConfiguration()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "watching", rc.ConfigPath)
		return eng.Watch(stop)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "prowl:", err)
		os.Exit(1)
	}
}
