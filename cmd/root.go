// Package cmd wires the lesson registry to the golearn command-line surface.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/FelixChenT/go-learn-kimi/internal/catalog"
	"github.com/FelixChenT/go-learn-kimi/internal/config"
	"github.com/FelixChenT/go-learn-kimi/internal/lesson"
	"github.com/FelixChenT/go-learn-kimi/internal/log"
)

func init() {
	// Force lipgloss to query the terminal background before any Bubble Tea
	// program starts, so the OSC response cannot race the picker's input
	// loop.
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	debug   bool
	cfg     config.Config

	logCleanup func()
)

// NewRootCmd builds the command tree over an explicitly provided registry.
// The registry is constructed in Execute and passed down so the dispatcher
// stays testable without process-wide state.
func NewRootCmd(reg *lesson.Registry) *cobra.Command {
	root := &cobra.Command{
		Use:   "golearn <lesson>",
		Short: "Runnable Go lessons, one concept at a time",
		Long: `golearn is a collection of small, self-contained Go lessons.

Each lesson demonstrates one language concept and prints its output to
stdout. Select a lesson by number or by name:

  golearn list           # show every lesson
  golearn 2              # run lesson 2
  golearn variables      # same lesson, by name
  golearn doc variables  # read the lesson's notes
  golearn browse         # pick a lesson interactively`,
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return fmt.Errorf("no lesson selected")
			}
			return runLesson(reg, args[0])
		},
	}

	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/golearn/config.yaml)")
	root.PersistentFlags().BoolVar(&debug, "debug", false,
		"write debug logs to ~/.config/golearn/debug.log")

	root.AddCommand(newListCmd(reg))
	root.AddCommand(newDocCmd(reg))
	root.AddCommand(newBrowseCmd(reg))

	return root
}

// runLesson resolves the identifier and invokes the lesson's action exactly
// once. An unknown identifier produces an error naming it plus every valid
// slug.
func runLesson(reg *lesson.Registry, identifier string) error {
	entry, err := reg.Resolve(identifier)
	if err != nil {
		return fmt.Errorf("%w\navailable lessons: %s", err, strings.Join(reg.Slugs(), ", "))
	}

	log.Debug(log.CatRegistry, "Running lesson", "index", entry.Index, "slug", entry.Slug)
	entry.Run()
	return nil
}

func setupLogging() error {
	if !debug && os.Getenv("GOLEARN_DEBUG") == "" {
		log.SetEnabled(false)
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}
	cleanup, err := log.Init(filepath.Join(home, ".config", "golearn", "debug.log"))
	if err != nil {
		return fmt.Errorf("initializing debug log: %w", err)
	}
	logCleanup = cleanup
	return nil
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)
	viper.SetDefault("ui.doc_width", defaults.UI.DocWidth)
	viper.SetDefault("theme.highlight", defaults.Theme.Highlight)
	viper.SetDefault("theme.subtle", defaults.Theme.Subtle)
	viper.SetDefault("theme.error", defaults.Theme.Error)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .golearn/config.yaml (current directory)
		// 2. ~/.config/golearn/config.yaml (user config)
		if _, err := os.Stat(".golearn/config.yaml"); err == nil {
			viper.SetConfigFile(".golearn/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "golearn"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config anywhere - create the user default and continue
			home, homeErr := os.UserHomeDir()
			if homeErr == nil {
				defaultPath := filepath.Join(home, ".config", "golearn", "config.yaml")
				if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
					viper.SetConfigFile(defaultPath)
					_ = viper.ReadInConfig()
				}
			}
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// configFilePath returns the path persistence should target: the file viper
// loaded, or the user default when none was.
func configFilePath() string {
	if path := viper.ConfigFileUsed(); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".golearn", "config.yaml")
	}
	return filepath.Join(home, ".config", "golearn", "config.yaml")
}

// Execute builds the lesson registry from the static catalog and runs the
// command tree. A catalog invariant violation panics here with a diagnostic;
// that is a broken registration table, not a runtime condition.
func Execute() error {
	cobra.OnInitialize(initConfig)
	reg := catalog.Must()
	root := NewRootCmd(reg)
	err := root.Execute()
	if logCleanup != nil {
		logCleanup()
	}
	return err
}

// SetVersion sets the version string (called from main with ldflags).
func SetVersion(v string) {
	version = v
}
