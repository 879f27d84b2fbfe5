// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/sheet-ledger/internal/config"
	"fjacquet/sheet-ledger/internal/container"
	"fjacquet/sheet-ledger/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "sheet-ledger",
		Short: "Reconcile bank statements into a spreadsheet ledger.",
		Long: `sheet-ledger inserts bank statement rows into an .xlsx ledger without
duplicating rows already there, labels them from the category rules, and keeps
the ledger tidy with gap filling, regrouping and date reformatting passes.`,
		SilenceErrors:      true,
		SilenceUsage:       true,
		PersistentPreRunE:  initContainer,
		PersistentPostRunE: closeContainer,
	}

	cfgFile string

	// ContainerOptions are applied when the container is built. Tests use it to
	// swap in an in-memory workbook.
	ContainerOptions []container.Option

	appContainer *container.Container
)

// flagKeys maps each persistent flag to its configuration key.
var flagKeys = map[string]string{
	"workbook":       "workbook",
	"transactions":   "transactions",
	"account":        "account",
	"bank":           "bank",
	"date-delimiter": "date.delimiter",
	"month-style":    "date.month_style",
	"language":       "date.language",
	"capitalize":     "date.capitalize",
	"fill-window":    "fill.window",
	"fill-margin":    "fill.margin",
	"stop-at-note":   "regroup.stop_at_note",
	"rules":          "rules.file",
	"ai":             "ai.enabled",
	"log-level":      "log.level",
	"log-format":     "log.format",
}

// Init initializes the root command and all flags
func Init() {
	f := Cmd.PersistentFlags()
	f.StringVar(&cfgFile, "config", "", "Config file (default: config.yaml in $HOME/.sheet-ledger, .sheet-ledger or .)")
	f.AddFlagSet(ledgerFlags())
}

// ledgerFlags holds the flags that override configuration keys listed in flagKeys.
func ledgerFlags() *pflag.FlagSet {
	f := pflag.NewFlagSet("ledger", pflag.ContinueOnError)
	f.StringP("workbook", "w", "", "Ledger workbook (.xlsx)")
	f.StringP("transactions", "t", "", "Bank statement to insert (.xlsx or .csv)")
	f.StringP("account", "a", "", "Account the statement belongs to")
	f.String("bank", "", "Statement layout (sbanken)")
	f.String("date-delimiter", "", "Date delimiter: . - or /")
	f.String("month-style", "", "Month label style: short or long")
	f.String("language", "", "Month label language: local (norsk) or english")
	f.Bool("capitalize", false, "Capitalize month labels")
	f.Int("fill-window", 0, "Rows above and below searched by the fill pass")
	f.Float64("fill-margin", 0, "Largest mismatch accepted between offsetting amounts")
	f.Bool("stop-at-note", true, "End the regroup pass at the first row with a note")
	f.String("rules", "", "YAML rules file used instead of the categories sheet")
	f.Bool("ai", false, "Enable AI category suggestions (needs GEMINI_API_KEY)")
	f.String("log-level", "", "Log level: debug, info, warn or error")
	f.String("log-format", "", "Log format: text or json")
	return f
}

// NewViper returns a Viper instance with the persistent flags of cmd bound.
func NewViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := config.NewViper()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	}
	for name, key := range flagKeys {
		flag := cmd.Flag(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return v, nil
}

func initContainer(cmd *cobra.Command, args []string) error {
	if _, err := config.LoadEnv(); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	v, err := NewViper(cmd)
	if err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	c, err := container.NewContainer(cfg, ContainerOptions...)
	if err != nil {
		return err
	}
	SetContainer(c)
	return nil
}

func closeContainer(cmd *cobra.Command, args []string) error {
	if appContainer == nil {
		return nil
	}
	return appContainer.Close()
}

// SetContainer replaces the container used by the subcommands.
func SetContainer(c *container.Container) {
	appContainer = c
}

// GetContainer returns the container built for the running command.
func GetContainer() (*container.Container, error) {
	if appContainer == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return appContainer, nil
}

// GetLogger returns the container's logger, or a discarding one before init.
func GetLogger() logging.Logger {
	if appContainer == nil {
		return logging.NewDiscardLogger()
	}
	return appContainer.GetLogger()
}
