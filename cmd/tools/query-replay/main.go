// Command query-replay feeds a script of chat messages through the query
// engine offline and prints one JSON record per turn.
//
// Usage:
//
//	query-replay --role site-leader --file transcript.txt
//	echo "show me the logistics dashboard" | query-replay
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"supplychain-assistant/internal/common/config"
	"supplychain-assistant/internal/common/logger"
	"supplychain-assistant/internal/models"
)

type replayFlags struct {
	file       string
	role       string
	configPath string
	anchor     string
	pretty     bool
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f replayFlags

	cmd := &cobra.Command{
		Use:   "query-replay",
		Short: "Replay chat messages through the query engine",
		Long: `Reads one message per line from --file (or stdin) and answers each in turn,
carrying the conversation context from one line to the next. Blank lines and
lines starting with # are skipped; a line reading /reset clears the context.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReplay(cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.file, "file", "f", "", "transcript file, one message per line (default stdin)")
	cmd.Flags().StringVarP(&f.role, "role", "r", string(models.RoleSiteLeader), "user role")
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "config file for engine defaults (default built-in values)")
	cmd.Flags().StringVar(&f.anchor, "anchor", "2024-02-15T12:00:00Z", "reference time the fixtures are built around (RFC3339)")
	cmd.Flags().BoolVar(&f.pretty, "pretty", false, "indent JSON output")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log each query to stderr")

	return cmd
}

func runReplay(cmd *cobra.Command, f replayFlags) error {
	role, ok := models.ParseRole(f.role)
	if !ok {
		return fmt.Errorf("unknown role %q (want one of %v)", f.role, models.Roles())
	}

	anchor, err := time.Parse(time.RFC3339, f.anchor)
	if err != nil {
		return fmt.Errorf("parse --anchor: %w", err)
	}

	engine := defaultEngine()
	if f.configPath != "" {
		cfg, err := config.LoadFromFile(f.configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		engine = cfg.Engine
	}

	level := "warn"
	if f.verbose {
		level = "info"
	}
	log := logger.NewZapAdapter(logger.NewWithOutput(level, "console", "stderr"))

	var in io.Reader = cmd.InOrStdin()
	if f.file != "" {
		file, err := os.Open(f.file)
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}

	r := newReplayer(engine, anchor, role, log)
	return r.Run(cmd.Context(), in, cmd.OutOrStdout(), f.pretty)
}

func defaultEngine() config.EngineConfig {
	return config.EngineConfig{
		DefaultASIN:          "B07X2RJ3L9",
		DefaultFacility:      "SEA4",
		DefaultTrailer:       "T12345",
		DefaultPurchaseOrder: "PO12345",
		DefaultVendor:        "TechSupply Corp",
	}
}
