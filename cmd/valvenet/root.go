package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/valvenet/input"
	"github.com/katalvlaran/valvenet/internal/config"
	"github.com/katalvlaran/valvenet/internal/logging"
	"github.com/spf13/cobra"
)

// app is the state shared by all subcommands once flags are parsed.
type app struct {
	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "valvenet",
		Short: "Maximise pressure released from a valve network",
		Long: `valvenet reads a network of valves joined by tunnels and computes how much
pressure one actor, or two actors working together, can release in time.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	def := config.Default()
	pf := root.PersistentFlags()
	pf.String("config", "", "YAML settings file")
	pf.String("log-level", def.LogLevel, "debug, info, warn or error")
	pf.String("format", def.Format, "input format: text or yaml")
	pf.String("start", def.Start, "name of the valve both actors start at")

	root.AddCommand(newSolveCmd(a), newInspectCmd(a))

	return root
}

// load merges defaults, the config file and explicitly set flags, in that order.
func (a *app) load(cmd *cobra.Command) error {
	cfg := config.Default()
	flags := cmd.Flags()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("start") {
		cfg.Start, _ = flags.GetString("start")
	}
	if flags.Changed("minutes") {
		cfg.Minutes, _ = flags.GetUint32("minutes")
	}
	if flags.Changed("dual-minutes") {
		cfg.DualMinutes, _ = flags.GetUint32("dual-minutes")
	}
	if flags.Changed("prune") {
		cfg.Prune, _ = flags.GetBool("prune")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logging.NewWriter(cmd.ErrOrStderr(), cfg.Level())
	a.log.Debug("settings loaded",
		"start", cfg.Start,
		"minutes", cfg.Minutes,
		"dual_minutes", cfg.DualMinutes,
		"prune", cfg.Prune,
		"format", cfg.Format,
	)

	return nil
}

// readNetwork parses args[0], or stdin when no file is given.
func (a *app) readNetwork(cmd *cobra.Command, args []string) (*input.Network, error) {
	var (
		r    io.Reader = cmd.InOrStdin()
		name           = "stdin"
	)
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r, name = f, args[0]
	}

	var (
		net *input.Network
		err error
	)
	switch a.cfg.Format {
	case config.FormatYAML:
		net, err = input.ParseYAML(r)
	default:
		net, err = input.ParseText(r)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	a.log.Debug("network parsed",
		"source", name,
		"valves", net.Graph.Len(),
		"tunnels", net.Graph.EdgeCount(),
	)

	return net, nil
}

func joinNames(names []string) string {
	if len(names) == 0 {
		return "-"
	}

	return strings.Join(names, ",")
}
