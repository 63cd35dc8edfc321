package main

import (
	"fmt"

	"github.com/katalvlaran/valvenet"
	"github.com/katalvlaran/valvenet/internal/config"
	"github.com/katalvlaran/valvenet/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newSolveCmd(a *app) *cobra.Command {
	var verbose, dump bool
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the best single and dual actor pressure",
		Long: `Reads a network (stdin when no file is given) and prints
single=<pressure> for one actor and dual=<pressure> for two actors that
never open the same valve.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solve(cmd, args, verbose, dump)
		},
	}

	def := config.Default()
	f := cmd.Flags()
	f.Uint32("minutes", def.Minutes, "time budget for one actor")
	f.Uint32("dual-minutes", def.DualMinutes, "time budget when two actors work together")
	f.Bool("prune", def.Prune, "cut single actor branches that cannot beat the best score")
	f.BoolVarP(&verbose, "verbose", "v", false, "also print the valves each actor opens")
	f.BoolVar(&dump, "metrics", false, "dump search metrics to stderr")

	return cmd
}

func (a *app) solve(cmd *cobra.Command, args []string, verbose, dump bool) error {
	net, err := a.readNetwork(cmd, args)
	if err != nil {
		return err
	}
	start, err := net.ID(a.cfg.Start)
	if err != nil {
		return err
	}
	cg, err := valvenet.BuildCompressedGraph(net.Graph, start)
	if err != nil {
		return err
	}

	opts := []valvenet.Option{
		valvenet.WithContext(cmd.Context()),
		valvenet.WithLogger(a.log),
		valvenet.WithPruning(a.cfg.Prune),
	}
	reg := prometheus.NewRegistry()
	if dump {
		opts = append(opts, valvenet.WithRecorder(metrics.NewRecorder(reg)))
	}

	rep, err := valvenet.Analyze(cg, start, a.cfg.Minutes, a.cfg.DualMinutes, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "single=%d\n", rep.Single)
	fmt.Fprintf(out, "dual=%d\n", rep.Dual)
	if verbose {
		fmt.Fprintf(out, "single.valves=%s\n", joinNames(net.NamesOf(rep.SingleValves)))
		fmt.Fprintf(out, "dual.valves=%s %s\n",
			joinNames(net.NamesOf(rep.DualValves[0])),
			joinNames(net.NamesOf(rep.DualValves[1])),
		)
	}

	if dump {
		return metrics.Dump(cmd.ErrOrStderr(), reg)
	}

	return nil
}
