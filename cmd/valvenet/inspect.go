package main

import (
	"fmt"

	"github.com/katalvlaran/valvenet"
	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print the compressed network and its distance table",
		Long: `Shows the valves that survive compression (the start plus every valve
with a positive rate), their positions, and the hop distances between them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.inspect(cmd, args)
		},
	}
}

func (a *app) inspect(cmd *cobra.Command, args []string) error {
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

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "network: %d valves, %d tunnels\n", net.Graph.Len(), net.Graph.EdgeCount())
	fmt.Fprint(out, cg.String())
	fmt.Fprintln(out, "names:")
	for p := 0; p < cg.Len(); p++ {
		fmt.Fprintf(out, "%3d %s\n", p, net.Name(cg.ID(p)))
	}

	return nil
}
