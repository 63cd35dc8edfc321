// Package input reads valve networks from text or YAML and interns valve
// names into core.ValveID values.
//
// Text format, one valve per line (blank lines are skipped):
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
//
// YAML format:
//
//	valves:
//	  - name: AA
//	    rate: 0
//	    tunnels: [DD, II, BB]
//
// Ids are assigned 0, 1, 2, … in order of declaration, so a tunnel may name a
// valve declared further down. Tunnels are undirected: listing a tunnel on one
// side is enough.
package input

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/valvenet/core"
)

// ErrSyntax reports a malformed line or document.
var ErrSyntax = errors.New("input: syntax error")

// Network is a parsed valve network with its name table.
type Network struct {
	// Graph holds valves and tunnels keyed by interned ids.
	Graph *core.Graph

	names []string
	ids   map[string]core.ValveID
}

// ID returns the id interned for name.
func (n *Network) ID(name string) (core.ValveID, error) {
	id, ok := n.ids[name]
	if !ok {
		return 0, fmt.Errorf("input: valve %q: %w", name, core.ErrUnknownValve)
	}

	return id, nil
}

// Name returns the name behind id, or "" when id was never interned.
func (n *Network) Name(id core.ValveID) string {
	if int(id) >= len(n.names) {
		return ""
	}

	return n.names[id]
}

// Names returns all names in id order.
func (n *Network) Names() []string { return slices.Clone(n.names) }

// NamesOf maps ids to names, keeping order.
func (n *Network) NamesOf(ids []core.ValveID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = n.Name(id)
	}

	return out
}

// declaration is one valve as read from any format; line is 1-based
// (0 when the source has no line numbers).
type declaration struct {
	line    int
	name    string
	rate    uint32
	tunnels []string
}

// assemble builds the Network in two passes: register every valve, then
// connect tunnels, so forward references resolve.
func assemble(decls []declaration) (*Network, error) {
	tunnels := 0
	for _, d := range decls {
		tunnels += len(d.tunnels)
	}
	net := &Network{
		Graph: core.NewGraph(core.WithCapacity(len(decls), tunnels)),
		names: make([]string, 0, len(decls)),
		ids:   make(map[string]core.ValveID, len(decls)),
	}

	for _, d := range decls {
		if _, dup := net.ids[d.name]; dup {
			return nil, fmt.Errorf("input: %s valve %q: %w", where(d.line), d.name, core.ErrDuplicateValve)
		}
		id := core.ValveID(len(net.names))
		if _, err := net.Graph.AddValve(id, d.rate); err != nil {
			return nil, fmt.Errorf("input: %s: %w", where(d.line), err)
		}
		net.names = append(net.names, d.name)
		net.ids[d.name] = id
	}

	for _, d := range decls {
		from := net.ids[d.name]
		for _, t := range d.tunnels {
			to, ok := net.ids[t]
			if !ok {
				return nil, fmt.Errorf("input: %s tunnel %s→%s: %w", where(d.line), d.name, t, core.ErrUnknownValve)
			}
			if err := net.Graph.AddEdge(from, to); err != nil {
				return nil, fmt.Errorf("input: %s: %w", where(d.line), err)
			}
		}
	}

	return net, nil
}

func where(line int) string {
	if line == 0 {
		return "document"
	}

	return fmt.Sprintf("line %d", line)
}
