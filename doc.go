// Package valvenet finds the largest total pressure a valve network can
// release within a time budget, for one actor or for two actors working in
// parallel.
//
// A network is a graph of rooms joined by unit-length tunnels; every room
// holds a valve with a fixed flow rate. Moving through a tunnel costs one
// minute and opening a valve costs one minute. An opened valve releases its
// rate every remaining minute.
//
// Pipeline:
//
//	core.Graph ──AllPairs──▶ matrix.Distances ──Build──▶ compress.Graph
//	           ──search.Run──▶ best score (single actor)
//	           ──search.Run + memo──▶ dual.Combine ──▶ best score (two actors)
//
// Subpackages:
//
//	core/     — valve graph (arena storage, O(1) id lookup, neighbor iterator)
//	matrix/   — hop-distance table, Floyd–Warshall, metric validators
//	compress/ — reduction to the start plus openable valves
//	search/   — bitmask depth-first search and the OpenSet → score memo
//	dual/     — best disjoint pair of memo rows
//	input/    — text and YAML network parsers
//	metrics/  — Prometheus collectors for search effort
//
// Quick start:
//
//	net, _ := input.ParseText(r)
//	aa, _ := net.ID("AA")
//	cg, _ := valvenet.BuildCompressedGraph(net.Graph, aa)
//	single, _ := valvenet.SolveSingleActor(cg, aa, valvenet.DefaultSingleBudget)
//	pair, _ := valvenet.SolveDualActor(cg, aa, valvenet.DefaultDualBudget)
//
// Every exported function is deterministic and leaves its inputs untouched,
// so a compressed graph can be shared by concurrent solvers.
package valvenet
