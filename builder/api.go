// File: api.go
// Role: thin public entry-points for the builder package.
//
// Design contract:
//   - BuildGraph creates g, resolves cfg, runs cons in order.
//   - Apply runs cons on a caller-owned graph; it is the only merge path.
//   - Any constructor error is wrapped once at the API boundary.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate early, return sentinel errors and
// never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration from
// bopts and applies all constructors in order.
//
// Errors:
//   - ErrConstructFailed for a nil constructor (wrapped with its index).
//   - Any constructor error, wrapped as "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	if err := run("BuildGraph", g, newBuilderConfig(bopts...), cons); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs constructors against an existing graph, accumulating into it.
// On error the graph may hold the observations applied before the failure;
// callers that need all-or-nothing semantics should Apply to a Clone.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: %w", ErrNilGraph)
	}

	return run("Apply", g, newBuilderConfig(bopts...), cons)
}

// FromText is shorthand for BuildGraph(bopts, Text(raw)).
func FromText(raw string, bopts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(bopts, Text(raw))
}

// run applies each constructor sequentially to preserve deterministic order.
func run(method string, g *core.Graph, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("%s: nil constructor at index %d: %w", method, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	return nil
}
