package format

import "github.com/santileortiz/layoutsolver/internal/solver"

// SolvedSymbol is one row of a solved-state dump: a symbol's name, state,
// and value, in the order internal/solver/table.go's Definitions returns
// them (lexicographic by name, per the rendering collaborator's
// iterate-symbol-definitions contract).
type SolvedSymbol struct {
	Name  string `yaml:"name" json:"name"`
	State string `yaml:"state" json:"state"`
	Value float64 `yaml:"value" json:"value"`
}

// BuildSolved snapshots every symbol in table into the codec-neutral
// SolvedSymbol form the YAML and JSON encoders both render.
func BuildSolved(table *solver.Table) []SolvedSymbol {
	defs := table.Definitions()
	out := make([]SolvedSymbol, len(defs))
	for i, def := range defs {
		out[i] = SolvedSymbol{
			Name:  def.Name,
			State: def.State.String(),
			Value: def.Value,
		}
	}
	return out
}

// solvedMap turns the slice into name-keyed map for a more ergonomic
// marshaled shape ({"name": {"state":..., "value":...}}) than a bare array.
func solvedMap(symbols []SolvedSymbol) map[string]SolvedSymbol {
	m := make(map[string]SolvedSymbol, len(symbols))
	for _, s := range symbols {
		m[s.Name] = s
	}
	return m
}
