package puzzle

import (
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/advent/circuit"
	"github.com/katalvlaran/advent/dial"
	"github.com/katalvlaran/advent/joltage"
)

// Params carries every solver knob. Each solver reads only its own fields.
type Params struct {
	// dial
	Start    int  `yaml:"start"`
	MaxValue int  `yaml:"max_value"`
	AnyClick bool `yaml:"any_click"`

	// products
	Doubled bool `yaml:"doubled"`

	// joltage
	Batteries int `yaml:"batteries"`

	// forklift
	Once bool `yaml:"once"`

	// ingredients
	Total bool `yaml:"total"`

	// homework
	Transposed bool `yaml:"transposed"`

	// beam
	Timelines bool `yaml:"timelines"`

	// circuit
	Connections int  `yaml:"connections"`
	Top         int  `yaml:"top"`
	Descending  bool `yaml:"descending"`

	// tiles
	Contained bool `yaml:"contained"`
}

// DefaultParams returns the first-part settings of every puzzle.
func DefaultParams() Params {
	d := dial.DefaultOptions()

	return Params{
		Start:       d.Start,
		MaxValue:    d.MaxValue,
		AnyClick:    d.AnyClick,
		Batteries:   joltage.DefaultBatteries,
		Connections: DefaultConnections,
		Top:         DefaultTop,
	}
}

const (
	// DefaultConnections is the number of closest pairs wired in part one.
	DefaultConnections = 1000
	// DefaultTop is the number of largest circuits multiplied in part one.
	DefaultTop = 3
)

// UnmarshalYAML fills keys missing from the document with DefaultParams.
func (p *Params) UnmarshalYAML(n *yaml.Node) error {
	type plain Params
	v := plain(DefaultParams())
	if err := n.Decode(&v); err != nil {
		return err
	}
	*p = Params(v)

	return nil
}

// circuitOptions maps the circuit fields onto circuit.Options.
func (p Params) circuitOptions() circuit.Options {
	opts := circuit.DefaultOptions()
	opts.Connections = p.Connections
	if p.Descending {
		opts.Order = circuit.OrderDescending
	}

	return opts
}
