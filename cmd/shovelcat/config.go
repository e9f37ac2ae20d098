package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jpelchat/shovelcat"
)

// Params are the numeric parameters of the demonstration run. All values
// are supplied at invocation time; nothing persists across runs.
type Params struct {
	Density         float64 `yaml:"density"`
	DrainFraction   float64 `yaml:"drain_fraction"`
	SinkCapacity    float64 `yaml:"sink_capacity"`
	ThetaDegrees    float64 `yaml:"theta_degrees"`
	Alpha0          float64 `yaml:"alpha0"`
	RingFactor      float64 `yaml:"ring_factor"`
	ThresholdFactor float64 `yaml:"threshold_factor"`
	BoundaryFactor  float64 `yaml:"boundary_factor"`
}

// DefaultParams returns the canonical demonstration values.
func DefaultParams() Params {
	return Params{
		Density:         shovelcat.DefaultIntersectionDensity,
		DrainFraction:   shovelcat.ObserverThreshold,
		SinkCapacity:    shovelcat.ObserverFootprint,
		ThetaDegrees:    45,
		Alpha0:          shovelcat.AlphaMeasured,
		RingFactor:      3,
		ThresholdFactor: shovelcat.ObserverThreshold,
		BoundaryFactor:  1e8,
	}
}

// LoadParams reads a YAML parameter file over the defaults. An empty path
// returns the defaults unchanged. Zero-valued fields in the file keep
// their defaults.
func LoadParams(path string) (Params, error) {
	params := DefaultParams()
	if path == "" {
		return params, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return params, fmt.Errorf("read params: %w", err)
	}

	var file Params
	if err := yaml.Unmarshal(data, &file); err != nil {
		return params, fmt.Errorf("parse params: %w", err)
	}

	params.apply(file)

	return params, nil
}

// apply overlays non-zero fields from file onto the receiver.
func (p *Params) apply(file Params) {
	if file.Density != 0 {
		p.Density = file.Density
	}
	if file.DrainFraction != 0 {
		p.DrainFraction = file.DrainFraction
	}
	if file.SinkCapacity != 0 {
		p.SinkCapacity = file.SinkCapacity
	}
	if file.ThetaDegrees != 0 {
		p.ThetaDegrees = file.ThetaDegrees
	}
	if file.Alpha0 != 0 {
		p.Alpha0 = file.Alpha0
	}
	if file.RingFactor != 0 {
		p.RingFactor = file.RingFactor
	}
	if file.ThresholdFactor != 0 {
		p.ThresholdFactor = file.ThresholdFactor
	}
	if file.BoundaryFactor != 0 {
		p.BoundaryFactor = file.BoundaryFactor
	}
}
