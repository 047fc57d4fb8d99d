// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: Declarative selection of a cost-function variant and its shape.

package vdf

import "fmt"

// Registered cost-function kinds.
const (
	KindBPR        = "bpr"
	KindPolynomial = "polynomial"
)

// Config selects a cost-function variant and its shape parameters.
// Alpha and Beta apply to KindBPR; Coefficients to KindPolynomial.
type Config struct {
	Kind         string    `yaml:"kind" mapstructure:"kind"`
	Alpha        float64   `yaml:"alpha" mapstructure:"alpha"`
	Beta         float64   `yaml:"beta" mapstructure:"beta"`
	Coefficients []float64 `yaml:"coefficients,omitempty" mapstructure:"coefficients"`
}

// DefaultConfig returns the default BPR shape.
func DefaultConfig() Config {
	return Config{Kind: KindBPR, Alpha: DefaultAlpha, Beta: DefaultBeta}
}

// Validate checks that the configured variant exists and its shape is valid.
func (c Config) Validate() error {
	_, err := New(c)
	return err
}

// New builds the Function described by cfg.
//
// Errors: ErrUnknownKind, or ErrBadShape wrapped with the offending parameters.
func New(cfg Config) (Function, error) {
	switch cfg.Kind {
	case KindBPR:
		f := BPR{Alpha: cfg.Alpha, Beta: cfg.Beta}
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("%w: alpha=%g beta=%g", err, cfg.Alpha, cfg.Beta)
		}
		return f, nil
	case KindPolynomial:
		coef := make([]float64, len(cfg.Coefficients))
		copy(coef, cfg.Coefficients)
		f := Polynomial{Coefficients: coef}
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("%w: coefficients=%v", err, cfg.Coefficients)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
	}
}
