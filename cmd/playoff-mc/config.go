package main

import "github.com/kelseyhightower/envconfig"

// Config holds environment-backed defaults. Flags override these.
type Config struct {
	// Trials is the Monte Carlo trial count.
	Trials int `envconfig:"TRIALS" default:"1000"`
	// HomeFieldBonus is the weighted model's flat home bump.
	HomeFieldBonus float64 `envconfig:"HOME_FIELD_BONUS" default:"0.05"`
	// GaussianSigma is the margin standard deviation for the gaussian model.
	GaussianSigma float64 `envconfig:"GAUSSIAN_SIGMA" default:"13.45"`
	// HomeEdgePoints is the gaussian model's home edge in points.
	HomeEdgePoints float64 `envconfig:"HOME_EDGE_POINTS" default:"2.0"`
	// Project is the Google Cloud project for the Firestore source.
	Project string `envconfig:"PROJECT"`
}

// NewConfig processes the environment.
func NewConfig() (*Config, error) {
	var c Config
	if err := envconfig.Process("playoff", &c); err != nil {
		return nil, err
	}
	return &c, nil
}
