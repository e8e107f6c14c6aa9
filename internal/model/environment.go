package model

// Environment names used for mode switches in the server bootstrap.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
