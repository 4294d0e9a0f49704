// Package logger builds the zap logger used across the service.
package logger

import "go.uber.org/zap"

// NewNamed creates a named zap logger tuned for the environment: human
// readable output in development, JSON in anything else.
func NewNamed(appEnv, name string) (*zap.Logger, error) {
	var log *zap.Logger
	var err error
	if appEnv == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return log.Named(name), nil
}
