package logger

import (
	"go.uber.org/zap"
)

// Init builds the global logger and installs it via zap.ReplaceGlobals,
// so packages can log through zap.L().
func Init(environment string) error {
	var conf zap.Config
	if environment == "production" {
		conf = zap.NewProductionConfig()
	} else {
		conf = zap.NewDevelopmentConfig()
	}

	logger, err := conf.Build()
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(logger)

	return nil
}
