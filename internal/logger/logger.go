package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once  sync.Once
	sugar *zap.SugaredLogger
)

// GetLogger returns the process-wide logger. Initialization happens
// once; concurrent first calls are safe.
func GetLogger() *zap.SugaredLogger {
	once.Do(func() {
		logger, _ := zap.NewProduction()
		sugar = logger.Sugar()
	})
	return sugar
}

func Sync() {
	if sugar != nil {
		sugar.Sync()
	}
}
