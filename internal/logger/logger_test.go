package logger_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastebud-labs/foodadmin/internal/logger"
)

func TestGetLoggerConcurrentFirstUse(t *testing.T) {
	const goroutines = 16
	loggers := make([]any, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			loggers[i] = logger.GetLogger()
		}(i)
	}
	wg.Wait()

	require.NotNil(t, loggers[0])
	for _, l := range loggers[1:] {
		assert.Same(t, loggers[0], l)
	}
}
