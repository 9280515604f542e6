package console

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/tastebud-labs/foodadmin/internal/logger"
)

// PrintNotifier surfaces transient notifications on the console and
// mirrors them to the structured log.
type PrintNotifier struct {
	W   io.Writer
	log *zap.SugaredLogger
}

func NewPrintNotifier(w io.Writer) *PrintNotifier {
	return &PrintNotifier{W: w, log: logger.GetLogger()}
}

func (n *PrintNotifier) Success(message string) {
	fmt.Fprintln(n.W, "OK:", message)
	n.log.Infow("notification", "status", "success", "message", message)
}

func (n *PrintNotifier) Error(message string) {
	fmt.Fprintln(n.W, "ERROR:", message)
	n.log.Warnw("notification", "status", "error", "message", message)
}
