package log

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger is the initializer for the logger dependency.
// Components prefix their own messages, so the logger only carries the timestamp.
type InitLogger struct{}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(NewLogger(os.Stdout))
	return ctx, nil
}

// NewLogger creates the application logger writing to out.
func NewLogger(out io.Writer) *log.Logger {
	return log.New(out, "userdirectory ", log.LstdFlags|log.LUTC|log.Lmsgprefix)
}
