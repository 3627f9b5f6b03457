package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

// storageTimeout bounds a single state load or save.
const storageTimeout = 10 * time.Second

// contextWithTimeout returns a timeout context rooted in the command context.
func contextWithTimeout(cmd *cobra.Command, d time.Duration) (context.Context, context.CancelFunc) {
	var base context.Context
	if cmd != nil {
		base = cmd.Context()
	}
	if base == nil {
		base = context.Background()
	}
	return context.WithTimeout(base, d)
}
