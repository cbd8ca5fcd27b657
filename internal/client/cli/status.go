package cli

import (
	"context"
	"fmt"
)

// Status probes every platform service and prints one UP/DOWN line each.
func (a *App) Status(ctx context.Context) error {
	for _, r := range a.health.CheckAll(ctx) {
		state := "DOWN"
		if r.Up {
			state = "UP"
		}
		fmt.Fprintf(a.out, "%-12s %s\n", r.Name, state)
	}
	return nil
}
