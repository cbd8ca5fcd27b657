package cli

import (
	"context"
	"fmt"
)

// Dashboard prints the latest campus telemetry: sensor readings first, then
// shuttle positions.
func (a *App) Dashboard(ctx context.Context) error {
	sensors, err := a.dashboard.Sensors(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load sensors:", err)
		return err
	}
	shuttles, err := a.dashboard.Shuttles(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load shuttles:", err)
		return err
	}

	fmt.Fprintln(a.out, "Sensors:")
	for _, s := range sensors {
		fmt.Fprintf(a.out, "  %-20s %8.2f %-6s (%s)\n", s.Label, s.Value, s.Unit, s.UpdatedAt)
	}
	fmt.Fprintln(a.out, "Shuttles:")
	for _, s := range shuttles {
		fmt.Fprintf(a.out, "  %-20s %9.5f, %9.5f (%s)\n", s.Name, s.Latitude, s.Longitude, s.UpdatedAt)
	}
	return nil
}
