package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/smartuniversity/campusctl/internal/client/services"
)

// timeLayout is how reservation times are typed in the shell. Times are read
// in the local timezone and sent to the backend as UTC.
const timeLayout = "2006-01-02 15:04"

// Resources lists the tenant's bookable spaces.
func (a *App) Resources(ctx context.Context) error {
	resources, err := a.booking.Resources(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load resources:", err)
		return err
	}
	if len(resources) == 0 {
		fmt.Fprintln(a.out, "No resources.")
		return nil
	}
	for _, r := range resources {
		fmt.Fprintf(a.out, "%-12s %-30s %-10s capacity %d\n", r.ID, r.Name, r.Type, r.Capacity)
	}
	return nil
}

// Reserve books a resource for a time range typed by the user.
func (a *App) Reserve(ctx context.Context) error {
	resourceID, err := getSimpleText(a.reader, "Resource id", a.out)
	if err != nil {
		return err
	}

	startInput, err := getSimpleText(a.reader, "Start ("+timeLayout+")", a.out)
	if err != nil {
		return err
	}
	start, err := time.ParseInLocation(timeLayout, startInput, time.Local)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid start time:", startInput)
		return err
	}

	endInput, err := getSimpleText(a.reader, "End ("+timeLayout+")", a.out)
	if err != nil {
		return err
	}
	end, err := time.ParseInLocation(timeLayout, endInput, time.Local)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid end time:", endInput)
		return err
	}

	created, err := a.booking.Reserve(ctx, resourceID, start, end)
	if err != nil {
		if errors.Is(err, services.ErrSlotTaken) {
			fmt.Fprintln(a.out, "That slot is already booked.")
			return nil
		}
		fmt.Fprintln(a.out, "Could not reserve:", err)
		return err
	}

	fmt.Fprintf(a.out, "Reservation %s confirmed\n", created.ID)
	return nil
}
