package cli

import (
	"context"
	"fmt"

	"github.com/cityzen/tripbuddy/internal/client/models"
)

// Tickets lists booked events, earliest first.
func (a *App) Tickets(_ context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	if len(a.tickets) == 0 {
		fmt.Fprintln(a.out, "No tickets")
		return nil
	}
	for _, t := range models.SortTickets(a.tickets) {
		fmt.Fprintf(a.out, "%-12s %-12s %s–%s\n", t.Title, t.DisplayDate(), t.Start, t.End)
	}
	return nil
}
