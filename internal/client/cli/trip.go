package cli

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/cityzen/tripbuddy/internal/client/places"
	"github.com/cityzen/tripbuddy/internal/client/trip"
)

// Trip prompts for the four form fields and keeps the trip when it
// validates. A rejected form leaves the previous trip in place.
func (a *App) Trip(ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	var form trip.Form
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Start date (DD/MM/YYYY)", &form.Start},
		{"End date (DD/MM/YYYY)", &form.End},
		{"Budget from", &form.BudgetFrom},
		{"Budget to", &form.BudgetTo},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	draft, err := trip.Validate(form)
	if err != nil {
		return err
	}

	q := draft.Query()
	a.query = &q
	a.log.Debug(ctx, "trip accepted", "start", draft.Start, "end", draft.End, "nights", draft.Nights())

	fmt.Fprintf(a.out, "Trip %s → %s, %d night(s), budget %d–%d %s\n",
		draft.Start, draft.End, draft.Nights(), draft.BudgetLow, draft.BudgetHigh, a.config.Currency)
	return nil
}

// nextScreen encodes the trip and destinations the way they are handed to
// the screen after the locations picker.
func (a *App) nextScreen() url.Values {
	v := a.query.Values()
	v.Set("locations", a.locations.JSON())
	return v
}

// Summary shows the trip as the next screen receives it.
func (a *App) Summary(_ context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	if a.query == nil {
		return errNoTrip
	}

	params := a.nextScreen()
	q := trip.ParseQuery(params)
	dest := places.ParseLocations(params.Get("locations"))

	fmt.Fprintf(a.out, "Dates:  %s → %s", q.Start, q.End)
	if start, ok := trip.ParseDate(q.Start); ok {
		if end, ok := trip.ParseDate(q.End); ok {
			fmt.Fprintf(a.out, " (%d night(s))", trip.Draft{StartDate: start, EndDate: end}.Nights())
		}
	}
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Budget: %s–%s %s\n", q.BudgetFrom, q.BudgetTo, a.config.Currency)

	if dest.Len() == 0 {
		fmt.Fprintln(a.out, "Places: none yet, use 'add <place>'")
		return nil
	}
	fmt.Fprintf(a.out, "Places: %s\n", strings.Join(dest.Labels(), "; "))
	return nil
}

func (a *App) resetTrip() {
	a.query = nil
	a.locations = &places.List{}
	a.picked = nil
}
