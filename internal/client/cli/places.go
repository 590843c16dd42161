package cli

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/cityzen/tripbuddy/internal/client/places"
)

var errPinUsage = errors.New("usage: pin <latitude> <longitude>")

// Search prints suggestions for text. The first hit becomes the picked
// point, as if the map had moved to it.
func (a *App) Search(ctx context.Context, text string) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	found, err := places.Suggest(ctx, a.geocoder, text)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		fmt.Fprintln(a.out, "Type something to search")
		return nil
	}

	for i, s := range found {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, s.Label)
	}
	c := found[0].Coordinates
	a.picked = &c
	return nil
}

// Pin sets the picked point on the map.
func (a *App) Pin(_ context.Context, lat, lon string) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	la, ok := coordinate(lat, 90)
	if !ok {
		return errPinUsage
	}
	lo, ok := coordinate(lon, 180)
	if !ok {
		return errPinUsage
	}

	a.picked = &places.Coordinates{Latitude: la, Longitude: lo}
	fmt.Fprintf(a.out, "Pinned %.4f, %.4f\n", la, lo)
	return nil
}

// coordinate parses a finite value within [-limit, limit]. ParseFloat also
// accepts NaN and Inf, which must not reach the geocoder.
func coordinate(s string, limit float64) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < -limit || v > limit {
		return 0, false
	}
	return v, true
}

// Add resolves text (or the picked point) to a place label and appends it
// to the destination list.
func (a *App) Add(ctx context.Context, text string) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	label, err := places.Resolve(ctx, a.geocoder, text, a.picked)
	if err != nil {
		return err
	}

	a.locations.Add(label)
	a.picked = nil
	fmt.Fprintf(a.out, "Added %s\n", label)
	return nil
}

func (a *App) Remove(_ context.Context, label string) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	if n := a.locations.Remove(label); n == 0 {
		fmt.Fprintf(a.out, "%s is not in the list\n", label)
		return nil
	}
	fmt.Fprintf(a.out, "Removed %s\n", label)
	return nil
}

func (a *App) Locations(_ context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	if a.locations.Len() == 0 {
		fmt.Fprintln(a.out, "No places yet")
		return nil
	}
	for i, l := range a.locations.Labels() {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, l)
	}
	return nil
}
