package places

import (
	"context"
	"errors"
	"strings"
)

const MaxSuggestions = 5

var (
	ErrNoMatches       = errors.New("no matches found")
	ErrUnresolvedPlace = errors.New("please select a real place from suggestions or the map")
)

// Suggestion is a labelled search hit.
type Suggestion struct {
	Label       string
	Coordinates Coordinates
}

// Suggest geocodes text and returns at most MaxSuggestions hits. Blank text
// yields no suggestions and no error. Geocoder errors are returned as is.
func Suggest(ctx context.Context, g Geocoder, text string) ([]Suggestion, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	found, err := g.Geocode(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, ErrNoMatches
	}

	if len(found) > MaxSuggestions {
		found = found[:MaxSuggestions]
	}
	out := make([]Suggestion, 0, len(found))
	for _, p := range found {
		out = append(out, Suggestion{Label: Label(p), Coordinates: p.Coordinates})
	}
	return out, nil
}

// Resolve picks the label to add to the destination list. The typed text
// wins when it geocodes to a labelled place; otherwise the picked map
// coordinates, if any, are reverse geocoded.
func Resolve(ctx context.Context, g Geocoder, text string, picked *Coordinates) (string, error) {
	if text = strings.TrimSpace(text); text != "" {
		if found, err := g.Geocode(ctx, text); err == nil && len(found) > 0 {
			if label := Label(found[0]); label != "" {
				return label, nil
			}
		}
	}

	if picked != nil {
		if found, err := g.ReverseGeocode(ctx, *picked); err == nil && len(found) > 0 {
			if label := Label(found[0]); label != "" {
				return label, nil
			}
		}
	}

	return "", ErrUnresolvedPlace
}
