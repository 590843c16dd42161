// Package models defines the client-side data shown by the CLI screens.
package models

import (
	"slices"
	"time"
)

const (
	ticketLayout  = "2006-01-02 15:04"
	displayLayout = "2 Jan 2006"
)

// Ticket is a booked event. Date is YYYY-MM-DD, Start and End are HH:MM in
// UTC. End may be past midnight and is shown as is.
type Ticket struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// StartsAt is the start instant of the ticket.
func (t Ticket) StartsAt() (time.Time, bool) {
	at, err := time.ParseInLocation(ticketLayout, t.Date+" "+t.Start, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return at, true
}

// DisplayDate renders Date as "5 Dec 2025", or returns it unchanged when it
// does not parse.
func (t Ticket) DisplayDate() string {
	d, err := time.Parse(time.DateOnly, t.Date)
	if err != nil {
		return t.Date
	}
	return d.Format(displayLayout)
}

// SortTickets returns a copy of tickets in chronological order. Tickets
// whose start does not parse go last, keeping their relative order.
func SortTickets(tickets []Ticket) []Ticket {
	out := slices.Clone(tickets)
	slices.SortStableFunc(out, func(a, b Ticket) int {
		at, aok := a.StartsAt()
		bt, bok := b.StartsAt()
		switch {
		case aok && bok:
			return at.Compare(bt)
		case aok:
			return -1
		case bok:
			return 1
		default:
			return 0
		}
	})
	return out
}

// SampleTickets is the demo set shown before any booking integration exists.
func SampleTickets() []Ticket {
	return []Ticket{
		{Title: "Club 1", Date: "2025-12-05", Start: "03:00", End: "04:00"},
		{Title: "Museum 1", Date: "2025-12-05", Start: "13:00", End: "15:00"},
		{Title: "Club 2", Date: "2025-12-05", Start: "23:00", End: "01:00"},
	}
}
