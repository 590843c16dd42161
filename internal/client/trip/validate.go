package trip

import (
	"strconv"
	"strings"
	"time"
)

// Form holds the raw text of the four trip-creation fields.
type Form struct {
	Start      string
	End        string
	BudgetFrom string
	BudgetTo   string
}

// Draft is a validated trip request.
type Draft struct {
	StartDate  time.Time
	EndDate    time.Time
	BudgetLow  int
	BudgetHigh int

	// Start and End are StartDate and EndDate formatted as DD/MM/YYYY.
	Start string
	End   string
}

// Nights is the number of nights between the start and end dates. Both are
// UTC midnights, so whole days are counted from Unix seconds; time.Duration
// would overflow on spans of about 292 years.
func (d Draft) Nights() int {
	const secondsPerDay = 24 * 60 * 60
	return int((d.EndDate.Unix() - d.StartDate.Unix()) / secondsPerDay)
}

// check holds the values parsed so far while the rules run.
type check struct {
	form       Form
	start, end time.Time
	low, high  int
}

type rule struct {
	err  error
	pass func(c *check) bool
}

// rules run in order; the first one that does not pass decides the error.
var rules = []rule{
	{err: ErrMissingField, pass: fieldsPresent},
	{err: ErrInvalidBudgetFormat, pass: budgetsNumeric},
	{err: ErrInvalidDateOrder, pass: datesOrdered},
}

// Validate checks f and returns the normalized draft. Budgets entered in
// reverse order are swapped so that BudgetLow <= BudgetHigh.
func Validate(f Form) (Draft, error) {
	c := &check{form: Form{
		Start:      strings.TrimSpace(f.Start),
		End:        strings.TrimSpace(f.End),
		BudgetFrom: strings.TrimSpace(f.BudgetFrom),
		BudgetTo:   strings.TrimSpace(f.BudgetTo),
	}}

	for _, r := range rules {
		if !r.pass(c) {
			return Draft{}, r.err
		}
	}

	low, high := c.low, c.high
	if low > high {
		low, high = high, low
	}

	return Draft{
		StartDate:  c.start,
		EndDate:    c.end,
		BudgetLow:  low,
		BudgetHigh: high,
		Start:      FormatDate(c.start),
		End:        FormatDate(c.end),
	}, nil
}

func fieldsPresent(c *check) bool {
	f := c.form
	if f.Start == "" || f.End == "" || f.BudgetFrom == "" || f.BudgetTo == "" {
		return false
	}

	var ok bool
	if c.start, ok = ParseDate(f.Start); !ok {
		return false
	}
	c.end, ok = ParseDate(f.End)
	return ok
}

func budgetsNumeric(c *check) bool {
	var ok bool
	if c.low, ok = budget(c.form.BudgetFrom); !ok {
		return false
	}
	c.high, ok = budget(c.form.BudgetTo)
	return ok
}

func datesOrdered(c *check) bool {
	return !c.end.Before(c.start)
}

func budget(s string) (int, bool) {
	if !isDigits(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
