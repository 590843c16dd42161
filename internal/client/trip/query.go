package trip

import (
	"net/url"
	"strconv"
)

// Query is what the form hands to the next screen. Budgets are already
// ordered: BudgetFrom is the low bound.
type Query struct {
	Start      string
	End        string
	BudgetFrom string
	BudgetTo   string
}

func (d Draft) Query() Query {
	return Query{
		Start:      d.Start,
		End:        d.End,
		BudgetFrom: strconv.Itoa(d.BudgetLow),
		BudgetTo:   strconv.Itoa(d.BudgetHigh),
	}
}

// Values encodes q as navigation parameters.
func (q Query) Values() url.Values {
	v := url.Values{}
	v.Set("start", q.Start)
	v.Set("end", q.End)
	v.Set("budgetFrom", q.BudgetFrom)
	v.Set("budgetTo", q.BudgetTo)
	return v
}

// ParseQuery reads navigation parameters back. Missing values stay empty;
// the receiving screen shows them as unknown.
func ParseQuery(v url.Values) Query {
	return Query{
		Start:      v.Get("start"),
		End:        v.Get("end"),
		BudgetFrom: v.Get("budgetFrom"),
		BudgetTo:   v.Get("budgetTo"),
	}
}
