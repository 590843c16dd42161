package trip

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		form Form
		want error
	}{
		{
			name: "empty start",
			form: Form{Start: "", End: "10/12/2025", BudgetFrom: "100", BudgetTo: "500"},
			want: ErrMissingField,
		},
		{
			name: "blank budget",
			form: Form{Start: "05/12/2025", End: "10/12/2025", BudgetFrom: "  ", BudgetTo: "500"},
			want: ErrMissingField,
		},
		{
			name: "unparsable date counts as missing",
			form: Form{Start: "31/02/2024", End: "10/12/2025", BudgetFrom: "100", BudgetTo: "500"},
			want: ErrMissingField,
		},
		{
			name: "missing field wins over bad budget",
			form: Form{Start: "05/12/2025", End: "", BudgetFrom: "abc", BudgetTo: "500"},
			want: ErrMissingField,
		},
		{
			name: "decimal budget",
			form: Form{Start: "05/12/2025", End: "10/12/2025", BudgetFrom: "100.5", BudgetTo: "500"},
			want: ErrInvalidBudgetFormat,
		},
		{
			name: "negative budget",
			form: Form{Start: "05/12/2025", End: "10/12/2025", BudgetFrom: "100", BudgetTo: "-500"},
			want: ErrInvalidBudgetFormat,
		},
		{
			name: "thousands separator",
			form: Form{Start: "05/12/2025", End: "10/12/2025", BudgetFrom: "1,000", BudgetTo: "500"},
			want: ErrInvalidBudgetFormat,
		},
		{
			name: "budget overflow",
			form: Form{Start: "05/12/2025", End: "10/12/2025", BudgetFrom: "99999999999999999999999", BudgetTo: "500"},
			want: ErrInvalidBudgetFormat,
		},
		{
			name: "bad budget wins over date order",
			form: Form{Start: "10/12/2025", End: "05/12/2025", BudgetFrom: "1e3", BudgetTo: "500"},
			want: ErrInvalidBudgetFormat,
		},
		{
			name: "end before start",
			form: Form{Start: "10/12/2025", End: "05/12/2025", BudgetFrom: "100", BudgetTo: "500"},
			want: ErrInvalidDateOrder,
		},
		{
			name: "end one year earlier",
			form: Form{Start: "01/01/2026", End: "31/12/2025", BudgetFrom: "100", BudgetTo: "500"},
			want: ErrInvalidDateOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.form)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_NormalizesBudget(t *testing.T) {
	d, err := Validate(Form{Start: "05/12/2025", End: "10/12/2025", BudgetFrom: "500", BudgetTo: "100"})
	require.NoError(t, err)
	assert.Equal(t, 100, d.BudgetLow)
	assert.Equal(t, 500, d.BudgetHigh)

	d, err = Validate(Form{Start: "05/12/2025", End: "10/12/2025", BudgetFrom: "100", BudgetTo: "500"})
	require.NoError(t, err)
	assert.Equal(t, 100, d.BudgetLow)
	assert.Equal(t, 500, d.BudgetHigh)
}

func TestValidate_SameDayAndFormatting(t *testing.T) {
	d, err := Validate(Form{Start: "5/3/2026", End: "05/03/2026", BudgetFrom: "0", BudgetTo: "0"})
	require.NoError(t, err)

	assert.Equal(t, "05/03/2026", d.Start)
	assert.Equal(t, "05/03/2026", d.End)
	assert.True(t, d.StartDate.Equal(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, d.Nights())
}

func TestDraft_Nights(t *testing.T) {
	tests := []struct {
		start, end string
		want       int
	}{
		{start: "28/02/2024", end: "02/03/2024", want: 3},
		{start: "05/03/2026", end: "05/03/2026", want: 0},
		{start: "01/01/1900", end: "01/01/2500", want: 219146},
		{start: "01/01/1900", end: "31/12/9999", want: 2958463},
	}

	for _, tt := range tests {
		t.Run(tt.start+"-"+tt.end, func(t *testing.T) {
			d, err := Validate(Form{Start: tt.start, End: tt.end, BudgetFrom: "1", BudgetTo: "2"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Nights())
		})
	}
}

func TestDraft_QueryRoundTrip(t *testing.T) {
	d, err := Validate(Form{Start: "05/12/2025", End: "10/12/2025", BudgetFrom: "900", BudgetTo: "300"})
	require.NoError(t, err)

	q := d.Query()
	assert.Equal(t, Query{Start: "05/12/2025", End: "10/12/2025", BudgetFrom: "300", BudgetTo: "900"}, q)

	encoded := q.Values().Encode()
	values, err := url.ParseQuery(encoded)
	require.NoError(t, err)
	assert.Equal(t, q, ParseQuery(values))
}

func TestParseQuery_Missing(t *testing.T) {
	assert.Equal(t, Query{}, ParseQuery(url.Values{}))
}
