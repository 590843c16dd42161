// Package trip validates the trip-creation form (date range and budget) and
// turns it into a Draft plus the Query handed to the location screen.
//
// Validation is an ordered list of rules; the first failing rule decides the
// error, so a form with an empty field and a malformed budget reports
// ErrMissingField.
package trip
