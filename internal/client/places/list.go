package places

import (
	"encoding/json"
	"slices"
)

// List is the ordered set of destinations for a trip. Duplicates are
// allowed; the same city can be visited twice.
type List struct {
	labels []string
}

func ParseLocations(text string) *List {
	var labels []string
	if err := json.Unmarshal([]byte(text), &labels); err != nil {
		return &List{}
	}
	return &List{labels: labels}
}

func (l *List) Add(label string) {
	l.labels = append(l.labels, label)
}

// Remove drops every entry equal to label and reports how many were removed.
func (l *List) Remove(label string) int {
	before := len(l.labels)
	l.labels = slices.DeleteFunc(l.labels, func(s string) bool { return s == label })
	return before - len(l.labels)
}

func (l *List) Labels() []string {
	return slices.Clone(l.labels)
}

func (l *List) Len() int {
	return len(l.labels)
}

// JSON encodes the list as a JSON array of strings, "[]" when empty.
func (l *List) JSON() string {
	labels := l.labels
	if labels == nil {
		labels = []string{}
	}
	b, _ := json.Marshal(labels)
	return string(b)
}
