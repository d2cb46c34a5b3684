// Package dates converts between calendar dates as they travel over the wire
// (YYYY-MM-DD strings) and as they are stored.
package dates

import (
	"fmt"
	"time"

	"github.com/locallibrary/catalog/pkg/errcodes"
)

const Layout = "2006-01-02"

// Parse parses an optional date. A nil or empty value means no date.
func Parse(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(Layout, *value)
	if err != nil {
		return nil, errcodes.ValidationError(fmt.Sprintf("%q should be in the format of YYYY-MM-DD", field))
	}
	return &t, nil
}

// Format renders an optional date, returning nil when there is none.
func Format(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(Layout)
	return &s
}
