package model

import (
	"fmt"
	"time"
)

// Scene catalogs do not all adhere to a single standard for formatting
// acquisition datetimes, and the formats they do use are not official IETF
// standards. Thus, we need lenient "multi-format" parsing functionality,
// implemented here.

// StandardTimeLayout is the preferred format to use when formatting catalog datetimes
const StandardTimeLayout = "2006-01-02T15:04:05.999999999Z" // time.RFC3339Nano, without actual Z offset

var catalogTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999Z",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseCatalogTime is a drop-in replacement for time.Parse, but matching against multiple possible catalog time formats
func ParseCatalogTime(catalogTime string) (time.Time, error) {
	for _, layout := range catalogTimeLayouts {
		if output, err := time.Parse(layout, catalogTime); err == nil {
			return output, nil
		}
	}
	return time.Time{}, fmt.Errorf("Date could not be parsed by any expected time format: `%s`", catalogTime)
}
