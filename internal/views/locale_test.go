package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatForLocale(t *testing.T) {

	cases := []struct {
		tag      string
		expected DateTimeFormat
	}{
		{"en-US", DateTimeFormat{"1/2/2006", "3:04 PM"}},
		{"en_US", DateTimeFormat{"1/2/2006", "3:04 PM"}},
		{"en", DateTimeFormat{"1/2/2006", "3:04 PM"}},
		{"en-GB", DateTimeFormat{"02/01/2006", "15:04"}},
		{"de-DE", DateTimeFormat{"02.01.2006", "15:04"}},
		{"ru", DateTimeFormat{"02.01.2006", "15:04"}},
		{"sv-SE", DateTimeFormat{"2006-01-02", "15:04"}},
		{"ja-JP", DateTimeFormat{"2006/01/02", "15:04"}},
		{"", isoFormat},
		{"not a locale!", isoFormat},
		{"en-150", isoFormat},
	}

	for _, c := range cases {
		t.Run(c.tag, func(t *testing.T) {
			assert.Equal(t, c.expected, FormatForLocale(c.tag))
		})
	}
}

func TestDateTimeFormatter(t *testing.T) {

	cet := time.FixedZone("CET", 3600)

	t.Run("should render short date and time in the configured zone", func(t *testing.T) {
		formatter := NewDateTimeFormatter("en-US", cet)
		assert.Equal(t, "3/5/2024 10:30 AM", formatter.FormatStored("2024-03-05T09:30:00Z"))
	})

	t.Run("should use region layouts", func(t *testing.T) {
		formatter := NewDateTimeFormatter("de-DE", cet)
		assert.Equal(t, "05.03.2024 10:30", formatter.FormatStored("2024-03-05T09:30:00Z"))
	})

	t.Run("should cross the date line when converting", func(t *testing.T) {
		formatter := NewDateTimeFormatter("en-GB", time.FixedZone("AEDT", 11*3600))
		assert.Equal(t, "06/03/2024 09:30", formatter.FormatStored("2024-03-05T22:30:00Z"))
	})

	t.Run("should accept sqlite default timestamps", func(t *testing.T) {
		formatter := NewDateTimeFormatter("sv-SE", time.UTC)
		assert.Equal(t, "2024-03-05 09:30", formatter.FormatStored("2024-03-05 09:30:00"))
	})

	t.Run("should return unparseable values verbatim", func(t *testing.T) {
		formatter := NewDateTimeFormatter("en-US", time.UTC)
		assert.Equal(t, "yesterday", formatter.FormatStored("yesterday"))
	})
}
