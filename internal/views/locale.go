package views

import (
	"time"

	"github.com/jeandeaual/go-locale"
	"github.com/maxaizer/jobsearch/internal/domain/models"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// DateTimeFormat holds Go layouts for a locale's short date and short time.
type DateTimeFormat struct {
	DateLayout string
	TimeLayout string
}

var isoFormat = DateTimeFormat{DateLayout: "2006-01-02", TimeLayout: "15:04"}

var regionFormats = map[string]DateTimeFormat{
	"US": {DateLayout: "1/2/2006", TimeLayout: "3:04 PM"},
	"PH": {DateLayout: "1/2/2006", TimeLayout: "3:04 PM"},
	"GB": {DateLayout: "02/01/2006", TimeLayout: "15:04"},
	"IE": {DateLayout: "02/01/2006", TimeLayout: "15:04"},
	"FR": {DateLayout: "02/01/2006", TimeLayout: "15:04"},
	"IT": {DateLayout: "02/01/2006", TimeLayout: "15:04"},
	"ES": {DateLayout: "02/01/2006", TimeLayout: "15:04"},
	"BR": {DateLayout: "02/01/2006", TimeLayout: "15:04"},
	"IN": {DateLayout: "02/01/2006", TimeLayout: "3:04 PM"},
	"AU": {DateLayout: "2/01/2006", TimeLayout: "3:04 PM"},
	"NZ": {DateLayout: "2/01/2006", TimeLayout: "3:04 PM"},
	"DE": {DateLayout: "02.01.2006", TimeLayout: "15:04"},
	"AT": {DateLayout: "02.01.2006", TimeLayout: "15:04"},
	"CH": {DateLayout: "02.01.2006", TimeLayout: "15:04"},
	"RU": {DateLayout: "02.01.2006", TimeLayout: "15:04"},
	"UA": {DateLayout: "02.01.2006", TimeLayout: "15:04"},
	"PL": {DateLayout: "02.01.2006", TimeLayout: "15:04"},
	"CZ": {DateLayout: "02.01.2006", TimeLayout: "15:04"},
	"FI": {DateLayout: "2.1.2006", TimeLayout: "15.04"},
	"NO": {DateLayout: "02.01.2006", TimeLayout: "15:04"},
	"TR": {DateLayout: "02.01.2006", TimeLayout: "15:04"},
	"NL": {DateLayout: "02-01-2006", TimeLayout: "15:04"},
	"SE": {DateLayout: "2006-01-02", TimeLayout: "15:04"},
	"CA": {DateLayout: "2006-01-02", TimeLayout: "3:04 PM"},
	"CN": {DateLayout: "2006/1/2", TimeLayout: "15:04"},
	"JP": {DateLayout: "2006/01/02", TimeLayout: "15:04"},
	"TW": {DateLayout: "2006/1/2", TimeLayout: "15:04"},
	"KR": {DateLayout: "2006. 1. 2.", TimeLayout: "15:04"},
}

// HostLocale returns the host's locale tag, or "" when it cannot be determined.
func HostLocale() string {
	tag, err := locale.GetLocale()
	if err != nil {
		log.Debugf("could not detect host locale: %v", err)
		return ""
	}
	return tag
}

// FormatForLocale picks layouts by the tag's region. Tags without a region
// use the most likely one ("en" resolves to US); unknown regions get ISO layouts.
func FormatForLocale(tag string) DateTimeFormat {
	if tag == "" {
		return isoFormat
	}

	parsed, err := language.Parse(tag)
	if err != nil {
		log.Debugf("unsupported locale %q: %v", tag, err)
		return isoFormat
	}

	region, _ := parsed.Region()
	if format, ok := regionFormats[region.String()]; ok {
		return format
	}
	return isoFormat
}

type DateTimeFormatter struct {
	format   DateTimeFormat
	location *time.Location
}

// NewDateTimeFormatter uses the host locale when localeTag is empty and the
// host time zone when location is nil.
func NewDateTimeFormatter(localeTag string, location *time.Location) *DateTimeFormatter {
	if localeTag == "" {
		localeTag = HostLocale()
	}
	if location == nil {
		location = time.Local
	}
	return &DateTimeFormatter{format: FormatForLocale(localeTag), location: location}
}

func (f *DateTimeFormatter) Format(t time.Time) string {
	local := t.In(f.location)
	return local.Format(f.format.DateLayout) + " " + local.Format(f.format.TimeLayout)
}

// FormatStored renders a stored UTC timestamp; unparseable values are returned as is.
func (f *DateTimeFormatter) FormatStored(value string) string {
	t, err := models.ParseTimestamp(value)
	if err != nil {
		log.Warnf("failed to parse stored timestamp: %v", err)
		return value
	}
	return f.Format(t)
}
