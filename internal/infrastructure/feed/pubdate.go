package feed

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var pubDatePattern = regexp.MustCompile(
	`^(?i:(mon|tue|wed|thu|fri|sat|sun)),\s*(\d{1,2})\s+(?i:(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec))\s+(\d{4})\s+(\d{2}):(\d{2}):(\d{2})\s+([+-]\d{4}|[A-Za-z]{1,3})$`,
)

var weekdays = map[string]time.Weekday{
	"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday, "wed": time.Wednesday,
	"thu": time.Thursday, "fri": time.Friday, "sat": time.Saturday,
}

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March, "apr": time.April,
	"may": time.May, "jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "oct": time.October, "nov": time.November, "dec": time.December,
}

// Offsets in hours for the zone names RFC 2822 allows.
var zoneOffsets = map[string]int{
	"UT": 0, "GMT": 0, "Z": 0,
	"EST": -5, "EDT": -4,
	"CST": -6, "CDT": -5,
	"MST": -7, "MDT": -6,
	"PST": -8, "PDT": -7,
}

var errPubDateFormat = errors.New("not an RFC 2822 date-time")

// ParsePubDate parses an RSS pubDate such as "Wed, 06 Oct 2021 17:00:53 GMT".
// The weekday, the four-digit year, the seconds and the zone are all required.
func ParsePubDate(value string) (time.Time, error) {
	m := pubDatePattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return time.Time{}, errPubDateFormat
	}

	day, _ := strconv.Atoi(m[2])
	month := months[strings.ToLower(m[3])]
	year, _ := strconv.Atoi(m[4])
	hour, _ := strconv.Atoi(m[5])
	minute, _ := strconv.Atoi(m[6])
	second, _ := strconv.Atoi(m[7])

	if hour > 23 || minute > 59 || second > 60 {
		return time.Time{}, fmt.Errorf("time of day %s:%s:%s out of range", m[5], m[6], m[7])
	}
	// A leap second stays on the same calendar day.
	if second == 60 {
		second = 59
	}

	offset, err := parseZone(m[8])
	if err != nil {
		return time.Time{}, err
	}

	t := time.Date(year, month, day, hour, minute, second, 0, time.FixedZone(m[8], offset))
	if t.Day() != day || t.Month() != month {
		return time.Time{}, fmt.Errorf("day %d out of range for %s %d", day, month, year)
	}
	if want := weekdays[strings.ToLower(m[1])]; t.Weekday() != want {
		return time.Time{}, fmt.Errorf("weekday %s does not match %s", m[1], t.Format("2006-01-02"))
	}
	return t, nil
}

func parseZone(zone string) (int, error) {
	if zone[0] == '+' || zone[0] == '-' {
		hours, _ := strconv.Atoi(zone[1:3])
		minutes, _ := strconv.Atoi(zone[3:5])
		if hours > 23 || minutes > 59 {
			return 0, fmt.Errorf("zone offset %s out of range", zone)
		}
		offset := hours*3600 + minutes*60
		if zone[0] == '-' {
			offset = -offset
		}
		return offset, nil
	}

	hours, ok := zoneOffsets[strings.ToUpper(zone)]
	if !ok {
		return 0, fmt.Errorf("unknown zone %q", zone)
	}
	return hours * 3600, nil
}
