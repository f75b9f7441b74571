package feed

import (
	"testing"
	"time"
)

func TestParsePubDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string // RFC 3339 in the stated offset
		wantErr bool
	}{
		{name: "gmt", in: "Wed, 06 Oct 2021 17:00:53 GMT", want: "2021-10-06T17:00:53Z"},
		{name: "ut", in: "Tue, 06 Oct 2020 17:00:53 UT", want: "2020-10-06T17:00:53Z"},
		{name: "numeric offset", in: "Mon, 03 Jul 2023 23:30:00 +0200", want: "2023-07-03T23:30:00+02:00"},
		{name: "negative offset", in: "Mon, 03 Jul 2023 01:15:00 -0430", want: "2023-07-03T01:15:00-04:30"},
		{name: "single digit day", in: "Sat, 1 Jan 2022 00:00:00 +0000", want: "2022-01-01T00:00:00Z"},
		{name: "named zone est", in: "Fri, 31 Dec 2021 22:00:00 EST", want: "2021-12-31T22:00:00-05:00"},
		{name: "named zone pdt", in: "Thu, 15 Jun 2023 08:00:00 PDT", want: "2023-06-15T08:00:00-07:00"},
		{name: "lowercase names", in: "wed, 06 oct 2021 17:00:53 gmt", want: "2021-10-06T17:00:53Z"},
		{name: "leap second", in: "Sat, 31 Dec 2016 23:59:60 +0000", want: "2016-12-31T23:59:59Z"},
		{name: "largest offset", in: "Wed, 06 Oct 2021 17:00:53 +2359", want: "2021-10-06T17:00:53+23:59"},
		{name: "surrounding space", in: "  Wed, 06 Oct 2021 17:00:53 GMT ", want: "2021-10-06T17:00:53Z"},

		{name: "missing weekday", in: "06 Oct 2021 17:00:53 GMT", wantErr: true},
		{name: "two digit year", in: "Wed, 06 Oct 21 17:00:53 GMT", wantErr: true},
		{name: "missing seconds", in: "Wed, 06 Oct 2021 17:00 GMT", wantErr: true},
		{name: "missing zone", in: "Wed, 06 Oct 2021 17:00:53", wantErr: true},
		{name: "iso 8601", in: "2021-10-06T17:00:53Z", wantErr: true},
		{name: "full month name", in: "Wed, 06 October 2021 17:00:53 GMT", wantErr: true},
		{name: "unknown zone", in: "Wed, 06 Oct 2021 17:00:53 CET", wantErr: true},
		{name: "weekday mismatch", in: "Mon, 06 Oct 2021 17:00:53 GMT", wantErr: true},
		{name: "day out of range", in: "Tue, 30 Feb 2021 10:00:00 GMT", wantErr: true},
		{name: "hour out of range", in: "Wed, 06 Oct 2021 24:00:00 GMT", wantErr: true},
		{name: "offset minutes out of range", in: "Wed, 06 Oct 2021 17:00:53 +0275", wantErr: true},
		{name: "offset hours out of range", in: "Wed, 06 Oct 2021 17:00:53 +2500", wantErr: true},
		{name: "offset of a full day", in: "Wed, 06 Oct 2021 17:00:53 -2400", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePubDate(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePubDate(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePubDate(%q) failed: %v", tt.in, err)
			}
			if s := got.Format(time.RFC3339); s != tt.want {
				t.Fatalf("ParsePubDate(%q) = %s, want %s", tt.in, s, tt.want)
			}
		})
	}
}
