package cookfmt

import "testing"

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{-5, "0m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h 30m"},
		{1440, "1day"},
		{1560, "1day 2h"},
		{2885, "2days 5m"},
	}
	for _, tc := range cases {
		if got := formatMinutes(tc.minutes); got != tc.want {
			t.Fatalf("formatMinutes(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}
