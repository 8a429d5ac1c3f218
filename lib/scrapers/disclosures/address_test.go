package disclosures

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Address
	}{
		{
			name: "street city state zip",
			in:   "123 MAIN ST, SALT LAKE CITY, UT 84101",
			want: Address{
				Street: "123 MAIN ST",
				City:   "SALT LAKE CITY",
				State:  "UT",
				Zip:    "84101",
			},
		},
		{
			name: "zip plus four",
			in:   "123 MAIN ST, SALT LAKE CITY, UT 84101-1234",
			want: Address{
				Street: "123 MAIN ST",
				City:   "SALT LAKE CITY",
				State:  "UT",
				Zip:    "84101-1234",
			},
		},
		{
			name: "two segments",
			in:   "PROVO, UT 84601",
			want: Address{City: "PROVO", State: "UT", Zip: "84601"},
		},
		{
			name: "extra segments keep first two",
			in:   "ATTN TREASURER, 44 W TEMPLE, UT 84601, USA",
			want: Address{Street: "ATTN TREASURER", City: "44 W TEMPLE", State: "UT", Zip: "84601"},
		},
		{
			name: "unrecognized state segment",
			in:   "123 MAIN ST, SALT LAKE CITY, UTAH",
			want: Address{Street: "123 MAIN ST", City: "SALT LAKE CITY"},
		},
		{
			name: "single segment",
			in:   "SALT LAKE CITY UT 84101",
			want: Address{},
		},
		{
			name: "empty",
			in:   "",
			want: Address{},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ParseAddress(c.in)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Fatalf("unexpected address (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractState(t *testing.T) {
	require.Equal(t, "UT", ExtractState("123 MAIN ST, SALT LAKE CITY, UT 84101"))
	require.Equal(t, "CA", ExtractState("PO BOX 9 LOS ANGELES CA 90001"))
	require.Equal(t, "UT", ExtractState("SALT LAKE CITY UT84101"))
	require.Equal(t, "", ExtractState("123 MAIN ST"))
	require.Equal(t, "", ExtractState(""))
}
