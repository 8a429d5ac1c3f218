package disclosures

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	require.Equal(t, 1204.50, ParseCurrency("$1,204.50"))
	require.Equal(t, 5000.0, ParseCurrency("5,000.00"))
	require.Equal(t, 86.4, ParseCurrency("$86.40"))
	require.Equal(t, 0.0, ParseCurrency("--"))
	require.Equal(t, 0.0, ParseCurrency(""))
	require.Equal(t, 0.0, ParseCurrency("n/a"))
	require.Equal(t, -250.0, ParseCurrency("-$250.00"))
}

func TestParseDate(t *testing.T) {
	d := ParseDate("01/15/2023")
	require.NotNil(t, d)
	require.Equal(t, "2023-01-15", d.Format("2006-01-02"))

	d = ParseDate("2014-05-01")
	require.NotNil(t, d)
	require.Equal(t, "2014-05-01", d.Format("2006-01-02"))

	require.Nil(t, ParseDate(""))
	require.Nil(t, ParseDate("May 1, 2014"))
	require.Nil(t, ParseDate("13/45/2023"))
}
