package hosts_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"goa.design/officetools/hosts"
)

func TestParseHost(t *testing.T) {
	for _, h := range hosts.All() {
		parsed, ok := hosts.ParseHost(h.String())
		require.True(t, ok, "host %q", h)
		require.Equal(t, h, parsed)
	}

	_, ok := hosts.ParseHost("gallery")
	require.False(t, ok)
	_, ok = hosts.ParseHost("")
	require.False(t, ok)
}

func TestKnownRejectsCasingVariants(t *testing.T) {
	require.True(t, hosts.Spreadsheet.Known())
	require.False(t, hosts.Host("Spreadsheet").Known())
	require.False(t, hosts.Host("SPREADSHEET").Known())
}
