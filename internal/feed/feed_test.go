package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/cashin/internal/fiatexchange"
)

func TestDecorate(t *testing.T) {
	t.Parallel()
	info := fiatexchange.TxHashToDisplayInfo{
		"0xabc": {Name: "Moonpay", Icon: "url1"},
	}

	items := Decorate([]string{"0xdef", "0xabc"}, info)
	require.Len(t, items, 2)

	assert.Equal(t, "0xdef", items[0].TxHash)
	assert.Nil(t, items[0].Provider)
	assert.Equal(t, "-", items[0].ProviderName("-"))

	require.NotNil(t, items[1].Provider)
	assert.Equal(t, "url1", items[1].Provider.Icon)
	assert.Equal(t, "Moonpay", items[1].ProviderName("-"))
}

func TestAll(t *testing.T) {
	t.Parallel()
	info := fiatexchange.TxHashToDisplayInfo{
		"0x2": {Name: "B"},
		"0x1": {Name: "A"},
	}
	items := All(info)
	require.Len(t, items, 2)
	assert.Equal(t, "0x1", items[0].TxHash)
	assert.Equal(t, "0x2", items[1].TxHash)

	assert.Empty(t, All(nil))
}
