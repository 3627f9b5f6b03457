package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cashinerr "github.com/mrz1836/cashin/pkg/errors"
)

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	t.Run("english", func(t *testing.T) {
		t.Parallel()
		c, err := NewCatalog("en-US")
		require.NoError(t, err)
		assert.Equal(t, "CELO Deposit", c.T("fiatExchangeFlow:celoDeposit"))
		assert.Equal(t, "cUSD Deposit", c.T("fiatExchangeFlow:cUsdDeposit"))
		assert.Equal(t, "Sent To", c.T("sendFlow7:sentTo"))
	})

	t.Run("spanish by region match", func(t *testing.T) {
		t.Parallel()
		c, err := NewCatalog("es-MX")
		require.NoError(t, err)
		assert.Equal(t, "es-419", c.Tag().String())
		assert.Equal(t, "Recibido de", c.T("sendFlow7:receivedFrom"))
	})

	t.Run("empty language falls back", func(t *testing.T) {
		t.Parallel()
		c, err := NewCatalog("")
		require.NoError(t, err)
		assert.Equal(t, "en-US", c.Tag().String())
	})

	t.Run("unknown language falls back", func(t *testing.T) {
		t.Parallel()
		c, err := NewCatalog("ja")
		require.NoError(t, err)
		assert.Equal(t, "en-US", c.Tag().String())
	})
}

func TestCatalog_MissingKey(t *testing.T) {
	t.Parallel()
	c, err := NewCatalog("en-US")
	require.NoError(t, err)
	assert.Equal(t, "sendFlow7:nope", c.T("sendFlow7:nope"))
	assert.Equal(t, "bare", c.T("bare"))
	assert.False(t, c.Has("bare"))
	assert.True(t, c.Has("sendFlow7:withdrawnTo"))
}

func TestCatalog_LoadOverrides(t *testing.T) {
	t.Parallel()
	c, err := NewCatalog("en-US")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fiatExchangeFlow:\n  celoDeposit: Gold In\nextra:\n  k: v\n"), 0o600))

	require.NoError(t, c.LoadOverrides(path))
	assert.Equal(t, "Gold In", c.T("fiatExchangeFlow:celoDeposit"))
	assert.Equal(t, "cUSD Deposit", c.T("fiatExchangeFlow:cUsdDeposit"))
	assert.Equal(t, "v", c.T("extra:k"))
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()
	_, err := Parse([]byte("- just\n- a list\n"))
	require.ErrorIs(t, err, cashinerr.ErrCatalogInvalid)
}

func TestStaticAndIdentity(t *testing.T) {
	t.Parallel()
	tr := Static(map[string]string{"a": "A"})
	assert.Equal(t, "A", tr.T("a"))
	assert.Equal(t, "b", tr.T("b"))
	assert.Equal(t, "x:y", Identity.T("x:y"))
}
