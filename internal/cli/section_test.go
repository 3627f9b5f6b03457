package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/cashin/internal/output"
	"github.com/mrz1836/cashin/internal/transactions"
	cashinerr "github.com/mrz1836/cashin/pkg/errors"
)

// resetShowFlags restores the tx show flags to their defaults.
func resetShowFlags() {
	showKind = string(transactions.KindSent)
	showAddress, showPhone, showName, showRecipientPhone, showAvatar = "", "", "", "", ""
	showAddressChanged, showNotExpandable, showToggle = false, false, false
}

func TestRunTxShow_CachedName(t *testing.T) {
	_, testCleanup := setupTestEnv(t)
	defer testCleanup()
	defer resetShowFlags()

	cmd, _, _ := newTestCmd()
	require.NoError(t, runIdentitySet(cmd, []string{testAddress, "Alice"}))

	showKind = "received"
	showAddress = testAddress
	cmd, stdout, _ := newTestCmd()
	require.NoError(t, runTxShow(cmd, nil))

	assert.Contains(t, stdout.String(), "Received From")
	assert.Contains(t, stdout.String(), "Alice")
	assert.NotContains(t, stdout.String(), "Account Number", "collapsed by default")
}

func TestRunTxShow_AddressFallback(t *testing.T) {
	_, testCleanup := setupTestEnv(t)
	defer testCleanup()
	defer resetShowFlags()

	showKind = "withdrawn"
	showAddress = testAddress
	cmd, stdout, _ := newTestCmd()
	require.NoError(t, runTxShow(cmd, nil))

	assert.Contains(t, stdout.String(), "Withdrawn To")
	assert.Contains(t, stdout.String(), "0x 742d…f44e")
}

func TestRunTxShow_AddressChangedJSON(t *testing.T) {
	_, testCleanup := setupTestEnv(t)
	defer testCleanup()
	defer resetShowFlags()

	useFormat(output.FormatJSON)
	showAddress = testAddress
	showAddressChanged = true
	showName = "Bob"
	showRecipientPhone = "+14155552671"

	cmd, stdout, _ := newTestCmd()
	require.NoError(t, runTxShow(cmd, nil))

	var m transactions.Model
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &m))
	assert.Equal(t, "Sent To", m.Label)
	assert.Equal(t, "Bob", m.DisplayName)
	assert.Equal(t, "+1 415-555-2671", m.DisplayNumber)
	assert.True(t, m.Expanded)
	assert.Contains(t, m.Warning, "different from the one you sent to before")
	require.NotNil(t, m.Account)
	assert.Equal(t, "0x742d35Cc6634C0532925a3b844Bc454e4438f44e", m.Account.Address)
	assert.Equal(t, transactions.AccountNumberLocation, m.Account.Location)

	// A tap collapses the block.
	showToggle = true
	cmd, stdout, _ = newTestCmd()
	require.NoError(t, runTxShow(cmd, nil))
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &m))
	assert.False(t, m.Expanded)
}

func TestRunTxShow_NotExpandableIgnoresToggle(t *testing.T) {
	_, testCleanup := setupTestEnv(t)
	defer testCleanup()
	defer resetShowFlags()

	useFormat(output.FormatJSON)
	showAddress = testAddress
	showAddressChanged = true
	showNotExpandable = true
	showToggle = true

	cmd, stdout, _ := newTestCmd()
	require.NoError(t, runTxShow(cmd, nil))

	var m transactions.Model
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &m))
	assert.False(t, m.Expandable)
	assert.False(t, m.Expanded)
	assert.Nil(t, m.Account)
}

func TestRunTxShow_InvalidInput(t *testing.T) {
	_, testCleanup := setupTestEnv(t)
	defer testCleanup()
	defer resetShowFlags()

	cmd, _, _ := newTestCmd()

	showKind = "refunded"
	require.ErrorIs(t, runTxShow(cmd, nil), cashinerr.ErrInvalidKind)

	showKind = "sent"
	showAddress = "0xnope"
	require.ErrorIs(t, runTxShow(cmd, nil), cashinerr.ErrInvalidAddress)

	showAddress = ""
	showAddressChanged = true
	require.ErrorIs(t, runTxShow(cmd, nil), cashinerr.ErrInvalidInput)
}
