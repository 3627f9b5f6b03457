package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/cashin/internal/output"
	cashinerr "github.com/mrz1836/cashin/pkg/errors"
)

func TestRunIdentitySetAndList(t *testing.T) {
	_, testCleanup := setupTestEnv(t)
	defer testCleanup()
	defer func() { identityImage = "" }()

	identityImage = "https://x/alice.png"
	cmd, stdout, _ := newTestCmd()
	require.NoError(t, runIdentitySet(cmd, []string{strings.ToUpper(testAddress[2:]), "Alice"}))
	assert.Contains(t, stdout.String(), "0x 742d…f44e")
	assert.Contains(t, stdout.String(), "Alice")

	useFormat(output.FormatJSON)
	cmd, stdout, _ = newTestCmd()
	require.NoError(t, runIdentityList(cmd, nil))

	var entries []identityEntry
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, identityEntry{Address: testAddress, Name: "Alice", ImageURL: "https://x/alice.png"}, entries[0])
}

func TestRunIdentitySet_InvalidAddress(t *testing.T) {
	_, testCleanup := setupTestEnv(t)
	defer testCleanup()

	cmd, _, _ := newTestCmd()
	require.ErrorIs(t, runIdentitySet(cmd, []string{"alice.eth", "Alice"}), cashinerr.ErrInvalidAddress)
}

func TestRunIdentityList_Empty(t *testing.T) {
	_, testCleanup := setupTestEnv(t)
	defer testCleanup()

	cmd, stdout, _ := newTestCmd()
	require.NoError(t, runIdentityList(cmd, nil))
	assert.Equal(t, "No cached names.\n", stdout.String())
}
