package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookkeep-dev/bookkeep/internal/model"
)

func TestWriteRead_RoundTrip(t *testing.T) {
	accounts := []model.Account{
		{Name: "Cash", Type: model.AccountTypeAsset},
		{Name: "Accounts Payable", Type: model.AccountTypeLiability},
		{Name: "Owner's Capital", Type: model.AccountTypeEquity},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, accounts))

	got, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, accounts, got)
}

func TestRead_Errors(t *testing.T) {
	_, err := Read(strings.NewReader("account_name,account_type\nCash,asset\nVault,gold\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
	assert.Contains(t, err.Error(), `"gold"`)

	_, err = Read(strings.NewReader("account_name,account_type,extra\n"))
	assert.Error(t, err)
}

func TestRead_Empty(t *testing.T) {
	got, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDefault(t *testing.T) {
	std := Default("standard")
	require.Len(t, std, 24)
	for _, a := range std {
		assert.True(t, a.Type.Valid(), "%s", a.Name)
		assert.NotContains(t, a.Name, "[", "%s must be canonical", a.Name)
	}
	assert.Equal(t, "Cash", std[0].Name)

	assert.Empty(t, Default("empty"))
	assert.Equal(t, std, Default("anything-else"), "unknown profiles fall back to standard")
}
