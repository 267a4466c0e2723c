package journal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookkeep-dev/bookkeep/internal/ledger"
	"github.com/bookkeep-dev/bookkeep/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWriteRead_RoundTrip(t *testing.T) {
	txns := []model.Transaction{
		{Date: date(2025, time.January, 1), Description: "Owner investment", Debit: "Cash", Credit: "Owner's Capital", Amount: dec("10000")},
		{Date: date(2025, time.January, 2), Description: "Rent, office", Debit: "Rent Expense", Credit: "Cash", Amount: dec("500.50")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, txns))
	assert.True(t, strings.HasPrefix(buf.String(), Header+"\n"))

	got, err := ReadTransactions(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Owner investment", got[0].Description)
	assert.True(t, got[0].Amount.Equal(dec("10000")))
	assert.Equal(t, "Rent, office", got[1].Description, "commas in fields survive the round trip")
	assert.True(t, got[1].Amount.Equal(dec("500.50")))
	assert.Equal(t, date(2025, time.January, 2), got[1].Date)
}

func TestAppendTransactions_NoHeader(t *testing.T) {
	var buf bytes.Buffer
	err := AppendTransactions(&buf, []model.Transaction{
		{Date: date(2025, time.February, 3), Description: "Supplies", Debit: "Supplies", Credit: "Cash", Amount: dec("75")},
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-02-03,Supplies,Supplies,Cash,75.00\n", buf.String())
}

func TestReadTransactions_Errors(t *testing.T) {
	_, err := ReadTransactions(strings.NewReader(Header + "\n01/02/2025,Rent,Rent Expense,Cash,500\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ledger.ErrInvalidDate)
	assert.Contains(t, err.Error(), "row 2")

	_, err = ReadTransactions(strings.NewReader(Header + "\n2025-01-02,Rent,Rent Expense,Cash,lots\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"lots"`)

	_, err = ReadTransactions(strings.NewReader("date,description\n"))
	assert.Error(t, err)
}

func TestReadTransactions_Empty(t *testing.T) {
	got, err := ReadTransactions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, got)
}
