package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrency(t *testing.T) {
	amount := 12.5
	got := Currency(&amount)
	assert.Contains(t, got, "12,50")
	assert.Contains(t, got, "€")

	assert.Equal(t, "0 €", Currency(nil))
}

func TestDate(t *testing.T) {
	assert.Equal(t, "", Date(""))
	assert.Equal(t, "", Date("not a date"))
	assert.Equal(t, "05/03/2024", Date("2024-03-05"))
	assert.Equal(t, "05/03/2024", Date("2024-03-05T10:15:00Z"))
}

func TestNewFormatter(t *testing.T) {
	f, err := New("en", "USD", "2006-01-02")
	require.NoError(t, err)

	assert.Equal(t, "2024-03-05", f.Date("2024-03-05T10:15:00.000Z"))
	assert.Equal(t, "", f.Time(time.Time{}))

	amount := 3.0
	assert.Contains(t, f.Currency(&amount), "3.00")
}

func TestNewFormatterRejectsBadInput(t *testing.T) {
	_, err := New("en", "NOPE", "")
	assert.Error(t, err)

	_, err = New("!!", "EUR", "")
	assert.Error(t, err)
}
