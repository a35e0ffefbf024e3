package core

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		d, err := ParseAmount(" 12.50 ")
		require.NoError(t, err)
		assert.True(t, d.Equal(decimal.RequireFromString("12.5")))
	})

	t.Run("RejectsZeroAndNegative", func(t *testing.T) {
		for _, in := range []string{"0", "-3.20"} {
			_, err := ParseAmount(in)
			assert.Error(t, err, "input %q", in)
		}
	})

	t.Run("RejectsSubCentPrecision", func(t *testing.T) {
		_, err := ParseAmount("1.999")
		assert.Error(t, err)
	})

	t.Run("RejectsGarbage", func(t *testing.T) {
		_, err := ParseAmount("12,50")
		assert.Error(t, err)
	})
}

func TestEntryValidate(t *testing.T) {
	valid := func() Entry {
		return Entry{
			Date:          "2026-08-31",
			Name:          "Coffee",
			Amount:        decimal.RequireFromString("4.20"),
			Category:      "Food",
			Subcategory:   "Restaurants",
			PaymentMethod: PaymentDebit,
		}
	}

	t.Run("Valid", func(t *testing.T) {
		e := valid()
		assert.NoError(t, e.Validate())
	})

	t.Run("BadDate", func(t *testing.T) {
		e := valid()
		e.Date = "31/08/2026"
		assert.Error(t, e.Validate())
	})

	t.Run("EmptyName", func(t *testing.T) {
		e := valid()
		e.Name = "   "
		assert.Error(t, e.Validate())
	})

	t.Run("BadMethod", func(t *testing.T) {
		e := valid()
		e.PaymentMethod = "cash"
		assert.ErrorIs(t, e.Validate(), ErrUnknownPaymentMethod)
	})

	t.Run("UnresolvedTaxonomy", func(t *testing.T) {
		e := valid()
		e.Subcategory = ""
		assert.Error(t, e.Validate())
	})
}

func TestParseRecordType(t *testing.T) {
	rt, err := ParseRecordType(" Note ")
	require.NoError(t, err)
	assert.Equal(t, RecordNote, rt)

	_, err = ParseRecordType("journal")
	assert.ErrorIs(t, err, ErrUnknownRecordType)
}

func TestParsePaymentMethod(t *testing.T) {
	m, err := ParsePaymentMethod("CREDIT")
	require.NoError(t, err)
	assert.Equal(t, PaymentCredit, m)

	_, err = ParsePaymentMethod("iou")
	assert.ErrorIs(t, err, ErrUnknownPaymentMethod)
}
