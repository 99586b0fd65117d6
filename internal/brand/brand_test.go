package brand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLibTechAlias(t *testing.T) {
	b := New("Lib Technologies Snowboards")
	assert.Equal(t, "Lib Tech", b.Canonical())
	assert.Equal(t, ManufacturerMervin, b.Manufacturer())
}

func TestGNUMapsToMervin(t *testing.T) {
	assert.Equal(t, ManufacturerMervin, New("GNU").Manufacturer())
}

func TestUnknownBrandPreservesCasing(t *testing.T) {
	b := New("RIDE Snowboards")
	assert.Equal(t, "RIDE", b.Canonical())
	assert.Equal(t, ManufacturerDefault, b.Manufacturer())
}

func TestZeroWidthInsertionStable(t *testing.T) {
	plain := New("Burton").Canonical()
	withZW := New("Bur​ton‌").Canonical()
	assert.Equal(t, plain, withZW)
}

func TestCapitaAlias(t *testing.T) {
	assert.Equal(t, "CAPiTA", New("capita").Canonical())
}

func TestYesAlias(t *testing.T) {
	assert.Equal(t, "Yes.", New("yes").Canonical())
}

func TestDWDAlias(t *testing.T) {
	assert.Equal(t, "Dinosaurs Will Die", New("dwd").Canonical())
}

func TestFromPicksFirstNonEmpty(t *testing.T) {
	b := From("", "  ", "Burton", "GNU")
	assert.NotNil(t, b)
	assert.Equal(t, "Burton", b.Canonical())
}

func TestFromReturnsNilWhenAllEmpty(t *testing.T) {
	assert.Nil(t, From("", "   "))
}

func TestEqualByRawInput(t *testing.T) {
	a := New("Burton Snowboards")
	b := New("Burton Snowboards")
	c := New("GNU")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestMemoizationIdempotent(t *testing.T) {
	b := New("Capita Snowboards")
	first := b.Canonical()
	second := b.Canonical()
	assert.Equal(t, first, second)
}
