package boardid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
)

func TestDerivesBrandModelAndVariant(t *testing.T) {
	id := New(model.ScrapedBoard{
		BrandRaw: "Burton Snowboards",
		RawModel: "Custom Camber Snowboard 2026",
	})
	assert.Equal(t, "Burton", id.Brand())
	assert.Equal(t, "Custom", id.Model())
	require.NotNil(t, id.ProfileVariant())
	assert.Equal(t, "camber", *id.ProfileVariant())
}

func TestUnknownBrandWhenMissing(t *testing.T) {
	id := New(model.ScrapedBoard{RawModel: "Something"})
	assert.Equal(t, "Unknown", id.Brand())
}

func TestConditionHintOverridesDetection(t *testing.T) {
	id := New(model.ScrapedBoard{
		BrandRaw:      "Arbor",
		RawModel:      "Formula (Blem)",
		ConditionHint: "new",
	})
	assert.Equal(t, "new", id.Condition())
}

func TestConditionDetectedFromModel(t *testing.T) {
	id := New(model.ScrapedBoard{
		BrandRaw: "Arbor",
		RawModel: "Formula (Blem)",
	})
	assert.Equal(t, "blemished", id.Condition())
}

func TestGenderHintOverridesDetection(t *testing.T) {
	id := New(model.ScrapedBoard{
		BrandRaw: "Burton",
		RawModel: "Custom",
		Gender:   "womens",
	})
	assert.Equal(t, "womens", id.Gender())
}

func TestYearHintTakesPrecedence(t *testing.T) {
	hint := 2023
	id := New(model.ScrapedBoard{
		BrandRaw: "Burton",
		RawModel: "Custom 2026",
		Year:     &hint,
	})
	require.NotNil(t, id.Year())
	assert.Equal(t, 2023, *id.Year())
}

func TestYearInferredFromFourDigitPattern(t *testing.T) {
	id := New(model.ScrapedBoard{
		BrandRaw: "Burton",
		RawModel: "Custom 2026",
	})
	require.NotNil(t, id.Year())
	assert.Equal(t, 2026, *id.Year())
}

func TestYearInferredFromTwoDigitClamp(t *testing.T) {
	id := New(model.ScrapedBoard{
		BrandRaw: "Burton",
		RawModel: "Custom 25",
	})
	require.NotNil(t, id.Year())
	assert.Equal(t, 2025, *id.Year())
}

func TestMemoizedFieldsStable(t *testing.T) {
	id := New(model.ScrapedBoard{
		BrandRaw: "Burton Snowboards",
		RawModel: "Custom Camber Snowboard 2026",
	})
	assert.Equal(t, id.Model(), id.Model())
	assert.Equal(t, id.Brand(), id.Brand())
}
