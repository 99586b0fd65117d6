package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditionBlemished(t *testing.T) {
	assert.Equal(t, "blemished", Condition("Custom (Blem)", ""))
	assert.Equal(t, "blemished", Condition("Custom - Blem", ""))
	assert.Equal(t, "blemished", Condition("Custom", "https://example.com/custom-blem"))
}

func TestConditionCloseout(t *testing.T) {
	assert.Equal(t, "closeout", Condition("Custom (Closeout)", ""))
	assert.Equal(t, "closeout", Condition("Custom", "https://example.com/outlet/custom"))
}

func TestConditionSaleIsNotACondition(t *testing.T) {
	assert.Equal(t, "new", Condition("Custom (Sale)", "https://example.com/custom"))
}

func TestConditionDefaultsNew(t *testing.T) {
	assert.Equal(t, "new", Condition("Custom", "https://example.com/custom"))
}
