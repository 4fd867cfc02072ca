package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 12.35, RoundWithTwoDecimalPlace(12.3456))
	assert.Equal(t, 12.34, RoundWithTwoDecimalPlace(12.344))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, -1.24, RoundWithTwoDecimalPlace(-1.239))
}

func TestRoundWithSixDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.123457, RoundWithSixDecimalPlace(0.12345678))
	assert.Equal(t, 1.0, RoundWithSixDecimalPlace(1.0000004))
	assert.Equal(t, 0.0, RoundWithSixDecimalPlace(0))
}
