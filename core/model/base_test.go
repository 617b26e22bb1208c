package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseEstimator(t *testing.T) {
	var e BaseEstimator
	assert.False(t, e.IsFitted())
	assert.Equal(t, NotFitted, e.State())
	assert.Equal(t, "not_fitted", e.State().String())

	e.SetFitted()
	assert.True(t, e.IsFitted())
	assert.Equal(t, "fitted", e.State().String())

	e.Reset()
	assert.False(t, e.IsFitted())
}
