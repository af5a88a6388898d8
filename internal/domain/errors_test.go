package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpstreamError(t *testing.T) {
	notFound := fmt.Errorf("fetch: %w", &UpstreamError{Status: 400, Code: CityNotFoundCode, Message: "No matching location found."})
	assert.ErrorIs(t, notFound, ErrCityNotFound)
	code, ok := UpstreamCode(notFound)
	assert.True(t, ok)
	assert.Equal(t, CityNotFoundCode, code)

	quota := &UpstreamError{Status: 403, Code: 2007, Message: "quota exceeded"}
	assert.NotErrorIs(t, quota, ErrCityNotFound)
	assert.Contains(t, quota.Error(), "2007")

	_, ok = UpstreamCode(errors.New("plain"))
	assert.False(t, ok)
}
