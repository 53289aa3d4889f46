package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	d, err := ParseDate("2024-03-15", tokyo)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, tokyo), d)

	d, err = ParseDate("2024-03-15T14:30", tokyo)
	require.NoError(t, err)
	assert.Equal(t, 14, d.Hour())
	assert.Equal(t, tokyo, d.Location())

	d, err = ParseDate("2024-03-15T14:30:00Z", tokyo)
	require.NoError(t, err)
	assert.True(t, d.Equal(time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)))

	_, err = ParseDate("", tokyo)
	assert.Error(t, err)
	_, err = ParseDate("15/03/2024", tokyo)
	assert.Error(t, err)
}
