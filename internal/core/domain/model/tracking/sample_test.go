package tracking_test

import (
	"testing"
	"time"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/tracking"
	"quickbasket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSample(t *testing.T) {
	point, _ := kernel.NewGeoPoint(12.9716, 77.5946)

	t.Run("should record valid sample", func(t *testing.T) {
		recordedAt := time.Now()

		s, err := tracking.NewSample(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), point, recordedAt)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, recordedAt.UTC(), s.RecordedAt())
		equal, _ := s.Point().IsEqual(point)
		assert.True(t, equal)
	})

	t.Run("should reject zero recording time", func(t *testing.T) {
		s, err := tracking.NewSample(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), point, time.Time{})

		require.Error(t, err)
		assert.Nil(t, s)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unconstructed point", func(t *testing.T) {
		var invalid kernel.GeoPoint

		s, err := tracking.NewSample(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), invalid, time.Now())

		require.Error(t, err)
		assert.Nil(t, s)
	})
}

func TestSample_IsNewerThan(t *testing.T) {
	point, _ := kernel.NewGeoPoint(12.9716, 77.5946)
	base := time.Now().UTC()

	older, err := tracking.NewSample(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), point, base.Add(-time.Minute))
	require.NoError(t, err)

	newer, err := tracking.NewSample(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), point, base)
	require.NoError(t, err)

	assert.True(t, newer.IsNewerThan(older))
	assert.False(t, older.IsNewerThan(newer))
	assert.False(t, newer.IsNewerThan(newer), "equal timestamps do not supersede")
	assert.True(t, older.IsNewerThan(nil))
}
