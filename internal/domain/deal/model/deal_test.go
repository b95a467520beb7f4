package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDealIsLive(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	deal := Deal{IsActive: true, StartDate: start, EndDate: end}

	t.Run("Within window", func(t *testing.T) {
		assert.True(t, deal.IsLive(time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)))
	})

	t.Run("Start boundary is inclusive", func(t *testing.T) {
		assert.True(t, deal.IsLive(start))
	})

	t.Run("End boundary is exclusive", func(t *testing.T) {
		assert.False(t, deal.IsLive(end))
	})

	t.Run("Before window", func(t *testing.T) {
		assert.False(t, deal.IsLive(start.Add(-time.Second)))
	})

	t.Run("Inactive deal never live", func(t *testing.T) {
		inactive := deal
		inactive.IsActive = false
		assert.False(t, inactive.IsLive(start.Add(time.Hour)))
	})
}
