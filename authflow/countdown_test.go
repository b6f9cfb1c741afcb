package authflow_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-ecom-client/authflow"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		want     int
	}{
		{"plain mm:ss", "02:30", 150},
		{"three minutes", "03:00", 180},
		{"noise stripped", " 02m:30s ", 150},
		{"minutes only", "02", 120},
		{"empty defaults", "", authflow.DefaultOTPSeconds},
		{"garbage defaults", "soon", authflow.DefaultOTPSeconds},
		{"colon only defaults", ":", authflow.DefaultOTPSeconds},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, authflow.ParseDuration(tc.duration))
		})
	}
}

func TestCountdown(t *testing.T) {
	t.Run("decrements to zero and expires", func(t *testing.T) {
		cd := authflow.NewCountdown(authflow.WithTick(time.Millisecond))
		cd.Start(3)
		require.False(t, cd.Expired())

		require.Eventually(t, func() bool {
			return cd.Expired()
		}, time.Second, time.Millisecond)
		require.Zero(t, cd.Remaining())
	})

	t.Run("restart replaces the previous countdown", func(t *testing.T) {
		cd := authflow.NewCountdown(authflow.WithTick(time.Hour))
		cd.Start(10)
		cd.Start(180)
		require.Equal(t, 180, cd.Remaining())
	})

	t.Run("stop clears remaining time", func(t *testing.T) {
		cd := authflow.NewCountdown(authflow.WithTick(time.Hour))
		cd.Start(120)
		cd.Stop()
		require.True(t, cd.Expired())
	})
}

func TestFormatTimer(t *testing.T) {
	require.Equal(t, "02:30", authflow.FormatTimer(150))
	require.Equal(t, "00:00", authflow.FormatTimer(0))
	require.Equal(t, "00:00", authflow.FormatTimer(-5))
	require.Equal(t, "03:00", authflow.FormatTimer(180))
}
