package session_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-ecom-client/session"
	"github.com/jrsteele09/go-ecom-client/session/repofakes"
	"github.com/stretchr/testify/require"
)

func TestEnsureDevice(t *testing.T) {
	t.Run("generates and persists on first use", func(t *testing.T) {
		repo := repofakes.NewFakeStorageRepo()

		device, err := session.EnsureDevice(repo, session.DeviceDesktop)
		require.NoError(t, err)
		require.Equal(t, session.DeviceDesktop, device.Type)

		_, err = uuid.Parse(device.ID)
		require.NoError(t, err)

		stored, err := repo.Get(session.KeyDeviceID)
		require.NoError(t, err)
		require.Equal(t, device.ID, stored)
	})

	t.Run("stable across calls", func(t *testing.T) {
		repo := repofakes.NewFakeStorageRepo()

		first, err := session.EnsureDevice(repo, session.DeviceDesktop)
		require.NoError(t, err)
		second, err := session.EnsureDevice(repo, session.DeviceTablet)
		require.NoError(t, err)

		require.Equal(t, first.ID, second.ID)
	})
}
