package filerepo_test

import (
	"testing"

	errs "github.com/jrsteele09/go-ecom-client/internal/errors"
	"github.com/jrsteele09/go-ecom-client/session/filerepo"
	"github.com/stretchr/testify/require"
)

func TestFileRepo(t *testing.T) {
	t.Run("set get delete", func(t *testing.T) {
		repo, err := filerepo.New(t.TempDir())
		require.NoError(t, err)

		_, err = repo.Get("auth_token")
		require.ErrorIs(t, err, errs.ErrNotFound)

		require.NoError(t, repo.Set("auth_token", "token-1"))
		value, err := repo.Get("auth_token")
		require.NoError(t, err)
		require.Equal(t, "token-1", value)

		require.NoError(t, repo.Delete("auth_token"))
		_, err = repo.Get("auth_token")
		require.ErrorIs(t, err, errs.ErrNotFound)

		// Deleting a missing key is a no-op.
		require.NoError(t, repo.Delete("auth_token"))
	})

	t.Run("entries survive reopening", func(t *testing.T) {
		dir := t.TempDir()

		repo, err := filerepo.New(dir)
		require.NoError(t, err)
		require.NoError(t, repo.Set("device_id", "device-1"))

		reopened, err := filerepo.New(dir)
		require.NoError(t, err)
		value, err := reopened.Get("device_id")
		require.NoError(t, err)
		require.Equal(t, "device-1", value)
	})
}
