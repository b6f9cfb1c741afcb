package session

// Storage keys for the durable client-side state. All entries are plain
// strings; KeyUser holds a JSON-serialized profile.
const (
	KeyUser         = "user"
	KeyAccessToken  = "auth_token"
	KeyRefreshToken = "refresh_token"
	KeyDeviceID     = "device_id"
)

// Repo is the durable key/value storage backing the session store. Missing
// keys return errors.ErrNotFound; Delete of a missing key is a no-op.
type Repo interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
