package session

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DeviceType classifies the client installation for the backend.
type DeviceType string

const (
	DeviceDesktop DeviceType = "DESKTOP"
	DeviceMobile  DeviceType = "MOBILE"
	DeviceTablet  DeviceType = "TABLET"
)

// Device is the stable client identity used to scope refresh-token validity
// server-side.
type Device struct {
	ID   string
	Type DeviceType
}

// EnsureDevice returns the persisted device identity, generating and storing
// a new one on first use. The id never changes for a given installation.
func EnsureDevice(repo Repo, deviceType DeviceType) (Device, error) {
	if id, err := repo.Get(KeyDeviceID); err == nil && id != "" {
		return Device{ID: id, Type: deviceType}, nil
	}

	id := uuid.New().String()
	if err := repo.Set(KeyDeviceID, id); err != nil {
		return Device{}, errors.Wrap(err, "[EnsureDevice] persist device id")
	}
	return Device{ID: id, Type: deviceType}, nil
}
