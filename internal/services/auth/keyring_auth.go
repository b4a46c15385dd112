package auth

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// KeyringStore keeps secrets in the OS keychain under a single service.
type KeyringStore struct {
	serviceName string
}

func NewKeyringStore(serviceName string) *KeyringStore {
	if serviceName == "" {
		serviceName = ServiceName
	}
	return &KeyringStore{serviceName: serviceName}
}

func (k *KeyringStore) SetToken(name string, token string) error {
	return keyring.Set(k.serviceName, NormalizeName(name), token)
}

func (k *KeyringStore) GetToken(name string) (string, error) {
	token, err := keyring.Get(k.serviceName, NormalizeName(name))
	switch {
	case err == nil:
		return token, nil
	case errors.Is(err, keyring.ErrNotFound):
		return "", ErrTokenNotFound
	default:
		return "", err
	}
}

func (k *KeyringStore) DeleteToken(name string) error {
	err := keyring.Delete(k.serviceName, NormalizeName(name))
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrTokenNotFound
	}
	return err
}
