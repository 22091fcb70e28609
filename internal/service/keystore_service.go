package service

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"sync"

	"qrpay/internal/core/ports"
	"qrpay/pkg/apperror"
)

const deviceKeysKey = "device:keys"

// DeviceKeyStore implements ports.KeyStore on top of the device store.
// The key pair is created lazily on first use and reused for the
// device's lifetime. It signs queued records at rest only; transport
// envelopes always use fresh one-time keys.
type DeviceKeyStore struct {
	store ports.DeviceStore

	mu     sync.Mutex
	cached *ports.DeviceKeyPair
}

// NewDeviceKeyStore creates a key store backed by the given device store.
func NewDeviceKeyStore(store ports.DeviceStore) *DeviceKeyStore {
	return &DeviceKeyStore{store: store}
}

// GetOrCreate returns the device key pair, generating and persisting one
// if none exists yet.
func (s *DeviceKeyStore) GetOrCreate(ctx context.Context) (*ports.DeviceKeyPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return s.cached, nil
	}

	raw, err := s.store.Get(ctx, deviceKeysKey)
	if err != nil {
		return nil, apperror.ErrKeyStoreFailure(fmt.Errorf("loading device keys: %w", err))
	}
	if raw != nil {
		pair := &ports.DeviceKeyPair{}
		if err := json.Unmarshal(raw, pair); err != nil {
			return nil, apperror.ErrKeyStoreFailure(fmt.Errorf("parsing device keys: %w", err))
		}
		if len(pair.PublicKey) != ed25519.PublicKeySize || len(pair.PrivateKey) != ed25519.PrivateKeySize {
			return nil, apperror.ErrKeyStoreFailure(fmt.Errorf("stored device keys have wrong size"))
		}
		s.cached = pair
		return pair, nil
	}

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, apperror.ErrKeyStoreFailure(fmt.Errorf("generating device keys: %w", err))
	}
	pair := &ports.DeviceKeyPair{PublicKey: pub, PrivateKey: priv}

	raw, err = json.Marshal(pair)
	if err != nil {
		return nil, apperror.ErrKeyStoreFailure(fmt.Errorf("encoding device keys: %w", err))
	}
	if err := s.store.Set(ctx, deviceKeysKey, raw); err != nil {
		return nil, apperror.ErrKeyStoreFailure(fmt.Errorf("persisting device keys: %w", err))
	}
	s.cached = pair
	return pair, nil
}
