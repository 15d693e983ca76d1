package cloud

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dpereira/gymflow/internal/db"
	"github.com/dpereira/gymflow/internal/models"
	"github.com/google/uuid"
)

const namespaceKey = "gymflow:cloud-data"

const (
	DefaultSaveDelay = 1000 * time.Millisecond
	DefaultLoadDelay = 800 * time.Millisecond
)

// RemoteStore simulates a network-backed store keyed by user email. All
// payloads live in one namespace document under a single KV key, so a save
// is a read-modify-write of the whole namespace: concurrent saves are
// last-write-wins at call granularity, with no compare-and-swap.
type RemoteStore struct {
	kv        *db.KVStore
	saveDelay time.Duration
	loadDelay time.Duration
	deviceID  string
}

func NewRemoteStore(kv *db.KVStore, saveDelay time.Duration, loadDelay time.Duration) *RemoteStore {
	return &RemoteStore{
		kv:        kv,
		saveDelay: saveDelay,
		loadDelay: loadDelay,
		deviceID:  buildDeviceID(),
	}
}

func buildDeviceID() string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "unknown-host"
	}
	return fmt.Sprintf("%s/%s", hostname, uuid.NewString())
}

func (store *RemoteStore) DeviceID() string {
	return store.deviceID
}

// Save stamps the payload with the sync time and device id, writes it into
// the namespace, then waits the artificial save latency.
func (store *RemoteStore) Save(ctx context.Context, userKey string, payload models.CloudPayload) error {
	namespace, err := store.loadNamespace()
	if err != nil {
		return err
	}

	payload.LastSync = time.Now()
	payload.DeviceID = store.deviceID
	namespace[userKey] = payload

	if err := store.kv.Set(namespaceKey, namespace); err != nil {
		return fmt.Errorf("save cloud payload for %s: %w", userKey, err)
	}

	return store.wait(ctx, store.saveDelay)
}

// Load waits the artificial load latency, then returns the payload for
// userKey. The second return is false when no payload exists.
func (store *RemoteStore) Load(ctx context.Context, userKey string) (models.CloudPayload, bool, error) {
	if err := store.wait(ctx, store.loadDelay); err != nil {
		return models.CloudPayload{}, false, err
	}

	namespace, err := store.loadNamespace()
	if err != nil {
		return models.CloudPayload{}, false, err
	}

	payload, found := namespace[userKey]
	return payload, found, nil
}

func (store *RemoteStore) loadNamespace() (map[string]models.CloudPayload, error) {
	namespace := make(map[string]models.CloudPayload)
	if _, err := store.kv.Get(namespaceKey, &namespace); err != nil {
		return nil, fmt.Errorf("load cloud namespace: %w", err)
	}
	return namespace, nil
}

func (store *RemoteStore) wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
