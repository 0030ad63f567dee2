package consul

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/consul/api"
	"github.com/mwantia/fsattr/data"
	"github.com/mwantia/fsattr/data/errors"
)

func (cb *ConsulBackend) CreateStatus(ctx context.Context, status *data.FileStatus) error {
	stored := status.Clone()
	if stored.ID == "" {
		stored.ID = data.NewStatusID()
	}
	if stored.CreateTime.IsZero() {
		stored.CreateTime = time.Now()
	}

	value, err := stored.Marshal()
	if err != nil {
		return err
	}

	// A zero ModifyIndex only succeeds when the key does not exist yet
	pair := &api.KVPair{
		Key:         cb.buildKey(stored.Path),
		Value:       value,
		ModifyIndex: 0,
	}

	ok, _, err := cb.kv.CAS(pair, cb.writeOptions(ctx))
	if err != nil {
		return err
	}
	if !ok {
		return errors.Exist(stored.Path)
	}

	return nil
}

func (cb *ConsulBackend) ReadStatus(ctx context.Context, key string) (*data.FileStatus, error) {
	status, _, err := cb.get(ctx, key)
	return status, err
}

func (cb *ConsulBackend) UpdateTimes(ctx context.Context, key string, update *data.TimesUpdate) error {
	for attempt := 0; attempt < cb.config.MaxAttempts; attempt++ {
		status, index, err := cb.get(ctx, key)
		if err != nil {
			return err
		}

		if !update.Apply(status) {
			return nil
		}

		value, err := status.Marshal()
		if err != nil {
			return err
		}

		ok, _, err := cb.kv.CAS(&api.KVPair{
			Key:         cb.buildKey(key),
			Value:       value,
			ModifyIndex: index,
		}, cb.writeOptions(ctx))
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}

	return fmt.Errorf("fsattr: concurrent modification of '%s' after %d attempts", key, cb.config.MaxAttempts)
}

func (cb *ConsulBackend) DeleteStatus(ctx context.Context, key string) error {
	if _, _, err := cb.get(ctx, key); err != nil {
		return err
	}

	_, err := cb.kv.Delete(cb.buildKey(key), cb.writeOptions(ctx))
	return err
}

func (cb *ConsulBackend) get(ctx context.Context, key string) (*data.FileStatus, uint64, error) {
	opts := &api.QueryOptions{}
	pair, _, err := cb.kv.Get(cb.buildKey(key), opts.WithContext(ctx))
	if err != nil {
		return nil, 0, err
	}
	if pair == nil {
		return nil, 0, errors.NotExist(key)
	}

	var status data.FileStatus
	if err := status.Unmarshal(pair.Value); err != nil {
		return nil, 0, fmt.Errorf("fsattr: corrupt status record '%s': %w", key, err)
	}

	return &status, pair.ModifyIndex, nil
}

func (cb *ConsulBackend) writeOptions(ctx context.Context) *api.WriteOptions {
	opts := &api.WriteOptions{}
	return opts.WithContext(ctx)
}
