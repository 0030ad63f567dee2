package backend

import (
	"context"

	"github.com/mwantia/fsattr/data"
)

// StatusBackend stores native status records keyed by absolute path.
// It plays the role of the remote metadata service behind a filesystem client.
//
// ReadStatus must return a record the caller owns; mutating it must never
// affect the stored state.
type StatusBackend interface {
	Backend

	CreateStatus(ctx context.Context, status *data.FileStatus) error

	ReadStatus(ctx context.Context, key string) (*data.FileStatus, error)

	UpdateTimes(ctx context.Context, key string, update *data.TimesUpdate) error

	DeleteStatus(ctx context.Context, key string) error
}
