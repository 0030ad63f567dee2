package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mwantia/fsattr/data"
	fserrors "github.com/mwantia/fsattr/data/errors"
)

const uniqueViolation = "23505"

func (pb *PostgresBackend) CreateStatus(ctx context.Context, status *data.FileStatus) error {
	pb.mu.Lock()
	defer pb.mu.Unlock()

	id := status.ID
	if id == "" {
		id = data.NewStatusID()
	}
	createTime := status.CreateTime
	if createTime.IsZero() {
		createTime = time.Now()
	}

	_, err := pb.pool.Exec(ctx, `
		INSERT INTO fsattr_status (id, key, length, mode, symlink, replication, block_size, modify_time, access_time, create_time, owner, grp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, id, status.Path, status.Length, int64(status.Mode), nullString(status.Symlink),
		status.Replication, status.BlockSize,
		data.FormatTime(status.ModifyTime), data.FormatTime(status.AccessTime), data.FormatTime(createTime),
		nullString(status.Owner), nullString(status.Group))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fserrors.Exist(status.Path)
		}
		return fmt.Errorf("failed to insert status: %w", err)
	}

	return nil
}

func (pb *PostgresBackend) ReadStatus(ctx context.Context, key string) (*data.FileStatus, error) {
	pb.mu.RLock()
	defer pb.mu.RUnlock()

	var status data.FileStatus
	var mode int64
	var modifyTime, accessTime, createTime string
	var symlink, owner, group *string

	err := pb.pool.QueryRow(ctx, `
		SELECT id, key, length, mode, symlink, replication, block_size, modify_time, access_time, create_time, owner, grp
		FROM fsattr_status WHERE key = $1
	`, key).Scan(&status.ID, &status.Path, &status.Length, &mode, &symlink,
		&status.Replication, &status.BlockSize, &modifyTime, &accessTime, &createTime,
		&owner, &group)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fserrors.NotExist(key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read status: %w", err)
	}

	status.Mode = data.FileMode(mode)
	if err := scanTimes(&status, modifyTime, accessTime, createTime); err != nil {
		return nil, err
	}
	status.Symlink = deref(symlink)
	status.Owner = deref(owner)
	status.Group = deref(group)

	return &status, nil
}

func (pb *PostgresBackend) UpdateTimes(ctx context.Context, key string, update *data.TimesUpdate) error {
	pb.mu.Lock()
	defer pb.mu.Unlock()

	tag, err := pb.pool.Exec(ctx, `
		UPDATE fsattr_status SET
			modify_time = CASE WHEN $1 THEN $2 ELSE modify_time END,
			access_time = CASE WHEN $3 THEN $4 ELSE access_time END,
			create_time = CASE WHEN $5 THEN $6 ELSE create_time END
		WHERE key = $7
	`, update.Mask&data.TimesUpdateModify != 0, data.FormatTime(update.ModifyTime),
		update.Mask&data.TimesUpdateAccess != 0, data.FormatTime(update.AccessTime),
		update.Mask&data.TimesUpdateCreate != 0, data.FormatTime(update.CreateTime),
		key)
	if err != nil {
		return fmt.Errorf("failed to update times: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fserrors.NotExist(key)
	}

	return nil
}

func (pb *PostgresBackend) DeleteStatus(ctx context.Context, key string) error {
	pb.mu.Lock()
	defer pb.mu.Unlock()

	tag, err := pb.pool.Exec(ctx, "DELETE FROM fsattr_status WHERE key = $1", key)
	if err != nil {
		return fmt.Errorf("failed to delete status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fserrors.NotExist(key)
	}

	return nil
}

func nullString(val string) *string {
	if val == "" {
		return nil
	}
	return &val
}

func deref(val *string) string {
	if val == nil {
		return ""
	}
	return *val
}

// scanTimes decodes the stored timestamp columns into status.
func scanTimes(status *data.FileStatus, modifyTime, accessTime, createTime string) error {
	var err error
	if status.ModifyTime, err = data.ParseTime(modifyTime); err != nil {
		return fmt.Errorf("fsattr: corrupt modify time of '%s': %w", status.Path, err)
	}
	if status.AccessTime, err = data.ParseTime(accessTime); err != nil {
		return fmt.Errorf("fsattr: corrupt access time of '%s': %w", status.Path, err)
	}
	if status.CreateTime, err = data.ParseTime(createTime); err != nil {
		return fmt.Errorf("fsattr: corrupt create time of '%s': %w", status.Path, err)
	}

	return nil
}
