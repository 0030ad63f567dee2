package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mwantia/fsattr/data"
	"github.com/mwantia/fsattr/data/errors"
)

func (sb *SQLiteBackend) CreateStatus(ctx context.Context, status *data.FileStatus) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if _, exists := sb.keys.Get(status.Path); exists {
		return errors.Exist(status.Path)
	}

	id := status.ID
	if id == "" {
		id = data.NewStatusID()
	}
	createTime := status.CreateTime
	if createTime.IsZero() {
		createTime = time.Now()
	}

	_, err := sb.db.ExecContext(ctx, `
		INSERT INTO fsattr_status (id, key, length, mode, symlink, replication, block_size, modify_time, access_time, create_time, owner, grp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, status.Path, status.Length, int64(status.Mode), nullString(status.Symlink),
		int64(status.Replication), status.BlockSize,
		data.FormatTime(status.ModifyTime), data.FormatTime(status.AccessTime), data.FormatTime(createTime),
		nullString(status.Owner), nullString(status.Group))
	if err != nil {
		return err
	}

	sb.keys.Set(status.Path, id)
	return nil
}

func (sb *SQLiteBackend) ReadStatus(ctx context.Context, key string) (*data.FileStatus, error) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()

	id, exists := sb.keys.Get(key)
	if !exists {
		return nil, errors.NotExist(key)
	}

	var status data.FileStatus
	var mode, replication int64
	var modifyTime, accessTime, createTime string
	var symlink, owner, group sql.NullString

	err := sb.db.QueryRowContext(ctx, `
		SELECT id, key, length, mode, symlink, replication, block_size, modify_time, access_time, create_time, owner, grp
		FROM fsattr_status WHERE id = ?
	`, id).Scan(&status.ID, &status.Path, &status.Length, &mode, &symlink,
		&replication, &status.BlockSize, &modifyTime, &accessTime, &createTime,
		&owner, &group)

	if err == sql.ErrNoRows {
		return nil, errors.NotExist(key)
	}
	if err != nil {
		return nil, err
	}

	status.Mode = data.FileMode(mode)
	status.Replication = int16(replication)
	if err := scanTimes(&status, modifyTime, accessTime, createTime); err != nil {
		return nil, err
	}
	status.Symlink = symlink.String
	status.Owner = owner.String
	status.Group = group.String

	return &status, nil
}

func (sb *SQLiteBackend) UpdateTimes(ctx context.Context, key string, update *data.TimesUpdate) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	id, exists := sb.keys.Get(key)
	if !exists {
		return errors.NotExist(key)
	}

	if update.IsEmpty() {
		return nil
	}

	// CASE keeps unmasked columns untouched within a single statement
	result, err := sb.db.ExecContext(ctx, `
		UPDATE fsattr_status SET
			modify_time = CASE WHEN ? THEN ? ELSE modify_time END,
			access_time = CASE WHEN ? THEN ? ELSE access_time END,
			create_time = CASE WHEN ? THEN ? ELSE create_time END
		WHERE id = ?
	`, update.Mask&data.TimesUpdateModify != 0, data.FormatTime(update.ModifyTime),
		update.Mask&data.TimesUpdateAccess != 0, data.FormatTime(update.AccessTime),
		update.Mask&data.TimesUpdateCreate != 0, data.FormatTime(update.CreateTime),
		id)
	if err != nil {
		return err
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return errors.NotExist(key)
	}

	return nil
}

func (sb *SQLiteBackend) DeleteStatus(ctx context.Context, key string) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	id, exists := sb.keys.Get(key)
	if !exists {
		return errors.NotExist(key)
	}

	if _, err := sb.db.ExecContext(ctx, "DELETE FROM fsattr_status WHERE id = ?", id); err != nil {
		return err
	}

	sb.keys.Delete(key)
	return nil
}

func nullString(val string) sql.NullString {
	if val == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: val, Valid: true}
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
