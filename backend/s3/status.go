package s3

import (
	"context"
	stderrors "errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/mwantia/fsattr/data"
	"github.com/mwantia/fsattr/data/errors"
)

const directoryContentType = "application/x-directory"

// User metadata keys, stored as X-Amz-Meta-<key>
const (
	metaID          = "Fsattr-Id"
	metaMode        = "Fsattr-Mode"
	metaSymlink     = "Fsattr-Symlink"
	metaReplication = "Fsattr-Replication"
	metaBlockSize   = "Fsattr-Blocksize"
	metaModifyTime  = "Fsattr-Mtime"
	metaAccessTime  = "Fsattr-Atime"
	metaCreateTime  = "Fsattr-Ctime"
	metaOwner       = "Fsattr-Owner"
	metaGroup       = "Fsattr-Group"
)

func (sb *S3Backend) CreateStatus(ctx context.Context, status *data.FileStatus) error {
	_, _, err := sb.stat(ctx, status.Path)
	if err == nil {
		return errors.Exist(status.Path)
	}
	if !stderrors.Is(err, data.ErrNotExist) {
		return err
	}

	stored := status.Clone()
	if stored.ID == "" {
		stored.ID = data.NewStatusID()
	}
	if stored.CreateTime.IsZero() {
		stored.CreateTime = time.Now()
	}

	key := objectKey(stored.Path)
	opts := minio.PutObjectOptions{
		UserMetadata: toUserMetadata(stored),
	}

	var body io.Reader = strings.NewReader("")
	size := int64(0)
	if stored.IsDir() {
		key += "/"
		opts.ContentType = directoryContentType
	} else {
		// Object size is the status length, so the body is zero-filled
		size = stored.Length
		body = io.LimitReader(zeroReader{}, size)
	}

	_, err = sb.client.PutObject(ctx, sb.config.Bucket, key, body, size, opts)
	return err
}

func (sb *S3Backend) ReadStatus(ctx context.Context, key string) (*data.FileStatus, error) {
	status, _, err := sb.stat(ctx, key)
	return status, err
}

func (sb *S3Backend) UpdateTimes(ctx context.Context, key string, update *data.TimesUpdate) error {
	status, objKey, err := sb.stat(ctx, key)
	if err != nil {
		return err
	}

	if !update.Apply(status) {
		return nil
	}

	// Copying an object onto itself is the only way to rewrite its metadata
	src := minio.CopySrcOptions{
		Bucket: sb.config.Bucket,
		Object: objKey,
	}
	dst := minio.CopyDestOptions{
		Bucket:          sb.config.Bucket,
		Object:          objKey,
		UserMetadata:    toUserMetadata(status),
		ReplaceMetadata: true,
	}

	_, err = sb.client.CopyObject(ctx, dst, src)
	return err
}

func (sb *S3Backend) DeleteStatus(ctx context.Context, key string) error {
	_, objKey, err := sb.stat(ctx, key)
	if err != nil {
		return err
	}

	return sb.client.RemoveObject(ctx, sb.config.Bucket, objKey, minio.RemoveObjectOptions{})
}

// stat resolves key to either a file object or a directory marker object.
func (sb *S3Backend) stat(ctx context.Context, key string) (*data.FileStatus, string, error) {
	objKey := objectKey(key)
	if objKey != "" {
		info, err := sb.client.StatObject(ctx, sb.config.Bucket, objKey, minio.StatObjectOptions{})
		if err == nil {
			return toStatus(key, info), objKey, nil
		}
		if !isNotFound(err) {
			return nil, "", err
		}
	}

	dirKey := objKey + "/"
	info, err := sb.client.StatObject(ctx, sb.config.Bucket, dirKey, minio.StatObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return nil, "", errors.NotExist(key)
		}
		return nil, "", err
	}

	return toStatus(key, info), dirKey, nil
}

func toStatus(path string, info minio.ObjectInfo) *data.FileStatus {
	status := &data.FileStatus{
		ID:          userMeta(info, metaID),
		Path:        path,
		Length:      info.Size,
		Symlink:     userMeta(info, metaSymlink),
		Replication: int16(parseInt(userMeta(info, metaReplication), 0)),
		BlockSize:   parseInt(userMeta(info, metaBlockSize), 0),
		ModifyTime:  parseTime(userMeta(info, metaModifyTime), info.LastModified),
		AccessTime:  parseTime(userMeta(info, metaAccessTime), info.LastModified),
		CreateTime:  parseTime(userMeta(info, metaCreateTime), info.LastModified),
		Owner:       userMeta(info, metaOwner),
		Group:       userMeta(info, metaGroup),
	}

	mode := data.FileMode(parseInt(userMeta(info, metaMode), 0644))
	if strings.HasSuffix(info.Key, "/") || info.ContentType == directoryContentType {
		mode |= data.ModeDir
		status.Length = 0
	}
	status.Mode = mode

	return status
}

func toUserMetadata(status *data.FileStatus) map[string]string {
	meta := map[string]string{
		metaID:          status.ID,
		metaMode:        strconv.FormatUint(uint64(status.Mode), 10),
		metaReplication: strconv.FormatInt(int64(status.Replication), 10),
		metaBlockSize:   strconv.FormatInt(status.BlockSize, 10),
		metaModifyTime:  data.FormatTime(status.ModifyTime),
		metaAccessTime:  data.FormatTime(status.AccessTime),
		metaCreateTime:  data.FormatTime(status.CreateTime),
	}

	if status.Symlink != "" {
		meta[metaSymlink] = status.Symlink
	}
	if status.Owner != "" {
		meta[metaOwner] = status.Owner
	}
	if status.Group != "" {
		meta[metaGroup] = status.Group
	}

	return meta
}

// userMeta looks a key up in both forms minio may report user metadata in.
func userMeta(info minio.ObjectInfo, key string) string {
	if value, ok := info.UserMetadata[key]; ok {
		return value
	}
	if value, ok := info.UserMetadata["X-Amz-Meta-"+key]; ok {
		return value
	}

	return info.Metadata.Get("X-Amz-Meta-" + key)
}

func objectKey(path string) string {
	return data.ToRelativePath(path, "")
}

func isNotFound(err error) bool {
	code := minio.ToErrorResponse(err).Code
	return code == "NoSuchKey" || code == "NotFound"
}

func parseInt(value string, fallback int64) int64 {
	if value == "" {
		return fallback
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}

	return parsed
}

func parseTime(value string, fallback time.Time) time.Time {
	if value == "" {
		return fallback
	}

	parsed, err := data.ParseTime(value)
	if err != nil {
		return fallback
	}

	return parsed
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}
