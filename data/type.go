package data

// FileType identifies the kind of entry a status record describes.
// Exactly one type applies to any entry.
type FileType int

const (
	FileTypeFile      FileType = iota // Regular file
	FileTypeDirectory                 // Directory
	FileTypeSymlink                   // Symbolic link
	FileTypeOther                     // Device, socket, pipe or anything else
)

func (t FileType) String() string {
	switch t {
	case FileTypeFile:
		return "file"
	case FileTypeDirectory:
		return "directory"
	case FileTypeSymlink:
		return "symlink"
	default:
		return "other"
	}
}
