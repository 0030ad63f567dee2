package fsattr

// AttributeID identifies one attribute of the closed attribute vocabulary.
// The zero value is not a valid attribute.
type AttributeID int

const (
	AttributeSize AttributeID = iota + 1
	AttributeCreationTime
	AttributeLastAccessTime
	AttributeLastModifiedTime
	AttributeIsDirectory
	AttributeIsRegularFile
	AttributeIsSymbolicLink
	AttributeIsOther
	AttributeFileKey

	AttributeBlockSize
	AttributeLen
	AttributeReplication
)

type attributeEntry struct {
	name      string
	namespace Namespace
	project   func(*FileAttributes) any
}

// attributeTable maps every attribute to its name, gating namespace and
// snapshot accessor. Its order is the order used for "*" reads.
var attributeTable = []struct {
	id AttributeID
	attributeEntry
}{
	{AttributeSize, attributeEntry{"size", NamespaceBasic, func(a *FileAttributes) any { return a.Size() }}},
	{AttributeCreationTime, attributeEntry{"creationTime", NamespaceBasic, func(a *FileAttributes) any { return a.CreationTime() }}},
	{AttributeLastAccessTime, attributeEntry{"lastAccessTime", NamespaceBasic, func(a *FileAttributes) any { return a.LastAccessTime() }}},
	{AttributeLastModifiedTime, attributeEntry{"lastModifiedTime", NamespaceBasic, func(a *FileAttributes) any { return a.LastModifiedTime() }}},
	{AttributeIsDirectory, attributeEntry{"isDirectory", NamespaceBasic, func(a *FileAttributes) any { return a.IsDirectory() }}},
	{AttributeIsRegularFile, attributeEntry{"isRegularFile", NamespaceBasic, func(a *FileAttributes) any { return a.IsRegularFile() }}},
	{AttributeIsSymbolicLink, attributeEntry{"isSymbolicLink", NamespaceBasic, func(a *FileAttributes) any { return a.IsSymbolicLink() }}},
	{AttributeIsOther, attributeEntry{"isOther", NamespaceBasic, func(a *FileAttributes) any { return a.IsOther() }}},
	{AttributeFileKey, attributeEntry{"fileKey", NamespaceBasic, func(a *FileAttributes) any { return a.FileKey() }}},

	{AttributeBlockSize, attributeEntry{"blockSize", NamespaceHadoop, func(a *FileAttributes) any { return a.BlockSize() }}},
	{AttributeLen, attributeEntry{"len", NamespaceHadoop, func(a *FileAttributes) any { return a.Len() }}},
	{AttributeReplication, attributeEntry{"replication", NamespaceHadoop, func(a *FileAttributes) any { return a.Replication() }}},
}

var (
	attributeEntries = make(map[AttributeID]attributeEntry, len(attributeTable))
	attributeNames   = make(map[string]AttributeID, len(attributeTable))
)

func init() {
	for _, row := range attributeTable {
		attributeEntries[row.id] = row.attributeEntry
		attributeNames[row.name] = row.id
	}
}

// ParseAttributeID resolves an attribute name. Names are case-sensitive.
func ParseAttributeID(name string) (AttributeID, bool) {
	id, ok := attributeNames[name]
	return id, ok
}

// AttributeIDs returns every attribute in declaration order.
func AttributeIDs() []AttributeID {
	ids := make([]AttributeID, 0, len(attributeTable))
	for _, row := range attributeTable {
		ids = append(ids, row.id)
	}

	return ids
}

func (id AttributeID) String() string {
	return attributeEntries[id].name
}

// Namespace returns the namespace an attribute first becomes visible in.
func (id AttributeID) Namespace() Namespace {
	return attributeEntries[id].namespace
}

// Writable reports whether the attribute can be set; only the timestamps can.
func (id AttributeID) Writable() bool {
	switch id {
	case AttributeLastModifiedTime, AttributeLastAccessTime, AttributeCreationTime:
		return true
	default:
		return false
	}
}

// project reads the attribute from attrs if it is visible in ns.
// This is the only place namespace gating happens.
func (id AttributeID) project(ns Namespace, attrs *FileAttributes) (any, bool) {
	entry, ok := attributeEntries[id]
	if !ok || !ns.includes(entry.namespace) {
		return nil, false
	}

	return entry.project(attrs), true
}
