package fsattr

// Namespace selects which part of the attribute vocabulary a view exposes.
// The hadoop namespace adds the native fields on top of the basic set.
// NamespaceBasic and NamespaceHadoop are the only valid values.
type Namespace int

const (
	NamespaceBasic Namespace = iota
	NamespaceHadoop
)

func (ns Namespace) String() string {
	switch ns {
	case NamespaceHadoop:
		return "hadoop"
	default:
		return "basic"
	}
}

// ParseNamespace resolves a namespace name; only "basic" and "hadoop" exist.
func ParseNamespace(name string) (Namespace, bool) {
	switch name {
	case "basic":
		return NamespaceBasic, true
	case "hadoop":
		return NamespaceHadoop, true
	default:
		return NamespaceBasic, false
	}
}

func (ns Namespace) valid() bool {
	return ns == NamespaceBasic || ns == NamespaceHadoop
}

// includes reports whether attributes gated by other are visible in ns.
func (ns Namespace) includes(other Namespace) bool {
	return other == NamespaceBasic || other == ns
}
