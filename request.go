package nautilus

// NodeRequest has common fields embedded in concrete request types
type NodeRequest struct {
	Path  string
	Type  NodeCreateRequestType
	Owner string // Account that will own the node; empty keeps the requesting actor
	Perms string // Owner and other triads i.e. "rw-r--"; empty keeps creation defaults
}

// NodeCreateRequestType valid types are FileNodeType "file", DirNodeType "dir"
type NodeCreateRequestType string

const (
	FileNodeType NodeCreateRequestType = "file"
	DirNodeType  NodeCreateRequestType = "dir"
)

type FileCreateRequest struct {
	NodeRequest
}

type DirCreateRequest struct {
	NodeRequest
}
