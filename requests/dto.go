package requests

import (
	"github.com/brettbedarf/nautilus"
)

// NodeRequestDTO is the JSON/YAML representation of [nautilus.NodeRequest]
type NodeRequestDTO struct {
	Path  string                         `json:"path" yaml:"path"`
	Type  nautilus.NodeCreateRequestType `json:"type" yaml:"type"`
	Owner *string                        `json:"owner,omitempty" yaml:"owner,omitempty"` // Defaults to root
	Perms *string                        `json:"perms,omitempty" yaml:"perms,omitempty"` // i.e. "rw-r--" or "-rw-r--"
}

// FileRequestDTO is the JSON representation of [nautilus.FileCreateRequest]
type FileRequestDTO struct {
	NodeRequestDTO `yaml:",inline"`
}

// DirRequestDTO is the JSON representation of [nautilus.DirCreateRequest]
type DirRequestDTO struct {
	NodeRequestDTO `yaml:",inline"`
}
