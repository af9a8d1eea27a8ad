package requests

import (
	"encoding/json"
	"fmt"

	"github.com/brettbedarf/nautilus"
)

// GetNodeType extracts the node type from JSON without full unmarshaling
func GetNodeType(data []byte) (nautilus.NodeCreateRequestType, error) {
	var meta struct {
		Type nautilus.NodeCreateRequestType `json:"type"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return "", err
	}
	return meta.Type, nil
}

// UnmarshalFileRequest decodes a single file request
func UnmarshalFileRequest(data []byte) (*nautilus.FileCreateRequest, error) {
	var dto FileRequestDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}
	node, err := convertNodeDTO(dto.NodeRequestDTO, nautilus.FileNodeType)
	if err != nil {
		return nil, err
	}
	return &nautilus.FileCreateRequest{NodeRequest: node}, nil
}

// UnmarshalDirRequest decodes a single directory request
func UnmarshalDirRequest(data []byte) (*nautilus.DirCreateRequest, error) {
	var dto DirRequestDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}
	node, err := convertNodeDTO(dto.NodeRequestDTO, nautilus.DirNodeType)
	if err != nil {
		return nil, err
	}
	return &nautilus.DirCreateRequest{NodeRequest: node}, nil
}

// Conversion logic with defaults in the unmarshaling layer. An empty type
// takes want; any other mismatch is an error.
func convertNodeDTO(dto NodeRequestDTO, want nautilus.NodeCreateRequestType) (nautilus.NodeRequest, error) {
	if dto.Path == "" {
		return nautilus.NodeRequest{}, fmt.Errorf("node request is missing a path")
	}
	typ := dto.Type
	if typ == "" {
		typ = want
	}
	if typ != want {
		return nautilus.NodeRequest{}, fmt.Errorf("node request %s: expected type %q, got %q", dto.Path, want, typ)
	}
	return nautilus.NodeRequest{
		Path:  dto.Path,
		Type:  typ,
		Owner: valueOrDefault(dto.Owner, nautilus.RootUser),
		Perms: valueOrDefault(dto.Perms, ""),
	}, nil
}

func valueOrDefault[T any](ptr *T, defaultVal T) T {
	if ptr != nil {
		return *ptr
	}
	return defaultVal
}
