package requests

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/brettbedarf/nautilus"
	"github.com/brettbedarf/nautilus/filesystem"
	"github.com/brettbedarf/nautilus/internal/util"
)

// SeedRequest is one decoded seed entry; exactly one field is set.
type SeedRequest struct {
	Dir  *nautilus.DirCreateRequest
	File *nautilus.FileCreateRequest
}

// Path returns the requested path.
func (r SeedRequest) Path() string {
	if r.Dir != nil {
		return r.Dir.Path
	}
	return r.File.Path
}

// ParseJSONSeed decodes a JSON array of node requests, keeping file order.
func ParseJSONSeed(data []byte) ([]SeedRequest, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make([]SeedRequest, 0, len(raw))
	for i, item := range raw {
		typ, err := GetNodeType(item)
		if err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i, err)
		}
		req, err := unmarshalJSONEntry(typ, item)
		if err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i, err)
		}
		out = append(out, req)
	}
	return out, nil
}

func unmarshalJSONEntry(typ nautilus.NodeCreateRequestType, data []byte) (SeedRequest, error) {
	switch typ {
	case nautilus.DirNodeType:
		dir, err := UnmarshalDirRequest(data)
		return SeedRequest{Dir: dir}, err
	case nautilus.FileNodeType:
		file, err := UnmarshalFileRequest(data)
		return SeedRequest{File: file}, err
	}
	return SeedRequest{}, fmt.Errorf("unknown node type %q", typ)
}

// ParseYAMLSeed decodes a YAML list of node requests, keeping file order.
func ParseYAMLSeed(data []byte) ([]SeedRequest, error) {
	var dtos []NodeRequestDTO
	if err := yaml.Unmarshal(data, &dtos); err != nil {
		return nil, err
	}
	out := make([]SeedRequest, 0, len(dtos))
	for i, dto := range dtos {
		var (
			req SeedRequest
			err error
		)
		switch dto.Type {
		case nautilus.DirNodeType:
			var node nautilus.NodeRequest
			node, err = convertNodeDTO(dto, nautilus.DirNodeType)
			req.Dir = &nautilus.DirCreateRequest{NodeRequest: node}
		case nautilus.FileNodeType:
			var node nautilus.NodeRequest
			node, err = convertNodeDTO(dto, nautilus.FileNodeType)
			req.File = &nautilus.FileCreateRequest{NodeRequest: node}
		default:
			err = fmt.Errorf("unknown node type %q", dto.Type)
		}
		if err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i, err)
		}
		out = append(out, req)
	}
	return out, nil
}

// LoadSeedFile reads a seed file. Supports both YAML (.yaml, .yml) and JSON
// (.json) formats.
func LoadSeedFile(path string) ([]SeedRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var reqs []SeedRequest
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		reqs, err = ParseYAMLSeed(data)
	case ".json":
		reqs, err = ParseJSONSeed(data)
	default:
		return nil, fmt.Errorf("unknown seed file extension: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed file: %w", err)
	}
	return reqs, nil
}

// ApplySeed provisions every request through s in order and stops at the
// first failure. s must be acting as root.
func ApplySeed(s *filesystem.Session, reqs []SeedRequest) error {
	logger := util.GetLogger("Seed")
	for _, req := range reqs {
		var err error
		if req.Dir != nil {
			_, err = s.AddDirNode(req.Dir)
		} else {
			_, err = s.AddFileNode(req.File)
		}
		if err != nil {
			return fmt.Errorf("seed %s: %w", req.Path(), err)
		}
	}
	dirs, files := s.FS.Stats()
	logger.Info().Int("requests", len(reqs)).Int("dirs", dirs).Int("files", files).Msg("Applied seed")
	return nil
}
