package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"

	"go-toolfx/internal/core/utils"
)

// ToolPropertiesPath is the conventional name of the metadata resource.
const ToolPropertiesPath = "tool.properties"

const (
	KeyToolName    = "tool.name"
	KeyToolVersion = "tool.version"
	KeyToolRepoURL = "tool.repo.url"
)

const missingValue = "N/A"

// ToolMetadata identifies a tool in version notices and logs.
type ToolMetadata struct {
	Name          string
	Version       string
	RepositoryURL string
}

// ReadToolMetadata parses a Java-style properties document. Missing or blank
// values are replaced with a placeholder and logged, never rejected.
func ReadToolMetadata(r io.Reader, logger *utils.Logger) (ToolMetadata, error) {
	if logger == nil {
		logger = utils.NewDiscardLogger()
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return ToolMetadata{}, utils.NewMetadataError("failed to read "+ToolPropertiesPath, err)
	}

	v := viper.New()
	v.SetConfigType("properties")
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return ToolMetadata{}, utils.NewMetadataError("failed to parse "+ToolPropertiesPath, err)
	}

	return ToolMetadata{
		Name:          lookup(v, KeyToolName, logger),
		Version:       lookup(v, KeyToolVersion, logger),
		RepositoryURL: lookup(v, KeyToolRepoURL, logger),
	}, nil
}

// LoadToolMetadata reads metadata from a file. A missing file is treated as
// an empty one.
func LoadToolMetadata(path string, logger *utils.Logger) (ToolMetadata, error) {
	if logger == nil {
		logger = utils.NewDiscardLogger()
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Tool properties file not found", "path", path)
		return ReadToolMetadata(strings.NewReader(""), logger)
	}
	if err != nil {
		return ToolMetadata{}, utils.NewMetadataError("failed to open "+path, err)
	}
	defer f.Close()

	return ReadToolMetadata(f, logger)
}

func lookup(v *viper.Viper, key string, logger *utils.Logger) string {
	value := strings.TrimSpace(v.GetString(key))
	if value == "" {
		logger.Warn("Missing value in tool.properties file", "key", key, "default", missingValue)
		return missingValue
	}
	return value
}

// IsComplete reports whether every field carries a real value.
func (m ToolMetadata) IsComplete() bool {
	return m.Name != missingValue && m.Version != missingValue && m.RepositoryURL != missingValue
}
