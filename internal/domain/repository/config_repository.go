package repository

import (
	"github.com/diillson/buildops-audit-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration and credentials.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	LoadCredentials(envFile string) (types.Credentials, error)
}
