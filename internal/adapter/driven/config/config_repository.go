package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/diillson/buildops-audit-go/internal/domain/repository"
	"github.com/diillson/buildops-audit-go/internal/shared/types"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
// An empty path returns the defaults; zero fields in the file keep their defaults.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	if filePath == "" {
		return types.DefaultConfig(), nil
	}

	fileExtension := strings.ToLower(filepath.Ext(filePath))

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return config.WithDefaults(), nil
}

// LoadCredentials reads CLIENT_ID, CLIENT_SECRET and TENANT_ID from the
// environment, falling back to envFile (dotenv syntax) when it exists.
// Environment variables take precedence over the file.
func (r *ConfigRepositoryImpl) LoadCredentials(envFile string) (types.Credentials, error) {
	v := viper.New()

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return types.Credentials{}, fmt.Errorf("error reading env file %s: %w", envFile, err)
			}
		} else if !os.IsNotExist(err) {
			return types.Credentials{}, fmt.Errorf("error accessing env file: %w", err)
		}
	}

	for _, key := range []string{"client_id", "client_secret", "tenant_id"} {
		if err := v.BindEnv(key); err != nil {
			return types.Credentials{}, err
		}
	}

	creds := types.Credentials{
		ClientID:     strings.TrimSpace(v.GetString("client_id")),
		ClientSecret: strings.TrimSpace(v.GetString("client_secret")),
		TenantID:     strings.TrimSpace(v.GetString("tenant_id")),
	}
	return creds, creds.Validate()
}
