package lsp

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"bennypowers.dev/abbrls/internal/log"
	"bennypowers.dev/abbrls/internal/syntax"
	"bennypowers.dev/abbrls/lsp/types"
	"github.com/mitchellh/mapstructure"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// configKey names the server's section in package.json and in client settings
const configKey = "abbreviationLanguageServer"

// rcFiles are tried in order; the first one found wins
var rcFiles = []string{".abbrlsrc.yaml", ".abbrlsrc.yml", ".abbrlsrc.json"}

// ConfigFiles returns the workspace file names configuration is read from
func ConfigFiles() []string {
	return append(append([]string{}, rcFiles...), "package.json")
}

// ReadWorkspaceConfig layers the workspace configuration files over the
// defaults: an .abbrlsrc file first, then the abbreviationLanguageServer key
// of package.json. Missing files are not errors.
func ReadWorkspaceConfig(rootPath string) (types.ServerConfig, error) {
	config := types.DefaultConfig()
	if rootPath == "" {
		return config, nil
	}

	if err := readRCFile(rootPath, &config); err != nil {
		return config, err
	}
	if err := readPackageJsonConfig(rootPath, &config); err != nil {
		return config, err
	}
	return config, config.Validate()
}

// readRCFile decodes the first .abbrlsrc file found in rootPath over config
func readRCFile(rootPath string, config *types.ServerConfig) error {
	for _, name := range rcFiles {
		path := filepath.Join(rootPath, name)
		data, err := os.ReadFile(path) //nolint:gosec // G304: workspace config file
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}

		if filepath.Ext(name) == ".json" {
			err = json.Unmarshal(jsonc.ToJSON(data), config)
		} else {
			err = yaml.Unmarshal(data, config)
		}
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", name, err)
		}

		log.Info("Loaded configuration from %s", path)
		return nil
	}
	return nil
}

// readPackageJsonFile reads and parses package.json from the given root path.
// Returns nil if the file doesn't exist.
func readPackageJsonFile(rootPath string) (map[string]any, error) {
	data, err := os.ReadFile(filepath.Join(rootPath, "package.json")) //nolint:gosec // G304: workspace package.json
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read package.json: %w", err)
	}

	var pkgJSON map[string]any
	if err := json.Unmarshal(jsonc.ToJSON(data), &pkgJSON); err != nil {
		return nil, fmt.Errorf("failed to parse package.json: %w", err)
	}
	return pkgJSON, nil
}

// readPackageJsonConfig decodes the abbreviationLanguageServer key of
// package.json over config
func readPackageJsonConfig(rootPath string, config *types.ServerConfig) error {
	pkgJSON, err := readPackageJsonFile(rootPath)
	if err != nil || pkgJSON == nil {
		return err
	}

	section, err := extractConfigMap(pkgJSON)
	if err != nil {
		return fmt.Errorf("package.json: %w", err)
	}
	if section == nil {
		return nil
	}

	if err := decodeSettings(section, config); err != nil {
		return fmt.Errorf("package.json %s: %w", configKey, err)
	}
	log.Info("Loaded configuration from package.json")
	return nil
}

// extractConfigMap returns the server's section of a settings object, or nil
// if the object has none.
func extractConfigMap(settings map[string]any) (map[string]any, error) {
	section, ok := settings[configKey]
	if !ok {
		section, ok = settings["abbreviation-language-server"]
	}
	if !ok || section == nil {
		return nil, nil
	}

	configMap, ok := section.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s must be an object", configKey)
	}
	return configMap, nil
}

// decodeSettings decodes raw settings over config. Only the keys present in
// raw change config. Unknown keys are ignored.
func decodeSettings(raw map[string]any, config *types.ServerConfig) error {
	var metadata mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: syntax.OptionDecodeHook(),
		Metadata:   &metadata,
		Result:     config,
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(raw); err != nil {
		return err
	}

	if len(metadata.Unused) > 0 {
		log.Debug("Ignoring unknown settings: %s", strings.Join(metadata.Unused, ", "))
	}
	return nil
}
