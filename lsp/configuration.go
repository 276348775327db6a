package lsp

import (
	"fmt"
	"path/filepath"
	"slices"

	"bennypowers.dev/abbrls/internal/documents"
	"bennypowers.dev/abbrls/internal/log"
	"bennypowers.dev/abbrls/lsp/methods/workspace"
	"bennypowers.dev/abbrls/lsp/types"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// GetConfig returns the effective server configuration
func (s *Server) GetConfig() types.ServerConfig {
	s.configMu.RLock()
	defer s.configMu.RUnlock()
	return s.config
}

// SetConfig replaces the effective configuration and reclassifies open
// documents against its syntaxes globs
func (s *Server) SetConfig(config types.ServerConfig) {
	s.configMu.Lock()
	s.config = config
	root := s.rootPath
	s.configMu.Unlock()

	overrides, err := documents.NewLanguageOverrides(root, config.Syntaxes)
	if err != nil {
		log.Warn("Ignoring syntaxes: %v", err)
		overrides = documents.LanguageOverrides{}
	}
	s.documents.SetLanguageOverrides(overrides)
}

// LoadWorkspaceConfig re-reads the workspace configuration files and applies
// the last client settings on top. On error the previous configuration stays
// in effect.
func (s *Server) LoadWorkspaceConfig() error {
	workspaceConfig, err := ReadWorkspaceConfig(s.RootPath())
	if err != nil {
		return fmt.Errorf("failed to load workspace configuration: %w", err)
	}

	s.configMu.RLock()
	settings := s.clientSettings
	s.configMu.RUnlock()

	config, err := mergeClientSettings(workspaceConfig, settings)
	if err != nil {
		return err
	}

	s.configMu.Lock()
	s.workspaceConfig = workspaceConfig
	s.configMu.Unlock()
	s.SetConfig(config)
	return nil
}

// ApplyClientSettings applies settings sent by the client in
// workspace/didChangeConfiguration. Settings are expected under the
// abbreviationLanguageServer key. On error the previous configuration stays
// in effect.
func (s *Server) ApplyClientSettings(settings any) error {
	var section map[string]any
	if settings != nil {
		settingsMap, ok := settings.(map[string]any)
		if !ok {
			return fmt.Errorf("settings is not a map")
		}
		var err error
		if section, err = extractConfigMap(settingsMap); err != nil {
			return err
		}
	}

	s.configMu.RLock()
	base := s.workspaceConfig
	s.configMu.RUnlock()

	config, err := mergeClientSettings(base, section)
	if err != nil {
		return err
	}

	s.configMu.Lock()
	s.clientSettings = section
	s.configMu.Unlock()
	s.SetConfig(config)
	log.Debug("New configuration: %+v", config)
	return nil
}

// ScheduleWorkspaceConfigReload reloads the workspace configuration once a
// burst of calls settles
func (s *Server) ScheduleWorkspaceConfigReload() {
	s.reload(func() {
		log.Info("Reloading workspace configuration")
		if err := s.LoadWorkspaceConfig(); err != nil {
			ctx := s.GLSPContext()
			workspace.LogError(ctx, "%v", err)
			workspace.ShowMessage(ctx, protocol.MessageTypeWarning,
				"Abbreviation configuration not reloaded, see the output log for details")
		}
	})
}

// IsConfigFile reports whether path is one of the workspace configuration
// files. Without a workspace root any file with a configuration file name
// counts.
func (s *Server) IsConfigFile(path string) bool {
	if !slices.Contains(ConfigFiles(), filepath.Base(path)) {
		return false
	}
	root := s.RootPath()
	return root == "" || filepath.Clean(filepath.Dir(path)) == filepath.Clean(root)
}

func mergeClientSettings(base types.ServerConfig, settings map[string]any) (types.ServerConfig, error) {
	config := base.Clone()
	if settings != nil {
		if err := decodeSettings(settings, &config); err != nil {
			return base, fmt.Errorf("invalid client settings: %w", err)
		}
	}
	if err := config.Validate(); err != nil {
		return base, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}
