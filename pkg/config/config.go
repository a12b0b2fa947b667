/*
Package config manages TOML config for SpellServe services.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/spell"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Server ServerConfig `toml:"server"`
	Dict   DictConfig   `toml:"dict"`
	Spell  SpellConfig  `toml:"spell"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxLimit     int  `toml:"max_limit"`
	MaxWordLen   int  `toml:"max_word_len"`
	EnableFilter bool `toml:"enable_filter"`
}

// DictConfig holds word list and fix list file options.
type DictConfig struct {
	WordsFile     string `toml:"words_file"`
	FixesFile     string `toml:"fixes_file"`
	CaseSensitive bool   `toml:"case_sensitive"`
}

// SpellConfig holds the matching engine thresholds.
type SpellConfig struct {
	MinFuzzyLen    int  `toml:"min_fuzzy_len"`
	MinSplitLen    int  `toml:"min_split_len"`
	SwapShortLen   int  `toml:"swap_short_len"`
	SwapLimitShort int  `toml:"swap_limit_short"`
	SwapLimitLong  int  `toml:"swap_limit_long"`
	SwapMaxSpan    int  `toml:"swap_max_span"`
	ModelFallback  bool `toml:"model_fallback"`
	ModelDepth     int  `toml:"model_depth"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
// 4. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "spellserve")
	if utils.DirWritable(primaryPath) {
		return primaryPath, nil
	}
	// Not conventional, fallback from ~/.config if not writable
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "spellserve")
	if utils.DirWritable(macOSPath) {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/spellserve/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	var config *Config
	var err error

	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err = LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err = InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	opts := spell.DefaultOptions()
	return &Config{
		Server: ServerConfig{
			MaxLimit:     24,
			MaxWordLen:   60,
			EnableFilter: true,
		},
		Dict: DictConfig{
			WordsFile:     "data/words.txt",
			FixesFile:     "data/fixes.txt",
			CaseSensitive: false,
		},
		Spell: SpellConfig{
			MinFuzzyLen:    opts.MinFuzzyLength,
			MinSplitLen:    opts.MinSplitLength,
			SwapShortLen:   opts.SwapShortWordLen,
			SwapLimitShort: opts.SwapLimitShort,
			SwapLimitLong:  opts.SwapLimitLong,
			SwapMaxSpan:    opts.SwapMaxSpan,
			ModelFallback:  opts.ModelFallback,
			ModelDepth:     opts.ModelDepth,
		},
	}
}

// Options maps the spell section onto engine options.
func (c *Config) Options() spell.Options {
	return spell.Options{
		MinFuzzyLength:   c.Spell.MinFuzzyLen,
		MinSplitLength:   c.Spell.MinSplitLen,
		SwapShortWordLen: c.Spell.SwapShortLen,
		SwapLimitShort:   c.Spell.SwapLimitShort,
		SwapLimitLong:    c.Spell.SwapLimitLong,
		SwapMaxSpan:      c.Spell.SwapMaxSpan,
		ModelFallback:    c.Spell.ModelFallback,
		ModelDepth:       c.Spell.ModelDepth,
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse attempts to parse a TOML file
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	if dictSection, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(dictSection, &config.Dict)
	}
	if spellSection, ok := utils.ExtractSection(tempConfig, "spell"); ok {
		extractSpellConfig(spellSection, &config.Spell)
	}
	return config, nil
}

// extractServerConfig extracts server configuration from a map
func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "max_word_len"); ok {
		server.MaxWordLen = val
	}
	if val, ok := utils.ExtractBool(data, "enable_filter"); ok {
		server.EnableFilter = val
	}
}

// extractDictConfig extracts word list configuration from a map
func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "words_file"); ok {
		dict.WordsFile = val
	}
	if val, ok := utils.ExtractString(data, "fixes_file"); ok {
		dict.FixesFile = val
	}
	if val, ok := utils.ExtractBool(data, "case_sensitive"); ok {
		dict.CaseSensitive = val
	}
}

// extractSpellConfig extracts engine thresholds from a map
func extractSpellConfig(data map[string]any, sp *SpellConfig) {
	if val, ok := utils.ExtractInt64(data, "min_fuzzy_len"); ok {
		sp.MinFuzzyLen = val
	}
	if val, ok := utils.ExtractInt64(data, "min_split_len"); ok {
		sp.MinSplitLen = val
	}
	if val, ok := utils.ExtractInt64(data, "swap_short_len"); ok {
		sp.SwapShortLen = val
	}
	if val, ok := utils.ExtractInt64(data, "swap_limit_short"); ok {
		sp.SwapLimitShort = val
	}
	if val, ok := utils.ExtractInt64(data, "swap_limit_long"); ok {
		sp.SwapLimitLong = val
	}
	if val, ok := utils.ExtractInt64(data, "swap_max_span"); ok {
		sp.SwapMaxSpan = val
	}
	if val, ok := utils.ExtractBool(data, "model_fallback"); ok {
		sp.ModelFallback = val
	}
	if val, ok := utils.ExtractInt64(data, "model_depth"); ok {
		sp.ModelDepth = val
	}
}

// RebuildConfigFile force creates a new config.toml at default
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(defaultPath)
	if err := utils.EnsureDir(configDir); err != nil {
		return err
	}
	config := DefaultConfig()
	return utils.SaveTOMLFile(config, defaultPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
