package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// loadTOMLFile reads and decodes a TOML file. A missing file is not an
// error; ok reports whether the file existed.
func loadTOMLFile[T any](path string) (*T, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var out T
	if err := toml.Unmarshal(data, &out); err != nil {
		return nil, true, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return &out, true, nil
}

// loadConfig resolves the runtime configuration: defaults overlaid by
// config.toml and secrets.toml. Flag overrides are applied by the
// caller afterwards. Returns the resolved config and the path the base
// config was (or would have been) read from.
func loadConfig(configPath, secretsPath string) (Config, string) {
	cfg := defaultConfig()

	if configPath == "" {
		configPath = defaultConfigPath()
	}
	if bc, ok, err := loadTOMLFile[baseFileConfig](configPath); err != nil {
		fatal("config file", err, "path", configPath)
	} else if ok {
		applyBaseConfig(&cfg, bc)
	}
	ensureExampleFiles(cfg.DataDir)

	if secretsPath == "" {
		secretsPath = filepath.Join(cfg.DataDir, "config", "secrets.toml")
	}
	ensureSecretFilePermissions(secretsPath)
	if sc, ok, err := loadTOMLFile[secretsFileConfig](secretsPath); err != nil {
		fatal("secrets file", err, "path", secretsPath)
	} else if ok {
		cfg.Discord.Token = sc.DiscordToken
		cfg.Discord.ChannelID = sc.DiscordChannelID
	}

	return cfg, configPath
}

func applyBaseConfig(cfg *Config, bc *baseFileConfig) {
	if bc.DataDir != "" {
		cfg.DataDir = bc.DataDir
	}
	if bc.Node != nil && bc.Node.URL != "" {
		cfg.Node.URL = bc.Node.URL
	}
	if p := bc.Pool; p != nil {
		if p.URL != "" {
			cfg.Pool.URL = p.URL
		}
		if p.WorkerName != "" {
			cfg.Pool.WorkerName = p.WorkerName
		}
		if p.RangeTimeoutSeconds != nil {
			cfg.Pool.RangeTimeoutSeconds = *p.RangeTimeoutSeconds
		}
	}
	if m := bc.Mining; m != nil {
		if m.PayoutAddress != "" {
			cfg.Mining.PayoutAddress = m.PayoutAddress
		}
		if m.WalletDir != "" {
			cfg.Mining.WalletDir = m.WalletDir
		}
		if m.DevFeeAddress != "" {
			cfg.Mining.DevFeeAddress = m.DevFeeAddress
		}
		if m.DevFeeInterval != nil {
			cfg.Mining.DevFeeInterval = *m.DevFeeInterval
		}
		if m.CycleBudgetSeconds != nil {
			cfg.Mining.CycleBudgetSeconds = *m.CycleBudgetSeconds
		}
		if m.MaxBlocks != nil {
			cfg.Mining.MaxBlocks = *m.MaxBlocks
		}
	}
	if e := bc.Engine; e != nil {
		if e.UseGPU != nil {
			cfg.Engine.UseGPU = *e.UseGPU
		}
		if e.GPUDevice != nil {
			cfg.Engine.GPUDevice = *e.GPUDevice
		}
		if e.Workers != nil {
			cfg.Engine.Workers = *e.Workers
		}
		if e.GridBlocks != nil {
			cfg.Engine.GridBlocks = *e.GridBlocks
		}
		if e.BlockThreads != nil {
			cfg.Engine.BlockThreads = *e.BlockThreads
		}
		if e.ItersPerLane != nil {
			cfg.Engine.ItersPerLane = *e.ItersPerLane
		}
	}
	if l := bc.Logging; l != nil {
		if l.Level != "" {
			cfg.Logging.Level = l.Level
		}
		if l.Stdout != nil {
			cfg.Logging.Stdout = *l.Stdout
		}
	}
}

// ensureSecretFilePermissions tightens a secrets file that is readable
// by group or others. Secrets hold the Discord bot token.
func ensureSecretFilePermissions(path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if info.Mode().Perm()&0o077 == 0 {
		return
	}
	if err := os.Chmod(path, 0o600); err != nil {
		logger.Warn("tighten secrets file permissions", "path", path, "error", err)
		return
	}
	logger.Info("tightened secrets file permissions", "path", path)
}
