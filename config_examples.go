package main

import (
	"os"
	"path/filepath"
)

var configExample = []byte(`# goMiner config.toml
# Copy to <data>/config/config.toml and edit as needed.

# data_dir = "data"

[node]
# Chain node HTTP endpoint (standalone mode).
url = "http://127.0.0.1:5000"

[pool]
# Set a pool URL to mine assigned nonce ranges instead of standalone.
# url = "http://pool.example.com:4000"
worker_name = "worker-1"
range_timeout_seconds = 120

[mining]
# Hex (40 or 66 chars) or base58 payout address. Required unless a
# wallet address file is found.
payout_address = ""
# wallet_dir = "/home/user/.gominer/wallet"
# dev_fee_address = ""
# dev_fee_interval = 0
cycle_budget_seconds = 30
# Stop after this many accepted blocks; 0 = unlimited.
max_blocks = 0

[engine]
use_gpu = false
gpu_device = 0
# Host engine workers; 0 = one per CPU.
workers = 0
grid_blocks = 256
block_threads = 256
iters_per_lane = 1024

[logging]
level = "info"
stdout = false
`)

var secretsConfigExample = []byte(`# Optional Discord found-block notifications.
# discord_token = "YOUR_DISCORD_BOT_TOKEN"
# discord_channel_id = "123456789012345678"
`)

func ensureExampleFiles(dataDir string) {
	if dataDir == "" {
		dataDir = defaultDataDir
	}
	examplesDir := filepath.Join(dataDir, "config", "examples")
	if err := os.MkdirAll(examplesDir, 0o755); err != nil {
		logger.Warn("create examples directory failed", "dir", examplesDir, "error", err)
		return
	}
	ensureExampleFile(filepath.Join(examplesDir, "config.toml.example"), configExample)
	ensureExampleFile(filepath.Join(examplesDir, "secrets.toml.example"), secretsConfigExample)
}

func ensureExampleFile(path string, contents []byte) {
	if len(contents) == 0 {
		return
	}
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		logger.Warn("write example config failed", "path", path, "error", err)
	}
}
