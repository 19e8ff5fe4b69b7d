package main

// Config is the fully resolved runtime configuration: defaults, then
// config.toml, then secrets.toml, then CLI flag overrides.
type Config struct {
	Node    NodeSettings
	Pool    PoolSettings
	Mining  MiningSettings
	Engine  EngineSettings
	Logging LoggingSettings
	Discord DiscordSettings

	DataDir string
}

type NodeSettings struct {
	URL string
}

type PoolSettings struct {
	// URL empty means standalone mode.
	URL                 string
	WorkerName          string
	RangeTimeoutSeconds int
}

type MiningSettings struct {
	PayoutAddress string
	WalletDir     string

	// Developer fee: every DevFeeInterval-th cycle is mined to
	// DevFeeAddress. Zero disables.
	DevFeeAddress  string
	DevFeeInterval int

	CycleBudgetSeconds int
	// MaxBlocks stops the standalone loop after this many accepted
	// blocks. Zero means unlimited.
	MaxBlocks int
}

type EngineSettings struct {
	UseGPU    bool
	GPUDevice int

	// Host engine worker count; zero means one per CPU.
	Workers int

	// Lane geometry, shared by both engines. lanesTotal is
	// GridBlocks*BlockThreads.
	GridBlocks   int
	BlockThreads int
	ItersPerLane int
}

func (e EngineSettings) LanesTotal() int {
	return e.GridBlocks * e.BlockThreads
}

type LoggingSettings struct {
	Level  string
	Stdout bool
}

type DiscordSettings struct {
	// Both come from secrets.toml; empty disables notifications.
	Token     string
	ChannelID string
}

// File-facing structs. Pointer fields distinguish "absent" from zero so
// a partial config file only overrides what it names.

type baseFileConfig struct {
	DataDir string             `toml:"data_dir"`
	Node    *nodeFileConfig    `toml:"node"`
	Pool    *poolFileConfig    `toml:"pool"`
	Mining  *miningFileConfig  `toml:"mining"`
	Engine  *engineFileConfig  `toml:"engine"`
	Logging *loggingFileConfig `toml:"logging"`
}

type nodeFileConfig struct {
	URL string `toml:"url"`
}

type poolFileConfig struct {
	URL                 string `toml:"url"`
	WorkerName          string `toml:"worker_name"`
	RangeTimeoutSeconds *int   `toml:"range_timeout_seconds"`
}

type miningFileConfig struct {
	PayoutAddress      string `toml:"payout_address"`
	WalletDir          string `toml:"wallet_dir"`
	DevFeeAddress      string `toml:"dev_fee_address"`
	DevFeeInterval     *int   `toml:"dev_fee_interval"`
	CycleBudgetSeconds *int   `toml:"cycle_budget_seconds"`
	MaxBlocks          *int   `toml:"max_blocks"`
}

type engineFileConfig struct {
	UseGPU       *bool `toml:"use_gpu"`
	GPUDevice    *int  `toml:"gpu_device"`
	Workers      *int  `toml:"workers"`
	GridBlocks   *int  `toml:"grid_blocks"`
	BlockThreads *int  `toml:"block_threads"`
	ItersPerLane *int  `toml:"iters_per_lane"`
}

type loggingFileConfig struct {
	Level  string `toml:"level"`
	Stdout *bool  `toml:"stdout"`
}

type secretsFileConfig struct {
	DiscordToken     string `toml:"discord_token"`
	DiscordChannelID string `toml:"discord_channel_id"`
}
