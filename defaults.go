package main

import "path/filepath"

const defaultDataDir = "data"

func defaultConfigPath() string {
	return filepath.Join(defaultDataDir, "config", "config.toml")
}

func defaultConfig() Config {
	return Config{
		Node: NodeSettings{
			URL: "http://127.0.0.1:5000",
		},
		Pool: PoolSettings{
			WorkerName:          "worker-1",
			RangeTimeoutSeconds: 120,
		},
		Mining: MiningSettings{
			CycleBudgetSeconds: 30,
		},
		Engine: EngineSettings{
			GridBlocks:   256,
			BlockThreads: 256,
			ItersPerLane: 1024,
		},
		Logging: LoggingSettings{
			Level: "info",
		},
		DataDir: defaultDataDir,
	}
}
