package main

import (
	"fmt"
	"net/url"
)

// validateConfig checks the resolved configuration before anything is
// started. benchmark mode skips the address and endpoint requirements.
func validateConfig(cfg *Config, benchmark bool) error {
	if cfg.Engine.GridBlocks <= 0 || cfg.Engine.BlockThreads <= 0 {
		return fmt.Errorf("engine grid_blocks and block_threads must be positive")
	}
	if cfg.Engine.ItersPerLane <= 0 {
		return fmt.Errorf("engine iters_per_lane must be positive")
	}
	if cfg.Engine.Workers < 0 {
		return fmt.Errorf("engine workers must not be negative")
	}
	if cfg.Engine.GPUDevice < 0 {
		return fmt.Errorf("engine gpu_device must not be negative")
	}
	if _, err := parseLogLevel(cfg.Logging.Level); err != nil {
		return err
	}
	if benchmark {
		return nil
	}

	poolMode := cfg.Pool.URL != ""
	if poolMode {
		if err := checkHTTPURL(cfg.Pool.URL, "pool url"); err != nil {
			return err
		}
		if cfg.Pool.RangeTimeoutSeconds <= 0 {
			return fmt.Errorf("pool range_timeout_seconds must be positive")
		}
	} else {
		if err := checkHTTPURL(cfg.Node.URL, "node url"); err != nil {
			return err
		}
		if cfg.Mining.CycleBudgetSeconds <= 0 {
			return fmt.Errorf("mining cycle_budget_seconds must be positive")
		}
		if cfg.Mining.MaxBlocks < 0 {
			return fmt.Errorf("mining max_blocks must not be negative")
		}
	}

	if cfg.Mining.PayoutAddress == "" {
		return fmt.Errorf("payout address is required (set mining.payout_address, -address, or provide a wallet)")
	}
	if _, err := decodePayoutAddress(cfg.Mining.PayoutAddress); err != nil {
		return err
	}
	if cfg.Mining.DevFeeInterval < 0 {
		return fmt.Errorf("mining dev_fee_interval must not be negative")
	}
	if cfg.Mining.DevFeeInterval > 0 {
		if cfg.Mining.DevFeeAddress == "" {
			return fmt.Errorf("mining dev_fee_interval set without dev_fee_address")
		}
		if _, err := decodePayoutAddress(cfg.Mining.DevFeeAddress); err != nil {
			return fmt.Errorf("dev fee: %w", err)
		}
	}
	return nil
}

func checkHTTPURL(raw, what string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", what)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s %q must be an http(s) URL", what, raw)
	}
	return nil
}
