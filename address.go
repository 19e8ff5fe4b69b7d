package main

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// decodePayoutAddress turns a configured payout address into the raw
// payload embedded in the block prefix. Two encodings are accepted: a
// plain hex string (40 characters for a hash payout, 66 for a
// compressed key) or base58, which is decoded in process.
func decodePayoutAddress(addr string) ([]byte, error) {
	if addr == "" {
		return nil, fmt.Errorf("empty payout address")
	}
	if isHexString(addr) && (len(addr) == payoutHashLen*2 || len(addr) == payoutKeyLen*2) {
		out := make([]byte, len(addr)/2)
		if err := decodeHexToFixedBytes(out, addr); err != nil {
			return nil, fmt.Errorf("payout address: %w", err)
		}
		return out, nil
	}
	decoded := base58.Decode(addr)
	if len(decoded) == 0 {
		return nil, fmt.Errorf("payout address %q is neither hex nor base58", addr)
	}
	if len(decoded) != payoutHashLen && len(decoded) != payoutKeyLen {
		return nil, fmt.Errorf("payout address decodes to %d bytes, want %d or %d", len(decoded), payoutHashLen, payoutKeyLen)
	}
	return decoded, nil
}
