package main

// feePolicy picks the payout address for each mining cycle. With a dev
// address configured, every devInterval-th cycle is mined to it; the
// rule is a deterministic counter, not a random draw, so the realized
// fee fraction is exact over any window of devInterval cycles.
type feePolicy struct {
	minerAddress string
	devAddress   string
	devInterval  uint64
	cycle        uint64
}

func newFeePolicy(minerAddress, devAddress string, devInterval int) *feePolicy {
	p := &feePolicy{minerAddress: minerAddress, devAddress: devAddress}
	if devAddress != "" && devInterval > 0 {
		p.devInterval = uint64(devInterval)
	}
	return p
}

func (p *feePolicy) next() string {
	p.cycle++
	if p.devInterval > 0 && p.cycle%p.devInterval == 0 {
		return p.devAddress
	}
	return p.minerAddress
}
