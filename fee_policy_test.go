package main

import "testing"

func TestFeePolicyRoundRobin(t *testing.T) {
	p := newFeePolicy("miner", "dev", 10)
	devCycles := 0
	for i := 1; i <= 30; i++ {
		addr := p.next()
		if i%10 == 0 {
			if addr != "dev" {
				t.Errorf("cycle %d: addr = %q, want dev", i, addr)
			}
			devCycles++
		} else if addr != "miner" {
			t.Errorf("cycle %d: addr = %q, want miner", i, addr)
		}
	}
	if devCycles != 3 {
		t.Errorf("dev cycles = %d, want 3", devCycles)
	}
}

func TestFeePolicyDisabled(t *testing.T) {
	for _, p := range []*feePolicy{
		newFeePolicy("miner", "", 10),
		newFeePolicy("miner", "dev", 0),
	} {
		for i := 0; i < 25; i++ {
			if addr := p.next(); addr != "miner" {
				t.Fatalf("addr = %q, want miner for a disabled policy", addr)
			}
		}
	}
}
