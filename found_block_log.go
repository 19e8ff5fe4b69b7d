package main

import "sync"

// Found blocks are recorded through a background goroutine so the
// submit path never blocks on sqlite.
type foundBlockLogEntry struct {
	db *stateDB
	fb foundBlock
}

var (
	foundBlockLogCh   = make(chan foundBlockLogEntry, 64)
	foundBlockLogOnce sync.Once
)

func enqueueFoundBlock(db *stateDB, fb foundBlock) {
	foundBlockLogOnce.Do(startFoundBlockLogger)
	select {
	case foundBlockLogCh <- foundBlockLogEntry{db: db, fb: fb}:
	default:
		// Queue full; record synchronously rather than drop an accepted block.
		if err := db.RecordFoundBlock(fb); err != nil {
			logger.Warn("record found block", "error", err)
		}
	}
}

func startFoundBlockLogger() {
	go func() {
		for entry := range foundBlockLogCh {
			if entry.db == nil {
				continue
			}
			if err := entry.db.RecordFoundBlock(entry.fb); err != nil {
				logger.Warn("record found block", "error", err, "height", entry.fb.Height)
			}
		}
	}()
}
