package storage

import (
	"sync/atomic"

	"github.com/sajjad-MoBe/LogKVStore/internal/kverrors"
	"github.com/sajjad-MoBe/LogKVStore/internal/wal"
)

// DefaultDataFile is the log file used when no path is configured.
const DefaultDataFile = "data.db"

// EngineMetrics tracks engine operation counts
type EngineMetrics struct {
	SetCount         int64
	GetCount         int64
	RecoveredRecords int64
	SkippedLines     int64
	ErrorCount       int64
}

// Engine is the storage facade: an in-memory MemTable fronted by a durable
// write-ahead log. Every mutation is appended and fsynced to the log before
// the table is touched, so the table never runs ahead of what recovery can
// reconstruct. An Engine returned by NewEngine has already completed
// recovery and is ready for operations; there is no other state.
type Engine struct {
	log     wal.Log
	table   *MemTable
	metrics EngineMetrics
}

// Open opens the log file at path and builds an Engine on it.
func Open(path string) (*Engine, error) {
	log, err := wal.Open(path)
	if err != nil {
		return nil, kverrors.New(kverrors.ErrorTypeWriteFailure, "failed to open log file", err)
	}

	e, err := NewEngine(log)
	if err != nil {
		log.Close()
		return nil, err
	}
	return e, nil
}

// NewEngine builds an Engine on an already-open log. It replays the full log
// into a fresh MemTable before returning: every line is decoded, lines that
// carry no record are skipped, and every decoded record is applied in file
// order so the latest record for a key wins. A read failure aborts
// construction; a partially recovered table is worse than a startup error.
func NewEngine(log wal.Log) (*Engine, error) {
	e := &Engine{
		log:   log,
		table: NewMemTable(),
	}

	err := log.Replay(func(line string) error {
		entry, ok := wal.ParseEntry(line)
		if !ok {
			atomic.AddInt64(&e.metrics.SkippedLines, 1)
			return nil
		}
		e.table.Set(entry.Key, entry.Value)
		atomic.AddInt64(&e.metrics.RecoveredRecords, 1)
		return nil
	})
	if err != nil {
		return nil, kverrors.New(kverrors.ErrorTypeReadFailure, "failed to replay log", err)
	}

	return e, nil
}

// Set durably records the key-value pair in the log, then applies it to the
// in-memory table. If the durable append fails the table is left unmodified
// and the error is returned; the caller decides whether to retry.
func (e *Engine) Set(key, value string) error {
	line, err := wal.EncodeEntry(key, value)
	if err != nil {
		atomic.AddInt64(&e.metrics.ErrorCount, 1)
		return err
	}

	if err := e.log.AppendDurable(line); err != nil {
		atomic.AddInt64(&e.metrics.ErrorCount, 1)
		return kverrors.New(kverrors.ErrorTypeWriteFailure, "failed to append to log", err)
	}

	e.table.Set(key, value)
	atomic.AddInt64(&e.metrics.SetCount, 1)
	return nil
}

// Get retrieves the current value for a key from the in-memory table. The
// log is never read after recovery. ok is false for a key never set.
func (e *Engine) Get(key string) (value string, ok bool) {
	atomic.AddInt64(&e.metrics.GetCount, 1)
	return e.table.Get(key)
}

// Keys returns all keys in sorted order
func (e *Engine) Keys() []string {
	return e.table.Keys()
}

// Len returns the number of keys
func (e *Engine) Len() int {
	return e.table.Len()
}

// Metrics returns a snapshot of the engine metrics
func (e *Engine) Metrics() EngineMetrics {
	return EngineMetrics{
		SetCount:         atomic.LoadInt64(&e.metrics.SetCount),
		GetCount:         atomic.LoadInt64(&e.metrics.GetCount),
		RecoveredRecords: atomic.LoadInt64(&e.metrics.RecoveredRecords),
		SkippedLines:     atomic.LoadInt64(&e.metrics.SkippedLines),
		ErrorCount:       atomic.LoadInt64(&e.metrics.ErrorCount),
	}
}

// Close closes the underlying log handle
func (e *Engine) Close() error {
	return e.log.Close()
}
