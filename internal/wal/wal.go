package wal

import (
	"bufio"
	"os"
	"sync"
)

// Log defines the interface for write-ahead log operations
type Log interface {
	AppendDurable(line string) error
	Replay(handler func(line string) error) error
	Close() error
}

// FileLog implements Log on a single append-only text file. The process is
// assumed to have exclusive access to the file for its lifetime; concurrent
// processes appending to the same log are unsupported.
type FileLog struct {
	path string
	file *os.File
	mu   sync.Mutex
}

// Open opens the log file at path for appending, creating it if absent.
func Open(path string) (*FileLog, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	return &FileLog{path: path, file: file}, nil
}

// AppendDurable writes line plus a newline to the log and forces it through
// OS buffering to stable storage. It does not return nil until the record is
// durable; this is the write-ahead guarantee the engine depends on.
func (l *FileLog) AppendDurable(line string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.file.WriteString(line + "\n"); err != nil {
		return err
	}
	return l.file.Sync()
}

// Replay reads the log from the start and calls handler once per line, in
// file order. A missing file is an empty log, not an error. The first
// handler or I/O error aborts the pass and is returned.
func (l *FileLog) Replay(handler func(line string) error) error {
	file, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if err := handler(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// Close closes the append handle
func (l *FileLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.file.Close()
}
