package wal

import (
	"strings"
	"unicode"

	"github.com/sajjad-MoBe/LogKVStore/internal/kverrors"
)

// OpSet is the only operation recorded in the log. Lines carrying any other
// first token are skipped on replay so the format stays open for future ops.
const OpSet = "SET"

// Entry represents a single write-ahead log record
type Entry struct {
	Op    string
	Key   string
	Value string
}

// EncodeEntry serializes a key-value pair into one log line, without the
// trailing newline. The key must be a single token: a key containing
// whitespace could not be re-tokenized on replay, so it is rejected here
// rather than written. A value containing a line terminator would split
// into two log lines, so it is rejected as well; interior spaces are fine.
func EncodeEntry(key, value string) (string, error) {
	if key == "" {
		return "", kverrors.New(kverrors.ErrorTypeInvalidKey, "key must not be empty", nil)
	}
	if strings.IndexFunc(key, unicode.IsSpace) >= 0 {
		return "", kverrors.New(kverrors.ErrorTypeInvalidKey, "key must not contain whitespace", nil)
	}
	if value == "" {
		return "", kverrors.New(kverrors.ErrorTypeInvalidValue, "value must not be empty", nil)
	}
	if strings.ContainsAny(value, "\n\r") {
		return "", kverrors.New(kverrors.ErrorTypeInvalidValue, "value must not contain a line terminator", nil)
	}
	return OpSet + " " + key + " " + value, nil
}

// ParseEntry decodes one log line. The line is split on whitespace runs into
// at most three fields: operation, key, and the remainder of the line as the
// value with its interior spaces preserved. ok is false for lines that carry
// no record: blank lines, unknown operations, and lines with too few fields.
// Such lines (for example a partial line from a crash mid-append) are
// skipped on replay, never treated as errors.
func ParseEntry(line string) (Entry, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Entry{}, false
	}

	op, rest := splitToken(line)
	if op != OpSet {
		return Entry{}, false
	}

	key, value := splitToken(rest)
	if key == "" || value == "" {
		return Entry{}, false
	}

	return Entry{Op: op, Key: key, Value: value}, true
}

// splitToken cuts the first whitespace-delimited token off s and returns it
// with the rest of the string, leading whitespace stripped.
func splitToken(s string) (token, rest string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeftFunc(s[i:], unicode.IsSpace)
}
