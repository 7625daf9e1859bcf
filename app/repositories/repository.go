package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

var (
	ErrNotFound = errors.New("record not found")
)

// OpenBadger opens the embedded document store at path. An in-memory store
// ignores path and is discarded on Close.
func OpenBadger(path string, inMemory bool, logger *zap.Logger) (*badger.DB, error) {
	opts := badger.DefaultOptions(path)
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.
		WithLogger(newBadgerLogger(logger)).
		WithNumVersionsToKeep(1)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", path, err)
	}
	return db, nil
}

// badgerLogger routes badger's internal log through zap.
type badgerLogger struct {
	s *zap.SugaredLogger
}

func newBadgerLogger(logger *zap.Logger) badgerLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return badgerLogger{s: logger.Named("badger").Sugar()}
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.s.Errorf(strings.TrimRight(format, "\n"), args...)
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.s.Warnf(strings.TrimRight(format, "\n"), args...)
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.s.Infof(strings.TrimRight(format, "\n"), args...)
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.s.Debugf(strings.TrimRight(format, "\n"), args...)
}
