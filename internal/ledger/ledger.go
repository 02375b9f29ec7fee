// Package ledger applies every stock-changing operation: item creation and
// update, stock adjustments and multi-item usage events. Each operation runs
// in a single store transaction and either commits fully or not at all.
package ledger

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Ledger struct {
	db  *gorm.DB
	log *logrus.Logger
	now func() time.Time
}

type Option func(*Ledger)

// WithClock replaces the wall clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

func New(db *gorm.DB, log *logrus.Logger, opts ...Option) *Ledger {
	if log == nil {
		log = logrus.StandardLogger()
	}
	l := &Ledger{
		db:  db,
		log: log,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Ledger) timestamp() time.Time {
	return l.now().UTC()
}
