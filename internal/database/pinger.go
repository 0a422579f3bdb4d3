package database

import (
	"context"
	"database/sql"
	"log"
	"sync"
	"time"
)

// Pinger periodically runs a trivial query against the store and logs the
// outcome. It is purely diagnostic: a failed probe is reported but does not
// change how requests are handled. The loop is owned by whoever constructs
// the Pinger and is stopped explicitly, so tests can run without it.
type Pinger struct {
	db       *sql.DB
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
	once     sync.Once
}

// NewPinger returns a Pinger probing db once per interval. Start must be
// called for probing to begin.
func NewPinger(db *sql.DB, interval time.Duration) *Pinger {
	return &Pinger{db: db, interval: interval, done: make(chan struct{})}
}

// Start launches the probe loop. The loop ends when Stop is called or the
// parent context is cancelled.
func (p *Pinger) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	go p.run(ctx)
}

// Stop cancels the probe loop and waits for it to exit. Safe to call more
// than once.
func (p *Pinger) Stop() {
	p.once.Do(func() {
		if p.cancel == nil {
			return
		}
		p.cancel()
		<-p.done
	})
}

func (p *Pinger) run(ctx context.Context) {
	defer close(p.done)
	t := time.NewTicker(p.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p.probe(ctx)
		}
	}
}

// probe executes the liveness query once. The query mirrors what the store
// would run for any real statement without touching a table.
func (p *Pinger) probe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()
	var result int
	if err := p.db.QueryRowContext(ctx, "SELECT 1+1 AS result").Scan(&result); err != nil {
		log.Printf("database: connection lost: %v", err)
		return
	}
	log.Printf("database: connection is alive")
}
