package teams

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

const (
	StatusUp   = "UP"
	StatusDown = "DOWN"
)

// Pinger is satisfied by *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthStatus struct {
	Status    string
	Service   string
	Timestamp time.Time
	Database  string
}

// HealthChecker reports liveness plus the reachability of the database.
type HealthChecker struct {
	db      Pinger
	service string
	clock   clockwork.Clock
	timeout time.Duration
}

func NewHealthChecker(db Pinger, service string, clock clockwork.Clock) *HealthChecker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &HealthChecker{
		db:      db,
		service: service,
		clock:   clock,
		timeout: 2 * time.Second,
	}
}

// Check always reports the process as UP; Database is DOWN when the ping fails.
func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    StatusUp,
		Service:   h.service,
		Timestamp: h.clock.Now(),
		Database:  StatusUp,
	}

	if h.db == nil {
		status.Database = ""
		return status
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	if err := h.db.PingContext(ctx); err != nil {
		log.Warn().Err(err).Msg("database ping failed")
		status.Database = StatusDown
	}
	return status
}
