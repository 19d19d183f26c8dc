package service

import (
	"context"
	"time"

	"github.com/ericogr/laro-arcade/internal/constants"
	"github.com/ericogr/laro-arcade/internal/logging"
)

// IdleReaper is implemented by room.Manager.
type IdleReaper interface {
	ReapIdle(now time.Time, timeout time.Duration) []string
}

// StartIdleReaper stops rooms whose player has been inactive for longer than
// timeout, checking every interval until ctx is done.
func StartIdleReaper(ctx context.Context, rooms IdleReaper, every, timeout time.Duration) {
	if every <= 0 {
		every = 30 * time.Second
	}
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				ReapOnce(rooms, now, timeout)
			}
		}
	}()
}

// ReapOnce runs a single reaper pass and returns the codes it stopped.
func ReapOnce(rooms IdleReaper, now time.Time, timeout time.Duration) []string {
	reaped := rooms.ReapIdle(now, timeout)
	for _, code := range reaped {
		logging.Info("stopped idle room", logging.Fields{constants.LogFieldRoom: code, constants.LogFieldIdleFor: timeout.String()})
	}
	return reaped
}
