package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	logctx "github.com/pribylovaa/jobsync-search/pkg/log"
)

// Pinger — проверка доступности зависимости (БД).
type Pinger interface {
	Ping(ctx context.Context) error
}

// Probes отдаёт /livez и /healthz.
// healthz отвечает 200 только после SetReady(true) и успешного Ping.
type Probes struct {
	ready       atomic.Bool
	pinger      Pinger
	pingTimeout time.Duration
}

func NewProbes(p Pinger, pingTimeout time.Duration) *Probes {
	if pingTimeout <= 0 {
		pingTimeout = 2 * time.Second
	}

	return &Probes{pinger: p, pingTimeout: pingTimeout}
}

// SetReady переключает готовность (false на время graceful shutdown).
func (p *Probes) SetReady(v bool) { p.ready.Store(v) }

func (p *Probes) Livez(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (p *Probes) Healthz(w http.ResponseWriter, r *http.Request) {
	if !p.ready.Load() {
		http.Error(w, "not ready", http.StatusServiceUnavailable)
		return
	}

	if p.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), p.pingTimeout)
		defer cancel()

		if err := p.pinger.Ping(ctx); err != nil {
			logctx.From(r.Context()).Warn("healthz_ping_failed", slog.String("err", err.Error()))
			http.Error(w, "db unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
