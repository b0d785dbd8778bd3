package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/gencache"
)

type Options struct {
	// Sampling for per-read events; 0/1 = log all.
	ExpiredEvery  uint64
	PromotedEvery uint64
}

// Hooks logs cache events through slog.
type Hooks struct {
	l    *slog.Logger
	opts Options

	expiredCtr  atomic.Uint64
	promotedCtr atomic.Uint64
}

var _ gencache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) Rotated(discarded int) {
	if h.l == nil {
		return
	}
	h.l.Debug("gencache.rotated",
		"discarded", discarded)
}

func (h *Hooks) Expired(generation string) {
	if h.l == nil || !sample(h.opts.ExpiredEvery, &h.expiredCtr) {
		return
	}
	h.l.Debug("gencache.expired",
		"generation", generation)
}

func (h *Hooks) Promoted() {
	if h.l == nil || !sample(h.opts.PromotedEvery, &h.promotedCtr) {
		return
	}
	h.l.Debug("gencache.promoted")
}

func (h *Hooks) Cleared(dropped int) {
	if h.l == nil {
		return
	}
	h.l.Info("gencache.cleared",
		"dropped", dropped)
}

func (h *Hooks) DecodeFailed(err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("gencache.decode_failed",
		"err", err)
}
