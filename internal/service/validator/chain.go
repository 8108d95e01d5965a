package validator

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/AstroX11/word-vaildator-api/internal/config"
	"github.com/AstroX11/word-vaildator-api/internal/domain"
	"github.com/AstroX11/word-vaildator-api/internal/provider"
)

// verdictRecorder receives one observation per provider call.
type verdictRecorder interface {
	ObserveProvider(name string, v provider.Verdict, d time.Duration)
}

// errDecided stops the errgroup once the winning provider is known.
var errDecided = errors.New("chain decided")

// Chain asks external providers about a word in a fixed order.
// The first provider (in chain order) that confirms the word wins.
type Chain struct {
	log       *slog.Logger
	providers []provider.Checker
	timeout   time.Duration
	deadline  time.Duration
	parallel  bool
	rec       verdictRecorder
}

// NewChain creates a Chain over providers, kept in the given order.
// rec may be nil.
func NewChain(logger *slog.Logger, cfg config.ChainConfig, rec verdictRecorder, providers ...provider.Checker) *Chain {
	return &Chain{
		log:       logger.With("service", "chain"),
		providers: providers,
		timeout:   cfg.ProviderTimeout,
		deadline:  cfg.Deadline,
		parallel:  cfg.Mode == config.ChainParallel,
		rec:       rec,
	}
}

// Names returns the provider names in chain order.
func (c *Chain) Names() []string {
	names := make([]string, len(c.providers))
	for i, p := range c.providers {
		names[i] = p.Name()
	}
	return names
}

// Check reports whether any provider confirms word and, if so, which one.
// Unreachable and NotConfirmed both move on to the next provider.
func (c *Chain) Check(ctx context.Context, word domain.NormalizedWord) (bool, string) {
	if len(c.providers) == 0 {
		return false, ""
	}
	if c.parallel {
		return c.checkParallel(ctx, word)
	}
	return c.checkSequential(ctx, word)
}

func (c *Chain) checkSequential(ctx context.Context, word domain.NormalizedWord) (bool, string) {
	for _, p := range c.providers {
		if ctx.Err() != nil {
			return false, ""
		}
		if c.ask(ctx, p, word) == provider.Confirmed {
			return true, p.Name()
		}
	}
	return false, ""
}

// checkParallel asks every provider at once under an overall deadline.
// As soon as every provider ahead of a confirming one has settled without
// confirming, the remaining calls are cancelled.
func (c *Chain) checkParallel(ctx context.Context, word domain.NormalizedWord) (bool, string) {
	if c.deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.deadline)
		defer cancel()
	}

	n := len(c.providers)
	verdicts := make([]provider.Verdict, n)
	settled := make([]bool, n)
	winner := -1
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(n)
	for i, p := range c.providers {
		g.Go(func() error {
			v := c.ask(gctx, p, word)

			mu.Lock()
			defer mu.Unlock()
			verdicts[i] = v
			settled[i] = true
			if winner < 0 {
				winner = decide(verdicts, settled)
				if winner >= 0 {
					return errDecided
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	if winner < 0 {
		return false, ""
	}
	return true, c.providers[winner].Name()
}

// decide returns the index of the earliest confirming provider once all
// providers before it have settled, or -1 if that is not yet known.
func decide(verdicts []provider.Verdict, settled []bool) int {
	for i := range verdicts {
		if !settled[i] {
			return -1
		}
		if verdicts[i] == provider.Confirmed {
			return i
		}
	}
	return -1
}

func (c *Chain) ask(ctx context.Context, p provider.Checker, word domain.NormalizedWord) provider.Verdict {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	v := p.Check(ctx, word.String())
	elapsed := time.Since(start)

	// Calls cut short because an earlier provider already won are not a
	// provider failure.
	decided := v == provider.Unreachable && errors.Is(context.Cause(ctx), errDecided)
	if c.rec != nil && !decided {
		c.rec.ObserveProvider(p.Name(), v, elapsed)
	}
	c.log.DebugContext(ctx, "provider answered",
		slog.String("provider", p.Name()),
		slog.String("word", word.String()),
		slog.String("verdict", v.String()),
		slog.Duration("duration", elapsed),
	)
	return v
}
