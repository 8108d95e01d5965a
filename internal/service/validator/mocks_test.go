package validator

import (
	"context"
	"sync"
	"time"

	"github.com/AstroX11/word-vaildator-api/internal/domain"
	"github.com/AstroX11/word-vaildator-api/internal/provider"
)

var (
	_ localSource        = &localSourceMock{}
	_ externalChain      = &externalChainMock{}
	_ validationRecorder = &recorderMock{}
	_ verdictRecorder    = &recorderMock{}
	_ provider.Checker   = &checkerMock{}
)

type localSourceMock struct {
	ContainsFunc func(ctx context.Context, word domain.NormalizedWord) bool
	LenFunc      func() int

	mu    sync.Mutex
	calls []domain.NormalizedWord
}

func (m *localSourceMock) Contains(ctx context.Context, word domain.NormalizedWord) bool {
	if m.ContainsFunc == nil {
		panic("localSourceMock.ContainsFunc: method is nil but localSource.Contains was just called")
	}
	m.mu.Lock()
	m.calls = append(m.calls, word)
	m.mu.Unlock()
	return m.ContainsFunc(ctx, word)
}

func (m *localSourceMock) ContainsCalls() []domain.NormalizedWord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// sizedLocalSourceMock adds Len so the service sees a preloaded source.
type sizedLocalSourceMock struct {
	*localSourceMock
	size int
}

func (m *sizedLocalSourceMock) Len() int { return m.size }

type externalChainMock struct {
	CheckFunc func(ctx context.Context, word domain.NormalizedWord) (bool, string)

	mu    sync.Mutex
	calls []domain.NormalizedWord
}

func (m *externalChainMock) Check(ctx context.Context, word domain.NormalizedWord) (bool, string) {
	if m.CheckFunc == nil {
		panic("externalChainMock.CheckFunc: method is nil but externalChain.Check was just called")
	}
	m.mu.Lock()
	m.calls = append(m.calls, word)
	m.mu.Unlock()
	return m.CheckFunc(ctx, word)
}

func (m *externalChainMock) CheckCalls() []domain.NormalizedWord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type recorderMock struct {
	mu        sync.Mutex
	sources   []domain.Source
	providers []string
	verdicts  []provider.Verdict
}

func (m *recorderMock) ObserveValidation(source domain.Source) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources = append(m.sources, source)
}

func (m *recorderMock) ObserveProvider(name string, v provider.Verdict, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.providers = append(m.providers, name)
	m.verdicts = append(m.verdicts, v)
}

type checkerMock struct {
	name      string
	CheckFunc func(ctx context.Context, word string) provider.Verdict

	mu    sync.Mutex
	calls []string
}

func (m *checkerMock) Name() string { return m.name }

func (m *checkerMock) Check(ctx context.Context, word string) provider.Verdict {
	if m.CheckFunc == nil {
		panic("checkerMock.CheckFunc: method is nil but provider.Checker.Check was just called")
	}
	m.mu.Lock()
	m.calls = append(m.calls, word)
	m.mu.Unlock()
	return m.CheckFunc(ctx, word)
}

func (m *checkerMock) CheckCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// answer returns a checker that always gives v.
func answer(name string, v provider.Verdict) *checkerMock {
	return &checkerMock{
		name:      name,
		CheckFunc: func(context.Context, string) provider.Verdict { return v },
	}
}

// blocking returns a checker that waits for its context to end.
func blocking(name string) *checkerMock {
	return &checkerMock{
		name: name,
		CheckFunc: func(ctx context.Context, _ string) provider.Verdict {
			<-ctx.Done()
			return provider.Unreachable
		},
	}
}

// delayed returns a checker that answers v after d, or Unreachable if its
// context ends first.
func delayed(name string, d time.Duration, v provider.Verdict) *checkerMock {
	return &checkerMock{
		name: name,
		CheckFunc: func(ctx context.Context, _ string) provider.Verdict {
			select {
			case <-time.After(d):
				return v
			case <-ctx.Done():
				return provider.Unreachable
			}
		},
	}
}
