package txanalyzer

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/txlens/txlens/networks"
	"github.com/txlens/txlens/util/addrbook"
)

// AnalysisContext carries everything an analysis needs besides the
// transaction itself. Tests swap the resolver, the random source and the
// clock to get deterministic explanations.
type AnalysisContext struct {
	Network  networks.Network
	Resolver addrbook.AddressResolver
	Logger   *zap.Logger

	rand *rand.Rand
	now  func() time.Time
}

func NewAnalysisContext(network networks.Network, logger *zap.Logger) *AnalysisContext {
	return NewAnalysisContextWithResolver(
		network,
		addrbook.NewDefault(),
		logger,
		rand.New(rand.NewSource(time.Now().UnixNano())),
	)
}

func NewAnalysisContextWithResolver(
	network networks.Network,
	res addrbook.AddressResolver,
	logger *zap.Logger,
	rnd *rand.Rand,
) *AnalysisContext {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisContext{
		Network:  network,
		Resolver: res,
		Logger:   logger,
		rand:     rnd,
		now:      time.Now,
	}
}

// WithClock replaces the clock used when a block timestamp is unknown.
func (ctx *AnalysisContext) WithClock(now func() time.Time) *AnalysisContext {
	ctx.now = now
	return ctx
}

// Label resolves addr to a human readable name, or "" when it is unknown.
func (ctx *AnalysisContext) Label(addr string) string {
	if addr == "" {
		return ""
	}
	a := ctx.Resolver.Resolve(addr)
	if a.Desc == "unknown" {
		return ""
	}
	return a.Desc
}
