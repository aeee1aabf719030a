package health

import (
	"context"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"subdesk/internal/logging"
	"subdesk/internal/pathres"
	"subdesk/internal/probe"
)

// passCacheSize bounds the number of hosts and volumes remembered per pass.
const passCacheSize = 256

// Classifier assigns health verdicts to folder paths.
type Classifier struct {
	probe  probe.NetworkProbe
	fs     FS
	logger *slog.Logger
}

// Option customizes the classifier.
type Option func(*Classifier)

// WithFS overrides the filesystem used for existence and write checks.
func WithFS(fs FS) Option {
	return func(c *Classifier) {
		if fs != nil {
			c.fs = fs
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClassifier constructs a classifier backed by the given probe. A nil
// probe uses probe.System with the default timeout.
func NewClassifier(p probe.NetworkProbe, opts ...Option) *Classifier {
	if p == nil {
		p = probe.NewSystem(probe.DefaultTimeout)
	}
	c := &Classifier{
		probe:  p,
		fs:     OSFS{},
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logging.NewComponentLogger(c.logger, "folder-health")
	return c
}

// Classify evaluates a single path in its own pass.
func (c *Classifier) Classify(ctx context.Context, path string) Status {
	return c.NewPass().Classify(ctx, path)
}

// NewPass starts a classification pass with fresh probe memoization.
func (c *Classifier) NewPass() *Pass {
	cache, err := lru.New[string, bool](passCacheSize)
	if err != nil {
		// Only reachable with a non-positive size.
		panic(err)
	}
	return &Pass{classifier: c, memo: cache}
}

// Pass classifies several folders while probing each host and volume once.
// A Pass is not safe for concurrent use.
type Pass struct {
	classifier *Classifier
	memo       *lru.Cache[string, bool]
}

// Classify returns the health verdict for path.
func (p *Pass) Classify(ctx context.Context, path string) Status {
	status := StatusOK
	switch {
	case !p.exists(ctx, path):
		status = StatusNonExistant
	case !p.writable(path):
		status = StatusReadOnly
	}

	if status == StatusNonExistant {
		depth := pathres.UNCDepth(path)
		if !p.volumeReady(path) || !p.hostAlive(ctx, path) || (depth > 0 && depth < 3) {
			status = StatusReadOnly
		}
	}

	p.classifier.logger.Debug("folder classified",
		logging.String("path", path),
		logging.String("status", status.String()),
	)
	return status
}

func (p *Pass) exists(ctx context.Context, path string) bool {
	if path == "" {
		return false
	}
	if !pathres.IsRooted(path) {
		return true
	}
	if !p.hostAlive(ctx, path) {
		return false
	}
	return p.classifier.fs.DirExists(path)
}

func (p *Pass) writable(path string) bool {
	if path == "" {
		return false
	}
	if !pathres.IsRooted(path) {
		return true
	}
	if err := p.classifier.fs.TryWrite(path); err != nil {
		p.classifier.logger.Debug("scratch write failed",
			logging.String("path", path),
			logging.Error(err),
		)
		return false
	}
	return true
}

func (p *Pass) hostAlive(ctx context.Context, path string) bool {
	if !pathres.IsUNC(path) {
		return true
	}
	host := pathres.UNCHost(path)
	key := "host:" + host
	if alive, ok := p.memo.Get(key); ok {
		return alive
	}
	alive := p.classifier.probe.IsHostReachable(ctx, host)
	p.memo.Add(key, alive)
	return alive
}

func (p *Pass) volumeReady(path string) bool {
	if path == "" || pathres.IsUNC(path) {
		return true
	}
	root := pathres.VolumeRoot(path)
	if root == "" {
		return true
	}
	key := "volume:" + root
	if ready, ok := p.memo.Get(key); ok {
		return ready
	}
	ready := p.classifier.probe.IsVolumeReady(root)
	p.memo.Add(key, ready)
	return ready
}
