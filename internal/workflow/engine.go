// Package workflow implements the job board rules on top of the store: applying,
// inviting, responding to invitations and ranking matches.
package workflow

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/talentx/internal/metrics"
	"github.com/spigell/talentx/internal/scoring"
	"github.com/spigell/talentx/internal/store"
)

const (
	OperationApply     = "apply"
	OperationInvite    = "invite"
	OperationRespond   = "respond"
	OperationCreateJob = "create_job"
	OperationReconcile = "reconcile"
)

var (
	ErrInvalidDeadline = errors.New("deadline must be a YYYY-MM-DD date")
	ErrInvalidRole     = errors.New("role must be employer or talent")
)

// Engine serializes every multi-step operation with a single mutex, so an application
// and its counter update (or an acceptance and its application) are never observed
// half done.
type Engine struct {
	mu sync.Mutex

	store    *store.Store
	ranker   scoring.Ranker
	logger   *zap.Logger
	recorder metrics.Recorder
	now      func() time.Time
	newID    func(prefix string) string
}

type Option func(*Engine)

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

func WithRecorder(r metrics.Recorder) Option {
	return func(e *Engine) {
		if r != nil {
			e.recorder = r
		}
	}
}

func WithRanker(r scoring.Ranker) Option {
	return func(e *Engine) {
		e.ranker = r
	}
}

// WithClock overrides the clock used for creation dates.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithIDGenerator overrides the identifier generator. It receives the entity prefix
// ("job", "app", "inv", "user").
func WithIDGenerator(gen func(prefix string) string) Option {
	return func(e *Engine) {
		if gen != nil {
			e.newID = gen
		}
	}
}

func New(s *store.Store, opts ...Option) *Engine {
	e := &Engine{
		store:    s,
		ranker:   scoring.Ranker{Score: scoring.Score},
		logger:   zap.NewNop(),
		recorder: metrics.Nop{},
		now:      time.Now,
		newID:    newID,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

func (e *Engine) record(operation, outcome string) {
	e.recorder.RecordOperation(operation, outcome)
}
