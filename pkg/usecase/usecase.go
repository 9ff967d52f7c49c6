package usecase

import (
	"time"

	"github.com/secmon-lab/aegis/pkg/domain/interfaces"
	"github.com/secmon-lab/aegis/pkg/domain/model/config"
)

type UseCases struct {
	repo         interfaces.Repository
	engineConfig *config.Engine
	rnd          interfaces.Rand
	now          func() time.Time
	Assessment   *AssessmentUseCase
}

type Option func(*UseCases)

func WithEngineConfig(cfg *config.Engine) Option {
	return func(uc *UseCases) {
		uc.engineConfig = cfg
	}
}

// WithRand fixes the random source used to pick recommendation templates
func WithRand(rnd interfaces.Rand) Option {
	return func(uc *UseCases) {
		uc.rnd = rnd
	}
}

func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

// New builds the use cases. repo may be nil when only Evaluate is needed.
func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:         repo,
		engineConfig: config.DefaultEngine(),
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Assessment = NewAssessmentUseCase(repo, uc.engineConfig, uc.rnd, uc.now)

	return uc
}
