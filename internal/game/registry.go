package game

import (
	"fmt"

	"github.com/MaxwellWhoSquats/acex/internal/domain"
)

// Factory builds fresh engines and restores persisted ones for one game.
type Factory interface {
	Kind() Kind
	New(cfg Config, rng Rand) (Engine, error)
	Restore(state []byte) (Engine, error)
}

type Registry struct {
	factories map[Kind]Factory
	rng       Rand
}

func NewRegistry(rng Rand, factories ...Factory) *Registry {
	r := &Registry{factories: make(map[Kind]Factory, len(factories)), rng: rng}
	for _, f := range factories {
		r.factories[f.Kind()] = f
	}
	return r
}

func (r *Registry) factory(kind Kind) (Factory, error) {
	f, ok := r.factories[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown game %q", domain.ErrInvalidInput, kind)
	}
	return f, nil
}

func (r *Registry) New(kind Kind, cfg Config) (Engine, error) {
	f, err := r.factory(kind)
	if err != nil {
		return nil, err
	}
	return f.New(cfg, r.rng)
}

func (r *Registry) Restore(kind Kind, state []byte) (Engine, error) {
	f, err := r.factory(kind)
	if err != nil {
		return nil, err
	}
	e, err := f.Restore(state)
	if err != nil {
		return nil, fmt.Errorf("restore %s round: %w", kind, err)
	}
	return e, nil
}
