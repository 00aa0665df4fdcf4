package lotto

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

// Engine produces draws for game profiles.
//
// RNG is the ambient generator used by UniformRandom draws, by the main pool
// of FrequencyWeighted draws and by their secondary pool. TimeSeeded draws
// never touch it: each one builds its own generator from a fresh spacetime
// seed. Aux feeds the spatial half of that seed.
//
// An Engine is safe for concurrent use; draws on the shared sources are
// serialized.
type Engine struct {
	RNG      RandomSource
	Aux      RandomSource
	Now      func() time.Time
	Profiles ProfileLookup

	mu sync.Mutex
}

// NewEngine creates an engine over rng and aux. Nil sources default to
// crypto-backed ones; profiles resolve to the built-in A and B.
func NewEngine(rng, aux RandomSource) *Engine {
	if rng == nil {
		rng = DefaultRNG()
	}
	if aux == nil {
		aux = DefaultRNG()
	}
	return &Engine{RNG: rng, Aux: aux, Now: time.Now, Profiles: builtinLookup{}}
}

// PredictByID resolves id through the engine's profiles and draws once.
func (e *Engine) PredictByID(id string, s Strategy) (DrawResult, error) {
	lookup := e.Profiles
	if lookup == nil {
		lookup = builtinLookup{}
	}
	p, ok := lookup.Lookup(id)
	if !ok {
		return DrawResult{}, fmt.Errorf("%w: %q", ErrUnknownProfile, id)
	}
	return e.Predict(p, s)
}

// Predict draws one result for p under strategy s.
// Both returned sequences are sorted ascending, duplicate-free and in range.
func (e *Engine) Predict(p GameProfile, s Strategy) (DrawResult, error) {
	if err := p.Validate(); err != nil {
		return DrawResult{}, err
	}

	switch s {
	case TimeSeeded:
		return e.predictTimeSeeded(p)
	case FrequencyWeighted:
		return e.predictWeighted(p)
	case UniformRandom:
		return e.predictUniform(p)
	default:
		return DrawResult{}, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}
}

func (e *Engine) predictTimeSeeded(p GameProfile) (DrawResult, error) {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}

	e.mu.Lock()
	material := NewSeedMaterial(now(), e.auxSource())
	e.mu.Unlock()

	seed := DeriveSeed(material)
	r := rand.New(NewSeededRNG(seed))
	return DrawResult{
		Profile:   p.ID,
		Strategy:  TimeSeeded,
		Seed:      &seed,
		Main:      sampleUniform(r, p.MainRange, p.MainCount),
		Secondary: sampleUniform(r, p.SecondaryRange, p.SecondaryCount),
	}, nil
}

func (e *Engine) predictUniform(p GameProfile) (DrawResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := rand.New(e.ambientSource())
	return DrawResult{
		Profile:   p.ID,
		Strategy:  UniformRandom,
		Main:      sampleUniform(r, p.MainRange, p.MainCount),
		Secondary: sampleUniform(r, p.SecondaryRange, p.SecondaryCount),
	}, nil
}

func (e *Engine) predictWeighted(p GameProfile) (DrawResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	src := e.ambientSource()
	mainNums, err := sampleHot(src, p.MainRange, p.MainCount)
	if err != nil {
		return DrawResult{}, fmt.Errorf("weighted main draw: %w", err)
	}
	// the curve only biases main numbers
	secondary := sampleUniform(rand.New(src), p.SecondaryRange, p.SecondaryCount)
	return DrawResult{
		Profile:   p.ID,
		Strategy:  FrequencyWeighted,
		Main:      mainNums,
		Secondary: secondary,
	}, nil
}

func (e *Engine) ambientSource() RandomSource {
	if e.RNG == nil {
		e.RNG = DefaultRNG()
	}
	return e.RNG
}

func (e *Engine) auxSource() RandomSource {
	if e.Aux == nil {
		e.Aux = DefaultRNG()
	}
	return e.Aux
}
