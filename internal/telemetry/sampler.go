package telemetry

import (
	"context"
	"time"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/errors"
	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/logger"
)

// State is the sampling session lifecycle.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Source abstracts the Collector so the sampling loop can be tested
// without a live backend.
type Source interface {
	Collect(ctx context.Context, categories []Category) (CollectionResult, error)
}

// Sink receives each completed sample. The sample number starts at 1.
type Sink func(sample int, result CollectionResult)

// Sampler drives a Source on a fixed interval for a bounded or
// unbounded number of samples. A maxSamples of 0 means unbounded; the
// loop then runs until the context is cancelled.
type Sampler struct {
	source       Source
	log          logger.Logger
	interval     time.Duration
	maxSamples   int
	state        State
	samplesTaken int
}

// NewSampler validates the session parameters. The interval must be
// positive unless the session is single-shot (maxSamples == 1), where
// no inter-sample wait ever happens.
func NewSampler(source Source, interval time.Duration, maxSamples int) (*Sampler, error) {
	if interval <= 0 && maxSamples != 1 {
		return nil, errors.New().WithData(errors.ErrInvalidInterval, interval.String())
	}

	return &Sampler{
		source:     source,
		log:        logger.Default(),
		interval:   interval,
		maxSamples: maxSamples,
		state:      StateIdle,
	}, nil
}

// State returns the current lifecycle state.
func (s *Sampler) State() State {
	return s.state
}

// SamplesTaken returns the number of completed collection passes.
func (s *Sampler) SamplesTaken() int {
	return s.samplesTaken
}

// Run executes the sampling loop until the sample count is exhausted or
// the context is cancelled. Each completed sample is handed to the sink
// before the next wait begins, so cancellation never discards a sample
// that was already collected. Per-sample collection failures are logged
// and the loop continues; only a failure to resolve endpoints on the
// very first pass aborts the session.
func (s *Sampler) Run(ctx context.Context, categories []Category, sink Sink) error {
	s.state = StateRunning
	defer func() { s.state = StateStopped }()

	timer := time.NewTimer(s.interval)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		result, err := s.source.Collect(ctx, categories)
		if err != nil {
			return err
		}

		s.samplesTaken++
		if sink != nil {
			sink(s.samplesTaken, result)
		}

		for cat, cerr := range result.Errors {
			s.log.Warn().
				Int("sample", s.samplesTaken).
				Str("category", string(cat)).
				Err(cerr).
				Msg("Sample collected with category failure")
		}

		if s.maxSamples > 0 && s.samplesTaken >= s.maxSamples {
			s.log.Info().
				Int("samples", s.samplesTaken).
				Msg("Sample count reached, stopping")
			return nil
		}

		timer.Reset(s.interval)
		select {
		case <-ctx.Done():
			if !timer.Stop() {
				<-timer.C
			}
			s.log.Info().
				Int("samples", s.samplesTaken).
				Msg("Monitoring cancelled")
			return nil
		case <-timer.C:
		}
	}
}
