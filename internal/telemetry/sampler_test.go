package telemetry

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/errors"
	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/logger"
)

// fakeSource counts collection passes and can fail per pass.
type fakeSource struct {
	calls   int
	failAll error
	perCall func(call int) CollectionResult
}

func (f *fakeSource) Collect(_ context.Context, _ []Category) (CollectionResult, error) {
	f.calls++
	if f.failAll != nil {
		return CollectionResult{}, f.failAll
	}
	if f.perCall != nil {
		return f.perCall(f.calls), nil
	}
	return CollectionResult{Records: []Record{{Host: "bmc", Category: CategorySystem, Type: TypeSystem}}}, nil
}

func TestSamplerExactSampleCount(t *testing.T) {
	source := &fakeSource{}
	sampler, err := NewSampler(source, time.Millisecond, 3)
	require.NoError(t, err)
	assert.Equal(t, StateIdle, sampler.State())

	var samples []int
	err = sampler.Run(context.Background(), nil, func(sample int, _ CollectionResult) {
		samples = append(samples, sample)
	})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, samples)
	assert.Equal(t, 3, source.calls)
	assert.Equal(t, 3, sampler.SamplesTaken())
	assert.Equal(t, StateStopped, sampler.State())
}

func TestSamplerSingleShotNeedsNoInterval(t *testing.T) {
	sampler, err := NewSampler(&fakeSource{}, 0, 1)
	require.NoError(t, err)

	done := 0
	err = sampler.Run(context.Background(), nil, func(int, CollectionResult) { done++ })
	require.NoError(t, err)
	assert.Equal(t, 1, done)
}

func TestSamplerRejectsNonPositiveInterval(t *testing.T) {
	_, err := NewSampler(&fakeSource{}, 0, 5)
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidInterval, errors.CodeOf(err))

	_, err = NewSampler(&fakeSource{}, -time.Second, 0)
	require.Error(t, err)
}

func TestSamplerCancellationDuringSleep(t *testing.T) {
	source := &fakeSource{}
	sampler, err := NewSampler(source, time.Hour, 0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())

	first := make(chan struct{})
	go func() {
		// Cancel once the first sample is through and the loop sleeps.
		<-first
		cancel()
	}()

	delivered := 0
	err = sampler.Run(ctx, nil, func(int, CollectionResult) {
		delivered++
		close(first)
	})
	require.NoError(t, err)

	// The sample collected before cancellation was still delivered.
	assert.Equal(t, 1, delivered)
	assert.Equal(t, 1, source.calls)
	assert.Equal(t, StateStopped, sampler.State())
}

func TestSamplerContinuesPastCategoryFailures(t *testing.T) {
	source := &fakeSource{
		perCall: func(call int) CollectionResult {
			if call == 2 {
				return CollectionResult{
					Errors: map[Category]error{
						CategoryStorage: errors.New().New(errors.ErrExtraction),
					},
				}
			}
			return CollectionResult{Records: []Record{{Category: CategorySystem}}}
		},
	}

	sampler, err := NewSampler(source, time.Millisecond, 3)
	require.NoError(t, err)

	delivered := 0
	err = sampler.Run(context.Background(), nil, func(_ int, result CollectionResult) {
		delivered++
	})
	require.NoError(t, err)
	assert.Equal(t, 3, delivered)
}

func TestSamplerLogsCategoryFailures(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetLogLevel(logger.WarnLevel)
	defer logger.Init(false, false)

	source := &fakeSource{
		perCall: func(int) CollectionResult {
			return CollectionResult{
				Errors: map[Category]error{
					CategoryStorage: errors.New().New(errors.ErrExtraction),
				},
			}
		},
	}

	sampler, err := NewSampler(source, 0, 1)
	require.NoError(t, err)
	require.NoError(t, sampler.Run(context.Background(), nil, nil))

	out := buf.String()
	assert.Contains(t, out, "storage")
	assert.Contains(t, out, "Sample collected with category failure")
}

func TestSamplerAbortsOnSourceError(t *testing.T) {
	source := &fakeSource{failAll: errors.New().New(errors.ErrDiscovery)}
	sampler, err := NewSampler(source, time.Millisecond, 3)
	require.NoError(t, err)

	err = sampler.Run(context.Background(), nil, nil)
	require.Error(t, err)
	assert.Equal(t, errors.ErrDiscovery, errors.CodeOf(err))
	assert.Equal(t, StateStopped, sampler.State())
	assert.Zero(t, sampler.SamplesTaken())
}
