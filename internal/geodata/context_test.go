package geodata

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/spatial"
)

type countingSource struct {
	lumCalls   int
	infraCalls int
	infraErr   error
}

func (s *countingSource) LuminanceCells(context.Context) ([]LuminanceCell, error) {
	s.lumCalls++
	return []LuminanceCell{{Lat: 38.9404, Lon: -92.3277, Value: 4.0}}, nil
}

func (s *countingSource) EstimateZones(context.Context) ([]EstimateZone, error) {
	return nil, nil
}

func (s *countingSource) RoadPoints(context.Context) ([]RoadPoint, error) {
	return nil, nil
}

func (s *countingSource) InfrastructurePoints(context.Context) (poles, callBoxes, corridors []spatial.Point, err error) {
	s.infraCalls++
	return nil, nil, nil, s.infraErr
}

func TestContextLoadsOnce(t *testing.T) {
	src := &countingSource{}
	c := NewContext(src)

	first, err := c.Luminance(context.Background())
	require.NoError(t, err)
	second, err := c.Luminance(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, src.lumCalls)
	assert.Same(t, first.(*FallbackSampler), second.(*FallbackSampler))
}

func TestContextEmptyInfrastructureUsesDefaults(t *testing.T) {
	c := NewContext(&countingSource{})

	infra, err := c.Infrastructure(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, infra.Poles)
	assert.NotEmpty(t, infra.CallBoxes)
}

func TestContextPropagatesLoadErrors(t *testing.T) {
	src := &countingSource{infraErr: errors.New("query failed")}
	c := NewContext(src)

	_, err := c.Infrastructure(context.Background())
	assert.Error(t, err)

	// The failed load is cached, not retried.
	_, err = c.Infrastructure(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 1, src.infraCalls)
}

func TestContextInvalidateReloads(t *testing.T) {
	src := &countingSource{}
	c := NewContext(src)

	_, err := c.Luminance(context.Background())
	require.NoError(t, err)
	_, err = c.Infrastructure(context.Background())
	require.NoError(t, err)

	c.Invalidate()

	_, err = c.Luminance(context.Background())
	require.NoError(t, err)
	_, err = c.Infrastructure(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, src.lumCalls)
	assert.Equal(t, 2, src.infraCalls)
}

func TestContextInvalidateClearsCachedError(t *testing.T) {
	src := &countingSource{infraErr: errors.New("query failed")}
	c := NewContext(src)

	_, err := c.Infrastructure(context.Background())
	require.Error(t, err)

	// After the source recovers, an invalidate makes the next load succeed.
	src.infraErr = nil
	c.Invalidate()

	infra, err := c.Infrastructure(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, infra.Poles)
}
