package geodata

import (
	"context"
	"io"
	"log"
	"sync"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/spatial"
)

// Source provides the raw geospatial datasets. Implementations typically read
// from the database; any dataset may come back empty, in which case the
// built-in campus defaults are used.
type Source interface {
	LuminanceCells(ctx context.Context) ([]LuminanceCell, error)
	EstimateZones(ctx context.Context) ([]EstimateZone, error)
	RoadPoints(ctx context.Context) ([]RoadPoint, error)
	InfrastructurePoints(ctx context.Context) (poles, callBoxes, corridors []spatial.Point, err error)
}

// Context lazily loads each geospatial dataset once and hands out the derived
// samplers and indexes. Concurrent profilers requesting a dataset block on the
// single in-flight load; Invalidate drops the cache after an import so the
// next scan sees fresh data.
type Context struct {
	source Source

	mu sync.Mutex

	lumLoaded bool
	lumErr    error
	lum       LuminanceSampler

	roadLoaded bool
	roadErr    error
	roads      RoadNetwork

	infraLoaded bool
	infraErr    error
	infra       *InfrastructureTable
}

// NewContext wraps a Source.
func NewContext(source Source) *Context {
	return &Context{source: source}
}

// Luminance returns the composed measured-then-estimated sampler.
func (c *Context) Luminance(ctx context.Context) (LuminanceSampler, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.lumLoaded {
		c.lum, c.lumErr = c.loadLuminance(ctx)
		c.lumLoaded = true
	}
	return c.lum, c.lumErr
}

func (c *Context) loadLuminance(ctx context.Context) (LuminanceSampler, error) {
	cells, err := c.source.LuminanceCells(ctx)
	if err != nil {
		return nil, err
	}
	zones, err := c.source.EstimateZones(ctx)
	if err != nil {
		return nil, err
	}
	if len(zones) == 0 {
		zones = DefaultEstimates()
		log.Printf("[GeoContext] no estimate zones in source, using %d built-in zones", len(zones))
	}
	log.Printf("[GeoContext] luminance ready: %d measured cells, %d estimate zones", len(cells), len(zones))
	return NewFallbackSampler(NewGridSampler(cells), NewEstimateSampler(zones)), nil
}

// Roads returns the road segment index.
func (c *Context) Roads(ctx context.Context) (RoadNetwork, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.roadLoaded {
		points, err := c.source.RoadPoints(ctx)
		if err != nil {
			c.roadErr = err
		} else {
			log.Printf("[GeoContext] road network ready: %d segments", len(points))
			c.roads = NewRoadIndex(points)
		}
		c.roadLoaded = true
	}
	return c.roads, c.roadErr
}

// Infrastructure returns the pole / call box / corridor table.
func (c *Context) Infrastructure(ctx context.Context) (*InfrastructureTable, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.infraLoaded {
		c.infra, c.infraErr = c.loadInfrastructure(ctx)
		c.infraLoaded = true
	}
	return c.infra, c.infraErr
}

func (c *Context) loadInfrastructure(ctx context.Context) (*InfrastructureTable, error) {
	poles, boxes, corridors, err := c.source.InfrastructurePoints(ctx)
	if err != nil {
		return nil, err
	}
	if len(poles) == 0 && len(boxes) == 0 && len(corridors) == 0 {
		infra := DefaultInfrastructure()
		log.Printf("[GeoContext] no infrastructure in source, using built-in table (%d poles, %d call boxes, %d corridors)",
			len(infra.Poles), len(infra.CallBoxes), len(infra.Corridors))
		return infra, nil
	}
	log.Printf("[GeoContext] infrastructure ready: %d poles, %d call boxes, %d corridors",
		len(poles), len(boxes), len(corridors))
	return &InfrastructureTable{Poles: poles, CallBoxes: boxes, Corridors: corridors}, nil
}

// Invalidate drops every cached dataset (and cached load error) so the next
// access reloads from the source. Called after a geodata import.
func (c *Context) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lumLoaded, c.lum, c.lumErr = false, nil, nil
	c.roadLoaded, c.roads, c.roadErr = false, nil, nil
	c.infraLoaded, c.infra, c.infraErr = false, nil, nil
	log.Printf("[GeoContext] cache invalidated")
}

// Close releases the underlying source if it holds resources.
func (c *Context) Close() error {
	if closer, ok := c.source.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
