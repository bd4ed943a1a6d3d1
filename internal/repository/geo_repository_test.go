package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/database"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/geodata"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/spatial"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func TestGeoRepositoryInfrastructureRoundTrip(t *testing.T) {
	repo := NewGeoRepository(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.InsertInfrastructure(ctx, geodata.KindLightPole,
		spatial.Point{Name: "Light - Lot C2 East", Lat: 38.9380, Lon: -92.3351}))
	require.NoError(t, repo.InsertInfrastructure(ctx, geodata.KindCallBox,
		spatial.Point{Name: "Call Box - Lot C2", Lat: 38.9381, Lon: -92.3350}))

	poles, boxes, corridors, err := repo.InfrastructurePoints(ctx)
	require.NoError(t, err)
	require.Len(t, poles, 1)
	assert.Equal(t, "Light - Lot C2 East", poles[0].Name)
	require.Len(t, boxes, 1)
	assert.Equal(t, "Call Box - Lot C2", boxes[0].Name)
	assert.Empty(t, corridors)
}

func TestGeoRepositoryRoadPointsRoundTrip(t *testing.T) {
	repo := NewGeoRepository(testDB(t))
	ctx := context.Background()

	in := []geodata.RoadPoint{
		{Name: "Conley Ave", ClassCode: "S1200", Lat: 38.9425, Lon: -92.3265},
		{Name: "Lot C2 Access", ClassCode: "S1780", Lat: 38.9380, Lon: -92.3351},
	}
	require.NoError(t, repo.InsertRoadPoints(ctx, in))

	out, err := repo.RoadPoints(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, in, out)
}

func TestGeoRepositoryLuminanceRoundTrip(t *testing.T) {
	repo := NewGeoRepository(testDB(t))
	ctx := context.Background()

	in := []geodata.LuminanceCell{{Lat: 38.9380, Lon: -92.3350, Value: 0.9}}
	require.NoError(t, repo.InsertLuminanceCells(ctx, in))

	out, err := repo.LuminanceCells(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestGeoRepositoryEmptyTables(t *testing.T) {
	repo := NewGeoRepository(testDB(t))
	ctx := context.Background()

	cells, err := repo.LuminanceCells(ctx)
	require.NoError(t, err)
	assert.Empty(t, cells)

	points, err := repo.RoadPoints(ctx)
	require.NoError(t, err)
	assert.Empty(t, points)
}
