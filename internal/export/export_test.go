package export_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastebud-labs/foodadmin/internal/export"
	"github.com/tastebud-labs/foodadmin/internal/models"
)

func sample() []models.Restaurant {
	return []models.Restaurant{
		{
			ID: "r1", Name: "Burger Barn", Category: "Fast Food",
			Address: "12 High Street", OpeningTime: "09:00", ClosingTime: "22:00",
			Rating: 4.5, TaxRate: 10, Active: true,
			Subcategories: []models.Subcategory{{ID: "s1", Name: "Burgers"}},
		},
		{
			ID: "r2", Name: "Sushi Spot", Category: "N/A",
			OpeningTime: "N/A", ClosingTime: "N/A", Active: false,
		},
	}
}

func TestRowsFlattenRestaurants(t *testing.T) {
	rows := export.Rows(sample())
	require.Len(t, rows, 2)
	assert.Equal(t, "Burger Barn", rows[0].Name)
	assert.Equal(t, int32(1), rows[0].Subcategories)
	assert.False(t, rows[1].Active)
	assert.Equal(t, int32(0), rows[1].Subcategories)
}

func TestRunWritesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restaurants.csv")
	cfg := &models.Config{ExportFormat: "csv", ExportPath: path}

	require.NoError(t, export.Run(cfg, sample(), nil))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "id", records[0][0])
	assert.Equal(t, "Burger Barn", records[1][1])
	assert.Equal(t, "4.5", records[1][6])
	assert.Equal(t, "true", records[1][12])
	assert.Equal(t, "false", records[2][12])
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	cfg := &models.Config{ExportFormat: "xml", ExportPath: filepath.Join(t.TempDir(), "out")}
	assert.Error(t, export.Run(cfg, sample(), nil))
}
