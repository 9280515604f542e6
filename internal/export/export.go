package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/schollz/progressbar/v3"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/tastebud-labs/foodadmin/internal/models"
	"github.com/tastebud-labs/foodadmin/internal/xerrors"
)

// Row is the flat export record per restaurant.
type Row struct {
	ID              string  `parquet:"name=id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Name            string  `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Category        string  `parquet:"name=category, type=BYTE_ARRAY, convertedtype=UTF8"`
	Address         string  `parquet:"name=address, type=BYTE_ARRAY, convertedtype=UTF8"`
	OpeningTime     string  `parquet:"name=opening_time, type=BYTE_ARRAY, convertedtype=UTF8"`
	ClosingTime     string  `parquet:"name=closing_time, type=BYTE_ARRAY, convertedtype=UTF8"`
	Rating          float64 `parquet:"name=rating, type=DOUBLE"`
	TaxRate         float64 `parquet:"name=tax_rate, type=DOUBLE"`
	LocationAddress string  `parquet:"name=location_address, type=BYTE_ARRAY, convertedtype=UTF8"`
	Latitude        float64 `parquet:"name=latitude, type=DOUBLE"`
	Longitude       float64 `parquet:"name=longitude, type=DOUBLE"`
	SubAdminName    string  `parquet:"name=sub_admin_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Active          bool    `parquet:"name=active, type=BOOLEAN"`
	Subcategories   int32   `parquet:"name=subcategories, type=INT32"`
}

func Rows(restaurants []models.Restaurant) []Row {
	rows := make([]Row, 0, len(restaurants))
	for _, r := range restaurants {
		rows = append(rows, Row{
			ID:              r.ID,
			Name:            r.Name,
			Category:        r.Category,
			Address:         r.Address,
			OpeningTime:     r.OpeningTime,
			ClosingTime:     r.ClosingTime,
			Rating:          r.Rating,
			TaxRate:         r.TaxRate,
			LocationAddress: r.LocationAddress,
			Latitude:        r.Latitude,
			Longitude:       r.Longitude,
			SubAdminName:    r.SubAdminName,
			Active:          r.Active,
			Subcategories:   int32(r.SubcategoryCount()),
		})
	}
	return rows
}

var csvHeader = []string{
	"id", "name", "category", "address", "opening_time", "closing_time",
	"rating", "tax_rate", "location_address", "latitude", "longitude",
	"sub_admin_name", "active", "subcategories",
}

// Run writes the collection to cfg.ExportPath in cfg.ExportFormat and,
// when an S3 bucket is configured, uploads the produced file there
// under the same key.
func Run(cfg *models.Config, restaurants []models.Restaurant, bar *progressbar.ProgressBar) error {
	rows := Rows(restaurants)

	switch cfg.ExportFormat {
	case "csv":
		if err := writeCSVFile(cfg.ExportPath, rows, bar); err != nil {
			return err
		}
	case "parquet":
		if err := writeParquetFile(cfg.ExportPath, rows, bar); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported export format %q", cfg.ExportFormat)
	}

	if cfg.S3Bucket != "" {
		return upload(cfg)
	}
	return nil
}

func writeCSVFile(path string, rows []Row, bar *progressbar.ProgressBar) error {
	file, err := os.Create(path)
	if err != nil {
		return xerrors.Wrap(err, "creating export file")
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(csvHeader); err != nil {
		return xerrors.Wrap(err, "writing csv header")
	}
	for _, row := range rows {
		record := []string{
			row.ID, row.Name, row.Category, row.Address,
			row.OpeningTime, row.ClosingTime,
			formatFloat(row.Rating), formatFloat(row.TaxRate),
			row.LocationAddress,
			formatFloat(row.Latitude), formatFloat(row.Longitude),
			row.SubAdminName,
			strconv.FormatBool(row.Active),
			strconv.Itoa(int(row.Subcategories)),
		}
		if err := w.Write(record); err != nil {
			return xerrors.Wrap(err, "writing csv record")
		}
		step(bar)
	}
	w.Flush()
	return w.Error()
}

func writeParquetFile(path string, rows []Row, bar *progressbar.ProgressBar) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return xerrors.Wrap(err, "creating parquet file")
	}
	defer fw.Close()

	pw, err := writer.NewParquetWriter(fw, new(Row), 4)
	if err != nil {
		return xerrors.Wrap(err, "creating parquet writer")
	}
	for _, row := range rows {
		if err := pw.Write(row); err != nil {
			return xerrors.Wrap(err, "writing parquet record")
		}
		step(bar)
	}
	if err := pw.WriteStop(); err != nil {
		return xerrors.Wrap(err, "finalizing parquet file")
	}
	return nil
}

func upload(cfg *models.Config) error {
	factory, err := NewS3WriterFactory(cfg.S3Region)
	if err != nil {
		return err
	}
	w, err := factory.NewWriter(cfg.S3Bucket, cfg.ExportPath)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(cfg.ExportPath)
	if err != nil {
		return xerrors.Wrap(err, "reading export file")
	}
	if _, err := w.Write(data); err != nil {
		return xerrors.Wrap(err, "buffering upload")
	}
	return w.Close()
}

func step(bar *progressbar.ProgressBar) {
	if bar != nil {
		bar.Add(1)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
