package analytics

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jszwec/csvutil"
	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

const exportSheet = "Data Petani"

// ExportRow is one record flattened to the export columns. Labels double as
// CSV headers, JSON keys and spreadsheet headers.
type ExportRow struct {
	FarmerName    string  `json:"Nama Petani" csv:"Nama Petani"`
	CommodityName string  `json:"Komoditas" csv:"Komoditas"`
	Province      string  `json:"Provinsi" csv:"Provinsi"`
	District      string  `json:"Kabupaten/Kota" csv:"Kabupaten/Kota"`
	Status        string  `json:"Status" csv:"Status"`
	Category      string  `json:"Kategori" csv:"Kategori"`
	EstYieldTon   float64 `json:"Estimasi Panen (Ton)" csv:"Estimasi Panen (Ton)"`
	LandAreaHa    float64 `json:"Luas Lahan (Ha)" csv:"Luas Lahan (Ha)"`
	HarvestDate   string  `json:"Tanggal Panen" csv:"Tanggal Panen"`
	Coordinates   string  `json:"Koordinat" csv:"Koordinat"`
}

// ExportColumns are the column labels in output order.
var ExportColumns = []string{
	"Nama Petani", "Komoditas", "Provinsi", "Kabupaten/Kota", "Status", "Kategori",
	"Estimasi Panen (Ton)", "Luas Lahan (Ha)", "Tanggal Panen", "Koordinat",
}

// Artifact is a named downloadable export.
type Artifact struct {
	FileName    string
	ContentType string
	Body        []byte
}

func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatJSON:
		return "application/json"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatCSV, FormatJSON, FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatHarvestDate renders a harvest date as DD/MM/YYYY, or "-" when absent.
func FormatHarvestDate(r FarmerRecord) string {
	at, ok := r.HarvestTime()
	if !ok {
		return "-"
	}
	return at.Format("02/01/2006")
}

func ToExportRows(records []FarmerRecord) []ExportRow {
	rows := make([]ExportRow, len(records))
	for i, r := range records {
		rows[i] = ExportRow{
			FarmerName:    r.Name,
			CommodityName: r.CommodityName,
			Province:      r.Province,
			District:      r.District,
			Status:        r.Status,
			Category:      r.Category,
			EstYieldTon:   r.EstYieldTon.Value(),
			LandAreaHa:    r.LandArea.Value(),
			HarvestDate:   FormatHarvestDate(r),
			Coordinates: strconv.FormatFloat(r.Position.Lat(), 'f', -1, 64) + ", " +
				strconv.FormatFloat(r.Position.Lon(), 'f', -1, 64),
		}
	}
	return rows
}

// Serialize renders records, in their given order, in the requested format.
func Serialize(records []FarmerRecord, format Format) ([]byte, error) {
	rows := ToExportRows(records)
	switch format {
	case FormatCSV:
		return serializeCSV(rows)
	case FormatJSON:
		return json.MarshalIndent(rows, "", "  ")
	case FormatXLSX:
		return serializeXLSX(rows)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// ExportRecords serializes records into an artifact named after the date of now.
func ExportRecords(records []FarmerRecord, format Format, now time.Time) (*Artifact, error) {
	body, err := Serialize(records, format)
	if err != nil {
		return nil, err
	}
	return &Artifact{
		FileName:    fmt.Sprintf("data-petani-%s.%s", now.Format("2006-01-02"), format),
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}

func serializeCSV(rows []ExportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	enc := csvutil.NewEncoder(w)

	if err := enc.EncodeHeader(ExportRow{}); err != nil {
		return nil, fmt.Errorf("failed to encode csv header: %w", err)
	}
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return nil, fmt.Errorf("failed to encode csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func serializeXLSX(rows []ExportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]any, len(ExportColumns))
	for i, col := range ExportColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []any{
			r.FarmerName, r.CommodityName, r.Province, r.District, r.Status, r.Category,
			r.EstYieldTon, r.LandAreaHa, r.HarvestDate, r.Coordinates,
		}
		if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SetColWidth(exportSheet, "A", "J", 20); err != nil {
		return nil, fmt.Errorf("failed to size columns: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
