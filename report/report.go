package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ghodss/yaml"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/notargets/gonozzle/engine"
	"github.com/notargets/gonozzle/types"
)

const (
	BoilOffKey   = "boil_off_position"
	NoBoilOff    = "none"
	StationSheet = "stations"
	SummarySheet = "summary"
)

// Document is the column oriented form of a heating result, one key per station field plus BoilOffKey
type Document map[string]interface{}

func NewDocument(res *engine.HeatingResult) (doc Document, err error) {
	doc = make(Document, len(engine.StationFields)+1)
	for _, name := range engine.StationFields {
		var col []float64
		if col, err = res.Column(name); err != nil {
			return nil, err
		}
		doc[name] = col
	}
	doc[BoilOffKey] = NoBoilOff
	if res.Boiled() {
		doc[BoilOffKey] = *res.BoilOffPosition
	}
	return
}

func WriteJSON(w io.Writer, res *engine.HeatingResult) (err error) {
	var doc Document
	if doc, err = NewDocument(res); err != nil {
		return
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func WriteYAML(w io.Writer, res *engine.HeatingResult) (err error) {
	var (
		doc  Document
		data []byte
	)
	if doc, err = NewDocument(res); err != nil {
		return
	}
	if data, err = yaml.Marshal(doc); err != nil {
		return
	}
	_, err = w.Write(data)
	return
}

/*
WriteXLSX writes a workbook with the stations sheet, a header row of field names followed by one row
per station in marching order, and a summary sheet holding the boil-off position.
*/
func WriteXLSX(path string, res *engine.HeatingResult) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err = f.SetSheetName("Sheet1", StationSheet); err != nil {
		return
	}
	header := make([]interface{}, len(engine.StationFields))
	for i, name := range engine.StationFields {
		header[i] = name
	}
	if err = f.SetSheetRow(StationSheet, "A1", &header); err != nil {
		return
	}
	for i, sr := range res.Stations {
		var (
			row  = make([]interface{}, len(engine.StationFields))
			cell string
		)
		for j, name := range engine.StationFields {
			if row[j], err = sr.Field(name); err != nil {
				return
			}
		}
		if cell, err = excelize.CoordinatesToCellName(1, i+2); err != nil {
			return
		}
		if err = f.SetSheetRow(StationSheet, cell, &row); err != nil {
			return
		}
	}
	if _, err = f.NewSheet(SummarySheet); err != nil {
		return
	}
	var boilOff interface{} = NoBoilOff
	if res.Boiled() {
		boilOff = *res.BoilOffPosition
	}
	if err = f.SetSheetRow(SummarySheet, "A1", &[]interface{}{BoilOffKey, boilOff}); err != nil {
		return
	}
	if err = f.SetSheetRow(SummarySheet, "A2", &[]interface{}{"stations", len(res.Stations)}); err != nil {
		return
	}
	return f.SaveAs(path)
}

// Save picks the format from the file extension: .json, .yaml, .yml or .xlsx
func Save(path string, res *engine.HeatingResult) (err error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xlsx":
		err = WriteXLSX(path, res)
	case ".json", ".yaml", ".yml":
		var file *os.File
		if file, err = os.Create(path); err != nil {
			return
		}
		if ext == ".json" {
			err = WriteJSON(file, res)
		} else {
			err = WriteYAML(file, res)
		}
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	default:
		return fmt.Errorf("%w: unknown result format %q, use .json, .yaml or .xlsx", types.ErrConfiguration, ext)
	}
	if err == nil {
		log.WithFields(log.Fields{"file": path, "stations": len(res.Stations)}).Info("wrote heating result")
	}
	return
}
