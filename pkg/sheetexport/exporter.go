// Package sheetexport writes tabular data to XLSX workbooks whose sheet and
// column layout is declared in YAML and whose rows are bound at runtime.
package sheetexport

import (
	"fmt"
	"io"
	"reflect"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// ContentType is the MIME type of the produced workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportTemplate represents the YAML structure.
type ReportTemplate struct {
	Sheets []SheetTemplate `yaml:"sheets"`
}

// SheetTemplate represents a sheet in the YAML.
type SheetTemplate struct {
	ID      string         `yaml:"id"`
	Name    string         `yaml:"name"`
	Title   string         `yaml:"title"`
	Columns []ColumnConfig `yaml:"columns"`
}

// ColumnConfig defines a column in a sheet.
type ColumnConfig struct {
	FieldName string  `yaml:"field_name"` // Struct field name or map key
	Header    string  `yaml:"header"`
	Width     float64 `yaml:"width"`
}

// Exporter binds data to the sheets of a template and writes the workbook.
type Exporter struct {
	template *ReportTemplate
	// data holds data bound to sheet IDs
	data map[string]interface{}
}

// NewExporterFromYamlConfig parses a YAML layout.
func NewExporterFromYamlConfig(yamlConfig string) (*Exporter, error) {
	var tmpl ReportTemplate
	if err := yaml.Unmarshal([]byte(yamlConfig), &tmpl); err != nil {
		return nil, fmt.Errorf("failed to parse yaml config: %w", err)
	}
	if len(tmpl.Sheets) == 0 {
		return nil, fmt.Errorf("yaml config declares no sheets")
	}
	for i, s := range tmpl.Sheets {
		if s.ID == "" || s.Name == "" {
			return nil, fmt.Errorf("sheet %d needs both id and name", i)
		}
	}
	return &Exporter{template: &tmpl, data: make(map[string]interface{})}, nil
}

// Only keeps the sheet with the given ID.
func (e *Exporter) Only(sheetID string) (*Exporter, error) {
	for _, s := range e.template.Sheets {
		if s.ID == sheetID {
			return &Exporter{
				template: &ReportTemplate{Sheets: []SheetTemplate{s}},
				data:     e.data,
			}, nil
		}
	}
	return nil, fmt.Errorf("sheet %q not declared", sheetID)
}

// BindSheetData binds a slice of structs (or of map[string]interface{}) to
// the sheet with the given ID.
func (e *Exporter) BindSheetData(sheetID string, data interface{}) *Exporter {
	e.data[sheetID] = data
	return e
}

// ToWriter builds the workbook and writes it to w.
func (e *Exporter) ToWriter(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E0E0E0"}},
	})
	if err != nil {
		return err
	}
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return err
	}

	for i, sheet := range e.template.Sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return err
		}
		if err := e.writeSheet(f, sheet, headerStyle, titleStyle); err != nil {
			return fmt.Errorf("sheet %s: %w", sheet.Name, err)
		}
	}

	return f.Write(w)
}

func (e *Exporter) writeSheet(f *excelize.File, sheet SheetTemplate, headerStyle, titleStyle int) error {
	sw, err := f.NewStreamWriter(sheet.Name)
	if err != nil {
		return err
	}

	for i, col := range sheet.Columns {
		if col.Width > 0 {
			if err := sw.SetColWidth(i+1, i+1, col.Width); err != nil {
				return err
			}
		}
	}

	row := 1
	if sheet.Title != "" {
		if err := sw.SetRow("A1", []interface{}{excelize.Cell{StyleID: titleStyle, Value: sheet.Title}}); err != nil {
			return err
		}
		row++
	}

	header := make([]interface{}, len(sheet.Columns))
	for i, col := range sheet.Columns {
		header[i] = excelize.Cell{StyleID: headerStyle, Value: col.Header}
	}
	if err := sw.SetRow(cellName(row), header); err != nil {
		return err
	}
	row++

	records, err := toRecords(e.data[sheet.ID])
	if err != nil {
		return err
	}
	for _, rec := range records {
		values := make([]interface{}, len(sheet.Columns))
		for i, col := range sheet.Columns {
			values[i] = rec.field(col.FieldName)
		}
		if err := sw.SetRow(cellName(row), values); err != nil {
			return err
		}
		row++
	}

	return sw.Flush()
}

func cellName(row int) string {
	name, _ := excelize.CoordinatesToCellName(1, row)
	return name
}

// record is one bound row: a struct value or a map.
type record struct {
	v reflect.Value
}

func (r record) field(name string) interface{} {
	switch r.v.Kind() {
	case reflect.Map:
		val := r.v.MapIndex(reflect.ValueOf(name))
		if !val.IsValid() {
			return nil
		}
		return val.Interface()
	case reflect.Struct:
		val := r.v.FieldByName(name)
		if !val.IsValid() || !val.CanInterface() {
			return nil
		}
		return val.Interface()
	}
	return nil
}

func toRecords(data interface{}) ([]record, error) {
	if data == nil {
		return nil, nil
	}
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return nil, fmt.Errorf("bound data must be a slice, got %T", data)
	}

	records := make([]record, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		item := v.Index(i)
		for item.Kind() == reflect.Ptr || item.Kind() == reflect.Interface {
			if item.IsNil() {
				break
			}
			item = item.Elem()
		}
		switch item.Kind() {
		case reflect.Struct:
		case reflect.Map:
			if item.Type().Key().Kind() != reflect.String {
				return nil, fmt.Errorf("map rows need string keys, got %s", item.Type())
			}
		default:
			return nil, fmt.Errorf("unsupported row type %s", item.Type())
		}
		records = append(records, record{v: item})
	}
	return records, nil
}
