package sheetexport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const testLayout = `
sheets:
  - id: people
    name: People
    title: People report
    columns:
      - field_name: Name
        header: Name
        width: 20
      - field_name: Age
        header: Age
  - id: tags
    name: Tags
    columns:
      - field_name: tag
        header: Tag
`

type person struct {
	Name string
	Age  int
}

type employee struct {
	person
	Team string
}

func openWorkbook(t *testing.T, e *Exporter) *excelize.File {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, e.ToWriter(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func cell(t *testing.T, f *excelize.File, sheet, axis string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, axis)
	require.NoError(t, err)
	return v
}

func TestToWriter_StructsAndMaps(t *testing.T) {
	e, err := NewExporterFromYamlConfig(testLayout)
	require.NoError(t, err)

	e.BindSheetData("people", []person{{"Ada", 36}, {"Alan", 41}}).
		BindSheetData("tags", []map[string]interface{}{{"tag": "vip"}, {"other": "x"}})

	f := openWorkbook(t, e)
	assert.Equal(t, []string{"People", "Tags"}, f.GetSheetList())

	assert.Equal(t, "People report", cell(t, f, "People", "A1"))
	assert.Equal(t, "Name", cell(t, f, "People", "A2"))
	assert.Equal(t, "Age", cell(t, f, "People", "B2"))
	assert.Equal(t, "Ada", cell(t, f, "People", "A3"))
	assert.Equal(t, "41", cell(t, f, "People", "B4"))

	assert.Equal(t, "Tag", cell(t, f, "Tags", "A1"))
	assert.Equal(t, "vip", cell(t, f, "Tags", "A2"))
	assert.Equal(t, "", cell(t, f, "Tags", "A3"))

	width, err := f.GetColWidth("People", "A")
	require.NoError(t, err)
	assert.Equal(t, 20.0, width)
}

func TestToWriter_PromotedFieldsAndPointers(t *testing.T) {
	e, err := NewExporterFromYamlConfig(testLayout)
	require.NoError(t, err)
	e, err = e.Only("people")
	require.NoError(t, err)

	e.BindSheetData("people", []*employee{{person: person{Name: "Grace", Age: 85}, Team: "Navy"}})

	f := openWorkbook(t, e)
	assert.Equal(t, []string{"People"}, f.GetSheetList())
	assert.Equal(t, "Grace", cell(t, f, "People", "A3"))
	assert.Equal(t, "85", cell(t, f, "People", "B3"))
}

func TestToWriter_NoDataWritesHeaderOnly(t *testing.T) {
	e, err := NewExporterFromYamlConfig(testLayout)
	require.NoError(t, err)

	f := openWorkbook(t, e)
	rows, err := f.GetRows("People")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestToWriter_RejectsNonSlice(t *testing.T) {
	e, err := NewExporterFromYamlConfig(testLayout)
	require.NoError(t, err)

	e.BindSheetData("people", person{Name: "Ada"})
	err = e.ToWriter(&bytes.Buffer{})
	assert.ErrorContains(t, err, "must be a slice")
}

func TestNewExporterFromYamlConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		msg  string
	}{
		{"malformed", "sheets: [", "failed to parse yaml config"},
		{"no sheets", "sheets: []", "no sheets"},
		{"missing name", "sheets:\n  - id: a\n", "needs both id and name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewExporterFromYamlConfig(tt.yaml)
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestOnly_UnknownSheet(t *testing.T) {
	e, err := NewExporterFromYamlConfig(testLayout)
	require.NoError(t, err)

	_, err = e.Only("missing")
	assert.EqualError(t, err, `sheet "missing" not declared`)
}
