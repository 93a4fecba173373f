package importer_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"physiquist/internal/calc/batch"
	"physiquist/internal/calc/importer"
	"physiquist/internal/formula"
)

func workbook(t *testing.T, rows ...[]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	header := []interface{}{"formula", "target", "symbol", "value", "unit", "symbol", "value", "unit"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	for i, row := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		row := row
		require.NoError(t, f.SetSheetRow("Sheet1", addr, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParseWorkbook(t *testing.T) {
	data := workbook(t,
		[]interface{}{"Force", "F", "m", 2, "kg", "a", 3, ""},
		[]interface{}{},
		[]interface{}{"Ohm's Law", "I", "V", "12", "V", "R", "abc", "Ω"},
		[]interface{}{"", "x"},
	)
	rows, err := importer.ParseWorkbook(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.NoError(t, rows[0].Err)
	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "Force", rows[0].Request.Formula)
	assert.Equal(t, 2.0, rows[0].Request.Inputs["m"].Value)
	assert.Equal(t, "kg", rows[0].Request.Inputs["m"].Unit)

	assert.ErrorIs(t, rows[1].Err, formula.ErrInvalidNumber)
	assert.Equal(t, 4, rows[1].Line)

	assert.Error(t, rows[2].Err)
}

func TestParseWorkbookRejectsRepeatedSymbols(t *testing.T) {
	data := workbook(t, []interface{}{"Force", "F", "m", 2, "kg", "m", 3, "kg"})
	rows, err := importer.ParseWorkbook(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Error(t, rows[0].Err)
	assert.Contains(t, rows[0].Err.Error(), "m given twice")
}

func TestParseWorkbookRejectsEmptySheets(t *testing.T) {
	_, err := importer.ParseWorkbook(bytes.NewReader(workbook(t)))
	assert.ErrorIs(t, err, importer.ErrEmptySheet)

	_, err = importer.ParseWorkbook(bytes.NewReader([]byte("not a workbook")))
	assert.Error(t, err)
}

func TestRunKeepsRowPositions(t *testing.T) {
	data := workbook(t,
		[]interface{}{"Ohm's Law", "I", "V", "12", "V", "R", "bad", "Ω"},
		[]interface{}{"Force", "F", "m", 2, "kg", "a", 3, ""},
	)
	rows, err := importer.ParseWorkbook(bytes.NewReader(data))
	require.NoError(t, err)

	res, err := importer.Run(rows)
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, "InvalidNumber", res.Items[0].Kind)
	assert.Equal(t, 1, res.Items[1].Index)
	assert.Equal(t, 6.0, res.Items[1].Result.SIValue)
}

func TestWriteResults(t *testing.T) {
	rows, err := importer.ParseWorkbook(bytes.NewReader(workbook(t,
		[]interface{}{"Force", "F", "m", 2, "kg", "a", 3, ""},
		[]interface{}{"Force", "a", "F", 1, "N", "m", 0, "kg"},
	)))
	require.NoError(t, err)
	res, err := importer.Run(rows)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, importer.WriteResults(&buf, res.Items))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	out, err := f.GetRows("Results")
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "Formula", out[0][1])
	assert.Equal(t, []string{"1", "Force", "F", "force", "6", "N", "6", "N"}, out[1][:8])
	assert.Contains(t, out[2][len(out[2])-1], "division by zero")
}

func TestHandlerImport(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "requests.xlsx")
	require.NoError(t, err)
	_, err = part.Write(workbook(t, []interface{}{"Force", "F", "m", 2, "kg", "a", 3, ""}))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/solve/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	(&importer.Handler{}).Import(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var res batch.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, 6.0, res.Items[0].Result.SIValue)

	rec = httptest.NewRecorder()
	(&importer.Handler{}).Import(rec, httptest.NewRequest(http.MethodPost, "/api/solve/import", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
