package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"

	"physiquist/internal/formula"
	"physiquist/internal/present"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		arg   string
		sym   string
		value float64
		unit  string
	}{
		{"m=2kg", "m", 2, "kg"},
		{"R=4 kΩ", "R", 4, "kΩ"},
		{"x=-1.5e3 m", "x", -1500, "m"},
		{"θ=.5rad", "θ", 0.5, "rad"},
		{"a=3", "a", 3, ""},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			sym, in, err := parseAssignment(tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.sym, sym)
			assert.InDelta(t, tt.value, in.Value, 1e-12)
			assert.Equal(t, tt.unit, in.Unit)
		})
	}

	_, _, err := parseAssignment("m")
	assert.Error(t, err)
	_, _, err = parseAssignment("=3")
	assert.Error(t, err)
	_, _, err = parseAssignment("m=abc")
	assert.ErrorIs(t, err, formula.ErrInvalidNumber)
}

func TestParseRequestRejectsDuplicates(t *testing.T) {
	_, err := parseRequest("Force", "F", []string{"m=2", "m=3"}, "")
	assert.Error(t, err)

	_, err = parseRequest("Force", "F", []string{"m=2"}, "SI,CGS")
	assert.Error(t, err)
}

func TestSolveCommand(t *testing.T) {
	out, err := run(t, "solve", "Force", "F", "m=2kg", "a=3")
	require.NoError(t, err)
	assert.Contains(t, out, "Force")
	assert.Contains(t, out, "6.0000 N")
	assert.Contains(t, out, "lbf")

	out, err = run(t, "solve", "Force", "F", "m=2kg", "a=3", "--system", "FPS")
	require.NoError(t, err)
	assert.NotContains(t, out, "6.0000 N")
	assert.Contains(t, out, "1.3489 lbf")
}

func TestSolveCommandJSON(t *testing.T) {
	out, err := run(t, "solve", "Ohm's Law", "I", "V=12V", "R=4", "--json")
	require.NoError(t, err)

	var res present.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "I", res.Target)
	assert.InDelta(t, 3.0, res.SIValue, 1e-12)
	assert.Len(t, res.Entries, 3)
}

func TestSolveCommandErrors(t *testing.T) {
	_, err := run(t, "solve", "Warp Drive", "v", "x=1")
	assert.ErrorIs(t, err, formula.ErrUnknownFormula)

	_, err = run(t, "solve", "Force", "F", "m=2")
	assert.ErrorIs(t, err, formula.ErrMissingVariable)

	_, err = run(t, "solve", "Force", "a", "F=10", "m=0")
	assert.ErrorIs(t, err, formula.ErrDivisionUndefined)

	_, err = run(t, "solve", "Force")
	assert.Error(t, err)
}

func TestCatalogCommands(t *testing.T) {
	out, err := run(t, "formulas", "--category", "Optics")
	require.NoError(t, err)
	assert.Contains(t, out, "Snell's Law")
	assert.NotContains(t, out, "Ohm's Law")

	_, err = run(t, "formulas", "--category", "Alchemy")
	assert.Error(t, err)

	out, err = run(t, "formula", "ohm's law")
	require.NoError(t, err)
	assert.Contains(t, out, "V = I * R")
	assert.Contains(t, out, "kΩ")
	assert.Contains(t, out, "Solvable for: V, I, R")

	out, err = run(t, "units", "current")
	require.NoError(t, err)
	assert.Contains(t, out, "SI: A")
	assert.Contains(t, out, "mA")

	_, err = run(t, "units", "flux")
	assert.Error(t, err)
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "requests.xlsx")
	out := filepath.Join(dir, "results.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"formula", "target", "symbol", "value", "unit", "symbol", "value", "unit"},
		{"Force", "F", "m", 2, "kg", "a", 3, ""},
		{"Ohm's Law", "I", "V", 12, "V", "R", 4, "Ω"},
	}
	for i, row := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := row
		require.NoError(t, f.SetSheetRow("Sheet1", addr, &row))
	}
	require.NoError(t, f.SaveAs(in))
	require.NoError(t, f.Close())

	text, err := run(t, "batch", in, "--out", out)
	require.NoError(t, err)
	assert.Contains(t, text, "6.0000 N")
	assert.Contains(t, text, "3.0000 A")

	res, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer res.Close()
	got, err := res.GetRows("Results")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestBatchCommandReportsFailures(t *testing.T) {
	in := filepath.Join(t.TempDir(), "requests.xlsx")
	f := excelize.NewFile()
	header := []interface{}{"formula", "target", "symbol", "value", "unit"}
	row := []interface{}{"Force", "F", "m", 2, "kg"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &row))
	require.NoError(t, f.SaveAs(in))
	require.NoError(t, f.Close())

	text, err := run(t, "batch", in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1")
	assert.Contains(t, text, "missing variable")
}

func TestReportCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "force.pdf")
	_, err := run(t, "report", "Force", "F", "m=2kg", "a=3", "--out", out, "--project", "Lab 3")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	missing := filepath.Join(t.TempDir(), "missing.pdf")
	_, err = run(t, "report", "Force", "F", "m=2kg", "--out", missing)
	assert.ErrorIs(t, err, formula.ErrMissingVariable)
	assert.NoFileExists(t, missing)
}

func TestTokenCommands(t *testing.T) {
	t.Setenv("TOKEN_KEY", "secret")
	out, err := run(t, "token", "--subject", "lab", "--env", filepath.Join(t.TempDir(), "none.env"))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "."), 3)

	_, err = run(t, "token", "--env", filepath.Join(t.TempDir(), "none.env"))
	assert.Error(t, err)

	out, err = run(t, "hash-key", "letmein")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(strings.TrimSpace(out)), []byte("letmein")))
}

func TestUnknownLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "formulas")
	assert.Error(t, err)
}
