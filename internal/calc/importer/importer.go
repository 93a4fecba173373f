// Package importer reads calculation requests from spreadsheets and writes results
// back as spreadsheets.
//
// A request sheet has a header row followed by one request per row:
//
//	formula | target | symbol | value | unit | symbol | value | unit | ...
package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"physiquist/internal/calc"
	"physiquist/internal/calc/batch"
	"physiquist/internal/formula"
	"physiquist/internal/present"
	"physiquist/internal/solver"
)

var ErrEmptySheet = errors.New("importer: sheet has no requests")

// Row is one request read from a sheet. Err is set when the row could not be turned
// into a request; the row is still reported so callers can show it.
type Row struct {
	Line    int
	Request calc.Request
	Err     error
}

// ParseWorkbook reads the first sheet of an xlsx workbook.
func ParseWorkbook(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("importer: open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("importer: read %s: %w", sheet, err)
	}

	var out []Row
	for i := 1; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		out = append(out, parseRow(i+1, rows[i]))
	}
	if len(out) == 0 {
		return nil, ErrEmptySheet
	}
	return out, nil
}

func parseRow(line int, row []string) Row {
	req := calc.Request{Request: solver.Request{Inputs: make(map[string]solver.Input)}}
	req.Formula = cell(row, 0)
	req.Target = cell(row, 1)
	if req.Formula == "" || req.Target == "" {
		return Row{Line: line, Request: req, Err: fmt.Errorf("importer: row %d: formula and target are required", line)}
	}
	for col := 2; col < len(row); col += 3 {
		sym := cell(row, col)
		if sym == "" {
			continue
		}
		if _, dup := req.Inputs[sym]; dup {
			return Row{Line: line, Request: req, Err: fmt.Errorf("importer: row %d: %s given twice", line, sym)}
		}
		in, err := solver.ParseInput(cell(row, col+1), cell(row, col+2))
		if err != nil {
			return Row{Line: line, Request: req, Err: &formula.Error{
				Formula:  req.Formula,
				Target:   req.Target,
				Variable: sym,
				Err:      formula.ErrInvalidNumber,
			}}
		}
		req.Inputs[sym] = in
	}
	return Row{Line: line, Request: req}
}

// Run calculates every parsed row. Rows that failed to parse are reported as failed
// items at their position.
func Run(rows []Row) (batch.Result, error) {
	var in batch.Input
	var pos []int
	for i, r := range rows {
		if r.Err == nil {
			in.Items = append(in.Items, r.Request)
			pos = append(pos, i)
		}
	}

	items := make([]batch.Item, len(rows))
	for i, r := range rows {
		if r.Err != nil {
			items[i] = batch.Failure(i, r.Request, r.Err)
		}
	}
	if len(in.Items) > 0 {
		res, err := batch.Calculate(in)
		if err != nil {
			return batch.Result{}, err
		}
		for j, it := range res.Items {
			it.Index = pos[j]
			items[pos[j]] = it
		}
	}

	out := batch.Result{Count: len(items), Items: items}
	for _, it := range items {
		if it.Failed() {
			out.Failed++
		}
	}
	return out, nil
}

// WriteResults writes items as an xlsx workbook with one row per item and a value and
// unit column per unit system.
func WriteResults(w io.Writer, items []batch.Item) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Results"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	header := []interface{}{"#", "Formula", "Target", "Kind"}
	for _, sys := range present.AllSystems() {
		header = append(header, string(sys)+" value", string(sys)+" unit")
	}
	header = append(header, "Error")
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, it := range items {
		row := []interface{}{it.Index + 1, it.Request.Formula, it.Request.Target}
		if it.Result != nil {
			row = append(row, it.Result.Kind.String())
			for _, sys := range present.AllSystems() {
				if e, ok := entry(it.Result.Entries, sys); ok {
					row = append(row, e.Value, e.Unit)
				} else {
					row = append(row, "", "")
				}
			}
			row = append(row, "")
		} else {
			row = append(row, "")
			for range present.AllSystems() {
				row = append(row, "", "")
			}
			row = append(row, it.Error)
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, addr, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func entry(entries []present.Entry, sys present.System) (present.Entry, bool) {
	for _, e := range entries {
		if e.System == sys {
			return e, true
		}
	}
	return present.Entry{}, false
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
