package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"physiquist/internal/calc"
	"physiquist/internal/formula"
	"physiquist/internal/present"
)

type Input struct {
	Project string       `json:"project"`
	Author  string       `json:"author"`
	Title   string       `json:"title"`
	Notes   string       `json:"notes"`
	Request calc.Request `json:"request"`

	Date time.Time `json:"-"`
}

// greek spells out the symbols the core fonts cannot encode. The micro sign has a
// cp1252 code point, the Greek mu does not.
var greek = strings.NewReplacer(
	"α", "alpha", "β", "beta", "ε", "epsilon", "η", "eta", "θ", "theta",
	"λ", "lambda", "μ", "µ", "π", "pi", "ρ", "rho", "σ", "sigma", "τ", "tau",
	"φ", "phi", "ω", "omega", "Φ", "Phi", "Δ", "d", "Ω", "Ohm",
)

// Render calculates in.Request and writes a one-page PDF report of the calculation
// to w. Calculation errors are returned before anything is written.
func Render(w io.Writer, in Input) error {
	pdf, err := document(in)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

func document(in Input) (*gofpdf.Fpdf, error) {
	f, err := formula.Default().Lookup(in.Request.Formula)
	if err != nil {
		return nil, err
	}
	res, err := calc.Calculate(in.Request)
	if err != nil {
		return nil, err
	}
	if in.Title == "" {
		in.Title = "Calculation Report"
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	cp1252 := pdf.UnicodeTranslatorFromDescriptor("")
	tr := func(s string) string { return cp1252(greek.Replace(s)) }
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(in.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if in.Project != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", in.Project)))
		pdf.Ln(6)
	}
	if in.Author != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", in.Author)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", in.Date.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, tr(fmt.Sprintf("%s (%s)", f.Name, f.Category)))
	pdf.Ln(7)
	pdf.SetFont("Courier", "", 11)
	pdf.Cell(0, 6, tr(f.Equation))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, "Inputs")
	pdf.Ln(7)
	header(pdf, tr, []string{"Symbol", "Description", "Value", "Unit"}, []float64{25, 85, 40, 30})
	syms := make([]string, 0, len(in.Request.Inputs))
	for s := range in.Request.Inputs {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool { return order(f, syms[i]) < order(f, syms[j]) })
	for _, s := range syms {
		v := in.Request.Inputs[s]
		row(pdf, tr, []string{s, describe(f, s), fmt.Sprintf("%g", v.Value), v.Unit}, []float64{25, 85, 40, 30})
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Result: %s (%s)", res.Target, describe(f, res.Target))))
	pdf.Ln(7)
	header(pdf, tr, []string{"System", "Value"}, []float64{40, 140})
	for _, e := range res.Entries {
		row(pdf, tr, []string{string(e.System), present.Format(e)}, []float64{40, 140})
	}

	if in.Notes != "" {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(in.Notes), "", "L", false)
	}
	return pdf, pdf.Error()
}

func header(pdf *gofpdf.Fpdf, tr func(string) string, cols []string, widths []float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, c := range cols {
		pdf.CellFormat(widths[i], 7, tr(c), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}

func row(pdf *gofpdf.Fpdf, tr func(string) string, cols []string, widths []float64) {
	pdf.SetFont("Helvetica", "", 10)
	for i, c := range cols {
		pdf.CellFormat(widths[i], 6, tr(c), "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func order(f *formula.Formula, symbol string) int {
	for i, s := range f.Symbols() {
		if s == symbol {
			return i
		}
	}
	return len(f.Variables)
}

func describe(f *formula.Formula, symbol string) string {
	for _, v := range f.Variables {
		if v.Symbol == symbol {
			return v.Description
		}
	}
	return ""
}
