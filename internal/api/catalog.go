package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"physiquist/internal/calc"
	"physiquist/internal/formula"
	"physiquist/internal/quantity"
	"physiquist/internal/units"
)

// VariableView is a formula variable with the units a client may enter it in.
type VariableView struct {
	Symbol      string        `json:"symbol"`
	Kind        quantity.Kind `json:"kind"`
	Description string        `json:"description"`
	Units       []string      `json:"units"`
}

type FormulaView struct {
	Name      string         `json:"name"`
	Category  string         `json:"category"`
	Equation  string         `json:"equation"`
	Variables []VariableView `json:"variables"`
	Targets   []string       `json:"targets"`
}

func NewFormulaView(f *formula.Formula, tbl *units.Table) FormulaView {
	v := FormulaView{
		Name:     f.Name,
		Category: f.Category,
		Equation: f.Equation,
		Targets:  f.Targets(),
	}
	for _, variable := range f.Variables {
		u := tbl.UnitsFor(variable.Kind)
		if u == nil {
			u = []string{}
		}
		v.Variables = append(v.Variables, VariableView{
			Symbol:      variable.Symbol,
			Kind:        variable.Kind,
			Description: variable.Description,
			Units:       u,
		})
	}
	return v
}

// CatalogHandler serves the read-only formula catalog and unit table.
type CatalogHandler struct {
	Catalog *formula.Catalog
	Units   *units.Table
}

func (h *CatalogHandler) Formulas(w http.ResponseWriter, r *http.Request) {
	list := h.Catalog.Formulas()
	if cat := r.URL.Query().Get("category"); cat != "" {
		list = h.Catalog.ByCategory(cat)
	}
	out := make([]FormulaView, 0, len(list))
	for _, f := range list {
		out = append(out, NewFormulaView(f, h.Units))
	}
	calc.WriteJSON(w, http.StatusOK, out)
}

func (h *CatalogHandler) Formula(w http.ResponseWriter, r *http.Request) {
	f, err := h.Catalog.Lookup(mux.Vars(r)["name"])
	if err != nil {
		calc.WriteError(w, err)
		return
	}
	calc.WriteJSON(w, http.StatusOK, NewFormulaView(f, h.Units))
}

func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	calc.WriteJSON(w, http.StatusOK, h.Catalog.Categories())
}

func (h *CatalogHandler) UnitsFor(w http.ResponseWriter, r *http.Request) {
	kind, err := quantity.ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		calc.WriteJSON(w, http.StatusNotFound, calc.ErrorBody{Error: err.Error()})
		return
	}
	u := h.Units.UnitsFor(kind)
	if u == nil {
		u = []string{}
	}
	calc.WriteJSON(w, http.StatusOK, struct {
		Kind  quantity.Kind `json:"kind"`
		SI    string        `json:"si"`
		Units []string      `json:"units"`
	}{kind, h.Units.SIUnit(kind), u})
}
