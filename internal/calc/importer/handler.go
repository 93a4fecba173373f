package importer

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"physiquist/internal/calc"
)

const xlsxType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct{}

// Import calculates every request of an uploaded workbook. With ?format=xlsx the
// results come back as a workbook instead of JSON.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, calc.MaxUploadBytes)
	file, _, err := r.FormFile("file")
	if err != nil {
		calc.BodyError(w, err, "File required")
		return
	}
	defer file.Close()

	rows, err := ParseWorkbook(file)
	if err != nil {
		calc.BadRequest(w, err.Error())
		return
	}
	res, err := Run(rows)
	if err != nil {
		calc.BadRequest(w, err.Error())
		return
	}
	log.WithFields(log.Fields{"rows": res.Count, "failed": res.Failed}).Debug("workbook imported")

	if r.URL.Query().Get("format") == "xlsx" {
		w.Header().Set("Content-Type", xlsxType)
		w.Header().Set("Content-Disposition", "attachment; filename=\"results.xlsx\"")
		if err := WriteResults(w, res.Items); err != nil {
			log.WithError(err).Error("write results workbook")
		}
		return
	}
	calc.WriteJSON(w, http.StatusOK, res)
}
