package report

import (
	"bytes"
	"net/http"

	log "github.com/sirupsen/logrus"

	"physiquist/internal/calc"
)

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if !calc.ReadJSON(w, r, &input) {
		return
	}

	var buf bytes.Buffer
	if err := Render(&buf, input); err != nil {
		log.WithFields(log.Fields{
			"formula": input.Request.Formula,
			"target":  input.Request.Target,
		}).WithError(err).Info("report failed")
		calc.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if _, err := buf.WriteTo(w); err != nil {
		log.WithError(err).Warn("write report")
	}
}
