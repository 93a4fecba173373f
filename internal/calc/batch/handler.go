package batch

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"physiquist/internal/calc"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if !calc.ReadJSON(w, r, &input) {
		return
	}
	res, err := Calculate(input)
	if err != nil {
		calc.BadRequest(w, err.Error())
		return
	}
	log.WithFields(log.Fields{"count": res.Count, "failed": res.Failed}).Debug("batch calculated")
	calc.WriteJSON(w, http.StatusOK, res)
}
