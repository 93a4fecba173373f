package calc

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Request
	if !ReadJSON(w, r, &input) {
		return
	}
	res, err := Calculate(input)
	if err != nil {
		log.WithFields(log.Fields{
			"formula": input.Formula,
			"target":  input.Target,
		}).WithError(err).Info("calculation failed")
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, res)
}
