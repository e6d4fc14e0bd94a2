package handlers

import (
	"net/http"

	"github.com/Aruzhan01/academy-system/services"
)

type AboutHandler struct {
	aboutService services.AboutService
}

func NewAboutHandler(as services.AboutService) *AboutHandler {
	return &AboutHandler{
		aboutService: as,
	}
}

func (h *AboutHandler) GetAbout(w http.ResponseWriter, r *http.Request) {
	about, err := h.aboutService.GetAbout(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"about": about}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AboutHandler) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	var input services.UpdateAboutInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	about, err := h.aboutService.UpdateAbout(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"about": about}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
