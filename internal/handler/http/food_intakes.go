package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/utils"
	"github.com/MKhiriev/go-fit-keeper/models"
)

func (h *Handler) addFoodIntake(w http.ResponseWriter, r *http.Request) {
	var payload models.FoodIntakePayload
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, r, "*Handler.addFoodIntake", err)
		return
	}

	intake, err := h.services.FoodIntakeService.AddFoodIntake(r.Context(), payload)
	if err != nil {
		writeError(w, r, "*Handler.addFoodIntake", err)
		return
	}

	logger.FromRequest(r).Debug().Str("id", intake.ID).Msg("food intake added")
	utils.WriteJSON(w, intake, http.StatusCreated)
}

func (h *Handler) updateFoodIntake(w http.ResponseWriter, r *http.Request) {
	var payload models.FoodIntakePayload
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, r, "*Handler.updateFoodIntake", err)
		return
	}

	intake, err := h.services.FoodIntakeService.UpdateFoodIntake(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, r, "*Handler.updateFoodIntake", err)
		return
	}

	utils.WriteJSON(w, intake, http.StatusOK)
}

func (h *Handler) getAllFoodIntake(w http.ResponseWriter, r *http.Request) {
	intakes, err := h.services.FoodIntakeService.GetAllFoodIntake(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getAllFoodIntake", err)
		return
	}

	utils.WriteJSON(w, intakes, http.StatusOK)
}

func (h *Handler) getFoodIntakeByID(w http.ResponseWriter, r *http.Request) {
	intake, err := h.services.FoodIntakeService.GetFoodIntakeByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getFoodIntakeByID", err)
		return
	}

	utils.WriteJSON(w, intake, http.StatusOK)
}

func (h *Handler) deleteFoodIntake(w http.ResponseWriter, r *http.Request) {
	intake, err := h.services.FoodIntakeService.DeleteFoodIntake(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.deleteFoodIntake", err)
		return
	}

	utils.WriteJSON(w, intake, http.StatusOK)
}
