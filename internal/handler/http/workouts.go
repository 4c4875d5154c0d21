package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/utils"
	"github.com/MKhiriev/go-fit-keeper/models"
)

func (h *Handler) addWorkout(w http.ResponseWriter, r *http.Request) {
	var payload models.WorkoutPayload
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, r, "*Handler.addWorkout", err)
		return
	}

	workout, err := h.services.WorkoutService.AddWorkout(r.Context(), payload)
	if err != nil {
		writeError(w, r, "*Handler.addWorkout", err)
		return
	}

	logger.FromRequest(r).Debug().Str("id", workout.ID).Msg("workout added")
	utils.WriteJSON(w, workout, http.StatusCreated)
}

func (h *Handler) updateWorkout(w http.ResponseWriter, r *http.Request) {
	var payload models.WorkoutPayload
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, r, "*Handler.updateWorkout", err)
		return
	}

	workout, err := h.services.WorkoutService.UpdateWorkout(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, r, "*Handler.updateWorkout", err)
		return
	}

	utils.WriteJSON(w, workout, http.StatusOK)
}

func (h *Handler) getAllWorkouts(w http.ResponseWriter, r *http.Request) {
	workouts, err := h.services.WorkoutService.GetAllWorkouts(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getAllWorkouts", err)
		return
	}

	utils.WriteJSON(w, workouts, http.StatusOK)
}

func (h *Handler) getWorkoutByID(w http.ResponseWriter, r *http.Request) {
	workout, err := h.services.WorkoutService.GetWorkoutByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getWorkoutByID", err)
		return
	}

	utils.WriteJSON(w, workout, http.StatusOK)
}

func (h *Handler) searchWorkoutByName(w http.ResponseWriter, r *http.Request) {
	workouts, err := h.services.WorkoutService.SearchWorkoutByName(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		writeError(w, r, "*Handler.searchWorkoutByName", err)
		return
	}

	utils.WriteJSON(w, workouts, http.StatusOK)
}

func (h *Handler) deleteWorkout(w http.ResponseWriter, r *http.Request) {
	workout, err := h.services.WorkoutService.DeleteWorkout(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.deleteWorkout", err)
		return
	}

	utils.WriteJSON(w, workout, http.StatusOK)
}
