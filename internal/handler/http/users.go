package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/utils"
	"github.com/MKhiriev/go-fit-keeper/models"
)

func (h *Handler) initializeUser(w http.ResponseWriter, r *http.Request) {
	var request models.InitializeUserRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, "*Handler.initializeUser", err)
		return
	}

	user, err := h.services.UserService.InitializeUser(r.Context(), request.Name)
	if err != nil {
		writeError(w, r, "*Handler.initializeUser", err)
		return
	}

	logger.FromRequest(r).Debug().Str("id", user.ID).Msg("user initialized")
	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getUser", err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) addUserInfo(w http.ResponseWriter, r *http.Request) {
	var payload models.UserInfoPayload
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, r, "*Handler.addUserInfo", err)
		return
	}

	info, err := h.services.UserInfoService.AddUserInfo(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, r, "*Handler.addUserInfo", err)
		return
	}

	utils.WriteJSON(w, info, http.StatusCreated)
}

func (h *Handler) getUserInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.services.UserInfoService.GetUserInfo(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getUserInfo", err)
		return
	}

	utils.WriteJSON(w, info, http.StatusOK)
}

func (h *Handler) updateUserInfo(w http.ResponseWriter, r *http.Request) {
	var payload models.UserInfoPayload
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, r, "*Handler.updateUserInfo", err)
		return
	}

	info, err := h.services.UserInfoService.UpdateUserInfo(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, r, "*Handler.updateUserInfo", err)
		return
	}

	utils.WriteJSON(w, info, http.StatusOK)
}
