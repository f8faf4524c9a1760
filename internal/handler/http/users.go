package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/aion/internal/logger"
	"github.com/MKhiriev/aion/internal/utils"
	"github.com/MKhiriev/aion/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var insert models.InsertUser
	if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
		h.respondInvalidJSON(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, insert)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Int64("id", registeredUser.ID).Str("username", registeredUser.Username).Msg("user registered")

	utils.WriteJSON(w, registeredUser.WithoutPassword(), http.StatusCreated)
}

// currentUser resolves the acting user of the single-user deployment: the
// earliest registered account.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.CurrentUser(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, user.WithoutPassword(), http.StatusOK)
}
