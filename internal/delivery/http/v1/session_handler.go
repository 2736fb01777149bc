package v1

import (
	"net/http"

	"revshop-web/internal/domain"
	"revshop-web/pkg/utils"
)

// SessionHandler echoes the decoded session claims so the page shell can
// render identity chrome without decoding the token itself
type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

type sessionView struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := domain.SessionFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Please login to continue")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Session fetched", sessionView{
		UserID: session.UserID,
		Email:  session.Email,
		Role:   session.Role,
	})
}
