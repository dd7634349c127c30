package rest

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/energymonitor-backend/pkg/ctxutil"
)

// pathUser resolves the {usuarioId} path value and checks it against the
// session. It writes the error response itself and reports false on failure.
func pathUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("usuarioId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return uuid.Nil, false
	}
	return ownUser(w, r, id)
}

func ownUser(w http.ResponseWriter, r *http.Request, id uuid.UUID) (uuid.UUID, bool) {
	sess, ok := ctxutil.SessionFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return uuid.Nil, false
	}
	if sess.UserID != id {
		writeError(w, http.StatusForbidden, "access to another user's data is not allowed")
		return uuid.Nil, false
	}
	return id, true
}
