package middleware

import (
	"net/http"

	"github.com/leavedesk/leavedesk-go/internal/domain/leave"
	"github.com/leavedesk/leavedesk-go/internal/handler/http/response"
)

// Session is the part of the board session the middleware needs.
type Session interface {
	Authenticated() bool
}

// SessionRequired rejects requests until a login has succeeded. The passcode
// itself is never re-checked here; the collaborator authenticates every
// forwarded call.
func SessionRequired(session Session) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			if !session.Authenticated() {
				response.HandleError(w, leave.ErrNotAuthenticated)
				return
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
