package v1

import (
	"errors"
	"net/http"

	"revshop-web/internal/domain"
	"revshop-web/internal/upstream"
	"revshop-web/pkg/utils"
)

// writeUsecaseError funnels every failure class into the single user-visible
// notification contract: client-side validation failures become 4xx with
// their own message, upstream envelope failures pass through the upstream
// status and message, transport failures become 502 with a generic message.
func writeUsecaseError(w http.ResponseWriter, err error, transportMessage string) {
	switch {
	case errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrInvalidExchangeProduct):
		utils.WriteError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrUnknownAction),
		errors.Is(err, domain.ErrNoOpenComposer):
		utils.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrSubmissionInFlight):
		utils.WriteError(w, http.StatusConflict, err.Error())
	default:
		var upstreamErr *upstream.Error
		if errors.As(err, &upstreamErr) {
			status := upstreamErr.Status
			if status < 400 {
				status = http.StatusBadGateway
			}
			utils.WriteError(w, status, upstreamErr.Message)
			return
		}
		utils.WriteError(w, http.StatusBadGateway, transportMessage)
	}
}
