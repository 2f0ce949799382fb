package api

import (
	"net/http"

	"grocery-admin/internal/domain/payout"
	"grocery-admin/internal/handler/httperr"
	"grocery-admin/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errInvalidID = errs.New("invalid resource id")

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidID), "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func abortBindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
}

// abortUsecaseError maps offer and payout usecase errors to HTTP statuses.
// Missing operator input is a 400, a blocked payout action a 409.
func abortUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrDomainValidation),
		errs.Is(err, errs.ErrInvalidListFilter):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
	case errs.Is(err, payout.ErrActionUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Action unavailable", err.Error())
	case errs.Is(err, errs.ErrOfferNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
	case errs.Is(err, errs.ErrPayoutNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Payout request not found", nil)
	case errs.Is(err, errs.ErrWalletNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Wallet not found", nil)
	case errs.Is(err, errs.ErrReviewInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "Payout is being reviewed by another operator", nil)
	case errs.Is(err, errs.ErrConcurrentReview):
		httperr.AbortWithError(c, http.StatusConflict, err, "Payout changed during review, reload and retry", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
