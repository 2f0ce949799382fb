package api

import (
	"net/http"

	"grocery-admin/internal/domain/payout"
	reqdto "grocery-admin/internal/handler/dto/request"
	resdto "grocery-admin/internal/handler/dto/response"
	"grocery-admin/internal/handler/middleware"
	"grocery-admin/internal/usecase/commands"
	"grocery-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PayoutHandler struct {
	commands commands.PayoutCommands
	queries  queries.PayoutQueries
}

func NewPayoutHandler(payoutCommands commands.PayoutCommands, payoutQueries queries.PayoutQueries) *PayoutHandler {
	return &PayoutHandler{
		commands: payoutCommands,
		queries:  payoutQueries,
	}
}

// @Summary List payout requests
// @Tags payouts
// @Security BearerAuth
// @Produce json
// @Param search query string false "Matches requester name or transaction reference"
// @Param status query string false "pending | approved | processing | transferred | completed | rejected | all"
// @Param requester_type query string false "vendor | delivery_boy | all"
// @Param min_amount query string false "Inclusive lower amount bound"
// @Param max_amount query string false "Inclusive upper amount bound"
// @Param created_from query string false "YYYY-MM-DD or RFC3339"
// @Param created_to query string false "YYYY-MM-DD (whole day) or RFC3339"
// @Param sort query string false "created_at (default) | updated_at | completed_at | amount | requester_name"
// @Param order query string false "asc | desc"
// @Param page query int false "1-indexed page"
// @Param page_size query int false "Items per page"
// @Success 200 {object} resdto.PayoutListResponse
// @Failure 400 {object} httperr.Response
// @Router /payouts [get]
func (h *PayoutHandler) List(c *gin.Context) {
	var q reqdto.PayoutListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBindError(c, err)
		return
	}

	params, err := q.ToParams()
	if err != nil {
		abortUsecaseError(c, err)
		return
	}

	res, err := h.queries.List(c.Request.Context(), params)
	if err != nil {
		abortUsecaseError(c, err)
		return
	}

	body, err := resdto.NewPayoutListResponse(res)
	if err != nil {
		abortUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

// @Summary Payout totals per status
// @Tags payouts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.PayoutSummaryResponse
// @Router /payouts/summary [get]
func (h *PayoutHandler) Summary(c *gin.Context) {
	summary, err := h.queries.Summary(c.Request.Context())
	if err != nil {
		abortUsecaseError(c, err)
		return
	}

	body, err := resdto.NewPayoutSummaryResponse(summary)
	if err != nil {
		abortUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

// @Summary Get payout request
// @Description Includes the actions the current status allows
// @Tags payouts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Payout request ID"
// @Success 200 {object} resdto.PayoutResponse
// @Failure 404 {object} httperr.Response
// @Router /payouts/{id} [get]
func (h *PayoutHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		abortUsecaseError(c, err)
		return
	}

	body, err := resdto.NewPayoutResponse(view)
	if err != nil {
		abortUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

// @Summary Create payout request
// @Description Checks the amount against the requester's wallet balance
// @Tags payouts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePayoutRequest true "Payout request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payouts [post]
func (h *PayoutHandler) Create(c *gin.Context) {
	var req reqdto.CreatePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBindError(c, err)
		return
	}

	id, err := h.commands.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		abortUsecaseError(c, err)
		return
	}

	c.Header("Location", "/api/payouts/"+id.String())
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id.String()})
}

// @Summary Approve payout request
// @Description Requires a verified bank account
// @Tags payouts
// @Security BearerAuth
// @Param id path string true "Payout request ID"
// @Success 200 {object} resdto.PayoutResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /payouts/{id}/approve [post]
func (h *PayoutHandler) Approve(c *gin.Context) {
	h.transition(c, payout.ActionApprove, "", "")
}

// @Summary Reject payout request
// @Tags payouts
// @Security BearerAuth
// @Accept json
// @Param id path string true "Payout request ID"
// @Param request body reqdto.RejectPayoutRequest true "Rejection reason"
// @Success 200 {object} resdto.PayoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /payouts/{id}/reject [post]
func (h *PayoutHandler) Reject(c *gin.Context) {
	var req reqdto.RejectPayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBindError(c, err)
		return
	}
	h.transition(c, payout.ActionReject, req.Reason, "")
}

// @Summary Mark payout request as processing
// @Tags payouts
// @Security BearerAuth
// @Param id path string true "Payout request ID"
// @Success 200 {object} resdto.PayoutResponse
// @Failure 409 {object} httperr.Response
// @Router /payouts/{id}/processing [post]
func (h *PayoutHandler) MarkProcessing(c *gin.Context) {
	h.transition(c, payout.ActionMarkProcessing, "", "")
}

// @Summary Record the bank transfer
// @Tags payouts
// @Security BearerAuth
// @Accept json
// @Param id path string true "Payout request ID"
// @Param request body reqdto.TransferPayoutRequest true "Transaction reference"
// @Success 200 {object} resdto.PayoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /payouts/{id}/transfer [post]
func (h *PayoutHandler) InitiateTransfer(c *gin.Context) {
	var req reqdto.TransferPayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBindError(c, err)
		return
	}
	h.transition(c, payout.ActionInitiateTransfer, "", req.TransactionRef)
}

// @Summary Complete payout request
// @Tags payouts
// @Security BearerAuth
// @Param id path string true "Payout request ID"
// @Success 200 {object} resdto.PayoutResponse
// @Failure 409 {object} httperr.Response
// @Router /payouts/{id}/complete [post]
func (h *PayoutHandler) Complete(c *gin.Context) {
	h.transition(c, payout.ActionComplete, "", "")
}

// transition applies the action and answers with the fresh record so the
// dashboard can redraw its buttons.
func (h *PayoutHandler) transition(c *gin.Context, action payout.Action, reason, ref string) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	actorID, _ := middleware.GetUserID(c)
	err := h.commands.Transition(c.Request.Context(), commands.TransitionInput{
		PayoutID:       id,
		Action:         action,
		Reason:         reason,
		TransactionRef: ref,
		ActorID:        actorID,
	})
	if err != nil {
		abortUsecaseError(c, err)
		return
	}

	h.respondWith(c, id)
}

func (h *PayoutHandler) respondWith(c *gin.Context, id uuid.UUID) {
	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		abortUsecaseError(c, err)
		return
	}
	body, err := resdto.NewPayoutResponse(view)
	if err != nil {
		abortUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}
