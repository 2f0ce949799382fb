package api

import (
	"net/http"

	reqdto "grocery-admin/internal/handler/dto/request"
	resdto "grocery-admin/internal/handler/dto/response"
	"grocery-admin/internal/usecase/commands"
	"grocery-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	commands commands.OfferCommands
	queries  queries.OfferQueries
}

func NewOfferHandler(offerCommands commands.OfferCommands, offerQueries queries.OfferQueries) *OfferHandler {
	return &OfferHandler{
		commands: offerCommands,
		queries:  offerQueries,
	}
}

// @Summary List offers
// @Description Search, filter by derived date status, sort and paginate offers
// @Tags offers
// @Security BearerAuth
// @Produce json
// @Param search query string false "Matches title, description or tag"
// @Param date_status query string false "running | upcoming | expired | inactive | all"
// @Param discount_type query string false "percentage | flat | bogo | all"
// @Param scope query string false "all | category | vendor | product"
// @Param sort query string false "display_order (default) | title | discount_value | start_date | end_date | created_at"
// @Param order query string false "asc | desc"
// @Param page query int false "1-indexed page"
// @Param page_size query int false "Items per page"
// @Success 200 {object} resdto.OfferListResponse
// @Failure 400 {object} httperr.Response
// @Router /offers [get]
func (h *OfferHandler) List(c *gin.Context) {
	var q reqdto.OfferListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBindError(c, err)
		return
	}

	res, err := h.queries.List(c.Request.Context(), q.ToParams())
	if err != nil {
		abortUsecaseError(c, err)
		return
	}

	body, err := resdto.NewOfferListResponse(res)
	if err != nil {
		abortUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

// @Summary Get offer
// @Tags offers
// @Security BearerAuth
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offers/{id} [get]
func (h *OfferHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		abortUsecaseError(c, err)
		return
	}

	body, err := resdto.NewOfferResponse(view)
	if err != nil {
		abortUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

// @Summary Create offer
// @Tags offers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOfferRequest true "Offer"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Router /offers [post]
func (h *OfferHandler) Create(c *gin.Context) {
	var req reqdto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBindError(c, err)
		return
	}

	id, err := h.commands.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		abortUsecaseError(c, err)
		return
	}

	c.Header("Location", "/api/offers/"+id.String())
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id.String()})
}

// @Summary Update offer
// @Description Partial update. Send clear_end_date to make the offer open ended.
// @Tags offers
// @Security BearerAuth
// @Accept json
// @Param id path string true "Offer ID"
// @Param request body reqdto.UpdateOfferRequest true "Changed fields"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offers/{id} [put]
func (h *OfferHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBindError(c, err)
		return
	}

	if err := h.commands.Update(c.Request.Context(), id, req.ToPatch()); err != nil {
		abortUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Toggle offer active flag
// @Tags offers
// @Security BearerAuth
// @Accept json
// @Param id path string true "Offer ID"
// @Param request body reqdto.SetOfferActiveRequest true "Active flag"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offers/{id}/active [patch]
func (h *OfferHandler) SetActive(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.SetOfferActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBindError(c, err)
		return
	}

	if err := h.commands.SetActive(c.Request.Context(), id, *req.IsActive); err != nil {
		abortUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete offer
// @Tags offers
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /offers/{id} [delete]
func (h *OfferHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		abortUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
