package handlers

import (
	"net/http"

	request "quickquote/internal/adapter/http/dto/request"
	response "quickquote/internal/adapter/http/dto/response"
	"quickquote/internal/usecase"

	"github.com/gin-gonic/gin"
)

// RateCardHandler serves the provider's rates form.
type RateCardHandler struct {
	usecase usecase.IRateCardUseCase
}

func NewRateCardHandler(uc usecase.IRateCardUseCase) *RateCardHandler {
	return &RateCardHandler{usecase: uc}
}

// GetRateCard godoc
// @Summary      Load the caller's rate card
// @Tags         rates
// @Produce      json
// @Success      200  {object}  response.RateCardResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /rates [get]
func (h *RateCardHandler) GetRateCard(c *gin.Context) {
	card, err := h.usecase.Load(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRateCard(card))
}

// SaveRateCard godoc
// @Summary      Overwrite the caller's rate card
// @Tags         rates
// @Accept       json
// @Produce      json
// @Param        body  body      request.RateCardRequest  true  "rates"
// @Success      200   {object}  response.RateCardResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /rates [put]
func (h *RateCardHandler) SaveRateCard(c *gin.Context) {
	var payload request.RateCardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	card, err := payload.ToRateCard()
	if err != nil {
		abortWithError(c, err)
		return
	}

	saved, err := h.usecase.Save(c.Request.Context(), card)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRateCard(saved))
}
