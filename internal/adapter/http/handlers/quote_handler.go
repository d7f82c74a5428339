package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	request "quickquote/internal/adapter/http/dto/request"
	response "quickquote/internal/adapter/http/dto/response"
	"quickquote/internal/domain/entities"
	"quickquote/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePDF  = "application/pdf"
)

type IQuoteSheetGenerator interface {
	Generate(quotes []entities.Quote) ([]byte, error)
}

type IQuotePDFGenerator interface {
	Generate(q entities.Quote) ([]byte, error)
}

// QuoteHandler exposes quote composition, listing and editing.
type QuoteHandler struct {
	usecase   usecase.IQuoteUseCase
	sheets    IQuoteSheetGenerator
	pdfs      IQuotePDFGenerator
	log       zerolog.Logger
	heartbeat time.Duration
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, sheets IQuoteSheetGenerator, pdfs IQuotePDFGenerator, log zerolog.Logger) *QuoteHandler {
	return &QuoteHandler{usecase: uc, sheets: sheets, pdfs: pdfs, log: log, heartbeat: 25 * time.Second}
}

// PreviewQuote godoc
// @Summary      Price inputs against the caller's rate card without saving
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      request.PreviewRequest  true  "inputs"
// @Success      200   {object}  response.PreviewResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /quotes/preview [post]
func (h *QuoteHandler) PreviewQuote(c *gin.Context) {
	var payload request.PreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	windows, opts, err := payload.ToInputs()
	if err != nil {
		abortWithError(c, err)
		return
	}

	breakdown, err := h.usecase.Preview(c.Request.Context(), windows, opts)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBreakdown(breakdown))
}

// CreateQuote godoc
// @Summary      Price and save a new quote
// @Tags         quotes
// @Accept       json,mpfd
// @Produce      json
// @Param        body  body      request.QuoteRequest  true  "quote"
// @Success      201   {object}  response.QuoteResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	files, err := bindQuotePayload(c, &payload)
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	windows, opts, err := payload.ToInputs()
	if err != nil {
		abortWithError(c, err)
		return
	}

	draft := usecase.QuoteDraft{
		Windows:  windows,
		Options:  opts,
		Customer: payload.Customer.ToCustomer(),
		Images:   append(inlineImages(payload.Images), files...),
	}
	quote, err := h.usecase.Create(c.Request.Context(), draft)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// ListQuotes godoc
// @Summary      List the caller's quotes
// @Tags         quotes
// @Produce      json
// @Param        search  query     string  false  "customer name or quote id"
// @Param        sort    query     string  false  "date or price"
// @Success      200     {object}  response.QuoteListResponse
// @Router       /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, ok := h.listView(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// ExportQuotes godoc
// @Summary      Download the listing as a spreadsheet
// @Tags         quotes
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        search  query  string  false  "customer name or quote id"
// @Param        sort    query  string  false  "date or price"
// @Success      200
// @Router       /quotes/export [get]
func (h *QuoteHandler) ExportQuotes(c *gin.Context) {
	quotes, ok := h.listView(c)
	if !ok {
		return
	}

	content, err := h.sheets.Generate(quotes)
	if err != nil {
		h.log.Error().Err(err).Msg("[quotes][handler] spreadsheet export failed")
		abortWithError(c, err)
		return
	}
	fileName := fmt.Sprintf("quotes-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename=\""+fileName+"\"")
	c.Data(http.StatusOK, mimeXLSX, content)
}

func (h *QuoteHandler) listView(c *gin.Context) ([]entities.Quote, bool) {
	key, err := usecase.ParseQuoteSortKey(c.Query("sort"))
	if err != nil {
		abortWithError(c, err)
		return nil, false
	}
	quotes, err := h.usecase.List(c.Request.Context(), c.Query("search"), key)
	if err != nil {
		abortWithError(c, err)
		return nil, false
	}
	return quotes, true
}

// GetQuote godoc
// @Summary      Read one quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "quote id"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// QuotePDF godoc
// @Summary      Download a printable quote
// @Tags         quotes
// @Produce      application/pdf
// @Param        id   path  string  true  "quote id"
// @Success      200
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id}/pdf [get]
func (h *QuoteHandler) QuotePDF(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	content, err := h.pdfs.Generate(quote)
	if err != nil {
		h.log.Error().Err(err).Str("quote_id", quote.ID).Msg("[quotes][handler] pdf render failed")
		abortWithError(c, err)
		return
	}
	c.Header("Content-Disposition", "inline; filename=\"quote-"+quote.ID+".pdf\"")
	c.Data(http.StatusOK, mimePDF, content)
}

// UpdateQuote godoc
// @Summary      Edit a saved quote and recompute its price
// @Tags         quotes
// @Accept       json,mpfd
// @Produce      json
// @Param        id    path      string                      true  "quote id"
// @Param        body  body      request.QuoteUpdateRequest  true  "changes"
// @Success      200   {object}  response.QuoteResponse
// @Failure      404   {object}  pkg.HTTPError
// @Router       /quotes/{id} [put]
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var payload request.QuoteUpdateRequest
	files, err := bindQuotePayload(c, &payload)
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	windows, opts, err := payload.ToInputs()
	if err != nil {
		abortWithError(c, err)
		return
	}

	edit := usecase.QuoteEdit{
		Windows:   windows,
		Options:   opts,
		Customer:  payload.ToCustomer(),
		NewImages: append(inlineImages(payload.Images), files...),
	}
	quote, err := h.usecase.Edit(c.Request.Context(), c.Param("id"), edit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// RemoveQuoteImage godoc
// @Summary      Remove one attachment from a quote
// @Tags         quotes
// @Produce      json
// @Param        id     path      string  true  "quote id"
// @Param        index  path      int     true  "attachment position"
// @Success      200    {object}  response.QuoteResponse
// @Router       /quotes/{id}/images/{index} [delete]
func (h *QuoteHandler) RemoveQuoteImage(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		abortWithError(c, usecase.ErrImageIndexOutOfRange)
		return
	}

	quote, err := h.usecase.RemoveImage(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// DeleteQuote godoc
// @Summary      Delete a quote
// @Tags         quotes
// @Param        id   path  string  true  "quote id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id} [delete]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
