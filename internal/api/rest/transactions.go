package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-economy/internal/api/shared/constants"
	"github.com/feral-file/ff-economy/internal/api/shared/dto"
	"github.com/feral-file/ff-economy/internal/recorder"
)

func (h *handler) ListTransactions(c *gin.Context) {
	wallet, ok := walletParam(c)
	if !ok {
		return
	}
	params, err := parsePage(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	page, err := h.Recorder.ListTransactions(c.Request.Context(), wallet, recorder.ListFilter{
		Page:  params.Page,
		Limit: params.Limit,
	})
	if err != nil {
		respondError(c, err, "Failed to fetch transactions")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *handler) FilterTransactions(c *gin.Context) {
	wallet, ok := walletParam(c)
	if !ok {
		return
	}
	var req dto.FilterTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	params := PageQueryParams{Page: req.Page, Limit: req.Limit}
	params.cap()

	page, err := h.Recorder.ListTransactions(c.Request.Context(), wallet, recorder.ListFilter{
		Category: req.Category,
		Type:     req.Type,
		Page:     params.Page,
		Limit:    params.Limit,
	})
	if err != nil {
		respondError(c, err, "Failed to filter transactions")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *handler) GetTransaction(c *gin.Context) {
	wallet, ok := walletParam(c)
	if !ok {
		return
	}

	tx, err := h.Recorder.GetTransaction(c.Request.Context(), wallet, c.Param(constants.TRANSACTION_ID_PARAM))
	if err != nil {
		respondError(c, err, "Failed to fetch transaction")
		return
	}
	c.JSON(http.StatusOK, tx)
}

func (h *handler) GetTransactionReceipt(c *gin.Context) {
	wallet, ok := walletParam(c)
	if !ok {
		return
	}

	receipt, err := h.Recorder.GetReceipt(c.Request.Context(), wallet, c.Param(constants.TRANSACTION_ID_PARAM))
	if err != nil {
		respondError(c, err, "Failed to generate receipt")
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func (h *handler) CreateTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	tx, err := h.Recorder.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create transaction")
		return
	}
	c.JSON(http.StatusCreated, tx)
}
