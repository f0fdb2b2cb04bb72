package ledger

import (
	nethttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/transitops/cardledger/internal/common/http"
	"github.com/transitops/cardledger/internal/common/validation"
	"github.com/transitops/cardledger/internal/models"
	"github.com/transitops/cardledger/internal/services"
)

type ledgerHandler struct {
	ledgerSvc services.LedgerService
	editSvc   services.LedgerEditService
}

// New ledger handler will initialize the ledgers/ resources endpoint
func New(app *echo.Group, ledgerSvc services.LedgerService, editSvc services.LedgerEditService) {
	handler := ledgerHandler{
		ledgerSvc: ledgerSvc,
		editSvc:   editSvc,
	}
	app.GET("/cards/:cardIDm/ledgers", handler.getLedgerList)
	app.GET("/ledgers/:id", handler.getLedger)
	app.POST("/ledgers/merge", handler.mergeLedgers)
	app.POST("/ledgers/:id/split", handler.splitLedger)
}

func (h *ledgerHandler) getLedgerList(c echo.Context) error {
	req := new(models.GetLedgerListRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	entries, total, err := h.ledgerSvc.GetList(c.Request().Context(), *req)
	if err != nil {
		return http.RestErrorResponse(c, http.StatusFromError(err), err)
	}

	return http.RestSuccessResponseListWithTotalRows(c, entries, total)
}

type getLedgerResponse struct {
	Entry   *models.LedgerEntry  `json:"entry"`
	Details models.DetailRecords `json:"details"`
}

func (h *ledgerHandler) getLedger(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	entry, details, err := h.ledgerSvc.GetByID(c.Request().Context(), id)
	if err != nil {
		return http.RestErrorResponse(c, http.StatusFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, getLedgerResponse{
		Entry:   entry,
		Details: details,
	})
}

func (h *ledgerHandler) mergeLedgers(c echo.Context) error {
	req := new(models.MergeEntriesRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.editSvc.Merge(c.Request().Context(), *req)
	if err != nil {
		return http.RestErrorResponse(c, http.StatusFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

func (h *ledgerHandler) splitLedger(c echo.Context) error {
	req := new(models.SplitEntryRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.editSvc.Split(c.Request().Context(), *req)
	if err != nil {
		return http.RestErrorResponse(c, http.StatusFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}
