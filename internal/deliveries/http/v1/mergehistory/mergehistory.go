package mergehistory

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/transitops/cardledger/internal/common/http"
	"github.com/transitops/cardledger/internal/common/validation"
	"github.com/transitops/cardledger/internal/models"
	"github.com/transitops/cardledger/internal/services"
)

type mergeHistoryHandler struct {
	editSvc services.LedgerEditService
}

// New merge history handler will initialize the merge-histories/ endpoints
func New(app *echo.Group, editSvc services.LedgerEditService) {
	handler := mergeHistoryHandler{
		editSvc: editSvc,
	}
	api := app.Group("/merge-histories")
	api.GET("", handler.getMergeHistoryList)
	api.POST("/:id/undo", handler.undoMerge)
}

func (h *mergeHistoryHandler) getMergeHistoryList(c echo.Context) error {
	req := new(models.GetMergeHistoryListRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	histories, total, err := h.editSvc.GetMergeHistoryList(c.Request().Context(), *req)
	if err != nil {
		return http.RestErrorResponse(c, http.StatusFromError(err), err)
	}

	return http.RestSuccessResponseListWithTotalRows(c, histories, total)
}

func (h *mergeHistoryHandler) undoMerge(c echo.Context) error {
	req := new(models.UndoMergeRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	if err := h.editSvc.UndoMerge(c.Request().Context(), *req); err != nil {
		return http.RestErrorResponse(c, http.StatusFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, map[string]string{"status": "ok"})
}
