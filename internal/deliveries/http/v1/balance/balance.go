package balance

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/transitops/cardledger/internal/common/http"
	"github.com/transitops/cardledger/internal/common/validation"
	"github.com/transitops/cardledger/internal/models"
	"github.com/transitops/cardledger/internal/services"
)

type balanceHandler struct {
	balanceSvc services.BalanceService
}

// New balance handler will initialize the balance consistency endpoints
func New(app *echo.Group, balanceSvc services.BalanceService) {
	handler := balanceHandler{
		balanceSvc: balanceSvc,
	}
	app.POST("/cards/:cardIDm/balance/check", handler.check)
	app.POST("/cards/:cardIDm/balance/recalculate", handler.recalculate)
	app.POST("/balance/recalculate/undo", handler.undoRecalculate)
}

func (h *balanceHandler) check(c echo.Context) error {
	req := new(models.BalanceCheckRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.balanceSvc.Check(c.Request().Context(), *req)
	if err != nil {
		return http.RestErrorResponse(c, http.StatusFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

func (h *balanceHandler) recalculate(c echo.Context) error {
	req := new(models.BalanceCheckRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.balanceSvc.Recalculate(c.Request().Context(), *req)
	if err != nil {
		return http.RestErrorResponse(c, http.StatusFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

func (h *balanceHandler) undoRecalculate(c echo.Context) error {
	req := new(models.UndoRecalculateRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	if err := h.balanceSvc.UndoRecalculate(c.Request().Context(), *req); err != nil {
		return http.RestErrorResponse(c, http.StatusFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, map[string]string{"status": "ok"})
}
