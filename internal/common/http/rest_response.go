package http

import (
	"errors"
	"net/http"

	"github.com/transitops/cardledger/internal/common"
	"github.com/transitops/cardledger/internal/models"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
)

type (
	RestErrorResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Code    interface{} `json:"code"`
		Message string      `json:"message" example:"error"`
	}

	RestTotalRowResponseModel struct {
		Kind      string      `json:"kind" example:"collection"`
		Contents  interface{} `json:"contents"`
		TotalRows int         `json:"total_rows" example:"100"`
	}

	RestErrorValidationResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Message string      `json:"message" example:"validation error"`
		Errors  interface{} `json:"errors"`
	}
)

func RestSuccessResponse(c echo.Context, code int, in interface{}) error {
	return c.JSON(code, in)
}

func RestSuccessResponseListWithTotalRows(c echo.Context, data interface{}, totalRows int) error {
	return c.JSON(http.StatusOK, RestTotalRowResponseModel{
		Kind:      "collection",
		Contents:  data,
		TotalRows: totalRows,
	})
}

func RestErrorResponse(c echo.Context, statusCode int, err error) error {
	res := RestErrorResponseModel{
		Status:  "error",
		Code:    statusCode,
		Message: err.Error(),
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		res.Code = echoErr.Code
		res.Message = echoErr.Message.(string)
	}

	var data models.ErrorDetail
	if errors.As(err, &data) {
		res.Code = data.Code
		res.Message = data.ErrorMessage.Error()
	}
	return c.JSON(statusCode, res)
}

// StatusFromError maps a coded service error onto an HTTP status.
func StatusFromError(err error) int {
	var data models.ErrorDetail
	if !errors.As(err, &data) {
		return http.StatusInternalServerError
	}

	switch data.Code {
	case models.ErrKeyDataNotFound, models.ErrKeyHistoryNotFound:
		return http.StatusNotFound
	case models.ErrKeyTooFewEntries,
		models.ErrKeyCrossCardSelection,
		models.ErrKeyOpenLoanSelected,
		models.ErrKeyMixedMergeEntries,
		models.ErrKeyTooFewGroups,
		models.ErrKeyInvalidDateRange:
		return http.StatusBadRequest
	case models.ErrKeyHistoryAlreadyUndone:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func RestErrorValidationResponse(c echo.Context, errs interface{}) error {
	res := RestErrorValidationResponseModel{
		Status:  "error",
		Message: common.ErrValidation.Error(),
	}
	if data, ok := errs.(*multierror.Error); ok {
		res.Errors = data.Errors
	}

	return c.JSON(http.StatusUnprocessableEntity, res)
}
