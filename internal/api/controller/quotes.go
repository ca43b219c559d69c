package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ougirez/motorquote/internal/domain"
)

func (c *Controller) CreateQuote(ctx echo.Context) error {
	var req domain.QuoteRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	resp, err := c.service.PriceRequest(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}
