package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) GetCatalog(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.service.Catalog())
}

func (c *Controller) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
