package controller

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ougirez/motorquote/internal/domain/dto"
	"github.com/ougirez/motorquote/internal/form"
)

type sessionEvent func(ctx context.Context, id string) (*dto.SessionView, error)

func (c *Controller) CreateSession(ctx echo.Context) error {
	view, err := c.service.CreateSession(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, view)
}

func (c *Controller) GetSession(ctx echo.Context) error {
	return c.handleEvent(ctx, c.service.GetSession)
}

func (c *Controller) DeleteSession(ctx echo.Context) error {
	if err := c.service.DeleteSession(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) SetField(ctx echo.Context) error {
	var req dto.SetFieldRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	view, err := c.service.SetField(ctx.Request().Context(), ctx.Param("id"), form.Field(req.Field), req.Value)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, view)
}

func (c *Controller) Start(ctx echo.Context) error {
	return c.handleEvent(ctx, c.service.Start)
}

func (c *Controller) Next(ctx echo.Context) error {
	return c.handleEvent(ctx, c.service.Next)
}

func (c *Controller) Previous(ctx echo.Context) error {
	return c.handleEvent(ctx, c.service.Previous)
}

func (c *Controller) Submit(ctx echo.Context) error {
	return c.handleEvent(ctx, c.service.Submit)
}

func (c *Controller) EditDetails(ctx echo.Context) error {
	return c.handleEvent(ctx, c.service.EditDetails)
}

func (c *Controller) NewQuote(ctx echo.Context) error {
	return c.handleEvent(ctx, c.service.NewQuote)
}

func (c *Controller) Reset(ctx echo.Context) error {
	return c.handleEvent(ctx, c.service.Reset)
}

func (c *Controller) handleEvent(ctx echo.Context, event sessionEvent) error {
	view, err := event(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, view)
}
