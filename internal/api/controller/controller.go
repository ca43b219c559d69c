package controller

import (
	"github.com/ougirez/motorquote/internal/service/quote"
)

type Controller struct {
	service *quote.Service
}

func NewController(service *quote.Service) *Controller {
	return &Controller{service: service}
}
