package controllers

import (
	"github.com/go-kyugo/usersvc/dto"
	"github.com/go-kyugo/usersvc/request"
	"github.com/go-kyugo/usersvc/router"
)

type HealthController struct{}

func NewHealthController() *HealthController { return &HealthController{} }

// Check always reports the process as up.
func (c *HealthController) Check(_ *request.Request) (interface{}, error) {
	return dto.HealthStatus{Status: "ok", Message: "Server is running"}, nil
}

func (c *HealthController) RegisterRoutes(r *router.Router) {
	r.Get("/health", c.Check)
}
