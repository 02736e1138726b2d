package controllers

import (
	"github.com/go-kyugo/usersvc/dto"
	"github.com/go-kyugo/usersvc/request"
	"github.com/go-kyugo/usersvc/response"
	"github.com/go-kyugo/usersvc/router"
)

// MaxUserID is the highest id Show answers for; anything above is not found.
const MaxUserID = 100

type UsersController struct{}

func NewUsersController() *UsersController { return &UsersController{} }

// Index has no listing behind it yet and always fails.
func (c *UsersController) Index(_ *request.Request) (interface{}, error) {
	return nil, response.Internal()
}

func (c *UsersController) Show(req *request.Request) (interface{}, error) {
	id, err := req.Uint32Param("id")
	if err != nil {
		return nil, response.InvalidInput("invalid user id")
	}
	if id > MaxUserID {
		return nil, response.NotFound()
	}
	return dto.User{ID: id, Name: "User"}, nil
}

// RegisterRoutes mounts the users group. The id pattern keeps negative and
// non-numeric ids from ever reaching Show.
func (c *UsersController) RegisterRoutes(r *router.Router) {
	group := r.Group("/users")

	group.Get("/", c.Index)
	group.Get("/{id:[0-9]+}", c.Show)
}
