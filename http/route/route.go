package route

import (
	"github.com/go-kyugo/usersvc/http/controllers"
	"github.com/go-kyugo/usersvc/router"
)

// Register mounts every controller of the service on router.
func Register(r *router.Router) {
	r.Controller(controllers.NewHealthController())
	r.Controller(controllers.NewUsersController())
}
