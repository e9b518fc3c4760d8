package contracts

import "github.com/julienschmidt/httprouter"

// Handler is anything that mounts its endpoints on a router: the API handlers
// and the health probes alike.
type Handler interface {
	RegisterRoutes(*httprouter.Router)
}
