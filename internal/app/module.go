package app

import "github.com/gin-gonic/gin"

// Module defines the contract for a self-registering resource module.
// Each module mounts its routes on the /api/v1 group.
type Module interface {
	RegisterRoutes(api *gin.RouterGroup)
}
