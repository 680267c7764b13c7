package i

import "github.com/gin-gonic/gin"

// Controller registers its routes on a route group.
type Controller interface {
	Register(route *gin.RouterGroup)
}
