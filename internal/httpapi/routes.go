package httpapi

import (
	"github.com/gin-gonic/gin"

	"smartattend/internal/auth"
	"smartattend/internal/user"
)

// Routes mounts the API on the engine. Attendance routes sit behind the
// token validator; /attendance/all additionally requires the supervisor role.
func Routes(r *gin.Engine, h *Handler, signingKey, issuer string) {
	authGroup := r.Group("/auth")
	authGroup.POST("/register", h.Register)
	authGroup.POST("/login", h.Login)

	att := r.Group("/attendance", auth.RequireAuth(signingKey, issuer))
	att.POST("/submit", h.Submit)
	att.GET("/user/:id", h.ListUser)
	att.GET("/all", auth.RequireRole(string(user.RoleSupervisor)), h.ListAll)
}
