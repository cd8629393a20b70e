package environment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/datafield/asset-library-backend/internal/model/response/wrapper"
	"github.com/datafield/asset-library-backend/internal/service/session"
)

type EnvironmentHandler struct {
	srv *session.SessionService
}

func NewEnvironmentHandler(srv *session.SessionService) *EnvironmentHandler {
	return &EnvironmentHandler{srv: srv}
}

// GetEnvironment godoc
// @Summary Get environment reference lists
// @Description Get the country and sector option lists offered by the collection form
// @Tags /api/v1/environment
// @Accept json
// @Produce json
// @Success 200 {object} wrapper.ResponseWrapper{data=response.Environment}
// @Router /environment [get]
func (h *EnvironmentHandler) GetEnvironment(c *gin.Context) {
	env := h.srv.Environment(c.Request.Context())
	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: env, Success: true})
}
