package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/datafield/asset-library-backend/internal/model/response/wrapper"
	"github.com/datafield/asset-library-backend/internal/service/user"
	"github.com/datafield/asset-library-backend/pkg/utils"
)

func AuthenticationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("token")
		if err != nil {
			c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "Missing authentication token", Success: false})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			fmt.Println("Error validating token", err)
			c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "Invalid authentication token", Success: false})
			c.Abort()
			return
		}

		c.Set("user_id", claims["user_id"])
		c.Next()
	}
}

// APITokenMiddleware authenticates non-browser clients via the
// X-API-Token header.
func APITokenMiddleware(userService *user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiToken := c.GetHeader("X-API-Token")

		if apiToken == "" {
			c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{
				Message: "X-API-Token header is required",
				Success: false,
			})
			c.Abort()
			return
		}

		tokenUser, err := userService.GetUserByAPIToken(apiToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{
				Message: "Invalid API token",
				Success: false,
			})
			c.Abort()
			return
		}

		c.Set("user_id", tokenUser.ID.String())
		c.Set("username", tokenUser.Username)

		c.Next()
	}
}
