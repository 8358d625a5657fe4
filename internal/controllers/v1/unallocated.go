package v1

import (
	"net/http"

	"github.com/bucket-budget/backend/internal/httputil"
	"github.com/bucket-budget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterUnallocatedRoutes registers the routes for the unallocated pool
// with the RouterGroup that is passed.
func RegisterUnallocatedRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsUnallocated)
	r.GET("", GetUnallocated)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Unallocated
// @Success		204
// @Router			/v1/unallocated [options]
func OptionsUnallocated(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get unallocated funds
// @Description	Returns the money that has been received as income but not yet assigned to any bucket
// @Tags			Unallocated
// @Produce		json
// @Success		200	{object}	UnallocatedResponse
// @Failure		500	{object}	UnallocatedResponse
// @Router			/v1/unallocated [get]
func GetUnallocated(c *gin.Context) {
	unallocated, err := models.UnallocatedFunds(models.DB, currentUser(c).ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UnallocatedResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, UnallocatedResponse{
		Data: &unallocated,
	})
}
