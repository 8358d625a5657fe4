package v1

import (
	"github.com/bucket-budget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// currentUser returns the user that the router's user middleware resolved
// for this request.
func currentUser(c *gin.Context) models.User {
	return c.MustGet(string(models.ContextUser)).(models.User)
}

// resourceOptionsDetail returns the appropriate response for an HTTP
// OPTIONS request for a specific resource.
//
// The resource is looked up scoped to the current user, so resources of
// other users result in a 404 just like on the other verbs.
func resourceOptionsDetail[R models.Bucket | models.Transaction | models.IncomeRecord](c *gin.Context, resource R, allow func(*gin.Context)) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Where("user_id = ?", currentUser(c).ID).First(&resource, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	allow(c)
}
