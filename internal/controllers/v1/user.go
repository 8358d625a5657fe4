package v1

import (
	"net/http"

	"github.com/bucket-budget/backend/internal/httputil"
	"github.com/bucket-budget/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/currency"
)

// RegisterUserRoutes registers the routes for user registration with
// the RouterGroup that is passed.
//
// These routes must not sit behind the user middleware since callers do not
// have a user yet.
func RegisterUserRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsUserList)
	r.POST("", CreateUser)
}

// RegisterCurrentUserRoutes registers the routes operating on the current
// user with the RouterGroup that is passed.
func RegisterCurrentUserRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCurrentUser)
	r.GET("", GetCurrentUser)
	r.DELETE("", DeleteUser)
	r.OPTIONS("/data", OptionsUserData)
	r.DELETE("/data", DeleteUserData)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users [options]
func OptionsUserList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/user [options]
func OptionsCurrentUser(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/user/data [options]
func OptionsUserData(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Create user
// @Description	Registers a new user. A set of default buckets is created for them.
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		UserEditable	true	"User"
// @Router			/v1/users [post]
func CreateUser(c *gin.Context) {
	var editable UserEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	if editable.Currency == "" {
		editable.Currency = "USD"
	}

	_, err = currency.ParseISO(editable.Currency)
	if err != nil {
		s := models.ErrCurrencyInvalid.Error()
		c.JSON(http.StatusBadRequest, UserResponse{
			Error: &s,
		})
		return
	}

	user := editable.model()

	err = models.DB.Create(&user).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, UserResponse{Data: &user})
}

// @Summary		Get current user
// @Description	Returns the user the request is authenticated as
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserResponse
// @Router			/v1/user [get]
func GetCurrentUser(c *gin.Context) {
	user := currentUser(c)
	c.JSON(http.StatusOK, UserResponse{Data: &user})
}

// @Summary		Delete user
// @Description	Permanently deletes the user the request is authenticated as, together with all their resources
// @Tags			Users
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/v1/user [delete]
func DeleteUser(c *gin.Context) {
	err := models.DeleteUser(models.DB, currentUser(c).ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Delete user data
// @Description	Permanently deletes all buckets, transactions, income records and ledger entries of the current user. The user itself is kept.
// @Tags			Users
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/v1/user/data [delete]
func DeleteUserData(c *gin.Context) {
	err := models.WipeUserData(models.DB, currentUser(c).ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
