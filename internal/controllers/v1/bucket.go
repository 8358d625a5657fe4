package v1

import (
	"net/http"

	"github.com/bucket-budget/backend/internal/httputil"
	"github.com/bucket-budget/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterBucketRoutes registers the routes for buckets with
// the RouterGroup that is passed.
func RegisterBucketRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBucketList)
		r.GET("", GetBuckets)
		r.POST("", CreateBucket)
	}

	// Engine operations
	{
		r.OPTIONS("/allocate", OptionsAllocate)
		r.POST("/allocate", Allocate)
		r.OPTIONS("/reallocate", OptionsReallocate)
		r.POST("/reallocate", Reallocate)
	}

	// Bucket with ID
	{
		r.OPTIONS("/:id", OptionsBucketDetail)
		r.GET("/:id", GetBucket)
		r.PATCH("/:id", UpdateBucket)
		r.DELETE("/:id", DeleteBucket)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Buckets
// @Success		204
// @Router			/v1/buckets [options]
func OptionsBucketList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Buckets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/buckets/{id} [options]
func OptionsBucketDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Bucket{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Create bucket
// @Description	Creates a new bucket for the current user
// @Tags			Buckets
// @Produce		json
// @Success		201		{object}	BucketResponse
// @Failure		400		{object}	BucketResponse
// @Failure		500		{object}	BucketResponse
// @Param			bucket	body		BucketEditable	true	"Bucket"
// @Router			/v1/buckets [post]
func CreateBucket(c *gin.Context) {
	var editable BucketEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &s,
		})
		return
	}

	bucket := editable.model()
	bucket.UserID = currentUser(c).ID

	err = models.DB.Create(&bucket).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &s,
		})
		return
	}

	data, err := newBucket(c, models.DB, bucket)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, BucketResponse{Data: &data})
}

// @Summary		Get buckets
// @Description	Returns the buckets of the current user
// @Tags			Buckets
// @Produce		json
// @Success		200	{object}	BucketListResponse
// @Failure		400	{object}	BucketListResponse
// @Failure		500	{object}	BucketListResponse
// @Router			/v1/buckets [get]
// @Param			name	query	string	false	"Filter by name, glob patterns are supported"
func GetBuckets(c *gin.Context) {
	var filter BucketQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	buckets, err := models.Buckets(models.DB, currentUser(c).ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BucketListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Bucket, 0)
	for _, bucket := range buckets {
		if slices.Contains(setFields, "Name") && !glob.Glob(filter.Name, bucket.Name) {
			continue
		}

		apiResource, err := newBucket(c, models.DB, bucket)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), BucketListResponse{
				Error: &s,
			})
			return
		}
		data = append(data, apiResource)
	}

	c.JSON(http.StatusOK, BucketListResponse{
		Data: data,
	})
}

// @Summary		Get bucket
// @Description	Returns a specific bucket
// @Tags			Buckets
// @Produce		json
// @Success		200	{object}	BucketResponse
// @Failure		400	{object}	BucketResponse
// @Failure		404	{object}	BucketResponse
// @Failure		500	{object}	BucketResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/buckets/{id} [get]
func GetBucket(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &s,
		})
		return
	}

	bucket, err := models.GetBucket(models.DB, uri.ID.UUID, currentUser(c).ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &s,
		})
		return
	}

	data, err := newBucket(c, models.DB, bucket)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, BucketResponse{Data: &data})
}

// @Summary		Update bucket
// @Description	Update an existing bucket. Only values to be updated need to be specified.
// @Tags			Buckets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BucketResponse
// @Failure		400		{object}	BucketResponse
// @Failure		404		{object}	BucketResponse
// @Failure		500		{object}	BucketResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			bucket	body		BucketEditable	true	"Bucket"
// @Router			/v1/buckets/{id} [patch]
func UpdateBucket(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &s,
		})
		return
	}

	bucket, err := models.GetBucket(models.DB, uri.ID.UUID, currentUser(c).ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BucketEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &s,
		})
		return
	}

	var data BucketEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&bucket).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &s,
		})
		return
	}

	r, err := newBucket(c, models.DB, bucket)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, BucketResponse{Data: &r})
}

// @Summary		Delete bucket
// @Description	Deletes a bucket and all of its transactions
// @Tags			Buckets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/buckets/{id} [delete]
func DeleteBucket(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DeleteBucket(models.DB, uri.ID.UUID, currentUser(c).ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
