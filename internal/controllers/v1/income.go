package v1

import (
	"net/http"

	"github.com/bucket-budget/backend/internal/httputil"
	"github.com/bucket-budget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterIncomeRoutes registers the routes for income records with
// the RouterGroup that is passed.
func RegisterIncomeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsIncomeList)
		r.GET("", GetIncomeRecords)
		r.POST("", CreateIncomeRecord)
	}

	// Income record with ID
	{
		r.OPTIONS("/:id", OptionsIncomeDetail)
		r.DELETE("/:id", DeleteIncomeRecord)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Income
// @Success		204
// @Router			/v1/income [options]
func OptionsIncomeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Income
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/income/{id} [options]
func OptionsIncomeDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.IncomeRecord{}, httputil.OptionsDelete)
}

// @Summary		Create income record
// @Description	Records income or a withdrawal on the unallocated pool
// @Tags			Income
// @Accept			json
// @Produce		json
// @Success		201		{object}	IncomeRecordResponse
// @Failure		400		{object}	IncomeRecordResponse
// @Failure		500		{object}	IncomeRecordResponse
// @Param			income	body		IncomeRecordEditable	true	"Income record"
// @Router			/v1/income [post]
func CreateIncomeRecord(c *gin.Context) {
	var editable IncomeRecordEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeRecordResponse{
			Error: &s,
		})
		return
	}

	if editable.Amount.IsZero() {
		s := models.ErrAmountZero.Error()
		c.JSON(http.StatusBadRequest, IncomeRecordResponse{
			Error: &s,
		})
		return
	}

	record := editable.model()
	record.UserID = currentUser(c).ID

	err = models.DB.Create(&record).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeRecordResponse{
			Error: &s,
		})
		return
	}

	data := newIncomeRecord(c, record)
	c.JSON(http.StatusCreated, IncomeRecordResponse{Data: &data})
}

// @Summary		Get income records
// @Description	Returns the income records of the current user, newest first
// @Tags			Income
// @Produce		json
// @Success		200	{object}	IncomeRecordListResponse
// @Failure		500	{object}	IncomeRecordListResponse
// @Router			/v1/income [get]
func GetIncomeRecords(c *gin.Context) {
	records, err := models.IncomeRecords(models.DB, currentUser(c).ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeRecordListResponse{
			Error: &s,
		})
		return
	}

	data := make([]IncomeRecord, 0)
	for _, record := range records {
		data = append(data, newIncomeRecord(c, record))
	}

	c.JSON(http.StatusOK, IncomeRecordListResponse{
		Data: data,
	})
}

// @Summary		Delete income record
// @Description	Deletes an income record. The unallocated pool shrinks or grows accordingly.
// @Tags			Income
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/income/{id} [delete]
func DeleteIncomeRecord(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	record, err := models.GetIncomeRecord(models.DB, uri.ID.UUID, currentUser(c).ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&record).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
