package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neumorstudio/plantillas-api/pkg/errors"
)

// Response wraps all API responses
type Response struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Pagination represents pagination metadata
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"page_size"`
	Total     int `json:"total"`
	TotalPage int `json:"total_pages"`
}

// PaginatedResponse wraps paginated data
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// OK sends a success response
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Status: "success", Data: data})
}

// Created sends a creation response
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Status: "success", Data: data})
}

// Error sends an error response, mapping AppError codes to HTTP statuses.
func Error(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	if appErr, ok := errors.As(err); ok {
		status = appErr.StatusCode()
		message = appErr.Message
	}

	_ = c.Error(err)
	c.JSON(status, Response{Status: "error", Message: message})
}

// BadRequest sends a 400 with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{Status: "error", Message: message})
}

// Paginated sends a paginated response
func Paginated(c *gin.Context, data interface{}, page, pageSize, total int) {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	c.JSON(http.StatusOK, Response{
		Status: "success",
		Data: PaginatedResponse{
			Data: data,
			Pagination: Pagination{
				Page:      page,
				PageSize:  pageSize,
				Total:     total,
				TotalPage: totalPages,
			},
		},
	})
}
