package matchresponse

import (
	"errors"
	"log"
	"math"
	"net/http"

	"github.com/DhavalSuthar-24/livescore/internal/scoring"
	fieldvalidator "github.com/DhavalSuthar-24/livescore/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// jsonSuccessResponse is the envelope for successful responses.
type jsonSuccessResponse struct {
	Status  string      `json:"status"` // always "success"
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// jsonErrorResponse is the envelope for error responses.
type jsonErrorResponse struct {
	Status    string      `json:"status"` // "error" for client errors, "fail" for server failures
	Message   string      `json:"message"`
	Code      int         `json:"code"`
	ErrorCode string      `json:"error_code,omitempty"` // domain code such as INVALID_STATE
	Errors    interface{} `json:"errors,omitempty"`
}

type jsonPaginatedResponse struct {
	Status     string      `json:"status"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data"`
	Pagination pagination  `json:"pagination"`
}

type pagination struct {
	TotalItems   int64 `json:"total_items"`
	TotalPages   int   `json:"total_pages"`
	CurrentPage  int   `json:"current_page"`
	PageSize     int   `json:"page_size"`
	HasNextPage  bool  `json:"has_next_page"`
	HasPrevPage  bool  `json:"has_prev_page"`
	NextPage     *int  `json:"next_page,omitempty"`
	PreviousPage *int  `json:"previous_page,omitempty"`
}

func statusText(statusCode int) string {
	if statusCode >= http.StatusInternalServerError {
		return "fail"
	}
	return "error"
}

// ErrorResponse sends a standardized error JSON response.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, jsonErrorResponse{
		Status:  statusText(statusCode),
		Message: message,
		Code:    statusCode,
	})
}

// StatusForError maps a scoring error code to an HTTP status. Foreign errors are server failures.
func StatusForError(err error) int {
	code, ok := scoring.CodeOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch code {
	case scoring.CodeNotFound:
		return http.StatusNotFound
	case scoring.CodeInvalidState:
		return http.StatusConflict
	case scoring.CodeUnassignedPlayers:
		return http.StatusUnprocessableEntity
	case scoring.CodeInvalidInput:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// DomainErrorResponse reports err with the status its scoring code maps to.
// Storage and other unexpected errors are logged and hidden behind a generic message.
func DomainErrorResponse(c *gin.Context, err error) {
	statusCode := StatusForError(err)
	if statusCode >= http.StatusInternalServerError {
		log.Printf("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
		ErrorResponse(c, statusCode, "Internal server error")
		return
	}
	code, _ := scoring.CodeOf(err)
	c.AbortWithStatusJSON(statusCode, jsonErrorResponse{
		Status:    statusText(statusCode),
		Message:   err.Error(),
		Code:      statusCode,
		ErrorCode: string(code),
	})
}

// ValidationErrorResponse sends a structured response for errors from c.ShouldBindJSON and friends.
func ValidationErrorResponse(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		c.AbortWithStatusJSON(http.StatusBadRequest, jsonErrorResponse{
			Status:    "error",
			Message:   "Validation failed. Please check your input.",
			Code:      http.StatusBadRequest,
			ErrorCode: string(scoring.CodeInvalidInput),
			Errors:    fieldvalidator.ParseError(ve),
		})
		return
	}
	// malformed JSON and type mismatches
	ErrorResponse(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
}

// SuccessResponse wraps responseData in the success envelope.
// A gin.H with a string "message" key has that key lifted into the top-level message.
func SuccessResponse(c *gin.Context, statusCode int, responseData interface{}) {
	payload := jsonSuccessResponse{Status: "success"}

	gh, ok := responseData.(gin.H)
	if !ok {
		payload.Data = responseData
		c.JSON(statusCode, payload)
		return
	}
	msg, isStr := gh["message"].(string)
	if !isStr {
		payload.Data = responseData
		c.JSON(statusCode, payload)
		return
	}
	payload.Message = msg
	rest := make(gin.H, len(gh))
	for k, v := range gh {
		if k != "message" {
			rest[k] = v
		}
	}
	if len(rest) > 0 {
		payload.Data = rest
	}
	c.JSON(statusCode, payload)
}

// PaginatedResponse sends a page of items with its pagination block.
func PaginatedResponse(c *gin.Context, statusCode int, itemsData interface{}, currentPage int, pageSize int, totalItems int64) {
	if pageSize <= 0 {
		pageSize = 10
	}

	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(pageSize)))
	}

	hasNextPage := currentPage < totalPages
	hasPrevPage := currentPage > 1 && currentPage <= totalPages

	var nextPageNum, prevPageNum *int
	if hasNextPage {
		val := currentPage + 1
		nextPageNum = &val
	}
	if hasPrevPage {
		val := currentPage - 1
		prevPageNum = &val
	}

	c.JSON(statusCode, jsonPaginatedResponse{
		Status: "success",
		Data:   itemsData,
		Pagination: pagination{
			TotalItems:   totalItems,
			TotalPages:   totalPages,
			CurrentPage:  currentPage,
			PageSize:     pageSize,
			HasNextPage:  hasNextPage,
			HasPrevPage:  hasPrevPage,
			NextPage:     nextPageNum,
			PreviousPage: prevPageNum,
		},
	})
}
