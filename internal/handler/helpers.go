package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skelectricals/backend/internal/billing"
)

// bindJSON binds JSON request body to a struct
func bindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return fmt.Errorf("invalid JSON format: %v", err)
	}
	return nil
}

// getQueryInt retrieves an integer query parameter with a default value
func getQueryInt(c *gin.Context, paramName string, defaultValue int) (int, error) {
	valueStr := c.Query(paramName)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be an integer", paramName)
	}

	return value, nil
}

// getInvoiceNumberParam parses the :number path parameter, accepting either
// the bare integer or the display form ("7", "007", "INV-007").
func getInvoiceNumberParam(c *gin.Context, paramName string) (int64, error) {
	value := c.Param(paramName)
	if strings.HasPrefix(value, "INV-") {
		return billing.ParseInvoiceNumber(value)
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: must be a positive integer or INV-prefixed number", paramName)
	}
	return n, nil
}

// getUUIDParam parses a UUID path parameter
func getUUIDParam(c *gin.Context, paramName string) (uuid.UUID, error) {
	value := c.Param(paramName)
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: must be a UUID", paramName)
	}
	return id, nil
}

// currentUserID returns the authenticated user's ID set by the auth middleware
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return uuid.Nil, false
	}
	raw, ok := value.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// currentCompanyName returns the company linked to the authenticated client
func currentCompanyName(c *gin.Context) string {
	return c.GetString("companyName")
}
