package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DeviceIDHeader carries the client-chosen device identifier. The app is
// anonymous; preferences are scoped by this value alone.
const DeviceIDHeader = "X-Device-ID"

const maxDeviceIDLength = 128

const contextKeyDeviceID = "deviceID"

// RequireDeviceID rejects requests without a usable device identifier and
// stores the identifier in the gin context for handlers.
func RequireDeviceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(DeviceIDHeader))
		if id == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing device id"})
			return
		}
		if len(id) > maxDeviceIDLength {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid device id"})
			return
		}
		c.Set(contextKeyDeviceID, id)
		c.Next()
	}
}

// GetDeviceID retrieves the device identifier set by RequireDeviceID.
func GetDeviceID(c *gin.Context) (string, bool) {
	v, exists := c.Get(contextKeyDeviceID)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
