package helpers

import (
	"fmt"
	"time"
)

// GenerateMasterCustomerID produces the human-readable customer
// identifier stored on the contact record, format P<unix-timestamp-ms>.
func GenerateMasterCustomerID(now time.Time) string {
	return fmt.Sprintf("P%d", now.UnixMilli())
}
