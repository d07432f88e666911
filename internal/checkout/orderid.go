package checkout

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type IDGenerator func(now time.Time) string

// NewOrderID returns ORD-<unix millis>-<8 random hex digits>. The random
// suffix keeps ids distinct when orders share a millisecond.
func NewOrderID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix)
}
