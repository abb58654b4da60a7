package order

import (
	"log"
)

// logPublishFailure is used after a committed transaction: the state change
// already happened, so a broker failure is logged and swallowed.
func logPublishFailure(routingKey string, err error) {
	log.Printf("event publish failed: %s: %v", routingKey, err)
}
