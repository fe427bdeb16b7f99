package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"
)

// describeError turns a transport-level failure into the human-readable
// message carried by the Result. Timeouts are called out explicitly so
// they are distinguishable from refused connections and DNS failures.
func describeError(err error, timeout time.Duration) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Sprintf("timeout after %s", timeout)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Sprintf("timeout after %s", timeout)
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return fmt.Sprintf("dns lookup failed for %s: %s", dnsErr.Name, dnsErr.Err)
	}

	return err.Error()
}
