package ledger

import (
	"fmt"

	"github.com/google/uuid"
)

// ResolveHolder picks the lease holder name of this process: the configured
// name, else the hostname. When the hostname is unavailable a random name is
// returned along with the lookup error, so replicas never share a holder.
func ResolveHolder(configured string, hostname func() (string, error)) (string, error) {
	if configured != "" {
		return configured, nil
	}
	host, err := hostname()
	if err == nil && host != "" {
		return host, nil
	}
	if err == nil {
		err = fmt.Errorf("empty hostname")
	}
	return "ledger-" + uuid.NewString(), err
}
