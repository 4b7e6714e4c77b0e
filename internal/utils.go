package internal

import (
	"os"

	"github.com/google/uuid"
)

// GenerateInstanceID returns a unique ID for this running instance. Two
// instances on the same host must not share an ID, so the hostname is
// suffixed with a fresh UUID.
func GenerateInstanceID() string {
	host, err := os.Hostname()
	if err != nil {
		host = "instance"
	}
	return host + "-" + uuid.New().String()
}
