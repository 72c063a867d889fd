package domain

import (
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// InstanceReport records the outcome of a single job instance run.
type InstanceReport struct {
	// Instance is the display identifier of the job instance.
	Instance string `json:"instance"`
	// Digest is a stable hash of the instance identity.
	Digest string `json:"digest"`
	// Status is the terminal status of the instance.
	Status InstanceStatus `json:"status"`
	// FailedStep names the step that failed, if any.
	FailedStep string `json:"failed_step,omitempty"`
	// StartedAt is when the instance started executing.
	StartedAt time.Time `json:"started_at"`
	// Duration is how long the instance ran.
	Duration time.Duration `json:"duration"`
}

// InstanceDigest returns a stable hash of an instance identifier, used as a
// compact key in run reports.
func InstanceDigest(instance string) string {
	return strconv.FormatUint(xxhash.Sum64String(instance), 16)
}
