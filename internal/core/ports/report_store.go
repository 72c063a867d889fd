package ports

import "go.trai.ch/relay/internal/core/domain"

// RunReportStore defines the interface for persisting per-instance run
// reports.
//
//go:generate go run go.uber.org/mock/mockgen -source=report_store.go -destination=mocks/mock_report_store.go -package=mocks
type RunReportStore interface {
	// Get retrieves the last report for a given instance identifier.
	// It returns nil without error when no report exists.
	Get(instance string) (*domain.InstanceReport, error)
	// Put stores the report, replacing any previous report for the same
	// instance.
	Put(report domain.InstanceReport) error
}
