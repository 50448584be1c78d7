package sync

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"

	"seller-sync/core/reconcile"
)

// Stage identifies the pipeline step a failure belongs to.
type Stage string

const (
	StageFetchCatalog    Stage = "fetch_catalog"
	StageFetchSupplier   Stage = "fetch_supplier"
	StageReconcileStocks Stage = "reconcile_stocks"
	StageSubmitStocks    Stage = "submit_stocks"
	StageSubmitPrices    Stage = "submit_prices"
)

// Category classifies a failure for reporting and exit codes.
type Category string

const (
	// CategoryTransient covers timeouts and connection failures. The run
	// aborts; retrying is the scheduler's call.
	CategoryTransient Category = "transient"
	// CategoryValidation covers malformed supplier data. Retrying will
	// not help until the feed is fixed.
	CategoryValidation Category = "validation"
	// CategoryUnexpected covers everything else, including malformed API
	// responses.
	CategoryUnexpected Category = "unexpected"
)

// ExitCode maps the category to the process exit code used by the CLI.
func (c Category) ExitCode() int {
	switch c {
	case CategoryTransient:
		return 2
	case CategoryValidation:
		return 3
	default:
		return 1
	}
}

// Error is a classified pipeline failure.
type Error struct {
	// Stage is the pipeline step that failed.
	Stage Stage
	// Category classifies the failure.
	Category Category
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s failed (%s): %v", e.Stage, e.Category, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// fail wraps err with its stage and classification.
func fail(stage Stage, err error) *Error {
	return &Error{Stage: stage, Category: classify(err), Err: err}
}

// classify sorts an error into the reporting taxonomy.
func classify(err error) Category {
	var verr *reconcile.ValidationError
	if errors.As(err, &verr) {
		return CategoryValidation
	}

	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE) {
		return CategoryTransient
	}

	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return CategoryTransient
	}
	var operr *net.OpError
	if errors.As(err, &operr) {
		return CategoryTransient
	}

	return CategoryUnexpected
}
