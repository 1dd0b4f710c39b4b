// Package services defines the business logic for submission intake, admin
// queries, status updates, and reply dispatch. This file centralizes common
// service-level error values so that they can be consistently returned by
// service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; handlers
// translate them into HTTP statuses and user-facing messages.
package services

import "errors"

var (
	// ErrSubmissionNotFound indicates that the requested submission does not
	// exist.
	ErrSubmissionNotFound = errors.New("submission not found")

	// ErrEmptyStatus is returned when a status update carries a blank status
	// value.
	ErrEmptyStatus = errors.New("status must not be empty")

	// ErrMissingReplyField is returned when a reply request lacks one of the
	// structurally required fields (to_email, to_name, reply_message).
	ErrMissingReplyField = errors.New("missing required reply field")

	// ErrDeliveryFailed wraps email-provider rejections so handlers can map
	// all delivery problems to one stable HTTP result.
	ErrDeliveryFailed = errors.New("email delivery failed")
)
