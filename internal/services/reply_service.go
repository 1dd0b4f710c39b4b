// Package services – ReplyService
//
// This file implements the ReplyService, which renders the fixed reply
// template, submits it to the email provider, and marks the matching
// submission as replied once the provider accepts the mail. Delivery
// failures are wrapped in ErrDeliveryFailed and leave submission state
// untouched; there is no retry.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mechgenz/contact-backend/internal/domain"
	"github.com/mechgenz/contact-backend/internal/email"
	"github.com/mechgenz/contact-backend/internal/metrics"
)

// ReplyRepo defines the repository contract required by ReplyService.
type ReplyRepo interface {
	// LatestSubmissionByEmail returns the most recent submission for an address.
	LatestSubmissionByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.Submission, error)

	// UpdateSubmissionStatus overwrites a submission's status.
	UpdateSubmissionStatus(ctx context.Context, db *gorm.DB, id, status string) error
}

// ReplyRequest is the transient reply-dispatch payload. Nothing here is
// persisted; a successful dispatch only mutates the matched submission's
// status.
type ReplyRequest struct {
	ToEmail         string
	ToName          string
	ReplyMessage    string
	OriginalMessage string
}

// ReplyReceipt reports a successful dispatch.
type ReplyReceipt struct {
	// EmailID is the provider-assigned message identifier.
	EmailID string
	// SubmissionID is the submission marked replied, or "" when no stored
	// submission matched the recipient address.
	SubmissionID string
}

// ReplyService sends templated reply emails and flips the matching
// submission to "replied" on success.
type ReplyService struct {
	// DB is the GORM handle used for the status mutation.
	DB *gorm.DB
	// Repo locates and mutates submissions.
	Repo ReplyRepo
	// Mailer delivers the rendered reply.
	Mailer email.Client

	// From is the verified sender identity.
	From string
	// ReplyTo is the address replies to the reply should reach.
	ReplyTo string
	// Identity is substituted into the reply template.
	Identity email.Identity
}

// Send validates req, renders the reply, and dispatches it.
//
// Semantics:
//   - to_email, to_name, and reply_message are structurally required;
//     a missing one yields ErrMissingReplyField (wrapped with the field name).
//   - The mail is sent before any state changes. A provider rejection is
//     wrapped in ErrDeliveryFailed and the submission keeps its status.
//   - After the provider accepts the mail, the most recent submission whose
//     stored email matches to_email (case-insensitive) is marked "replied".
//     Several submissions may share an address; matching the most recent one
//     is the documented tie-break. When none matches, the dispatch still
//     succeeds and the receipt carries an empty SubmissionID.
//   - A failure to update the status after a successful send is logged but
//     not surfaced: the reply did go out, which is what the caller asked for.
func (s *ReplyService) Send(ctx context.Context, req ReplyRequest) (*ReplyReceipt, error) {
	toEmail := strings.TrimSpace(req.ToEmail)
	toName := strings.TrimSpace(req.ToName)
	replyMsg := strings.TrimSpace(req.ReplyMessage)
	switch {
	case toEmail == "":
		return nil, fmt.Errorf("%w: to_email", ErrMissingReplyField)
	case toName == "":
		return nil, fmt.Errorf("%w: to_name", ErrMissingReplyField)
	case replyMsg == "":
		return nil, fmt.Errorf("%w: reply_message", ErrMissingReplyField)
	}

	html, text, err := email.RenderReply(s.Identity, toName, replyMsg, strings.TrimSpace(req.OriginalMessage))
	if err != nil {
		return nil, err
	}

	msg := email.Message{
		From:    s.From,
		To:      []string{toEmail},
		ReplyTo: s.ReplyTo,
		Subject: fmt.Sprintf("Reply from %s - Your Inquiry", s.Identity.Name),
		HTML:    html,
		Text:    text,
	}
	res, err := s.Mailer.Send(ctx, msg)
	if err != nil {
		metrics.RecordEmailFailure("reply")
		return nil, fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	metrics.RecordReplySent()

	receipt := &ReplyReceipt{EmailID: res.ID}

	sub, err := s.Repo.LatestSubmissionByEmail(ctx, s.DB, strings.ToLower(toEmail))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Err(err).Str("to_email", toEmail).Msg("lookup submission after reply")
		}
		return receipt, nil
	}
	if err := s.Repo.UpdateSubmissionStatus(ctx, s.DB, sub.ID, domain.StatusReplied); err != nil {
		log.Warn().Err(err).Str("submission_id", sub.ID).Msg("mark submission replied")
		return receipt, nil
	}
	receipt.SubmissionID = sub.ID
	return receipt, nil
}
