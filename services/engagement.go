package services

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sergiorueda9090/camilo/database"
	"github.com/sergiorueda9090/camilo/errs"
	"github.com/sergiorueda9090/camilo/models"
)

// ModerationGate selects how a submitted comment becomes visible.
type ModerationGate string

const (
	// GateSubscriber requires an active subscriber; accepted comments are
	// visible immediately.
	GateSubscriber ModerationGate = "subscriber"
	// GateFlag accepts comments from anyone but holds them unapproved until
	// an administrator flips the flag.
	GateFlag ModerationGate = "flag"
)

// ParseModerationGate maps a config value onto a gate, defaulting to the
// subscriber-gated variant.
func ParseModerationGate(s string) ModerationGate {
	if ModerationGate(strings.ToLower(strings.TrimSpace(s))) == GateFlag {
		return GateFlag
	}
	return GateSubscriber
}

// Submission reasons reported to the caller.
const (
	ReasonNotFound      = "not_found"
	ReasonNotAuthorized = "not_authorized"
)

// SubmitResult reports the outcome of one comment-submission attempt. A
// silent reject (missing required field) is OK=false with no reason.
type SubmitResult struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

// CommentSubmission is one inbound attempt to comment on an article.
type CommentSubmission struct {
	SessionID string
	Slug      string
	Name      string
	Email     string
	Role      string
	Text      string
	IP        string
	ParentID  *uuid.UUID
}

// Engagement runs the write-side reader workflows: comment submission,
// subscriber registration and the view counter.
type Engagement struct {
	gate        ModerationGate
	articles    *database.ArticleRepo
	comments    *database.CommentRepo
	subscribers *database.SubscriberRepo
	echoes      *EchoStore
	mailer      *Mailer
	logger      zerolog.Logger
}

func NewEngagement(db database.Database, gate ModerationGate, echoes *EchoStore, mailer *Mailer) *Engagement {
	return &Engagement{
		gate:        gate,
		articles:    db.ArticleRepo(),
		comments:    db.CommentRepo(),
		subscribers: db.SubscriberRepo(),
		echoes:      echoes,
		mailer:      mailer,
		logger:      log.With().Str("service", "engagement").Logger(),
	}
}

// Gate reports which moderation variant is active.
func (e *Engagement) Gate() ModerationGate {
	return e.gate
}

// SubmitComment walks the submission state machine: article lookup, field
// validation, the moderation gate, then the insert. Storage failures come
// back as errors; every policy outcome comes back in the result.
func (e *Engagement) SubmitComment(in CommentSubmission) (SubmitResult, error) {
	article, err := e.articles.FindPublishedBySlug(in.Slug)
	if err != nil {
		return SubmitResult{}, errs.FromDB("find", "article", err)
	}
	if article == nil {
		return SubmitResult{Reason: ReasonNotFound}, nil
	}

	// Missing required fields reject silently: no row, no error surfaced,
	// the form simply re-renders.
	if strings.TrimSpace(in.Email) == "" || strings.TrimSpace(in.Text) == "" {
		return SubmitResult{}, nil
	}

	comment := models.Comment{
		ArticleID: article.ID,
		ParentID:  in.ParentID,
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Role:      strings.TrimSpace(in.Role),
		Text:      strings.TrimSpace(in.Text),
		IPAddress: in.IP,
	}

	switch e.gate {
	case GateFlag:
		// Anyone may submit; the comment waits for moderation.
		comment.Approved = false
	default:
		sub, err := e.subscribers.FindActiveByEmail(in.Email)
		if err != nil {
			return SubmitResult{}, errs.FromDB("find", "subscriber", err)
		}
		if sub == nil {
			e.echoes.Put(in.SessionID, Echo{
				Email:  in.Email,
				Text:   in.Text,
				Reason: ReasonNotAuthorized,
			})
			return SubmitResult{Reason: ReasonNotAuthorized}, nil
		}
		comment.SubscriberID = &sub.ID
		comment.Approved = true
		if comment.Name == "" {
			comment.Name = sub.Name
		}
	}

	if comment.Name == "" {
		comment.Name = displayName(comment.Email)
	}

	if err := e.comments.Add(&comment); err != nil {
		return SubmitResult{}, errs.FromDB("create", "comment", err)
	}

	e.logger.Info().
		Str("article", in.Slug).
		Bool("approved", comment.Approved).
		Msg("comment created")
	return SubmitResult{OK: true}, nil
}

// CommentsFor returns the comments visible to readers of an article, newest
// first. Under the flag gate only approved comments are visible.
func (e *Engagement) CommentsFor(articleID uuid.UUID) ([]models.Comment, error) {
	comments, err := e.comments.ForArticle(articleID, e.gate == GateFlag)
	if err != nil {
		return nil, errs.FromDB("find", "comments", err)
	}
	return comments, nil
}

// RegisterSubscriber looks up or creates a subscriber. The response shape is
// uniform: it reports created-vs-existing but never whether an existing row
// is active or confirmed. A new registration fires the confirmation mail in
// the background.
func (e *Engagement) RegisterSubscriber(email, name string) (bool, error) {
	if strings.TrimSpace(email) == "" {
		return false, errs.BadRequestWithField("email is required", "email")
	}

	sub, created, err := e.subscribers.LookupOrCreate(email, strings.TrimSpace(name))
	if err != nil {
		return false, errs.FromDB("create", "subscriber", err)
	}

	if created && e.mailer != nil {
		token := sub.ConfirmationToken
		address := sub.Email
		go func() {
			if err := e.mailer.SendConfirmation(address, token); err != nil {
				e.logger.Error().Err(err).Str("email", address).Msg("confirmation mail failed")
			}
		}()
	}

	return created, nil
}

// ConfirmSubscriber flips the confirmed flag for a valid token.
func (e *Engagement) ConfirmSubscriber(token string) error {
	matched, err := e.subscribers.ConfirmByToken(token)
	if err != nil {
		return errs.FromDB("update", "subscriber", err)
	}
	if matched == 0 {
		return errs.NotFound("confirmation token")
	}
	return nil
}

// RecordView bumps the article's view counter. Every successful detail
// fetch counts; there is no dedup by visitor.
func (e *Engagement) RecordView(slug string) error {
	matched, err := e.articles.IncrementViews(slug)
	if err != nil {
		return errs.FromDB("update", "article", err)
	}
	if matched == 0 {
		return errs.NotFound("article")
	}
	return nil
}

// ConsumeEcho hands back the one-shot echo of the session's last rejected
// submission, clearing it in the same step.
func (e *Engagement) ConsumeEcho(sessionID string) (Echo, bool) {
	return e.echoes.Consume(sessionID)
}

// displayName falls back to the local part of the email when the submitter
// gave no name.
func displayName(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}
