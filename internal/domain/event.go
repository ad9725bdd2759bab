// Package domain contains the core data structures and domain logic for the application.
package domain

import (
	"errors"
	"time"
)

// ErrMalformedEvent is returned when an event payload does not carry the
// fields its type requires.
var ErrMalformedEvent = errors.New("malformed event")

// EventType is the discriminator of an ActivityEvent.
type EventType int

const (
	Other EventType = iota
	PullRequestOpened
	PullRequestReviewComment
	PullRequestReview
	IssueComment
	IssueStateChange
	WikiEdit
)

func (t EventType) String() string {
	switch t {
	case PullRequestOpened:
		return "PullRequestOpened"
	case PullRequestReviewComment:
		return "PullRequestReviewComment"
	case PullRequestReview:
		return "PullRequestReview"
	case IssueComment:
		return "IssueComment"
	case IssueStateChange:
		return "IssueStateChange"
	case WikiEdit:
		return "WikiEdit"
	default:
		return "Other"
	}
}

// ActivityEvent is a single entry of a user's event feed.
// Org is empty for events that carry no organization metadata.
type ActivityEvent struct {
	Type      EventType
	CreatedAt time.Time
	Repo      string
	Org       string
	Payload   Payload
}

// Payload is the type-specific part of an ActivityEvent.
type Payload interface {
	isPayload()
}

// PullRequestPayload identifies the pull request an event refers to.
type PullRequestPayload struct {
	Number int
	Title  string
}

// IssuePayload identifies the issue an event refers to.
type IssuePayload struct {
	Number int
	Title  string
}

// WikiPayload lists the wiki pages touched by a single edit batch.
type WikiPayload struct {
	Pages []string
}

func (PullRequestPayload) isPayload() {}
func (IssuePayload) isPayload()       {}
func (WikiPayload) isPayload()        {}
