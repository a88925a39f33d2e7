package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"slices"

	"loyalty-server/internal/domain"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/store"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

var contactResults = []string{
	store.ContactResultSuccess,
	store.ContactResultNoAnswer,
	store.ContactResultNotInterested,
	store.ContactResultCallback,
	store.ContactResultPending,
}

// IsTerminal reports whether a contact result takes the customer out of the queue
func IsTerminal(result string) bool {
	return result == store.ContactResultSuccess || result == store.ContactResultNotInterested
}

type ContactProcessor struct {
	store  ContactStore
	events EventPublisher
	logger *observability.Logger
}

func New(store ContactStore, events EventPublisher, logger *observability.Logger) ContactProcessor {
	return ContactProcessor{
		store:  store,
		events: events,
		logger: logger,
	}
}

type RecordContactRequest struct {
	AgentID     string
	QueueType   string
	ContactType string
	Result      string
	Notes       string
}

// RecordContactResult is the logged contact and the state of the queue
// entry it was recorded against
type RecordContactResult struct {
	Contact     store.ContactHistory `json:"contact"`
	Entry       store.CallQueueEntry `json:"queue_entry"`
	Deactivated bool                 `json:"deactivated"`
}

// RecordContact logs an outreach attempt against the active entry of
// (agent, queue type). A terminal result deactivates that entry only.
func (p *ContactProcessor) RecordContact(ctx context.Context, req RecordContactRequest) (RecordContactResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "record_contact"},
		observability.Field{Key: "agent_id", Value: req.AgentID},
		observability.Field{Key: "queue_type", Value: req.QueueType},
		observability.Field{Key: "contact_result", Value: req.Result},
	)

	if err := validateContact(req); err != nil {
		return RecordContactResult{}, err
	}

	terminal := IsTerminal(req.Result)
	res, err := p.store.RecordContact(ctx, store.RecordContactParams{
		AgentID:     req.AgentID,
		QueueType:   req.QueueType,
		ContactType: req.ContactType,
		Result:      req.Result,
		Notes:       req.Notes,
		Deactivate:  terminal,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return RecordContactResult{}, &domain.NoActiveQueueEntryError{AgentID: req.AgentID, QueueType: req.QueueType}
		}
		p.logger.Error(ctx, "failed to record contact", err)
		return RecordContactResult{}, err
	}

	p.events.PublishContactRecorded(ctx, res.Contact, req.QueueType, terminal)
	p.logger.Info(ctx, "contact recorded")

	return RecordContactResult{Contact: res.Contact, Entry: res.Entry, Deactivated: terminal}, nil
}

func validateContact(req RecordContactRequest) error {
	if req.AgentID == "" {
		return domain.NewValidationError("agent_id", "is required")
	}
	if !slices.Contains(store.QueueTypes, req.QueueType) {
		return domain.NewValidationError("queue_type", "unknown queue type")
	}
	if req.ContactType != store.ContactTypeCall && req.ContactType != store.ContactTypeMessage {
		return domain.NewValidationError("contact_type", "must be one of: call message")
	}
	if !slices.Contains(contactResults, req.Result) {
		return domain.NewValidationError("result", "must be one of: success no_answer not_interested callback pending")
	}
	return nil
}

type ContactPage struct {
	AgentID  string                 `json:"agent_id"`
	Contacts []store.ContactHistory `json:"contacts"`
	Limit    int                    `json:"limit"`
	Offset   int                    `json:"offset"`
}

// ListContacts returns the contact history of an agent, newest first
func (p *ContactProcessor) ListContacts(ctx context.Context, agentID string, limit, offset int) (ContactPage, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "list_contacts"},
		observability.Field{Key: "agent_id", Value: agentID},
	)

	if limit < 0 || offset < 0 {
		return ContactPage{}, domain.NewValidationError("limit", "limit and offset must not be negative")
	}
	if limit == 0 {
		limit = defaultPageSize
	}
	limit = min(limit, maxPageSize)

	if _, err := p.store.GetAgentByID(ctx, agentID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ContactPage{}, &domain.NotFoundError{Resource: "agent", ID: agentID}
		}
		p.logger.Error(ctx, "failed to get agent", err)
		return ContactPage{}, err
	}

	contacts, err := p.store.ListContactHistory(ctx, agentID, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list contact history", err)
		return ContactPage{}, err
	}
	return ContactPage{AgentID: agentID, Contacts: contacts, Limit: limit, Offset: offset}, nil
}
