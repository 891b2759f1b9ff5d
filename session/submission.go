package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/monjil99/intakeagent/form"
	"github.com/monjil99/intakeagent/skiplogic"
)

// SubmissionRecord is the immutable snapshot of a completed conversation,
// handed to the host's persistence collaborator. Built once, never mutated.
type SubmissionRecord struct {
	AssistanceRequestID string            `json:"assistance_request_id"`
	Description         string            `json:"description"`
	ServiceID           string            `json:"service_id"`
	ProviderID          string            `json:"provider_id"`
	CaseID              string            `json:"case_id"`
	FormID              string            `json:"form_id"`
	Personal            form.PersonalInfo `json:"personal_info"`
	Address             form.AddressInfo  `json:"address_info"`
	Responses           []form.Response   `json:"custom_responses"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// Sink consumes finalized submissions. Implementations live with the host;
// the engine does not choose storage formats or locations.
type Sink interface {
	Save(ctx context.Context, record *SubmissionRecord) error
}

// Finalize assembles the submission record. It fails with a StateError while
// any required question that is not skipped under the current responses
// remains unanswered.
func (s *Session) Finalize(description string) (*SubmissionRecord, error) {
	if s.template == nil {
		return nil, stateErrorf("finalize", "no template bound")
	}
	for i := range s.template.Questions {
		q := &s.template.Questions[i]
		if !q.Required || s.responses.Has(q.ID) {
			continue
		}
		if skiplogic.ShouldSkip(q, s.responses, s.template) {
			continue
		}
		return nil, stateErrorf("finalize", "required question %q is unanswered", q.ID)
	}
	now := time.Now().UTC()
	return &SubmissionRecord{
		AssistanceRequestID: uuid.NewString(),
		Description:         description,
		ServiceID:           uuid.NewString(),
		ProviderID:          uuid.NewString(),
		CaseID:              uuid.NewString(),
		FormID:              s.template.ID,
		Personal:            s.personal,
		Address:             s.address,
		Responses:           s.responses.Entries(),
		CreatedAt:           now,
		UpdatedAt:           now,
	}, nil
}
