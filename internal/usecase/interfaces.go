package usecase

import (
	"github.com/atharvmahajan32/caprae-capital-subm/internal/entity"
	"github.com/atharvmahajan32/caprae-capital-subm/internal/infra/worker"
)

type LeadStoreInterface interface {
	Claim(id, owner string) (*entity.Lead, error)
	Get(id string) (*entity.Lead, error)
}

type ActivityRecorder interface {
	Record(input entity.ActivityInput) *entity.Activity
}

type SequenceStoreInterface interface {
	Add(name string, emailCount, leadsInSequence int) *entity.EmailSequence
	SetStatus(id string, status entity.SequenceStatus) (*entity.EmailSequence, error)
}

type SchedulerInterface interface {
	Schedule(sequenceID, recipient string, steps []entity.EmailStep) (*worker.ScheduledSequence, error)
	Cancel(sequenceID string) int
}
