package usecase

import (
	"time"

	"github.com/belenfg/restaurant-chatbot/internal/reservation"
	"github.com/belenfg/restaurant-chatbot/internal/reservation/repository"
	"github.com/belenfg/restaurant-chatbot/pkg/log"
)

// implUseCase is the private implementation of reservation.UseCase.
type implUseCase struct {
	repo     repository.Repository
	l        log.Logger
	capacity int
	locks    *slotLocks
	now      func() time.Time
}

var _ reservation.UseCase = (*implUseCase)(nil)

// New creates a new reservation UseCase. capacity is the per-slot limit.
func New(repo repository.Repository, l log.Logger, capacity int) *implUseCase {
	return &implUseCase{
		repo:     repo,
		l:        l,
		capacity: capacity,
		locks:    newSlotLocks(),
		now:      time.Now,
	}
}
