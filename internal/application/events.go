package application

import (
	"context"

	"github.com/bnema/people-cli/internal/domain"
)

// Command is work the hosting event loop runs off-loop. The Event it returns
// must be handed back to Controller.Apply on the loop.
type Command func(ctx context.Context) Event

type Event interface {
	isEvent()
}

// PeopleListed completes a ListAll command.
type PeopleListed struct {
	People []domain.Person
	Err    error
}

// PersonCreated completes an AddPerson command.
type PersonCreated struct {
	Person domain.Person
	Err    error
}

func (PeopleListed) isEvent() {}
func (PersonCreated) isEvent() {}
