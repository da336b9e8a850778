package application

import (
	"context"
	"time"

	"github.com/bnema/people-cli/internal/domain"
	"github.com/bnema/people-cli/internal/ports"
	"go.uber.org/zap"
)

// Controller holds the people collection shown to the operator. Commands may
// run on any goroutine; Apply and the accessors must only be called from the
// single event loop that owns the controller.
type Controller struct {
	api    ports.PeopleAPI
	logger *zap.Logger
	clock  ports.Clock

	people      []domain.Person
	refreshedAt time.Time
}

func NewController(api ports.PeopleAPI, logger *zap.Logger, clock ports.Clock) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Controller{
		api:    api,
		logger: logger,
		clock:  clock,
		people: []domain.Person{},
	}
}

func (c *Controller) Initialize() Command {
	return c.ListAll()
}

func (c *Controller) ListAll() Command {
	api := c.api
	return func(ctx context.Context) Event {
		people, err := api.List(ctx)
		return PeopleListed{People: people, Err: err}
	}
}

func (c *Controller) AddPerson(name string, age float64) Command {
	api := c.api
	person := domain.Person{Name: name, Age: age}
	return func(ctx context.Context) Event {
		return PersonCreated{Person: person, Err: api.Create(ctx, person)}
	}
}

// Apply folds a completed command into the controller and returns the
// follow-up command, if any.
func (c *Controller) Apply(event Event) Command {
	switch ev := event.(type) {
	case PeopleListed:
		if ev.Err != nil {
			c.logger.Error("list people", zap.Error(ev.Err))
			return nil
		}

		c.people = domain.ClonePeople(ev.People)
		c.refreshedAt = c.clock.Now()
		c.logger.Info("successfully got people", zap.Int("count", len(c.people)))
		c.logger.Debug("people payload", zap.Any("people", c.people))
		return nil
	case PersonCreated:
		// A failed create has no handler: the result is dropped.
		if ev.Err != nil {
			return nil
		}

		return c.ListAll()
	default:
		return nil
	}
}

func (c *Controller) People() []domain.Person {
	return domain.ClonePeople(c.people)
}

func (c *Controller) RefreshedAt() time.Time {
	return c.refreshedAt
}

// Drain runs cmd and every follow-up it produces on the calling goroutine.
func Drain(ctx context.Context, c *Controller, cmd Command) {
	for cmd != nil {
		cmd = c.Apply(cmd(ctx))
	}
}
