package ports

import (
	"context"

	"github.com/bnema/people-cli/internal/domain"
)

// PeopleAPI is the remote service that owns the people collection.
type PeopleAPI interface {
	List(ctx context.Context) ([]domain.Person, error)
	Create(ctx context.Context, person domain.Person) error
}
