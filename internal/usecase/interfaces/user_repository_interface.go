package interfaces

import (
	"context"

	"chromaprint/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User.

type IUserRepository interface {
	// CreateIfNotExists inserts the user unless one with the same email
	// exists. It reports whether a record was written.
	CreateIfNotExists(ctx context.Context, u entities.User) (bool, error)
}
