package repository

import (
	"context"

	"github.com/diillson/buildops-audit-go/internal/domain/entity"
	"github.com/diillson/buildops-audit-go/internal/shared/types"
)

// AuthRepository exchanges client credentials for a session.
type AuthRepository interface {
	Authorize(ctx context.Context, creds types.Credentials) (*entity.Session, error)
}
