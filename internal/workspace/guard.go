package workspace

import (
	"context"

	"github.com/google/uuid"
)

// Role is the ordered membership level inside a workspace.
type Role int

const (
	Viewer Role = iota
	Editor
	Owner
)

func (r Role) String() string {
	switch r {
	case Viewer:
		return "viewer"
	case Editor:
		return "editor"
	case Owner:
		return "owner"
	default:
		return "unknown"
	}
}

// Guard answers membership questions. Workspace membership lives in an
// external service, so the pipeline only depends on this capability.
type Guard interface {
	HasPermission(ctx context.Context, workspaceID uuid.UUID, actorID string, min Role) (bool, error)
}

// AllowAll grants every request. Used in tests and single-tenant deployments
// where an upstream gateway already enforced membership.
type AllowAll struct{}

func (AllowAll) HasPermission(context.Context, uuid.UUID, string, Role) (bool, error) {
	return true, nil
}
