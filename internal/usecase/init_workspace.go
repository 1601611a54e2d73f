package usecase

import (
	"errors"
	"strings"

	"github.com/aalvaropc/pawsearch/internal/domain"
	"github.com/aalvaropc/pawsearch/internal/ports"
)

type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

// Execute writes the default workspace files under root. Existing files are
// kept unless force is set.
func (uc *InitWorkspace) Execute(root string, force bool) error {
	if strings.TrimSpace(root) == "" {
		return &domain.OpError{
			Op:   "usecase.initworkspace",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("workspace root is empty"),
		}
	}
	if uc.initializer == nil {
		return &domain.OpError{
			Op:   "usecase.initworkspace",
			Kind: domain.KindExecution,
			Err:  errors.New("workspace initializer is nil"),
		}
	}
	return uc.initializer.Init(root, force)
}
