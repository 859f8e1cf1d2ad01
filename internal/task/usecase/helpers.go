package usecase

import (
	"context"

	repo "github.com/Aashutosh2004011/TaskManagement-Backend/internal/task/repository"
)

// recordHistory appends an audit entry best-effort: a failed history write is
// logged and swallowed so it can never fail the primary mutation.
func (uc *implUseCase) recordHistory(ctx context.Context, opt repo.CreateHistoryOptions) {
	if _, err := uc.repo.CreateHistory(ctx, opt); err != nil {
		uc.l.Warnf(ctx, "recordHistory: task=%s action=%s (non-fatal): %v", opt.TaskID, opt.Action, err)
	}
}

// coalesce returns the first non-empty string — used for partial updates.
func coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
