package service

import (
	"context"
	"log/slog"

	"team-service/internal/domain"
)

// Notifier is the delivery collaborator for invitation side effects.
// Delivery mechanics live outside the core; failures are the
// collaborator's problem, never the invitation's.
type Notifier interface {
	InvitationIssued(ctx context.Context, teamName string, inv *domain.Invitation)
}

// LogNotifier is the default wiring: it records the notification
// instead of sending email.
type LogNotifier struct{}

func (LogNotifier) InvitationIssued(_ context.Context, teamName string, inv *domain.Invitation) {
	slog.Info("invitation issued",
		"team", teamName,
		"email", inv.Email,
		"role", inv.Role,
		"expires_at", inv.ExpiresAt,
	)
}
