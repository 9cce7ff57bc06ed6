package logging

import (
	"context"

	"go.uber.org/zap"
)

// Audit actions.
const (
	AuditCreate = "create"
	AuditSave   = "save"
	AuditDelete = "delete"
	AuditRecord = "record"
)

// Audit results.
const (
	AuditSuccess = "success"
	AuditFailure = "failure"
)

// LogAuditEvent logs a structured audit event for a change to a user-owned
// resource.
//
// Args:
//   - action: one of the Audit* actions
//   - userID: the user performing the action, empty for anonymous callers
//   - resourceType: the type of resource (e.g., "profile", "event")
//   - resourceID: the ID of the resource
//   - result: AuditSuccess or AuditFailure
//   - details: optional additional details
func LogAuditEvent(
	ctx context.Context,
	action, userID, resourceType, resourceID, result string,
	details map[string]any,
) {
	fields := []zap.Field{
		zap.String("audit.action", action),
		zap.String("audit.user_id", userID),
		zap.String("audit.resource_type", resourceType),
		zap.String("audit.resource_id", resourceID),
		zap.String("audit.result", result),
	}
	if len(details) > 0 {
		fields = append(fields, zap.Any("audit.details", details))
	}

	logger := LoggerFromContext(ctx)
	if result == AuditFailure {
		logger.Warn("Audit event", fields...)
		return
	}
	logger.Info("Audit event", fields...)
}
