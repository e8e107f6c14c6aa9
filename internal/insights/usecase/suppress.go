package usecase

import (
	"context"
	"strings"
	"time"

	"medflow-insights/internal/insights"
	"medflow-insights/internal/model"
	"medflow-insights/pkg/metrics"
)

// alertKeyPrefixes are the rule/entity combinations the engine emits.
var alertKeyPrefixes = []string{
	"overdue_task_",
	"duesoon_task_",
	"unassigned_task_",
	"inconsistency_task_",
	"overdue_sub_",
	"duesoon_sub_",
	"unassigned_sub_",
}

func validAlertKey(key string) bool {
	for _, prefix := range alertKeyPrefixes {
		if strings.HasPrefix(key, prefix) && len(key) > len(prefix) {
			return true
		}
	}
	return false
}

// Acknowledge hides an alert key permanently until cleared.
func (uc *implUseCase) Acknowledge(ctx context.Context, sc model.Scope, key string) error {
	if !validAlertKey(key) {
		return insights.ErrInvalidAlertKey
	}

	if err := uc.store.Acknowledge(ctx, key, uc.now()); err != nil {
		uc.l.Errorf(ctx, "insights.usecase.Acknowledge: %v", err)
		return err
	}

	metrics.RecordSuppressionOp("acknowledge")
	uc.l.Infof(ctx, "alert %s acknowledged by %s", key, sc.UserID)
	return nil
}

// ClearAcknowledgement re-enables a previously acknowledged alert key.
func (uc *implUseCase) ClearAcknowledgement(ctx context.Context, sc model.Scope, key string) error {
	if !validAlertKey(key) {
		return insights.ErrInvalidAlertKey
	}

	if err := uc.store.ClearAcknowledgement(ctx, key); err != nil {
		uc.l.Errorf(ctx, "insights.usecase.ClearAcknowledgement: %v", err)
		return err
	}

	metrics.RecordSuppressionOp("clear")
	uc.l.Infof(ctx, "alert %s acknowledgement cleared by %s", key, sc.UserID)
	return nil
}

// Snooze hides an alert key for the given number of days.
func (uc *implUseCase) Snooze(ctx context.Context, sc model.Scope, input insights.SnoozeInput) error {
	if !validAlertKey(input.Key) {
		return insights.ErrInvalidAlertKey
	}

	days := input.Days
	if days <= 0 {
		days = uc.cfg.DefaultSnoozeDays
	}
	until := uc.now().Add(time.Duration(days) * 24 * time.Hour)

	if err := uc.store.Snooze(ctx, input.Key, until); err != nil {
		uc.l.Errorf(ctx, "insights.usecase.Snooze: %v", err)
		return err
	}

	metrics.RecordSuppressionOp("snooze")
	uc.l.Infof(ctx, "alert %s snoozed until %s by %s", input.Key, until.Format(time.RFC3339), sc.UserID)
	return nil
}
