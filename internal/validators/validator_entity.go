// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/aion/models"
)

// Field names as they appear in JSON payloads. Validation failures are
// reported under these names.
const (
	FieldUserID    = "userId"
	FieldUsername  = "username"
	FieldPassword  = "password"
	FieldEmail     = "email"
	FieldName      = "name"
	FieldTitle     = "title"
	FieldScore     = "score"
	FieldStartTime = "startTime"
	FieldEndTime   = "endTime"
	FieldType      = "type"
	FieldDate      = "date"
	FieldMoodType  = "moodType"
	FieldAmount    = "amount"
	FieldCategory  = "category"
	FieldTarget    = "target"
	FieldCurrent   = "current"
	FieldContent   = "content"
)

var allowedEventTypes = []models.EventType{
	models.EventWork,
	models.EventHealth,
	models.EventPersonal,
	models.EventOther,
}

var allowedTransactionTypes = []models.TransactionType{
	models.TransactionIncome,
	models.TransactionExpense,
}

var allowedInsightTypes = []models.InsightType{
	models.InsightSuggestion,
	models.InsightReminder,
	models.InsightAnalysis,
}

// EntityValidator validates insert and patch payloads for every entity kind.
// Mood labels are deliberately NOT restricted to the known set: unrecognised
// labels are stored as-is and score a neutral default at presentation time.
type EntityValidator struct {
}

func NewEntityValidator() Validator {
	return &EntityValidator{}
}

func (v *EntityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value)

	case models.InsertUser:
		return v.validateInsertUser(ctx, value)
	case *models.InsertUser:
		return v.validateInsertUser(ctx, *value)

	case models.InsertLifeDomain:
		return v.validateInsertLifeDomain(ctx, value)
	case *models.InsertLifeDomain:
		return v.validateInsertLifeDomain(ctx, *value)
	case models.LifeDomainPatch:
		return v.validateLifeDomainPatch(ctx, value)
	case *models.LifeDomainPatch:
		return v.validateLifeDomainPatch(ctx, *value)

	case models.InsertEvent:
		return v.validateInsertEvent(ctx, value)
	case *models.InsertEvent:
		return v.validateInsertEvent(ctx, *value)
	case models.EventPatch:
		return v.validateEventPatch(ctx, value)
	case *models.EventPatch:
		return v.validateEventPatch(ctx, *value)

	case models.InsertMood:
		return v.validateInsertMood(ctx, value)
	case *models.InsertMood:
		return v.validateInsertMood(ctx, *value)

	case models.InsertTransaction:
		return v.validateInsertTransaction(ctx, value)
	case *models.InsertTransaction:
		return v.validateInsertTransaction(ctx, *value)

	case models.InsertGoal:
		return v.validateInsertGoal(ctx, value)
	case *models.InsertGoal:
		return v.validateInsertGoal(ctx, *value)
	case models.GoalPatch:
		return v.validateGoalPatch(ctx, value)
	case *models.GoalPatch:
		return v.validateGoalPatch(ctx, *value)

	case models.InsertContact:
		return v.validateInsertContact(ctx, value)
	case *models.InsertContact:
		return v.validateInsertContact(ctx, *value)
	case models.ContactPatch:
		return v.validateContactPatch(ctx, value)
	case *models.ContactPatch:
		return v.validateContactPatch(ctx, *value)

	case models.InsertInsight:
		return v.validateInsertInsight(ctx, value)
	case *models.InsertInsight:
		return v.validateInsertInsight(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func isValidEventType(t models.EventType) bool {
	for _, allowed := range allowedEventTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

func isValidTransactionType(t models.TransactionType) bool {
	for _, allowed := range allowedTransactionTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

func isValidInsightType(t models.InsightType) bool {
	for _, allowed := range allowedInsightTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

func looksLikeEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func (v *EntityValidator) validateCredentials(_ context.Context, credentials models.Credentials) error {
	var errs FieldErrors
	if credentials.Username == "" {
		errs = append(errs, FieldError{Field: FieldUsername, Message: "username is required"})
	}
	if credentials.Password == "" {
		errs = append(errs, FieldError{Field: FieldPassword, Message: "password is required"})
	}
	return errs.orNil()
}

func (v *EntityValidator) validateInsertUser(_ context.Context, user models.InsertUser) error {
	var errs FieldErrors
	if user.Username == "" {
		errs = append(errs, FieldError{Field: FieldUsername, Message: "username is required"})
	}
	if user.Password == "" {
		errs = append(errs, FieldError{Field: FieldPassword, Message: "password is required"})
	}
	if user.Email == "" {
		errs = append(errs, FieldError{Field: FieldEmail, Message: "email is required"})
	} else if !looksLikeEmail(user.Email) {
		errs = append(errs, FieldError{Field: FieldEmail, Message: "email is malformed"})
	}
	return errs.orNil()
}

func (v *EntityValidator) validateInsertLifeDomain(_ context.Context, domain models.InsertLifeDomain) error {
	var errs FieldErrors
	if domain.UserID <= 0 {
		errs = append(errs, FieldError{Field: FieldUserID, Message: "userId must be positive"})
	}
	if domain.Name == "" {
		errs = append(errs, FieldError{Field: FieldName, Message: "name is required"})
	}
	if domain.Score < 0 || domain.Score > 100 {
		errs = append(errs, FieldError{Field: FieldScore, Message: "score must be between 0 and 100"})
	}
	return errs.orNil()
}

func (v *EntityValidator) validateLifeDomainPatch(_ context.Context, patch models.LifeDomainPatch) error {
	var errs FieldErrors
	if patch.UserID != nil && *patch.UserID <= 0 {
		errs = append(errs, FieldError{Field: FieldUserID, Message: "userId must be positive"})
	}
	if patch.Name != nil && *patch.Name == "" {
		errs = append(errs, FieldError{Field: FieldName, Message: "name cannot be empty"})
	}
	if patch.Score != nil && (*patch.Score < 0 || *patch.Score > 100) {
		errs = append(errs, FieldError{Field: FieldScore, Message: "score must be between 0 and 100"})
	}
	return errs.orNil()
}

func (v *EntityValidator) validateInsertEvent(_ context.Context, event models.InsertEvent) error {
	var errs FieldErrors
	if event.UserID <= 0 {
		errs = append(errs, FieldError{Field: FieldUserID, Message: "userId must be positive"})
	}
	if event.Title == "" {
		errs = append(errs, FieldError{Field: FieldTitle, Message: "title is required"})
	}
	if event.StartTime.IsZero() {
		errs = append(errs, FieldError{Field: FieldStartTime, Message: "startTime is required"})
	}
	if event.EndTime.IsZero() {
		errs = append(errs, FieldError{Field: FieldEndTime, Message: "endTime is required"})
	} else if !event.StartTime.IsZero() && !event.EndTime.After(event.StartTime) {
		errs = append(errs, FieldError{Field: FieldEndTime, Message: "endTime must be after startTime"})
	}
	if !isValidEventType(event.Type) {
		errs = append(errs, FieldError{Field: FieldType, Message: "type must be one of work, health, personal, other"})
	}
	return errs.orNil()
}

func (v *EntityValidator) validateEventPatch(_ context.Context, patch models.EventPatch) error {
	var errs FieldErrors
	if patch.UserID != nil && *patch.UserID <= 0 {
		errs = append(errs, FieldError{Field: FieldUserID, Message: "userId must be positive"})
	}
	if patch.Title != nil && *patch.Title == "" {
		errs = append(errs, FieldError{Field: FieldTitle, Message: "title cannot be empty"})
	}
	if patch.Type != nil && !isValidEventType(*patch.Type) {
		errs = append(errs, FieldError{Field: FieldType, Message: "type must be one of work, health, personal, other"})
	}
	// end-after-start is only checkable when both bounds arrive together;
	// a lone bound is validated against the stored record by the service.
	if patch.StartTime != nil && patch.EndTime != nil && !patch.EndTime.After(*patch.StartTime) {
		errs = append(errs, FieldError{Field: FieldEndTime, Message: "endTime must be after startTime"})
	}
	return errs.orNil()
}

func (v *EntityValidator) validateInsertMood(_ context.Context, mood models.InsertMood) error {
	var errs FieldErrors
	if mood.UserID <= 0 {
		errs = append(errs, FieldError{Field: FieldUserID, Message: "userId must be positive"})
	}
	if mood.Date.IsZero() {
		errs = append(errs, FieldError{Field: FieldDate, Message: "date is required"})
	}
	if mood.MoodType == "" {
		errs = append(errs, FieldError{Field: FieldMoodType, Message: "moodType is required"})
	}
	return errs.orNil()
}

func (v *EntityValidator) validateInsertTransaction(_ context.Context, transaction models.InsertTransaction) error {
	var errs FieldErrors
	if transaction.UserID <= 0 {
		errs = append(errs, FieldError{Field: FieldUserID, Message: "userId must be positive"})
	}
	if transaction.Amount <= 0 {
		errs = append(errs, FieldError{Field: FieldAmount, Message: "amount must be positive"})
	}
	if transaction.Category == "" {
		errs = append(errs, FieldError{Field: FieldCategory, Message: "category is required"})
	}
	if transaction.Date.IsZero() {
		errs = append(errs, FieldError{Field: FieldDate, Message: "date is required"})
	}
	if !isValidTransactionType(transaction.Type) {
		errs = append(errs, FieldError{Field: FieldType, Message: "type must be income or expense"})
	}
	return errs.orNil()
}

func (v *EntityValidator) validateInsertGoal(_ context.Context, goal models.InsertGoal) error {
	var errs FieldErrors
	if goal.UserID <= 0 {
		errs = append(errs, FieldError{Field: FieldUserID, Message: "userId must be positive"})
	}
	if goal.Title == "" {
		errs = append(errs, FieldError{Field: FieldTitle, Message: "title is required"})
	}
	if goal.Target < 0 {
		errs = append(errs, FieldError{Field: FieldTarget, Message: "target cannot be negative"})
	}
	if goal.Current < 0 {
		errs = append(errs, FieldError{Field: FieldCurrent, Message: "current cannot be negative"})
	}
	return errs.orNil()
}

func (v *EntityValidator) validateGoalPatch(_ context.Context, patch models.GoalPatch) error {
	var errs FieldErrors
	if patch.UserID != nil && *patch.UserID <= 0 {
		errs = append(errs, FieldError{Field: FieldUserID, Message: "userId must be positive"})
	}
	if patch.Title != nil && *patch.Title == "" {
		errs = append(errs, FieldError{Field: FieldTitle, Message: "title cannot be empty"})
	}
	if patch.Target != nil && *patch.Target < 0 {
		errs = append(errs, FieldError{Field: FieldTarget, Message: "target cannot be negative"})
	}
	if patch.Current != nil && *patch.Current < 0 {
		errs = append(errs, FieldError{Field: FieldCurrent, Message: "current cannot be negative"})
	}
	return errs.orNil()
}

func (v *EntityValidator) validateInsertContact(_ context.Context, contact models.InsertContact) error {
	var errs FieldErrors
	if contact.UserID <= 0 {
		errs = append(errs, FieldError{Field: FieldUserID, Message: "userId must be positive"})
	}
	if contact.Name == "" {
		errs = append(errs, FieldError{Field: FieldName, Message: "name is required"})
	}
	if contact.Email != "" && !looksLikeEmail(contact.Email) {
		errs = append(errs, FieldError{Field: FieldEmail, Message: "email is malformed"})
	}
	return errs.orNil()
}

func (v *EntityValidator) validateContactPatch(_ context.Context, patch models.ContactPatch) error {
	var errs FieldErrors
	if patch.UserID != nil && *patch.UserID <= 0 {
		errs = append(errs, FieldError{Field: FieldUserID, Message: "userId must be positive"})
	}
	if patch.Name != nil && *patch.Name == "" {
		errs = append(errs, FieldError{Field: FieldName, Message: "name cannot be empty"})
	}
	if patch.Email != nil && *patch.Email != "" && !looksLikeEmail(*patch.Email) {
		errs = append(errs, FieldError{Field: FieldEmail, Message: "email is malformed"})
	}
	return errs.orNil()
}

func (v *EntityValidator) validateInsertInsight(_ context.Context, insight models.InsertInsight) error {
	var errs FieldErrors
	if insight.UserID <= 0 {
		errs = append(errs, FieldError{Field: FieldUserID, Message: "userId must be positive"})
	}
	if insight.Content == "" {
		errs = append(errs, FieldError{Field: FieldContent, Message: "content is required"})
	}
	if !isValidInsightType(insight.Type) {
		errs = append(errs, FieldError{Field: FieldType, Message: "type must be one of suggestion, reminder, analysis"})
	}
	if insight.Category == "" {
		errs = append(errs, FieldError{Field: FieldCategory, Message: "category is required"})
	}
	return errs.orNil()
}
