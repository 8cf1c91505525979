package validation

import (
	"time"

	"tasksync/internal/domain"
)

// TaskValidator provides validation for Task-related operations.
// Validation failures are rejected before reaching either store.
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a new task validator with configuration
func NewTaskValidatorWithConfig(v *Validator) *TaskValidator {
	return &TaskValidator{
		validator: v,
	}
}

// ValidateTitle validates a task title
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()

	// Trim whitespace
	trimmedTitle := tv.validator.TrimAndValidateString(title)

	// Check if title is empty
	if !tv.validator.IsNonEmptyString(trimmedTitle) {
		validationError.AddRequiredError("title")
		return validationError
	}

	// Check length constraints
	if !tv.validator.IsValidTitleLength(trimmedTitle) {
		validationError.AddInvalidLengthError("title", trimmedTitle, tv.validator.getTitleMinLength(), tv.validator.getTitleMaxLength())
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateDate validates a task due date
func (tv *TaskValidator) ValidateDate(date time.Time) error {
	if !tv.validator.IsValidDate(date) {
		validationError := NewValidationError()
		validationError.AddRequiredError("date")
		return validationError
	}
	return nil
}

// ValidateTaskForCreation validates the inputs for a new task
func (tv *TaskValidator) ValidateTaskForCreation(title string, date time.Time) error {
	validationError := NewValidationError()

	if titleErr := tv.ValidateTitle(title); titleErr != nil {
		if titleValidationErr, ok := titleErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, titleValidationErr.Errors...)
		}
	}
	if dateErr := tv.ValidateDate(date); dateErr != nil {
		if dateValidationErr, ok := dateErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, dateValidationErr.Errors...)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTask validates a domain.Task object
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	if err := tv.ValidateTaskForCreation(task.Title, task.Date); err != nil {
		if ve, ok := err.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, ve.Errors...)
		}
	}

	if !tv.validator.IsValidTaskID(task.ID) {
		validationError.AddInvalidValueError("id", task.ID, "must be a positive integer")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// GetValidTitle returns a cleaned task title if valid
func (tv *TaskValidator) GetValidTitle(title string) (string, error) {
	if err := tv.ValidateTitle(title); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(title), nil
}
