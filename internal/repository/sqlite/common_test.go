package sqlite

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "tasksync/internal/errors"
)

// MockResult implements sql.Result for testing
type MockResult struct {
	lastInsertID int64
	rowsAffected int64
	insertErr    error
	rowsErr      error
}

func (mr *MockResult) LastInsertId() (int64, error) {
	return mr.lastInsertID, mr.insertErr
}

func (mr *MockResult) RowsAffected() (int64, error) {
	return mr.rowsAffected, mr.rowsErr
}

func TestHandleDatabaseError(t *testing.T) {
	originalErr := errors.New("database connection failed")
	result := HandleDatabaseError("test operation", originalErr)

	assert.NotNil(t, result)
	assert.Contains(t, result.Error(), "test operation")
	assert.Contains(t, result.Error(), "database connection failed")
	assert.True(t, apperrors.IsErrorType(result, apperrors.ErrorTypeStorage))
}

func TestHandleNoRowsError(t *testing.T) {
	tests := []struct {
		name       string
		inputErr   error
		entityType string
		id         string
		isNotFound bool
	}{
		{
			name:       "sql.ErrNoRows becomes not found",
			inputErr:   sql.ErrNoRows,
			entityType: "task",
			id:         "1",
			isNotFound: true,
		},
		{
			name:       "other errors pass through",
			inputErr:   errors.New("connection lost"),
			entityType: "task",
			id:         "1",
			isNotFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := HandleNoRowsError(tt.inputErr, tt.entityType, tt.id)

			if tt.isNotFound {
				assert.True(t, apperrors.IsNotFound(result))
			} else {
				assert.Equal(t, tt.inputErr, result)
			}
		})
	}
}

func TestValidateRowsAffected(t *testing.T) {
	tests := []struct {
		name       string
		result     sql.Result
		expectErr  bool
		isNotFound bool
	}{
		{
			name:      "rows affected",
			result:    &MockResult{rowsAffected: 1},
			expectErr: false,
		},
		{
			name:       "zero rows affected",
			result:     &MockResult{rowsAffected: 0},
			expectErr:  true,
			isNotFound: true,
		},
		{
			name:      "rows affected error",
			result:    &MockResult{rowsErr: errors.New("driver error")},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRowsAffected(tt.result, "task", "1")

			if !tt.expectErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			if tt.isNotFound {
				assert.True(t, apperrors.IsNotFound(err))
			}
		})
	}
}
