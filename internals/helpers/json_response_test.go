package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))

	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))

	// Wrapped driver errors still match.
	sqliteErr := fmt.Errorf("create failed: %w", errors.New("UNIQUE constraint failed: students.student_number"))
	assert.True(t, IsUniqueViolation(sqliteErr))
}

func TestStatusToErrorCode(t *testing.T) {
	assert.Equal(t, "UNAUTHORIZED", statusToErrorCode(401))
	assert.Equal(t, "CONFLICT", statusToErrorCode(409))
	assert.Equal(t, "REMOTE_ERROR", statusToErrorCode(502))
}
