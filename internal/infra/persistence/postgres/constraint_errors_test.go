package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "gorm translated", err: gorm.ErrDuplicatedKey, want: true},
		{name: "wrapped gorm translated", err: errors.Wrap(gorm.ErrDuplicatedKey, "insert failed"), want: true},
		{name: "raw pg message", err: errors.New(`duplicate key value violates unique constraint "idx_bookings_client_class"`), want: true},
		{name: "sqlstate only", err: errors.New("ERROR: some failure (SQLSTATE 23505)"), want: true},
		{name: "unrelated", err: errors.New("connection refused"), want: false},
		{name: "record not found", err: gorm.ErrRecordNotFound, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "gorm translated", err: gorm.ErrForeignKeyViolated, want: true},
		{name: "raw pg message", err: errors.New(`insert or update on table "class_bookings" violates foreign key constraint`), want: true},
		{name: "sqlstate only", err: errors.New("ERROR: some failure (SQLSTATE 23503)"), want: true},
		{name: "unique violation is not fk", err: gorm.ErrDuplicatedKey, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isForeignKeyConstraintViolation(tt.err))
		})
	}
}
