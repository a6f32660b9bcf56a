package command_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/recruitbook/internal/command"
	"github.com/phrazzld/recruitbook/internal/domain"
	"github.com/phrazzld/recruitbook/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	t.Parallel()

	_, formatErr := domain.NewLabel("PENDING")
	require.Error(t, formatErr)

	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"invalid format", formatErr, domain.LabelConstraints},
		{"missing field", domain.NewMissingFieldError("Person", "Name"), "Person's Name field is missing!"},
		{"duplicate person", fmt.Errorf("add: %w", store.ErrDuplicatePerson), command.MessageDuplicatePerson},
		{"duplicate application", store.ErrDuplicateJobApplication, command.MessageDuplicateApplication},
		{"duplicate job role", store.ErrDuplicateJobRole, command.MessageDuplicateJobRole},
		{"person not found", store.ErrPersonNotFound, command.MessageInvalidPersonIndex},
		{"application not found", store.ErrJobApplicationNotFound, command.MessageInvalidApplicationIndex},
		{"unexpected", errors.New("disk on fire"), command.MessageUnexpected},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := command.Translate(tc.err)
			var cmdErr *command.Error
			require.ErrorAs(t, err, &cmdErr)
			assert.Equal(t, tc.message, cmdErr.Error())
			assert.ErrorIs(t, err, tc.err, "the cause stays inspectable")
		})
	}

	assert.NoError(t, command.Translate(nil))

	already := command.NewError("custom", nil)
	assert.Same(t, already, command.Translate(already))
}
