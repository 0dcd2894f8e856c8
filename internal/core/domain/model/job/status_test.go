package job_test

import (
	"fmt"
	"testing"

	"booking/internal/core/domain/model/job"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []job.Status{
			job.Open,
			job.Assigned,
			job.InProgress,
			job.Completed,
			job.Cancelled,
			job.Expired,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown and out-of-range statuses", func(t *testing.T) {
		for _, status := range []job.Status{job.Unknown, job.Status(-1), job.Status(99)} {
			err := status.Validate()

			require.Error(t, err)
			require.ErrorIs(t, err, job.ErrInvalidTransition)
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   job.Status
		expected string
	}{
		{job.Open, "Open"},
		{job.Assigned, "Assigned"},
		{job.InProgress, "InProgress"},
		{job.Completed, "Completed"},
		{job.Cancelled, "Cancelled"},
		{job.Expired, "Expired"},
		{job.Status(42), "Unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.status.String())
	}
}

func TestStatus_Accept(t *testing.T) {
	t.Run("should accept from Open", func(t *testing.T) {
		newStatus, err := job.Open.Accept()

		require.NoError(t, err)
		assert.Equal(t, job.Assigned, newStatus)
	})

	t.Run("should reject acceptance from every other status", func(t *testing.T) {
		for _, status := range []job.Status{
			job.Assigned, job.InProgress, job.Completed, job.Cancelled, job.Expired,
		} {
			t.Run(status.String(), func(t *testing.T) {
				_, err := status.Accept()

				require.Error(t, err)
				require.ErrorIs(t, err, job.ErrInvalidTransition)
			})
		}
	})
}

func TestStatus_Start(t *testing.T) {
	t.Run("should start from Assigned", func(t *testing.T) {
		newStatus, err := job.Assigned.Start()

		require.NoError(t, err)
		assert.Equal(t, job.InProgress, newStatus)
	})

	t.Run("should reject start from Open", func(t *testing.T) {
		_, err := job.Open.Start()
		require.ErrorIs(t, err, job.ErrInvalidTransition)
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("should complete from InProgress", func(t *testing.T) {
		newStatus, err := job.InProgress.Complete()

		require.NoError(t, err)
		assert.Equal(t, job.Completed, newStatus)
	})

	t.Run("should reject completion from Assigned", func(t *testing.T) {
		_, err := job.Assigned.Complete()
		require.ErrorIs(t, err, job.ErrInvalidTransition)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should cancel from active statuses", func(t *testing.T) {
		for _, status := range []job.Status{job.Open, job.Assigned, job.InProgress} {
			newStatus, err := status.Cancel()

			require.NoError(t, err)
			assert.Equal(t, job.Cancelled, newStatus)
		}
	})

	t.Run("cancelling a cancelled job is not a silent no-op", func(t *testing.T) {
		_, err := job.Cancelled.Cancel()

		require.Error(t, err)
		require.ErrorIs(t, err, job.ErrInvalidTransition)
	})

	t.Run("should reject cancellation from Completed and Expired", func(t *testing.T) {
		for _, status := range []job.Status{job.Completed, job.Expired} {
			_, err := status.Cancel()
			require.ErrorIs(t, err, job.ErrInvalidTransition)
		}
	})
}

func TestStatus_MarkNoShow(t *testing.T) {
	t.Run("should mark no-show from Assigned and InProgress", func(t *testing.T) {
		for _, status := range []job.Status{job.Assigned, job.InProgress} {
			newStatus, err := status.MarkNoShow()

			require.NoError(t, err)
			assert.Equal(t, job.Cancelled, newStatus)
		}
	})

	t.Run("should reject no-show from Open", func(t *testing.T) {
		_, err := job.Open.MarkNoShow()
		require.ErrorIs(t, err, job.ErrInvalidTransition)
	})
}

func TestStatus_Expire(t *testing.T) {
	t.Run("should expire from Open", func(t *testing.T) {
		newStatus, err := job.Open.Expire()

		require.NoError(t, err)
		assert.Equal(t, job.Expired, newStatus)
	})

	t.Run("should reject expiry from Assigned", func(t *testing.T) {
		_, err := job.Assigned.Expire()
		require.ErrorIs(t, err, job.ErrInvalidTransition)
	})
}

func TestStatus_Reopen(t *testing.T) {
	t.Run("should reopen from Cancelled and Expired", func(t *testing.T) {
		for _, status := range []job.Status{job.Cancelled, job.Expired} {
			newStatus, err := status.Reopen()

			require.NoError(t, err)
			assert.Equal(t, job.Open, newStatus)
		}
	})

	t.Run("should reject reopening from every non-reopenable status", func(t *testing.T) {
		for _, status := range []job.Status{job.Open, job.Assigned, job.InProgress, job.Completed} {
			t.Run(status.String(), func(t *testing.T) {
				_, err := status.Reopen()

				require.Error(t, err)
				require.ErrorIs(t, err, job.ErrInvalidTransition)
			})
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, job.Open.IsTerminal())
	assert.False(t, job.Assigned.IsTerminal())
	assert.False(t, job.InProgress.IsTerminal())
	assert.True(t, job.Completed.IsTerminal())
	assert.True(t, job.Cancelled.IsTerminal())
	assert.True(t, job.Expired.IsTerminal())
}

func TestStatus_ValidateCanHaveTranslator(t *testing.T) {
	t.Run("bound statuses require a translator", func(t *testing.T) {
		for _, status := range []job.Status{job.Assigned, job.InProgress, job.Completed} {
			require.NoError(t, status.ValidateCanHaveTranslator(true))
			require.ErrorIs(t, status.ValidateCanHaveTranslator(false), job.ErrInvalidTransition)
		}
	})

	t.Run("unbound statuses must not have a translator", func(t *testing.T) {
		for _, status := range []job.Status{job.Open, job.Cancelled, job.Expired} {
			require.NoError(t, status.ValidateCanHaveTranslator(false))
			require.ErrorIs(t, status.ValidateCanHaveTranslator(true), job.ErrInvalidTransition)
		}
	})
}
