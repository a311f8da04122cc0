package tracking_test

import (
	"fmt"
	"testing"

	"parceltrack/internal/core/domain/model/tracking"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(tracking.Unknown))
		assert.Equal(t, 1, int(tracking.Registered))
		assert.Equal(t, 2, int(tracking.Updated))
		assert.Equal(t, 3, int(tracking.Removed))
	})

	t.Run("should have distinct values", func(t *testing.T) {
		kinds := []tracking.Kind{
			tracking.Unknown,
			tracking.Registered,
			tracking.Updated,
			tracking.Removed,
		}

		for i, kind1 := range kinds {
			for j, kind2 := range kinds {
				if i != j {
					assert.NotEqual(t, kind1, kind2,
						"kinds at indices %d and %d should be different", i, j)
				}
			}
		}
	})
}

func TestKind_Validate(t *testing.T) {
	t.Run("should validate valid kinds", func(t *testing.T) {
		validKinds := []tracking.Kind{
			tracking.Registered,
			tracking.Updated,
			tracking.Removed,
		}

		for _, kind := range validKinds {
			t.Run(fmt.Sprintf("should validate %s kind", kind.String()), func(t *testing.T) {
				err := kind.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject Unknown kind", func(t *testing.T) {
		err := tracking.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "kind is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid kind")
	})

	t.Run("should reject invalid kind values", func(t *testing.T) {
		invalidKinds := []tracking.Kind{
			tracking.Kind(-1),
			tracking.Kind(4),
			tracking.Kind(100),
		}

		for _, kind := range invalidKinds {
			t.Run(fmt.Sprintf("should reject kind value %d", int(kind)), func(t *testing.T) {
				err := kind.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "kind is invalid")
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid kind", int(kind)))
			})
		}
	})
}

func TestKind_String(t *testing.T) {
	t.Run("should return correct string for valid kinds", func(t *testing.T) {
		testCases := []struct {
			kind     tracking.Kind
			expected string
		}{
			{tracking.Registered, "Registered"},
			{tracking.Updated, "Updated"},
			{tracking.Removed, "Removed"},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.kind)), func(t *testing.T) {
				result := tc.kind.String()
				assert.Equal(t, tc.expected, result)
			})
		}
	})

	t.Run("should return Unknown for invalid kinds", func(t *testing.T) {
		invalidKinds := []tracking.Kind{
			tracking.Unknown,
			tracking.Kind(-1),
			tracking.Kind(4),
		}

		for _, kind := range invalidKinds {
			t.Run(fmt.Sprintf("should return Unknown for kind value %d", int(kind)), func(t *testing.T) {
				result := kind.String()
				assert.Equal(t, "Unknown", result)
			})
		}
	})
}

func TestKind_Consistency(t *testing.T) {
	t.Run("should have consistent String() and Validate() behavior", func(t *testing.T) {
		allPossibleKinds := []tracking.Kind{
			tracking.Kind(-100),
			tracking.Kind(-1),
			tracking.Unknown,
			tracking.Registered,
			tracking.Updated,
			tracking.Removed,
			tracking.Kind(4),
			tracking.Kind(100),
		}

		for _, kind := range allPossibleKinds {
			t.Run(fmt.Sprintf("kind %d", int(kind)), func(t *testing.T) {
				str := kind.String()
				err := kind.Validate()

				if str == "Unknown" {
					require.Error(t, err, "kind with String() 'Unknown' should fail validation")
				} else {
					require.NoError(t, err, "kind with valid String() should pass validation")
				}
			})
		}
	})
}
