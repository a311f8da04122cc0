package guard_test

import (
	"errors"
	"testing"

	"parceltrack/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		assert.NotNil(t, g)
		require.NoError(t, g.Validate(errors.New("test object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := g.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard should be
// used in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Priority struct {
		level int
		guard guard.ConstructorGuard
	}

	var errPriorityNotConstructed = errors.New("Priority must be created via NewPriority")

	newPriority := func(level int) (Priority, error) {
		if level < 1 || level > 5 {
			return Priority{}, errors.New("level must be between 1 and 5")
		}
		return Priority{
			level: level,
			guard: guard.NewConstructorGuard(),
		}, nil
	}

	validatePriority := func(p Priority) error {
		return p.guard.Validate(errPriorityNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		priority, err := newPriority(1)

		// Then
		require.NoError(t, err)
		require.NoError(t, validatePriority(priority))
		assert.Equal(t, 1, priority.level)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var priority Priority // zero value

		// When
		err := validatePriority(priority)

		// Then
		// Zero value Priority has zero value guard which returns the error we pass
		require.Error(t, err)
		assert.Equal(t, errPriorityNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newPriority(0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "between 1 and 5")

		_, err = newPriority(6)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "between 1 and 5")
	})
}

// TestConstructorGuardDefaultError verifies the default error behavior.
func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		// Then
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Contains(t, guard.ErrDefaultConstructorGuard.Error(), "constructor")
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardImmutability verifies that ConstructorGuard can be
// safely copied by value.
func TestConstructorGuardImmutability(t *testing.T) {
	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		testError := errors.New("test error")

		// When
		guardCopy := g // Pass by value

		// Then
		require.NoError(t, g.Validate(testError))
		require.NoError(t, guardCopy.Validate(testError))
	})
}
