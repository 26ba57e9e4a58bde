package validation

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/demoapps/go-services/internal/apperr"
)

type sample struct {
	Name   string   `json:"name" validate:"notblank"`
	Status string   `json:"status" validate:"omitempty,oneof=open closed"`
	Amount *float64 `json:"amount" validate:"required,gte=0"`
	Email  string   `json:"email" validate:"omitempty,email"`
}

func ptr(f float64) *float64 { return &f }

func TestStructValid(t *testing.T) {
	require.NoError(t, Struct(sample{Name: "x", Status: "open", Amount: ptr(0)}))
}

func TestStructCollectsEveryFailure(t *testing.T) {
	err := Struct(sample{Name: "   ", Status: "maybe", Email: "nope"})
	var f Failures
	require.True(t, errors.As(err, &f))
	require.Len(t, f, 4)

	byField := map[string]Failure{}
	for _, x := range f {
		byField[x.Field] = x
	}
	require.Equal(t, Required, byField["name"].Reason)
	require.Equal(t, NotAllowed, byField["status"].Reason)
	require.Equal(t, []string{"open", "closed"}, byField["status"].Allowed)
	require.Equal(t, Required, byField["amount"].Reason)
	require.Equal(t, Malformed, byField["email"].Reason)
}

func TestStructNegativeAmount(t *testing.T) {
	err := Struct(sample{Name: "x", Amount: ptr(-1)})
	var f Failures
	require.True(t, errors.As(err, &f))
	require.True(t, f.Has("amount"))
	require.Equal(t, OutOfRange, f[0].Reason)
}

func TestOneOf(t *testing.T) {
	type color string
	require.NoError(t, OneOf("color", color("red"), "red", "blue"))
	err := OneOf("color", color("green"), "red", "blue")
	require.Error(t, err)
	require.Contains(t, err.Error(), "color: not_allowed")
}

func TestAsAppError(t *testing.T) {
	err := AsAppError(OneOf("attendance", "Maybe", "Present", "Absent", "Given"), "Invalid attendance status")
	require.Equal(t, http.StatusBadRequest, apperr.Status(err))
	require.Equal(t, "Invalid attendance status", apperr.Message(err))

	plain := errors.New("x")
	require.Same(t, plain, AsAppError(plain, "ignored"))
}
