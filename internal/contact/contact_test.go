package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name      string
		form      Form
		wantField string
	}{
		{name: "valid", form: Form{Name: "Ada", Email: "ada@example.com", Message: "Hi"}},
		{name: "blank name", form: Form{Name: "   ", Email: "ada@example.com", Message: "Hi"}, wantField: "name"},
		{name: "name reported before email", form: Form{Email: "nope", Message: "Hi"}, wantField: "name"},
		{name: "missing email", form: Form{Name: "Ada", Message: "Hi"}, wantField: "email"},
		{name: "malformed email", form: Form{Name: "Ada", Email: "ada.example.com", Message: "Hi"}, wantField: "email"},
		{name: "email with spaces around", form: Form{Name: "Ada", Email: " ada@example.com ", Message: "Hi"}},
		{name: "blank message", form: Form{Name: "Ada", Email: "ada@example.com", Message: "\n\t"}, wantField: "message"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.form.Validate()
			if tc.wantField == "" {
				require.NoError(t, err)
				return
			}

			var valErr *folioerrors.ValidationError
			require.True(t, errors.As(err, &valErr))
			assert.Equal(t, tc.wantField, valErr.Field)
		})
	}
}

func TestFieldErrors(t *testing.T) {
	fields := Form{Email: "bad"}.FieldErrors()

	assert.Equal(t, map[string]string{
		"name":    "is required",
		"email":   "must be a valid email address",
		"message": "is required",
	}, fields)

	assert.Empty(t, Form{Name: "Ada", Email: "ada@example.com", Message: "Hi"}.FieldErrors())
}

func TestSend(t *testing.T) {
	valid := Form{Name: " Ada ", Email: "ada@example.com", Message: "Hello"}

	t.Run("no submitter", func(t *testing.T) {
		assert.ErrorIs(t, Send(context.Background(), nil, valid), ErrNoSubmitter)
	})

	t.Run("invalid form never reaches submitter", func(t *testing.T) {
		called := false
		sub := SubmitterFunc(func(context.Context, Form) error {
			called = true
			return nil
		})
		require.Error(t, Send(context.Background(), sub, Form{}))
		assert.False(t, called)
	})

	t.Run("submitter gets normalized form", func(t *testing.T) {
		var got Form
		sub := SubmitterFunc(func(_ context.Context, f Form) error {
			got = f
			return nil
		})
		require.NoError(t, Send(context.Background(), sub, valid))
		assert.Equal(t, "Ada", got.Name)
	})

	t.Run("submitter failure is wrapped", func(t *testing.T) {
		boom := errors.New("smtp down")
		sub := SubmitterFunc(func(context.Context, Form) error { return boom })
		assert.ErrorIs(t, Send(context.Background(), sub, valid), boom)
	})
}
