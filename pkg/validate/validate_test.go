package validate_test

import (
	"testing"

	"github.com/Astemirdum/book-catalog/pkg/validate"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestCustomValidator_Validate(t *testing.T) {
	t.Parallel()
	type req struct {
		Name string `validate:"required"`
		Kind string `validate:"even"`
	}
	v := validate.NewCustomValidator()
	require.NoError(t, v.RegisterValidation("even", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String())%2 == 0
	}))

	tests := []struct {
		name    string
		in      req
		wantErr bool
	}{
		{name: "ok", in: req{Name: "a", Kind: "ab"}},
		{name: "err. name required", in: req{Kind: "ab"}, wantErr: true},
		{name: "err. custom tag", in: req{Name: "a", Kind: "abc"}, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := v.Validate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
