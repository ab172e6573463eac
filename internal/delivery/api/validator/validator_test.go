package validator

import (
	"testing"

	domainerrors "sellerhub/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAddress struct {
	City    string `json:"city" validate:"required"`
	Pincode string `json:"pincode" validate:"required,max=6"`
}

type testRequest struct {
	Name    string       `json:"name" validate:"required,personname"`
	Phone   string       `form:"phone" validate:"omitempty,contactnumber"`
	Action  string       `json:"action" validate:"omitempty,oneof=0 1"`
	Address *testAddress `json:"address" validate:"omitempty"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		req        testRequest
		wantFields map[string]string
	}{
		{
			name: "valid",
			req: testRequest{
				Name:    "Asha D'Souza",
				Phone:   "+919876543210",
				Action:  "1",
				Address: &testAddress{City: "Pune", Pincode: "411001"},
			},
		},
		{
			name:       "required",
			req:        testRequest{},
			wantFields: map[string]string{"name": "This field is required."},
		},
		{
			name: "custom tags",
			req:  testRequest{Name: "R2-D2", Phone: "12345"},
			wantFields: map[string]string{
				"name":  "Enter a valid name.",
				"phone": "Enter a valid contact number.",
			},
		},
		{
			name:       "oneof",
			req:        testRequest{Name: "Asha", Action: "2"},
			wantFields: map[string]string{"action": "Select a valid choice. Allowed values are 0 1."},
		},
		{
			name: "nested fields use the wire path",
			req:  testRequest{Name: "Asha", Address: &testAddress{Pincode: "4110011"}},
			wantFields: map[string]string{
				"address.city":    "This field is required.",
				"address.pincode": "Ensure this field has no more than 6 characters.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)

			if tt.wantFields == nil {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, domainerrors.StatusValidationFailed, appErr.StatusCode())
			assert.Equal(t, "Invalid input.", appErr.Message())
			assert.Equal(t, tt.wantFields, appErr.FieldErrors())
		})
	}
}
