package auth

import (
	"testing"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name       string
		req        LoginRequest
		wantFields []string
	}{
		{"valid", LoginRequest{Email: "budi@example.com", Password: "secret123"}, nil},
		{"missing both", LoginRequest{}, []string{"email", "password"}},
		{"bad email", LoginRequest{Email: "budi", Password: "secret123"}, []string{"email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			for _, f := range tt.wantFields {
				assert.Contains(t, verrs.ToMap(), f)
			}
		})
	}
}
