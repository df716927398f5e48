package delivery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEmail(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		suggestion string
		wantErr    bool
	}{
		{name: "valid address", email: "user@example.com"},
		{name: "uppercase normalized", email: "User@Example.COM"},
		{name: "surrounding whitespace", email: "  user@example.com  "},
		{name: "missing at sign", email: "userexample.com", wantErr: true},
		{name: "missing domain", email: "user@", wantErr: true},
		{name: "missing tld", email: "user@example", wantErr: true},
		{name: "disposable domain", email: "user@mailinator.com", wantErr: true},
		{name: "disposable domain uppercase", email: "user@MAILINATOR.com", wantErr: true},
		{name: "gmail typo", email: "user@gmial.com", suggestion: "user@gmail.com"},
		{name: "outlook typo", email: "user@outlok.com", suggestion: "user@outlook.com"},
		{name: "double dots in domain", email: "user@exa..com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestion, err := CheckEmail(tt.email)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.suggestion, suggestion)
		})
	}
}
