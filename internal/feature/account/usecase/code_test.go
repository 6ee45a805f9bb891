package usecase

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateActivationCode(t *testing.T) {
	format := regexp.MustCompile(`^\d{4}$`)
	for i := 0; i < 200; i++ {
		code, err := generateActivationCode()
		require.NoError(t, err, "failed to generate code")
		assert.Regexp(t, format, code, "code must be exactly 4 digits, leading zeros preserved")
	}
}
