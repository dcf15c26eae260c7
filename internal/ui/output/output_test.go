package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/shortstr/internal/ui/output"
)

func TestColorProfile(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile(), "NO_COLOR should force Ascii profile")

	t.Setenv("NO_COLOR", "")
	assert.NotPanics(t, func() { _ = output.ColorProfile() })
}

func TestNew(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	out := output.New(&buf)

	styled := out.String("plain").Foreground(termenv.ANSIRed)
	_, err := out.WriteString(styled.String())
	assert.NoError(t, err)
	assert.Equal(t, "plain", buf.String())

	assert.NotNil(t, output.New(nil))
}
