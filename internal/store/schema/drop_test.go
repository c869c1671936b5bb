package schema

import (
	"os"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-drop-engine/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestMustAmount(t *testing.T) {
	assert.Equal(t, uint256.NewInt(0), MustAmount(""))
	assert.Equal(t, uint256.NewInt(42), MustAmount("42"))

	// a corrupt stored value reads as zero instead of panicking; the parse
	// failure is logged for operators
	assert.Equal(t, uint256.NewInt(0), MustAmount("not-a-number"))
	assert.Equal(t, uint256.NewInt(0), MustAmount("-5"))
}

func TestAmountString(t *testing.T) {
	assert.Equal(t, "0", AmountString(nil))
	assert.Equal(t, "123", AmountString(uint256.NewInt(123)))
}
