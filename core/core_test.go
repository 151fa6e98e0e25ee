package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackFunc_Run(t *testing.T) {
	ran := false
	var cb DestructionCallback = CallbackFunc(func() error {
		ran = true
		return nil
	})
	require.NoError(t, cb.Run())
	assert.True(t, ran)
}

func TestCallbackFunc_RunError(t *testing.T) {
	errBoom := errors.New("boom")
	var cb DestructionCallback = CallbackFunc(func() error { return errBoom })
	assert.ErrorIs(t, cb.Run(), errBoom)
}
