package envutil

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestBool(t *testing.T) {
	assert.Equal(t, true, Bool("ENVUTIL_TEST_UNSET", true))
	assert.Equal(t, false, Bool("ENVUTIL_TEST_UNSET", false))

	t.Setenv("ENVUTIL_TEST", "1")
	assert.Equal(t, true, Bool("ENVUTIL_TEST", false))
	t.Setenv("ENVUTIL_TEST", "false")
	assert.Equal(t, false, Bool("ENVUTIL_TEST", true))
	t.Setenv("ENVUTIL_TEST", "bogus")
	assert.Equal(t, true, Bool("ENVUTIL_TEST", true))
}
