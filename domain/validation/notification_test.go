package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotification_StartsEmpty(t *testing.T) {
	n := NewNotification()

	assert.False(t, n.HasErrors())
	assert.Empty(t, n.Errors())
	assert.Empty(t, n.Messages())
}

func TestNotification_AppendAccumulates(t *testing.T) {
	n := NewNotification()
	n.Append("first problem").Append("second problem")

	assert.True(t, n.HasErrors())
	assert.Equal(t, []string{"first problem", "second problem"}, n.Messages())
}

func TestNotification_Merge(t *testing.T) {
	a := NewNotification().Append("from a")
	b := NewNotification().Append("from b")

	a.Merge(b)
	assert.Equal(t, []string{"from a", "from b"}, a.Messages())

	// merge nil ต้องไม่ panic
	a.Merge(nil)
	assert.Len(t, a.Messages(), 2)
}

func TestNotification_ImplementsError(t *testing.T) {
	n := NewNotification().Append("x").Append("y")

	var err error = n
	assert.Equal(t, "x; y", err.Error())
}
