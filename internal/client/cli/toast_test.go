package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToast_ShowAndDismiss(t *testing.T) {
	toast := NewToast(time.Minute)

	toast.Show("drink some water")
	assert.Equal(t, "drink some water", toast.Message())

	toast.Dismiss()
	assert.Equal(t, "", toast.Message())
}

func TestToast_AutoDismiss(t *testing.T) {
	toast := NewToast(20 * time.Millisecond)

	toast.Show("gone soon")

	assert.Eventually(t, func() bool {
		return toast.Message() == ""
	}, time.Second, 5*time.Millisecond)
}

func TestToast_ShowReplacesPending(t *testing.T) {
	toast := NewToast(time.Minute)

	toast.Show("first")
	toast.Show("second")

	assert.Equal(t, "second", toast.Message())
}

func TestToast_DismissWithoutShow(t *testing.T) {
	toast := NewToast(time.Minute)
	toast.Dismiss()
	assert.Equal(t, "", toast.Message())
}
