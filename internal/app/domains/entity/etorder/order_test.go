package etorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanID(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"42", "42"},
		{"#42", "42"},
		{" #42 ", "42"},
		{"# 42", "42"},
		{"", ""},
		{"#", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CleanID(tc.in), "input %q", tc.in)
	}
}

func TestOrder_StatusPredicates(t *testing.T) {
	cancelled := &Order{Status: StatusCancelled}
	completed := &Order{Status: StatusCompleted}
	pending := &Order{Status: StatusPending}

	assert.True(t, cancelled.IsCancelled())
	assert.False(t, cancelled.IsValid())
	assert.False(t, cancelled.IsActive())

	assert.True(t, completed.IsCompleted())
	assert.True(t, completed.IsValid())
	assert.False(t, completed.IsActive())

	assert.True(t, pending.IsValid())
	assert.True(t, pending.IsActive())
}

func TestOrder_TotalValue(t *testing.T) {
	assert.Equal(t, 150.5, (&Order{Total: "150.5"}).TotalValue())
	assert.Equal(t, 0.0, (&Order{Total: "abc"}).TotalValue())
	assert.Equal(t, 0.0, (&Order{}).TotalValue())
}

func TestInfoForStatus(t *testing.T) {
	info := InfoForStatus(StatusCompleted)
	assert.Equal(t, "تم التسليم", info.Label)
	assert.Equal(t, "check_circle", info.Icon)

	// 未知状态原样透传文案，使用兜底样式
	info = InfoForStatus("حالة غريبة")
	assert.Equal(t, "حالة غريبة", info.Label)
	assert.Equal(t, "help", info.Icon)
	assert.Equal(t, "#94a3b8", info.Color)
}
