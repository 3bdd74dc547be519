package project

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestValidate(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	tests := []struct {
		name            string
		form            Form
		expectedValid   bool
		expectedMessage string
	}{
		{
			name:          "valid form",
			form:          Form{Name: "社区福利", StartTime: timePtr(start), EndTime: timePtr(end)},
			expectedValid: true,
		},
		{
			name:            "empty name",
			form:            Form{Name: "", StartTime: timePtr(start), EndTime: timePtr(end)},
			expectedMessage: "项目名称不能为空",
		},
		{
			name:            "blank name",
			form:            Form{Name: "   ", StartTime: timePtr(start), EndTime: timePtr(end)},
			expectedMessage: "项目名称不能为空",
		},
		{
			name:            "name error wins over missing times",
			form:            Form{Name: ""},
			expectedMessage: "项目名称不能为空",
		},
		{
			name:            "missing start time",
			form:            Form{Name: "测试项目", EndTime: timePtr(end)},
			expectedMessage: "请选择开始和结束时间",
		},
		{
			name:            "missing end time",
			form:            Form{Name: "测试项目", StartTime: timePtr(start)},
			expectedMessage: "请选择开始和结束时间",
		},
		{
			name:            "end equals start",
			form:            Form{Name: "测试项目", StartTime: timePtr(start), EndTime: timePtr(start)},
			expectedMessage: "结束时间必须晚于开始时间",
		},
		{
			name:            "end before start",
			form:            Form{Name: "测试项目", StartTime: timePtr(end), EndTime: timePtr(start)},
			expectedMessage: "结束时间必须晚于开始时间",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validation := Validate(tt.form)
			assert.Equal(t, tt.expectedValid, validation.Valid)
			assert.Equal(t, tt.expectedMessage, validation.Message)
		})
	}
}
