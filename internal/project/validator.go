package project

import (
	"strings"
	"time"
)

// Form holds the fields of the project form subject to pre-submission checks.
// Times are pointers so an unset picker is distinguishable from a zero time.
type Form struct {
	Name      string     `json:"name"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
}

// Validation is the outcome of validating a Form. Message is set only when
// Valid is false and is safe to show to the user as-is.
type Validation struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

const (
	msgNameEmpty        = "项目名称不能为空"
	msgTimesMissing     = "请选择开始和结束时间"
	msgEndNotAfterStart = "结束时间必须晚于开始时间"
)

// Validate checks the project form fields in order and reports the first
// failure: name must be non-blank, both times must be chosen, and the end
// time must be strictly after the start time.
func Validate(form Form) Validation {
	if strings.TrimSpace(form.Name) == "" {
		return Validation{Message: msgNameEmpty}
	}
	if form.StartTime == nil || form.EndTime == nil {
		return Validation{Message: msgTimesMissing}
	}
	if !form.EndTime.After(*form.StartTime) {
		return Validation{Message: msgEndNotAfterStart}
	}
	return Validation{Valid: true}
}
