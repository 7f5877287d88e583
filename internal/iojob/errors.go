package iojob

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/imgset/oiprep/pkg/errcode"
)

func StatusError(jobName string, err error) error {
	msg := "Cannot get status of labeling job <em>%s</em>"
	vars := []any{jobName}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.JobStatusError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot describe labeling job %q: %w",
			fn, jobName, err),
	}
}
