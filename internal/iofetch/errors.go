package iofetch

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/imgset/oiprep/pkg/errcode"
)

func RequestError(url string, err error) error {
	msg := "Cannot download <em>%s</em>"
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FetchRequestError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot download %s: %w",
			fn, url, err),
	}
}

func BadStatusError(url, status string) error {
	msg := "Server returned %s for <em>%s</em>"
	vars := []any{status, url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FetchBadStatusError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: unexpected status %s for %s",
			fn, status, url),
	}
}

func SaveError(path string, err error) error {
	msg := "Cannot save downloaded file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FetchSaveError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot save %s: %w",
			fn, path, err),
	}
}
