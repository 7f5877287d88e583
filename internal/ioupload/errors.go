package ioupload

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/imgset/oiprep/pkg/errcode"
)

func CopyError(uri string, err error) error {
	msg := "Cannot copy image <em>%s</em>"
	vars := []any{uri}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImageCopyError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot copy %s: %w",
			fn, uri, err),
	}
}

func WriteError(path string, err error) error {
	msg := "Cannot write manifest <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ManifestWriteError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write manifest %s: %w",
			fn, path, err),
	}
}

func UploadError(name string, err error) error {
	msg := "Cannot upload manifest <em>%s</em>"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ManifestUploadError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot upload manifest %s: %w",
			fn, name, err),
	}
}
