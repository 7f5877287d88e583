package iodata

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/imgset/oiprep/pkg/errcode"
)

func ClassTableError(path string, err error) error {
	msg := "Cannot read class description table <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SelectClassTableError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read class table %s: %w",
			fn, path, err),
	}
}

func HierarchyError(path string, err error) error {
	msg := "Cannot read label hierarchy <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SelectHierarchyError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read hierarchy %s: %w",
			fn, path, err),
	}
}

func AnnotationsError(path string, err error) error {
	msg := "Cannot read annotation table <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SelectAnnotationsError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read annotations %s: %w",
			fn, path, err),
	}
}

func SelectionSaveError(path string, err error) error {
	msg := "Cannot save selection to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SelectionSaveError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot save selection %s: %w",
			fn, path, err),
	}
}

func SelectionLoadError(path string, err error) error {
	msg := "Cannot load selection from <em>%s</em>. " +
		"Run 'oiprep select' first"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SelectionLoadError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot load selection %s: %w",
			fn, path, err),
	}
}
