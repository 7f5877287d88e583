package iostore

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/imgset/oiprep/pkg/errcode"
)

func ConfigError(reason string) error {
	msg := "Storage is misconfigured: %s"
	vars := []any{reason}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: storage config: %s", fn, reason),
	}
}
