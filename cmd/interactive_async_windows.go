// interactive_async_windows.go - Asynchroner Modus ist nur mit poll verfuegbar
package cmd

import (
	"context"
	"errors"
)

func runAsync(_ context.Context, _ *session) error {
	return errors.New("async mode is not supported on windows")
}
