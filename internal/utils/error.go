package utils

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// ConvertPanicValueToError returns v if it is an error, otherwise an error describing v.
func ConvertPanicValueToError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return fmt.Errorf("%#v", v)
}

// CombineErrors combines the non-nil errors into a single error with a multiline message,
// nil is returned if there are no errors.
func CombineErrors(errs ...error) error {
	buf := bytes.NewBuffer(nil)

	for _, err := range errs {
		if err != nil {
			buf.WriteString(err.Error())
			buf.WriteByte('\n')
		}
	}

	if buf.Len() == 0 {
		return nil
	}
	return errors.New(strings.TrimRight(buf.String(), "\n"))
}

func CombineErrorsWithPrefixMessage(prefixMsg string, errs ...error) error {
	err := CombineErrors(errs...)
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", prefixMsg, err)
}
