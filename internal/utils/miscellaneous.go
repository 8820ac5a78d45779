package utils

func Must[T any](obj T, err error) T {
	if err != nil {
		panic(err)
	}
	return obj
}

func PanicIfErr(err error) {
	if err != nil {
		panic(err)
	}
}

// Recover runs fn and returns the value it panicked with as an error.
func Recover(fn func()) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = ConvertPanicValueToError(v)
		}
	}()
	fn()
	return nil
}
