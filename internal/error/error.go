package error

import "fmt"

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("stage must be either dev or prod, got: %s", stage)
}

func ErrBoardSizeOutOfRange(size, lower, upper int) error {
	return fmt.Errorf("board size must be within [%d, %d]\tgot: %d", lower, upper, size)
}

func ErrUnsupportedLocale(locale string) error {
	return fmt.Errorf("unsupported locale: %s", locale)
}

func ErrWrongTokenCount(count int) error {
	return fmt.Errorf("expected 2 coordinates\tgot: %d", count)
}

func ErrNonNumericCoordinate(token string) error {
	return fmt.Errorf("coordinate is not a number:\t%s", token)
}

func ErrInputClosed(err error) error {
	return fmt.Errorf("input closed: %w", err)
}
