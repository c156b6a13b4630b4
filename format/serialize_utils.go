package format

import (
	"fmt"
)

// Int returns n right-justified in a field of w characters.
func Int(n int, w int) string {
	return fmt.Sprintf("%*d", w, n)
}

// Float returns v right-justified in a field of w characters with prec
// decimal places.
func Float(v float64, w int, prec int) string {
	return fmt.Sprintf("%*.*f", w, prec, v)
}

// Scientific returns v in scientific notation with prec digits after
// the decimal point, e.g. 1.00000e+00 for prec 5.
func Scientific(v float64, prec int) string {
	return fmt.Sprintf("%.*e", prec, v)
}
