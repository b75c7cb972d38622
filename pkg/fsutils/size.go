package fsutils

import "strconv"

var sizeUnits = [...]string{"Bytes", "kB", "MB", "GB", "TB", "PB", "EB", "ZB"}

const sizeStep = 1024

// FormatSize returns a human readable size like "999 Bytes", "1 kB" or "1.5 kB".
// The value is divided by 1024 for as long as it is at least 1024 and a larger
// unit is available. A whole scaled value is printed without decimals,
// anything else with exactly one decimal place.
func FormatSize(bytes uint64) string {
	value, unit := scaleSize(bytes)
	precision := 1
	if value == float64(uint64(value)) {
		precision = 0
	}
	return strconv.FormatFloat(value, 'f', precision, 64) + " " + sizeUnits[unit]
}

// SizeUnitIndex reports which unit FormatSize picks for the given byte count.
func SizeUnitIndex(bytes uint64) int {
	_, unit := scaleSize(bytes)
	return unit
}

func scaleSize(bytes uint64) (value float64, unit int) {
	value = float64(bytes)
	for value >= sizeStep && unit < len(sizeUnits)-1 {
		value /= sizeStep
		unit++
	}
	return value, unit
}
