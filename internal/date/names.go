package date

// GregorianMonths holds the English month names.
var GregorianMonths = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// JalaliMonths holds the common English transliteration of the Jalali month
// names.
var JalaliMonths = [12]string{
	"Farvardin", "Ordibehesht", "Khordad", "Tir", "Mordad", "Shahrivar",
	"Mehr", "Aban", "Azar", "Dey", "Bahman", "Esfand",
}

// Abbrev shortens an ASCII name to its first three characters, the
// conventional abbreviation for month and weekday names.
func Abbrev(name string) string {
	if len(name) <= 3 {
		return name
	}
	return name[:3]
}

// MonthNames returns the month-name table of the given calendar.
func MonthNames(sys System) [12]string {
	if sys == Jalali {
		return JalaliMonths
	}
	return GregorianMonths
}
