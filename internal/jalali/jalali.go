// Package jalali implements civil arithmetic for the Jalali (Solar Hijri)
// calendar: leap years, month lengths, and conversion to and from Unix epoch
// day numbers.
//
// Both conversion directions and the leap rule derive from a single
// day-number mapping (the 33-year cycle with its historical break years), so
// conversions round-trip exactly over the supported range.
package jalali

// Supported year range. Outside it the cycle table has no entries.
const (
	MinYear = -61
	MaxYear = 3176
)

// breaks lists the first year of each irregular span of the leap cycle.
var breaks = [...]int{
	-61, 9, 38, 199, 426, 686, 756, 818, 1111, 1181, 1210,
	1635, 2060, 2097, 2192, 2262, 2324, 2394, 2456, 3178,
}

// jdnUnixEpoch is the Julian day number of 1970-01-01.
const jdnUnixEpoch = 2440588

// MinDays and MaxDays bound the Unix epoch day numbers representable within
// the supported year range.
var (
	MinDays = ToEpochDays(MinYear, 1, 1)
	MaxDays = ToEpochDays(MaxYear, 12, MonthLen(MaxYear, 12))
)

// cycle locates year within the leap cycle. It reports how many days past
// the leap step the year sits (0 means leap), the Gregorian year its Nowruz
// falls in, and the March day of that Nowruz. year must lie in
// [MinYear, MaxYear].
func cycle(year int) (leap, gYear, march int) {
	gYear = year + 621
	leapJ := -14
	prev := breaks[0]
	jump := 0
	for i := 1; i < len(breaks); i++ {
		next := breaks[i]
		jump = next - prev
		if year < next {
			break
		}
		leapJ += jump/33*8 + jump%33/4
		prev = next
	}
	n := year - prev
	leapJ += n/33*8 + (n%33+3)/4
	if jump%33 == 4 && jump-n == 4 {
		leapJ++
	}
	leapG := gYear/4 - (gYear/100+1)*3/4 - 150
	march = 20 + leapJ - leapG

	if jump-n < 6 {
		n = n - jump + (jump+4)/33*33
	}
	leap = ((n+1)%33 - 1) % 4
	if leap == -1 {
		leap = 4
	}
	return leap, gYear, march
}

// IsLeapYear reports whether the Jalali year has 366 days.
func IsLeapYear(year int) bool {
	leap, _, _ := cycle(year)
	return leap == 0
}

// MonthLen returns the number of days in month (1..12) of year.
func MonthLen(year, month int) int {
	switch {
	case month <= 6:
		return 31
	case month <= 11:
		return 30
	case IsLeapYear(year):
		return 30
	}
	return 29
}

// YearLen returns the number of days in year.
func YearLen(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// gregorianJDN returns the Julian day number of a proleptic Gregorian date.
func gregorianJDN(gy, gm, gd int) int {
	d := (gy+(gm-8)/6+100100)*1461/4 + (153*((gm+9)%12)+2)/5 + gd - 34840408
	return d - (gy+100100+(gm-8)/6)/100*3/4 + 752
}

// jdnGregorian returns the proleptic Gregorian date of a Julian day number.
func jdnGregorian(jdn int) (gy, gm, gd int) {
	j := 4*jdn + 139361631
	j += (4*jdn+183187720)/146097*3/4*4 - 3908
	i := j%1461/4*5 + 308
	gd = i%153/5 + 1
	gm = i/153%12 + 1
	gy = j/1461 - 100100 + (8-gm)/6
	return gy, gm, gd
}

// ToEpochDays converts a valid Jalali date to Unix epoch days. year must lie
// in [MinYear, MaxYear] and day in 1..MonthLen(year, month).
func ToEpochDays(year, month, day int) int {
	_, gYear, march := cycle(year)
	return gregorianJDN(gYear, 3, march) + (month-1)*31 - month/7*(month-7) + day - 1 - jdnUnixEpoch
}

// FromEpochDays converts Unix epoch days to a Jalali date. days must lie in
// [MinDays, MaxDays].
func FromEpochDays(days int) (year, month, day int) {
	jdn := days + jdnUnixEpoch
	gYear, _, _ := jdnGregorian(jdn)
	year = gYear - 621
	leap, _, march := cycle(year)
	k := jdn - gregorianJDN(gYear, 3, march)
	if k >= 0 {
		if k <= 185 {
			return year, 1 + k/31, 1 + k%31
		}
		k -= 186
	} else {
		year--
		k += 179
		if leap == 1 {
			k++
		}
	}
	return year, 7 + k/30, 1 + k%30
}
