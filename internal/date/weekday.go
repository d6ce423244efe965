package date

// Weekday is a day of the week, Sunday = 0 through Saturday = 6, matching
// time.Weekday numbering.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Weekdays holds the English weekday names in Sunday-first order.
var Weekdays = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

func (w Weekday) String() string {
	return Weekdays[((w%7)+7)%7]
}

// Forward returns the weekday n days after w. n may be negative.
func (w Weekday) Forward(n int) Weekday {
	return Weekday(((int(w)+n)%7 + 7) % 7)
}

// StepsTo returns how many days forward from w until v first occurs, 0..6.
func (w Weekday) StepsTo(v Weekday) int {
	return ((int(v)-int(w))%7 + 7) % 7
}
