package attendance

import (
	"time"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/office"
)

type Evaluation struct {
	Date        time.Time
	Status      Status
	OfficeStart time.Time
}

// Evaluate decides the status of a clock-in at now. All comparisons happen
// in the policy timezone; a clock-in exactly at office start is present.
func Evaluate(now time.Time, policy office.Policy) (Evaluation, error) {
	loc, err := policy.Loc()
	if err != nil {
		return Evaluation{}, err
	}

	date := office.LocalDate(now, loc)
	start, err := policy.StartOn(date, loc)
	if err != nil {
		return Evaluation{}, err
	}

	status := StatusPresent
	if now.After(start) {
		status = StatusLate
	}

	return Evaluation{Date: date, Status: status, OfficeStart: start}, nil
}
