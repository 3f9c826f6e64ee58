package holiday

import (
	"github.com/ujustbe/attendance-backend-go/internal/pkg/validator"
)

type AddHolidayRequest struct {
	Name        string   `json:"name"`
	Date        string   `json:"date"`
	Departments []string `json:"departments"`
}

func (r AddHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if len(r.Departments) == 0 {
		errs = append(errs, validator.ValidationError{Field: "departments", Message: "select at least one department"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryResponse struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Date        string   `json:"date"`
	Departments []string `json:"departments"`
	Recurring   bool     `json:"recurring"`
}

// ToResponse maps an entry to its transport shape.
func ToResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:          e.ID,
		Name:        e.Name,
		Date:        e.Date.Format("2006-01-02"),
		Departments: e.Departments,
		Recurring:   e.Recurring,
	}
}
