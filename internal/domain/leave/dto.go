package leave

import "github.com/leavedesk/leavedesk-go/internal/pkg/validator"

// CreateRecordRequest is the new-record form draft.
type CreateRecordRequest struct {
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
	Type     string `json:"type"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Notes    string `json:"notes,omitempty"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Type != "" && !ValidType(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of the known leave types",
		})
	}

	startDate, startOK := validator.IsValidDate(r.Start)
	if validator.IsEmpty(r.Start) {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start is required",
		})
	} else if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must be a valid date (YYYY-MM-DD)",
		})
	}

	endDate, endOK := validator.IsValidDate(r.End)
	if validator.IsEmpty(r.End) {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end is required",
		})
	} else if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be a valid date (YYYY-MM-DD)",
		})
	}

	if startOK && endOK && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "End date cannot be before start date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	if !ValidStatus(r.Status) {
		return ErrUnknownStatus
	}
	return nil
}

type UpdateTypeRequest struct {
	Type string `json:"type"`
}

func (r *UpdateTypeRequest) Validate() error {
	if !ValidType(r.Type) {
		return ErrUnknownLeaveType
	}
	return nil
}

// RecordResponse is a record enriched with derived fields for the table view.
type RecordResponse struct {
	Record
	DurationDays int      `json:"duration_days"`
	DateRange    string   `json:"date_range"`
	Category     Category `json:"category"`
}

// Stats are the aggregate counters over the entire record set, independent of
// the active filter. Each card carries the filter it selects when clicked.
type Stats struct {
	Total      StatCard `json:"total"`
	Pending    StatCard `json:"pending"`
	Rejected   StatCard `json:"rejected"`
	Completed  StatCard `json:"completed"`
	InProgress StatCard `json:"in_progress"`
	AddedToday StatCard `json:"added_today"`

	// Day sums over non-rejected records.
	TotalDays     int `json:"total_days"`
	CompletedDays int `json:"completed_days"`
}

type StatCard struct {
	Count  int    `json:"count"`
	Filter string `json:"filter"`
}
