package job

import (
	"github.com/worklane/jobboard-backend-go/internal/pkg/validator"
)

var jobTypes = []string{"full-time", "part-time", "contract", "internship"}

type CreateJobRequest struct {
	Title       string  `json:"title"`
	CompanyName string  `json:"company_name"`
	Location    string  `json:"location"`
	Type        string  `json:"type"`
	SalaryMin   *int64  `json:"salary_min,omitempty"`
	SalaryMax   *int64  `json:"salary_max,omitempty"`
	Description string  `json:"description"`
	Deadline    *string `json:"deadline,omitempty"` // YYYY-MM-DD
}

func (r *CreateJobRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if len(r.Title) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 255 characters",
		})
	}
	if validator.IsEmpty(r.CompanyName) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_name",
			Message: "company_name is required",
		})
	}
	if validator.IsEmpty(r.Location) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location is required",
		})
	}
	if !validator.IsInSlice(r.Type, jobTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of full-time, part-time, contract, internship",
		})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}
	if r.SalaryMin != nil && r.SalaryMax != nil && *r.SalaryMin > *r.SalaryMax {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_min",
			Message: "salary_min must not exceed salary_max",
		})
	}
	if r.Deadline != nil {
		if _, ok := validator.IsValidDate(*r.Deadline); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "deadline",
				Message: "deadline must be a valid date in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateJobRequest struct {
	ID          string  `json:"-"`
	Title       *string `json:"title,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
	Location    *string `json:"location,omitempty"`
	Type        *string `json:"type,omitempty"`
	SalaryMin   *int64  `json:"salary_min,omitempty"`
	SalaryMax   *int64  `json:"salary_max,omitempty"`
	Description *string `json:"description,omitempty"`
	Deadline    *string `json:"deadline,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (r *UpdateJobRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not be empty",
		})
	}
	if r.Type != nil && !validator.IsInSlice(*r.Type, jobTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of full-time, part-time, contract, internship",
		})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusOpen), string(StatusClosed)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be open or closed",
		})
	}
	if r.Deadline != nil {
		if _, ok := validator.IsValidDate(*r.Deadline); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "deadline",
				Message: "deadline must be a valid date in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type JobFilter struct {
	Keyword   *string
	Location  *string
	Type      *string
	Status    *string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

func (f *JobFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Type != nil && !validator.IsInSlice(*f.Type, jobTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of full-time, part-time, contract, internship",
		})
	}
	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{string(StatusOpen), string(StatusClosed)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be open or closed",
		})
	}
	if f.SortBy != "" && !validator.IsInSlice(f.SortBy, []string{"created_at", "title", "deadline"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_by",
			Message: "sort_by must be one of created_at, title, deadline",
		})
	}
	if f.SortOrder != "" && !validator.IsInSlice(f.SortOrder, []string{"asc", "desc"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_order",
			Message: "sort_order must be asc or desc",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type JobResponse struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	CompanyName      string  `json:"company_name"`
	Location         string  `json:"location"`
	Type             string  `json:"type"`
	SalaryMin        *int64  `json:"salary_min,omitempty"`
	SalaryMax        *int64  `json:"salary_max,omitempty"`
	Description      string  `json:"description"`
	Deadline         *string `json:"deadline,omitempty"`
	Status           string  `json:"status"`
	ApplicationCount *int64  `json:"application_count,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

type ListJobsResponse struct {
	TotalCount int64         `json:"total_count"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"total_pages"`
	Jobs       []JobResponse `json:"jobs"`
}
