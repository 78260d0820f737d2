package dto

// JobBoardFilter contains query parameters for the public job board.
type JobBoardFilter struct {
	Q        string
	Location string
	JobType  string
}

// SubmitJobRequest captures an employer job-posting submission.
type SubmitJobRequest struct {
	CompanyName      string `json:"company_name"`
	CompanyEmail     string `json:"company_email"`
	CompanyWebsite   string `json:"company_website"`
	JobTitle         string `json:"job_title"`
	JobLocation      string `json:"job_location"`
	JobType          string `json:"job_type"`
	SalaryRange      string `json:"salary_range"`
	JobDescription   string `json:"job_description"`
	Requirements     string `json:"requirements"`
	Benefits         string `json:"benefits"`
	ApplicationEmail string `json:"application_email"`
	ApplicationURL   string `json:"application_url"`
}
