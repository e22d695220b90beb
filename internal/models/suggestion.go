package models

// EventSuggestionInput is the raw, unvalidated event suggestion form.
// Dates and times are local wall-clock values ("2006-01-02", "15:04").
type EventSuggestionInput struct {
	Name           string `json:"name"`
	Game           Game   `json:"game"`
	StartDate      string `json:"startDate"`
	StartTime      string `json:"startTime"`
	EndDate        string `json:"endDate"`
	EndTime        string `json:"endTime"`
	BannerImageURL string `json:"bannerImageUrl"`
	Description    string `json:"description"`
	DetailsLink    string `json:"detailsLink"`
	Email          string `json:"email"`
	Timezone       string `json:"timezone,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationResult struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors"`
}

// ContactInput is the contact dialog form.
type ContactInput struct {
	Name    string `json:"name" validate:"max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}
