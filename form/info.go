package form

// PersonalInfo holds the canonical personal attributes that free-text
// answers may be promoted into. Fields are only written by the standard
// field extractor and by host prefill.
type PersonalInfo struct {
	FirstName     string `json:"person_first_name,omitempty"`
	LastName      string `json:"person_last_name,omitempty"`
	MiddleName    string `json:"person_middle_name,omitempty"`
	PreferredName string `json:"person_preferred_name,omitempty"`
	DateOfBirth   string `json:"person_date_of_birth,omitempty"`
	Gender        string `json:"person_gender,omitempty"`
	Race          string `json:"person_race,omitempty"`
	Ethnicity     string `json:"person_ethnicity,omitempty"`
	MaritalStatus string `json:"person_marital_status,omitempty"`
	PhoneNumber   string `json:"person_phone_number,omitempty"`
	EmailAddress  string `json:"person_email_address,omitempty"`
}

// AddressInfo holds the canonical address attributes.
type AddressInfo struct {
	Line1      string `json:"address_line_1,omitempty"`
	Line2      string `json:"address_line_2,omitempty"`
	City       string `json:"address_city,omitempty"`
	State      string `json:"address_state,omitempty"`
	Country    string `json:"address_country,omitempty"`
	PostalCode string `json:"address_postal_code,omitempty"`
}
