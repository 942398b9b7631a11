package set_people

// SetPeopleRequest HTTP request model
type SetPeopleRequest struct {
	NumberOfPeople int `json:"numberOfPeople"`
}
