package profile

// ProfileCreateOutput for POST /profile (201 Created)
type ProfileCreateOutput struct {
	Location string `header:"Location" doc:"URL of created profile"`
	Body     Profile
}

// ProfileGetOutput for GET /profile
type ProfileGetOutput struct {
	Body Profile
}

// ProfileSaveOutput for PUT /profile
type ProfileSaveOutput struct {
	Body Profile
}

// DraftOutput for GET and PUT /profile/draft
type DraftOutput struct {
	Body Draft
}
