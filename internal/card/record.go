package card

// Record is the flat persisted shape of a card: one string column per value and
// one boolean column per toggle.
type Record struct {
	FirstName        string `json:"first_name"        firestore:"first_name"`
	LastName         string `json:"last_name"         firestore:"last_name"`
	Title            string `json:"title"             firestore:"title"`
	Company          string `json:"company"           firestore:"company"`
	Bio              string `json:"bio"               firestore:"bio"`
	AvatarURL        string `json:"avatar_url"        firestore:"avatar_url"`
	Phone            string `json:"phone"             firestore:"phone"`
	PhoneEnabled     bool   `json:"phone_enabled"     firestore:"phone_enabled"`
	EmailContact     string `json:"email_contact"     firestore:"email_contact"`
	EmailEnabled     bool   `json:"email_enabled"     firestore:"email_enabled"`
	Website          string `json:"website"           firestore:"website"`
	WebsiteEnabled   bool   `json:"website_enabled"   firestore:"website_enabled"`
	LinkedIn         string `json:"linkedin"          firestore:"linkedin"`
	LinkedInEnabled  bool   `json:"linkedin_enabled"  firestore:"linkedin_enabled"`
	Twitter          string `json:"twitter"           firestore:"twitter"`
	TwitterEnabled   bool   `json:"twitter_enabled"   firestore:"twitter_enabled"`
	Instagram        string `json:"instagram"         firestore:"instagram"`
	InstagramEnabled bool   `json:"instagram_enabled" firestore:"instagram_enabled"`
	Facebook         string `json:"facebook"          firestore:"facebook"`
	FacebookEnabled  bool   `json:"facebook_enabled"  firestore:"facebook_enabled"`
	TikTok           string `json:"tiktok"            firestore:"tiktok"`
	TikTokEnabled    bool   `json:"tiktok_enabled"    firestore:"tiktok_enabled"`
	YouTube          string `json:"youtube"           firestore:"youtube"`
	YouTubeEnabled   bool   `json:"youtube_enabled"   firestore:"youtube_enabled"`
	Snapchat         string `json:"snapchat"          firestore:"snapchat"`
	SnapchatEnabled  bool   `json:"snapchat_enabled"  firestore:"snapchat_enabled"`
	GitHub           string `json:"github"            firestore:"github"`
	GitHubEnabled    bool   `json:"github_enabled"    firestore:"github_enabled"`
	WhatsApp         string `json:"whatsapp"          firestore:"whatsapp"`
	WhatsAppEnabled  bool   `json:"whatsapp_enabled"  firestore:"whatsapp_enabled"`
	Telegram         string `json:"telegram"          firestore:"telegram"`
	TelegramEnabled  bool   `json:"telegram_enabled"  firestore:"telegram_enabled"`
}

// FromRecord builds the nested card representation of r.
func FromRecord(r Record) Card {
	return Card{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Title:     r.Title,
		Company:   r.Company,
		Bio:       r.Bio,
		Avatar:    r.AvatarURL,
		Phone:     SocialField{Value: r.Phone, Enabled: r.PhoneEnabled},
		Email:     SocialField{Value: r.EmailContact, Enabled: r.EmailEnabled},
		Website:   SocialField{Value: r.Website, Enabled: r.WebsiteEnabled},
		LinkedIn:  SocialField{Value: r.LinkedIn, Enabled: r.LinkedInEnabled},
		Twitter:   SocialField{Value: r.Twitter, Enabled: r.TwitterEnabled},
		Instagram: SocialField{Value: r.Instagram, Enabled: r.InstagramEnabled},
		Facebook:  SocialField{Value: r.Facebook, Enabled: r.FacebookEnabled},
		TikTok:    SocialField{Value: r.TikTok, Enabled: r.TikTokEnabled},
		YouTube:   SocialField{Value: r.YouTube, Enabled: r.YouTubeEnabled},
		Snapchat:  SocialField{Value: r.Snapchat, Enabled: r.SnapchatEnabled},
		GitHub:    SocialField{Value: r.GitHub, Enabled: r.GitHubEnabled},
		WhatsApp:  SocialField{Value: r.WhatsApp, Enabled: r.WhatsAppEnabled},
		Telegram:  SocialField{Value: r.Telegram, Enabled: r.TelegramEnabled},
	}
}

// ToRecord flattens c into its persisted shape.
func ToRecord(c Card) Record {
	return Record{
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		Title:            c.Title,
		Company:          c.Company,
		Bio:              c.Bio,
		AvatarURL:        c.Avatar,
		Phone:            c.Phone.Value,
		PhoneEnabled:     c.Phone.Enabled,
		EmailContact:     c.Email.Value,
		EmailEnabled:     c.Email.Enabled,
		Website:          c.Website.Value,
		WebsiteEnabled:   c.Website.Enabled,
		LinkedIn:         c.LinkedIn.Value,
		LinkedInEnabled:  c.LinkedIn.Enabled,
		Twitter:          c.Twitter.Value,
		TwitterEnabled:   c.Twitter.Enabled,
		Instagram:        c.Instagram.Value,
		InstagramEnabled: c.Instagram.Enabled,
		Facebook:         c.Facebook.Value,
		FacebookEnabled:  c.Facebook.Enabled,
		TikTok:           c.TikTok.Value,
		TikTokEnabled:    c.TikTok.Enabled,
		YouTube:          c.YouTube.Value,
		YouTubeEnabled:   c.YouTube.Enabled,
		Snapchat:         c.Snapchat.Value,
		SnapchatEnabled:  c.Snapchat.Enabled,
		GitHub:           c.GitHub.Value,
		GitHubEnabled:    c.GitHub.Enabled,
		WhatsApp:         c.WhatsApp.Value,
		WhatsAppEnabled:  c.WhatsApp.Enabled,
		Telegram:         c.Telegram.Value,
		TelegramEnabled:  c.Telegram.Enabled,
	}
}
