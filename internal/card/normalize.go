package card

// SocialLink is one active social network entry of a card, ready for display.
type SocialLink struct {
	Key   string `json:"key"   doc:"Platform key"  example:"linkedin"`
	Icon  string `json:"icon"  doc:"Icon identifier" example:"linkedin"`
	Label string `json:"label" doc:"Display label" example:"LinkedIn"`
	Href  string `json:"href"  doc:"Link target"   example:"https://linkedin.com/in/jeandupont"`
}

// Normalized holds the derived view of a card used by every renderer.
type Normalized struct {
	HasName           bool
	HasContactInfo    bool
	ActiveSocialLinks []SocialLink
}

type platform struct {
	id    FieldID
	icon  string
	label string
	href  func(string) string
}

// platforms is the display order of social links on a card.
var platforms = []platform{
	{id: FieldLinkedIn, icon: "linkedin", label: "LinkedIn"},
	{id: FieldTwitter, icon: "x-twitter", label: "X (Twitter)"},
	{id: FieldInstagram, icon: "instagram", label: "Instagram"},
	{id: FieldFacebook, icon: "facebook", label: "Facebook"},
	{id: FieldTikTok, icon: "tiktok", label: "TikTok"},
	{id: FieldYouTube, icon: "youtube", label: "YouTube"},
	{id: FieldSnapchat, icon: "snapchat", label: "Snapchat"},
	{id: FieldGitHub, icon: "github", label: "GitHub"},
	{id: FieldWhatsApp, icon: "whatsapp", label: "WhatsApp", href: WhatsAppLink},
	{id: FieldTelegram, icon: "telegram", label: "Telegram", href: TelegramLink},
}

// Normalize derives the display flags and the ordered active social links of c.
func Normalize(c Card) Normalized {
	n := Normalized{
		HasName:        c.FirstName != "" || c.LastName != "",
		HasContactInfo: c.Phone.Active() || c.Email.Active() || c.Website.Active(),
	}
	for _, p := range platforms {
		f := c.Field(p.id)
		if !f.Active() {
			continue
		}
		href := f.Value
		if p.href != nil {
			href = p.href(f.Value)
		}
		n.ActiveSocialLinks = append(n.ActiveSocialLinks, SocialLink{
			Key:   p.id.Key(),
			Icon:  p.icon,
			Label: p.label,
			Href:  href,
		})
	}
	return n
}
