package card

import "strings"

// Contact kinds used by ContactLine.
const (
	ContactPhone   = "phone"
	ContactEmail   = "email"
	ContactWebsite = "website"
)

// ContactLine is a clickable contact entry of the public card.
type ContactLine struct {
	Kind    string `json:"kind"    doc:"phone, email or website" example:"phone"`
	Href    string `json:"href"    doc:"Link target"             example:"tel:+33612345678"`
	Display string `json:"display" doc:"Displayed text"          example:"+33 6 12 34 56 78"`
}

// PublicCard is the assembled public view of a card.
type PublicCard struct {
	Username       string        `json:"username"       doc:"Card owner username"       example:"jeandupont"`
	DisplayName    string        `json:"displayName"    doc:"Full name, empty when unnamed" example:"Jean Dupont"`
	Initials       string        `json:"initials"       doc:"Avatar fallback letters"   example:"JD"`
	Avatar         string        `json:"avatar"         doc:"Avatar URL"`
	Subtitle       string        `json:"subtitle"       doc:"Title and company"         example:"Developer · Acme"`
	Bio            string        `json:"bio"            doc:"Biography"`
	Contacts       []ContactLine `json:"contacts"       doc:"Active contact entries"`
	SocialLinks    []SocialLink  `json:"socialLinks"    doc:"Active social links in display order"`
	CanSaveContact bool          `json:"canSaveContact" doc:"Whether the add to contacts action is offered"`
	URL            string        `json:"url"            doc:"Shareable card URL, also the QR payload"`
	VCardFilename  string        `json:"vcardFilename"  doc:"Download name of the vCard" example:"Jean_Dupont.vcf"`
	QRFilename     string        `json:"qrFilename"     doc:"Download name of the QR code" example:"qrcode-jeandupont.png"`
}

// RenderOptions carries the request-independent inputs of Render.
type RenderOptions struct {
	BaseURL  string
	Username string
}

// CardURL returns the public URL of the card owned by username.
func CardURL(baseURL, username string) string {
	return strings.TrimRight(baseURL, "/") + "/card/" + username
}

// QRFilename returns the download name "qrcode-<username>.png".
func QRFilename(username string) string {
	return "qrcode-" + username + ".png"
}

// Render assembles the public card of c.
func Render(c Card, opts RenderOptions) PublicCard {
	n := Normalize(c)
	pc := PublicCard{
		Username:       opts.Username,
		Avatar:         c.Avatar,
		Subtitle:       Subtitle(c),
		Bio:            c.Bio,
		Contacts:       []ContactLine{},
		SocialLinks:    []SocialLink{},
		CanSaveContact: n.HasName,
		URL:            CardURL(opts.BaseURL, opts.Username),
		VCardFilename:  VCardFilename(c),
		QRFilename:     QRFilename(opts.Username),
	}
	if n.HasName {
		pc.DisplayName = DisplayName(c)
	}
	if c.Avatar == "" {
		pc.Initials = Initials(c)
	}
	if n.HasContactInfo {
		pc.Contacts = contactLines(c)
	}
	if len(n.ActiveSocialLinks) > 0 {
		pc.SocialLinks = n.ActiveSocialLinks
	}
	return pc
}

func contactLines(c Card) []ContactLine {
	lines := make([]ContactLine, 0, 3)
	if c.Phone.Active() {
		lines = append(lines, ContactLine{
			Kind:    ContactPhone,
			Href:    "tel:" + c.Phone.Value,
			Display: FormatPhoneDisplay(c.Phone.Value),
		})
	}
	if c.Email.Active() {
		lines = append(lines, ContactLine{
			Kind:    ContactEmail,
			Href:    "mailto:" + c.Email.Value,
			Display: c.Email.Value,
		})
	}
	if c.Website.Active() {
		lines = append(lines, ContactLine{
			Kind:    ContactWebsite,
			Href:    c.Website.Value,
			Display: TrimDisplayURL(c.Website.Value),
		})
	}
	return lines
}
