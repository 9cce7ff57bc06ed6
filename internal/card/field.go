// Package card holds the business card data model and the pure functions that
// normalize, migrate and render it.
package card

import "strings"

// SocialField is a contact or social value that the owner can switch on and off
// independently of its content.
type SocialField struct {
	Value   string `json:"value"   required:"false" doc:"Field value"                example:"+33612345678"`
	Enabled bool   `json:"enabled" required:"false" doc:"Show the field on the card" example:"true"`
}

// Active reports whether the field is enabled and carries a non-blank value.
// Inactive fields never reach rendered output or vCard text.
func (f SocialField) Active() bool {
	return f.Enabled && strings.TrimSpace(f.Value) != ""
}

// IsActive is the function form of SocialField.Active.
func IsActive(f SocialField) bool {
	return f.Active()
}

// FieldID enumerates the SocialField slots of a Card.
type FieldID int

const (
	FieldPhone FieldID = iota
	FieldEmail
	FieldWebsite
	FieldLinkedIn
	FieldTwitter
	FieldInstagram
	FieldFacebook
	FieldTikTok
	FieldYouTube
	FieldSnapchat
	FieldGitHub
	FieldWhatsApp
	FieldTelegram
)

// Fields lists every FieldID in declaration order.
var Fields = []FieldID{
	FieldPhone,
	FieldEmail,
	FieldWebsite,
	FieldLinkedIn,
	FieldTwitter,
	FieldInstagram,
	FieldFacebook,
	FieldTikTok,
	FieldYouTube,
	FieldSnapchat,
	FieldGitHub,
	FieldWhatsApp,
	FieldTelegram,
}

var fieldKeys = [...]string{
	FieldPhone:     "phone",
	FieldEmail:     "email",
	FieldWebsite:   "website",
	FieldLinkedIn:  "linkedin",
	FieldTwitter:   "twitter",
	FieldInstagram: "instagram",
	FieldFacebook:  "facebook",
	FieldTikTok:    "tiktok",
	FieldYouTube:   "youtube",
	FieldSnapchat:  "snapchat",
	FieldGitHub:    "github",
	FieldWhatsApp:  "whatsapp",
	FieldTelegram:  "telegram",
}

// Key returns the JSON key of the field, e.g. "linkedin".
func (id FieldID) Key() string {
	if id < 0 || int(id) >= len(fieldKeys) {
		return ""
	}
	return fieldKeys[id]
}

func (id FieldID) String() string {
	return id.Key()
}

// ParseFieldID resolves a JSON key to its FieldID.
func ParseFieldID(key string) (FieldID, bool) {
	for _, id := range Fields {
		if fieldKeys[id] == key {
			return id, true
		}
	}
	return 0, false
}

// IdentityField enumerates the plain string attributes of a Card.
type IdentityField int

const (
	IdentityFirstName IdentityField = iota
	IdentityLastName
	IdentityTitle
	IdentityCompany
	IdentityBio
	IdentityAvatar
)

// IdentityFields lists every IdentityField in declaration order.
var IdentityFields = []IdentityField{
	IdentityFirstName,
	IdentityLastName,
	IdentityTitle,
	IdentityCompany,
	IdentityBio,
	IdentityAvatar,
}

var identityKeys = [...]string{
	IdentityFirstName: "firstName",
	IdentityLastName:  "lastName",
	IdentityTitle:     "title",
	IdentityCompany:   "company",
	IdentityBio:       "bio",
	IdentityAvatar:    "avatar",
}

// Key returns the JSON key of the attribute, e.g. "firstName".
func (f IdentityField) Key() string {
	if f < 0 || int(f) >= len(identityKeys) {
		return ""
	}
	return identityKeys[f]
}

func (f IdentityField) String() string {
	return f.Key()
}

// Card is the in-memory card data edited by its owner.
type Card struct {
	FirstName string `json:"firstName" required:"false" doc:"First name"             example:"Jean"`
	LastName  string `json:"lastName"  required:"false" doc:"Last name"              example:"Dupont"`
	Title     string `json:"title"     required:"false" doc:"Job title"              example:"Developer"`
	Company   string `json:"company"   required:"false" doc:"Company"                example:"Acme"`
	Bio       string `json:"bio"       required:"false" doc:"Short biography"`
	Avatar    string `json:"avatar"    required:"false" doc:"Avatar URL or data URI"`

	Phone     SocialField `json:"phone"     required:"false"`
	Email     SocialField `json:"email"     required:"false"`
	Website   SocialField `json:"website"   required:"false"`
	LinkedIn  SocialField `json:"linkedin"  required:"false"`
	Twitter   SocialField `json:"twitter"   required:"false"`
	Instagram SocialField `json:"instagram" required:"false"`
	Facebook  SocialField `json:"facebook"  required:"false"`
	TikTok    SocialField `json:"tiktok"    required:"false"`
	YouTube   SocialField `json:"youtube"   required:"false"`
	Snapchat  SocialField `json:"snapchat"  required:"false"`
	GitHub    SocialField `json:"github"    required:"false"`
	WhatsApp  SocialField `json:"whatsapp"  required:"false"`
	Telegram  SocialField `json:"telegram"  required:"false"`
}

// Default returns an empty card with every field disabled.
func Default() Card {
	return Card{}
}

func (c *Card) slot(id FieldID) *SocialField {
	switch id {
	case FieldPhone:
		return &c.Phone
	case FieldEmail:
		return &c.Email
	case FieldWebsite:
		return &c.Website
	case FieldLinkedIn:
		return &c.LinkedIn
	case FieldTwitter:
		return &c.Twitter
	case FieldInstagram:
		return &c.Instagram
	case FieldFacebook:
		return &c.Facebook
	case FieldTikTok:
		return &c.TikTok
	case FieldYouTube:
		return &c.YouTube
	case FieldSnapchat:
		return &c.Snapchat
	case FieldGitHub:
		return &c.GitHub
	case FieldWhatsApp:
		return &c.WhatsApp
	case FieldTelegram:
		return &c.Telegram
	}
	return nil
}

func (c *Card) identity(f IdentityField) *string {
	switch f {
	case IdentityFirstName:
		return &c.FirstName
	case IdentityLastName:
		return &c.LastName
	case IdentityTitle:
		return &c.Title
	case IdentityCompany:
		return &c.Company
	case IdentityBio:
		return &c.Bio
	case IdentityAvatar:
		return &c.Avatar
	}
	return nil
}

// Field returns the SocialField stored under id. Unknown ids yield a zero field.
func (c Card) Field(id FieldID) SocialField {
	if p := c.slot(id); p != nil {
		return *p
	}
	return SocialField{}
}

// SetField replaces the SocialField stored under id.
func (c *Card) SetField(id FieldID, f SocialField) {
	if p := c.slot(id); p != nil {
		*p = f
	}
}

// Identity returns the identity attribute f.
func (c Card) Identity(f IdentityField) string {
	if p := c.identity(f); p != nil {
		return *p
	}
	return ""
}

// SetIdentity replaces the identity attribute f.
func (c *Card) SetIdentity(f IdentityField, v string) {
	if p := c.identity(f); p != nil {
		*p = v
	}
}

// ToMap encodes the card as the key/value shape read back by Migrate.
func (c Card) ToMap() map[string]any {
	m := make(map[string]any, len(IdentityFields)+len(Fields))
	for _, f := range IdentityFields {
		m[f.Key()] = c.Identity(f)
	}
	for _, id := range Fields {
		fv := c.Field(id)
		m[id.Key()] = map[string]any{"value": fv.Value, "enabled": fv.Enabled}
	}
	return m
}
