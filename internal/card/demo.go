package card

// DemoUsername is the reserved username that always resolves to the demo card
// without touching storage.
const DemoUsername = "demo"

// IsDemo reports whether username names the demo card.
func IsDemo(username string) bool {
	return username == DemoUsername
}

// Demo returns the fixed sample card shown under DemoUsername.
func Demo() Card {
	return Card{
		FirstName: "Marie",
		LastName:  "Martin",
		Title:     "UX Designer",
		Company:   "Creative Studio",
		Bio:       "Passionate about design and user experience. I create intuitive and elegant interfaces.",
		Phone:     SocialField{Value: "+33612345678", Enabled: true},
		Email:     SocialField{Value: "marie@example.com", Enabled: true},
		Website:   SocialField{Value: "https://mariemartin.design", Enabled: true},
		LinkedIn:  SocialField{Value: "https://linkedin.com/in/mariemartin", Enabled: true},
		Twitter:   SocialField{Value: "https://twitter.com/mariemartin", Enabled: true},
		Instagram: SocialField{Value: "https://instagram.com/mariemartin", Enabled: true},
		WhatsApp:  SocialField{Value: "+33612345678", Enabled: true},
	}
}
