package card

import "strings"

// VCardContentType is the MIME type of BuildVCard output.
const VCardContentType = "text/vcard"

// lineBreaks escapes embedded line breaks the way vCard text values expect.
var lineBreaks = strings.NewReplacer("\r\n", `\n`, "\n", `\n`, "\r", `\n`)

// BuildVCard renders a vCard 3.0 block for the card.
//
// Line order is fixed: FN, N, TITLE, ORG, TEL, EMAIL, URL. TITLE and ORG are
// written only when set; TEL, EMAIL and URL only for active fields. Lines are
// collected before joining, so the block never contains a blank line.
func BuildVCard(c Card) string {
	lines := make([]string, 0, 10)
	lines = append(lines,
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:"+c.FirstName+" "+c.LastName,
		"N:"+c.LastName+";"+c.FirstName+";;;",
	)
	if c.Title != "" {
		lines = append(lines, "TITLE:"+c.Title)
	}
	if c.Company != "" {
		lines = append(lines, "ORG:"+c.Company)
	}
	if c.Phone.Active() {
		lines = append(lines, "TEL;TYPE=CELL:"+c.Phone.Value)
	}
	if c.Email.Active() {
		lines = append(lines, "EMAIL:"+c.Email.Value)
	}
	if c.Website.Active() {
		lines = append(lines, "URL:"+c.Website.Value)
	}
	lines = append(lines, "END:VCARD")
	for i := range lines {
		lines[i] = lineBreaks.Replace(lines[i])
	}
	return strings.Join(lines, "\n")
}

// VCardFilename returns the download name "<firstName>_<lastName>.vcf".
func VCardFilename(c Card) string {
	return c.FirstName + "_" + c.LastName + ".vcf"
}
