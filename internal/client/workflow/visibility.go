package workflow

import "strconv"

// RedactedAmount is what non-owners see in place of an offer amount.
const RedactedAmount = "price hidden"

// maskedFallback replaces an offer username the backend left empty.
const maskedFallback = "unknown"

// MaskUsername obscures an offer author's name for display. Names longer
// than five characters keep their first three and last two characters;
// shorter names pass through unchanged; an empty name becomes a literal
// placeholder.
func MaskUsername(username string) string {
	if username == "" {
		return maskedFallback
	}
	r := []rune(username)
	if len(r) <= 5 {
		return username
	}
	return string(r[:3]) + "..." + string(r[len(r)-2:])
}

// OfferRow is one offer prepared for display, with the visibility rules
// already applied for the current viewer.
type OfferRow struct {
	Username  string
	Amount    string
	Plaintext bool
	CanAccept bool
	Status    string
	CreatedAt string
}

// Rows renders the view's offers for the current viewer. The amount is
// plaintext, and the accept affordance present, only for the request
// owner; everyone else gets the redaction placeholder.
func (w *Workflow) Rows(v *View) []OfferRow {
	owner := w.IsOwner(v)
	rows := make([]OfferRow, 0, len(v.offers))
	for _, o := range v.offers {
		row := OfferRow{
			Username:  MaskUsername(o.User.Username),
			Amount:    RedactedAmount,
			Status:    o.Status,
			CreatedAt: o.CreatedAt,
		}
		if owner {
			row.Amount = strconv.FormatFloat(o.Amount, 'f', -1, 64)
			row.Plaintext = true
			row.CanAccept = true
		}
		rows = append(rows, row)
	}
	return rows
}
