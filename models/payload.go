package models

// Payload is the set of changes exchanged in one direction of a sync round.
type Payload struct {
	// FullSync is set when the payload carries the whole owned entity set
	// instead of a timestamp-filtered delta.
	FullSync      bool           `json:"fullSync"`
	Items         []Item         `json:"items"`
	Lists         []List         `json:"lists"`
	ListItems     []ListItem     `json:"listItems"`
	ProgressLogs  []ProgressLog  `json:"progressLogs"`
	Loans         []Loan         `json:"loans"`
	ExternalLinks []ExternalLink `json:"externalLinks"`
	Deletes       []Delete       `json:"deletes"`
}

// IsEmpty reports whether the payload carries no records and no deletes.
func (p Payload) IsEmpty() bool {
	return len(p.Items) == 0 && len(p.Lists) == 0 && len(p.ListItems) == 0 &&
		len(p.ProgressLogs) == 0 && len(p.Loans) == 0 && len(p.ExternalLinks) == 0 &&
		len(p.Deletes) == 0
}

// Size returns the total number of records and deletes.
func (p Payload) Size() int {
	return len(p.Items) + len(p.Lists) + len(p.ListItems) + len(p.ProgressLogs) +
		len(p.Loans) + len(p.ExternalLinks) + len(p.Deletes)
}
