package models

// Category represents the records of one sheet, labelled by the sheet name.
type Category struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Records contains the rows with a non-blank title, in sheet order.
	Records []Record `json:"records,omitempty"`
	// Dropped counts the data rows left out because their title was blank.
	Dropped int `json:"dropped,omitempty"`
}

// Count returns the number of records in the category.
func (c Category) Count() int {
	return len(c.Records)
}

// TotalCirculation returns the sum of the circulation of every record.
func (c Category) TotalCirculation() int64 {
	var total int64
	for _, r := range c.Records {
		total += r.Circulation
	}
	return total
}
