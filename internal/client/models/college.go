package models

// College is one entry of GET /college/names.
type College struct {
	InstituteID int64  `json:"institute_id"`
	Name        string `json:"name"`
}

// CollegeOption is a college shaped for a picker.
type CollegeOption struct {
	Value int64
	Label string
}

// CollegeOptions maps colleges to picker options, preserving order.
func CollegeOptions(colleges []College) []CollegeOption {
	opts := make([]CollegeOption, 0, len(colleges))
	for _, c := range colleges {
		opts = append(opts, CollegeOption{Value: c.InstituteID, Label: c.Name})
	}
	return opts
}
